package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
)

const (
	matchListDefaultLimit   = 10
	matchListMaxLimit       = 50
	recentMatchDefaultLimit = 5
	recentMatchMaxLimit     = 20
	commentaryDefaultLimit  = 50
	commentaryMaxLimit      = 200
)

type MatchListInput struct {
	TeamID  int64
	VenueID int64
	Status  *int
	Page    int
	Limit   int
}

type BattingEntry struct {
	Line   scorecard.BattingLine
	Player *player.Player
}

type BowlingEntry struct {
	Line   scorecard.BowlingLine
	Player *player.Player
}

// InningsCard is one innings of a scorecard with its lines resolved.
type InningsCard struct {
	Innings       scorecard.Innings
	BattingTeam   team.Team
	FieldingTeam  team.Team
	Batsmen       []BattingEntry
	Bowlers       []BowlingEntry
	FallOfWickets []scorecard.FallOfWicket
}

type MatchDetail struct {
	MatchSummary
	Innings []InningsCard
}

type WagonWheelInput struct {
	InningsNumber int
	BatsmanID     int64
}

// WagonBatsman is a scorecard batter. PID is the provider id the shots refer to.
type WagonBatsman struct {
	PlayerID int64
	PID      *int64
	Name     string
	Runs     int
	Balls    int
	Fours    int
	Sixes    int
}

type WagonInnings struct {
	Number      int
	Name        string
	BattingTeam team.Team
	Batsmen     []WagonBatsman
	Shots       []wagonwheel.Shot
}

type ZoneStat struct {
	Runs  int
	Balls int
	Fours int
	Sixes int
}

type WagonWheel struct {
	MatchID    int64
	TotalBalls int
	Innings    []WagonInnings
	ZoneStats  map[string]ZoneStat
	ZoneNames  []string
}

type CommentaryInput struct {
	InningsNumber int
	Over          *int
	Flags         []commentary.Flag
	Page          int
	Limit         int
}

type InningsTeams struct {
	Innings      scorecard.Innings
	BattingTeam  team.Team
	FieldingTeam team.Team
}

// CommentaryGroup holds a page's events of one innings keyed by over.
type CommentaryGroup struct {
	InningsNumber int
	InningsName   string
	BattingTeam   *team.Team
	Overs         map[int][]commentary.Event
}

type MatchCommentary struct {
	MatchID    int64
	Innings    []InningsTeams
	Events     []commentary.Event
	Groups     []CommentaryGroup
	Highlights commentary.Highlights
	Pagination Pagination
}

type HighlightSummary struct {
	TotalWickets int
	TotalSixes   int
	TotalFours   int
}

type MatchHighlights struct {
	MatchID int64
	Innings []InningsTeams
	Wickets []commentary.Event
	Sixes   []commentary.Event
	Fours   []commentary.Event
	Summary HighlightSummary
}

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	venueRepo      venue.Repository
	playerRepo     player.Repository
	scorecardRepo  scorecard.Repository
	wagonRepo      wagonwheel.Repository
	commentaryRepo commentary.Repository
	matches        matchHydrator
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	venueRepo venue.Repository,
	playerRepo player.Repository,
	scorecardRepo scorecard.Repository,
	wagonRepo wagonwheel.Repository,
	commentaryRepo commentary.Repository,
) *MatchService {
	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		venueRepo:      venueRepo,
		playerRepo:     playerRepo,
		scorecardRepo:  scorecardRepo,
		wagonRepo:      wagonRepo,
		commentaryRepo: commentaryRepo,
		matches:        matchHydrator{teamRepo: teamRepo, venueRepo: venueRepo},
	}
}

func (s *MatchService) List(ctx context.Context, input MatchListInput) (Page[MatchSummary], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if input.TeamID < 0 || input.VenueID < 0 {
		return Page[MatchSummary]{}, fmt.Errorf("%w: team and venue ids must be positive numbers", ErrInvalidInput)
	}

	req := NewPageRequest(input.Page, input.Limit, matchListDefaultLimit, matchListMaxLimit)
	filter := match.ListFilter{
		TeamID:  input.TeamID,
		VenueID: input.VenueID,
		Status:  input.Status,
		Offset:  req.Offset(),
		Limit:   req.Limit,
	}

	matches, total, err := listWithCount(ctx,
		func(ctx context.Context) ([]match.Match, error) { return s.matchRepo.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return s.matchRepo.Count(ctx, filter) },
	)
	if err != nil {
		return Page[MatchSummary]{}, fmt.Errorf("list matches: %w", err)
	}

	items, err := s.matches.hydrate(ctx, matches)
	if err != nil {
		return Page[MatchSummary]{}, err
	}

	return Page[MatchSummary]{Items: items, Pagination: newPagination(req, total)}, nil
}

// Recent lists completed matches, newest first.
func (s *MatchService) Recent(ctx context.Context, limit int) ([]MatchSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Recent")
	defer span.End()

	status := match.StatusCompleted
	matches, err := s.matchRepo.List(ctx, match.ListFilter{
		Status: &status,
		Limit:  NewPageRequest(1, limit, recentMatchDefaultLimit, recentMatchMaxLimit).Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}

	return s.matches.hydrate(ctx, matches)
}

func (s *MatchService) Venues(ctx context.Context) ([]venue.Usage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Venues")
	defer span.End()

	items, err := s.venueRepo.ListUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venue usage: %w", err)
	}
	return nonNil(items), nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}

	summaries, err := s.matches.hydrate(ctx, []match.Match{item})
	if err != nil {
		return MatchDetail{}, err
	}

	innings, err := s.scorecardRepo.ListInningsByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list match innings: %w", err)
	}
	cards, err := s.inningsCards(ctx, innings, func(a, b scorecard.BowlingLine) bool {
		return a.Overs > b.Overs
	})
	if err != nil {
		return MatchDetail{}, err
	}

	return MatchDetail{MatchSummary: summaries[0], Innings: cards}, nil
}

// Scorecard returns the innings in play order. A match without innings is reported as not found.
func (s *MatchService) Scorecard(ctx context.Context, matchID int64) ([]InningsCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Scorecard")
	defer span.End()

	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be a positive number", ErrInvalidInput)
	}

	innings, err := s.scorecardRepo.ListInningsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match innings: %w", err)
	}
	if len(innings) == 0 {
		return nil, fmt.Errorf("%w: scorecard for match=%d", ErrNotFound, matchID)
	}

	return s.inningsCards(ctx, innings, func(a, b scorecard.BowlingLine) bool {
		return a.Wickets > b.Wickets
	})
}

func (s *MatchService) WagonWheel(ctx context.Context, matchID int64, input WagonWheelInput) (WagonWheel, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.WagonWheel")
	defer span.End()

	if _, err := s.getMatch(ctx, matchID); err != nil {
		return WagonWheel{}, err
	}

	innings, err := s.scorecardRepo.ListInningsByMatch(ctx, matchID)
	if err != nil {
		return WagonWheel{}, fmt.Errorf("list match innings: %w", err)
	}

	filter := wagonwheel.Filter{MatchID: matchID, BatsmanID: input.BatsmanID}
	if input.InningsNumber > 0 {
		// An unknown innings number leaves the filter off.
		if inn, ok := inningsByNumber(innings, input.InningsNumber); ok {
			filter.InningsID = inn.ID
		}
	}

	shots, err := s.wagonRepo.ListByMatch(ctx, filter)
	if err != nil {
		return WagonWheel{}, fmt.Errorf("list wagon wheel: %w", err)
	}

	inningsIDs := make([]int64, 0, len(innings))
	teamIDs := make([]int64, 0, len(innings))
	for _, inn := range innings {
		inningsIDs = append(inningsIDs, inn.ID)
		teamIDs = append(teamIDs, inn.BattingTeamID)
	}
	linesByInnings := map[int64][]scorecard.BattingLine{}
	players := map[int64]player.Player{}
	teams := map[int64]team.Team{}
	if len(innings) > 0 {
		lines, err := s.scorecardRepo.ListBattingByInnings(ctx, inningsIDs)
		if err != nil {
			return WagonWheel{}, fmt.Errorf("list innings batting: %w", err)
		}
		playerIDs := make([]int64, 0, len(lines))
		for _, line := range lines {
			linesByInnings[line.InningsID] = append(linesByInnings[line.InningsID], line)
			playerIDs = append(playerIDs, line.PlayerID)
		}
		if len(playerIDs) > 0 {
			items, err := s.playerRepo.GetByIDs(ctx, uniqueIDs(playerIDs))
			if err != nil {
				return WagonWheel{}, fmt.Errorf("get innings batsmen: %w", err)
			}
			players = indexByID(items, func(p player.Player) int64 { return p.ID })
		}
		items, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
		if err != nil {
			return WagonWheel{}, fmt.Errorf("get batting teams: %w", err)
		}
		teams = indexByID(items, func(t team.Team) int64 { return t.ID })
	}

	shotsByInnings := make(map[int64][]wagonwheel.Shot, len(innings))
	for _, shot := range shots {
		shotsByInnings[shot.InningsID] = append(shotsByInnings[shot.InningsID], shot)
	}

	out := WagonWheel{
		MatchID:    matchID,
		TotalBalls: len(shots),
		Innings:    make([]WagonInnings, 0, len(innings)),
		ZoneStats:  zoneStats(shots),
		ZoneNames:  append([]string(nil), wagonwheel.ZoneNames...),
	}
	for _, inn := range innings {
		batsmen := make([]WagonBatsman, 0, len(linesByInnings[inn.ID]))
		for _, line := range linesByInnings[inn.ID] {
			entry := WagonBatsman{
				PlayerID: line.PlayerID,
				Name:     line.Name,
				Runs:     line.Runs,
				Balls:    line.BallsFaced,
				Fours:    line.Fours,
				Sixes:    line.Sixes,
			}
			if p, ok := players[line.PlayerID]; ok {
				pid := p.PID
				entry.PID = &pid
			}
			batsmen = append(batsmen, entry)
		}
		out.Innings = append(out.Innings, WagonInnings{
			Number:      inn.Number,
			Name:        inn.Name,
			BattingTeam: teams[inn.BattingTeamID],
			Batsmen:     batsmen,
			Shots:       nonNil(shotsByInnings[inn.ID]),
		})
	}

	return out, nil
}

// zoneStats buckets shots by zone label. Fours and sixes are counted from the event name.
func zoneStats(shots []wagonwheel.Shot) map[string]ZoneStat {
	out := make(map[string]ZoneStat, len(wagonwheel.ZoneNames))
	for _, shot := range shots {
		label := wagonwheel.ZoneLabel(shot.ZoneID)
		stat := out[label]
		stat.Runs += shot.BatRun
		stat.Balls++
		switch shot.EventName {
		case "four":
			stat.Fours++
		case "six":
			stat.Sixes++
		}
		out[label] = stat
	}
	return out
}

func (s *MatchService) Commentary(ctx context.Context, matchID int64, input CommentaryInput) (MatchCommentary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Commentary")
	defer span.End()

	if _, err := s.getMatch(ctx, matchID); err != nil {
		return MatchCommentary{}, err
	}

	inningsTeams, err := s.inningsTeams(ctx, matchID)
	if err != nil {
		return MatchCommentary{}, err
	}

	req := NewPageRequest(input.Page, input.Limit, commentaryDefaultLimit, commentaryMaxLimit)
	filter := commentary.Filter{
		MatchID: matchID,
		Over:    input.Over,
		Flags:   input.Flags,
		Offset:  req.Offset(),
		Limit:   req.Limit,
	}
	if input.InningsNumber > 0 {
		for _, it := range inningsTeams {
			if it.Innings.Number == input.InningsNumber {
				filter.InningsID = it.Innings.ID
				break
			}
		}
	}

	events, total, err := listWithCount(ctx,
		func(ctx context.Context) ([]commentary.Event, error) { return s.commentaryRepo.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return s.commentaryRepo.Count(ctx, filter) },
	)
	if err != nil {
		return MatchCommentary{}, fmt.Errorf("list commentary: %w", err)
	}
	events = nonNil(events)

	return MatchCommentary{
		MatchID:    matchID,
		Innings:    inningsTeams,
		Events:     events,
		Groups:     groupCommentary(events, inningsTeams),
		Highlights: commentary.Summarize(events),
		Pagination: newPagination(req, total),
	}, nil
}

// groupCommentary buckets events by innings number, then by over. Groups come out by innings number.
// Events of an innings missing from the match fall into innings 1.
func groupCommentary(events []commentary.Event, innings []InningsTeams) []CommentaryGroup {
	byID := indexByID(innings, func(v InningsTeams) int64 { return v.Innings.ID })
	groups := map[int]*CommentaryGroup{}
	for _, event := range events {
		number := 1
		var it *InningsTeams
		if found, ok := byID[event.InningsID]; ok {
			it = &found
			if found.Innings.Number > 0 {
				number = found.Innings.Number
			}
		}

		group, ok := groups[number]
		if !ok {
			group = &CommentaryGroup{
				InningsNumber: number,
				InningsName:   fmt.Sprintf("Innings %d", number),
				Overs:         map[int][]commentary.Event{},
			}
			if it != nil {
				if it.Innings.Name != "" {
					group.InningsName = it.Innings.Name
				}
				battingTeam := it.BattingTeam
				group.BattingTeam = &battingTeam
			}
			groups[number] = group
		}
		group.Overs[event.Over] = append(group.Overs[event.Over], event)
	}

	out := make([]CommentaryGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InningsNumber < out[j].InningsNumber })
	return out
}

func (s *MatchService) Highlights(ctx context.Context, matchID int64) (MatchHighlights, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Highlights")
	defer span.End()

	if _, err := s.getMatch(ctx, matchID); err != nil {
		return MatchHighlights{}, err
	}

	var wickets, sixes, fours []commentary.Event
	p := pool.New().WithErrors().WithContext(ctx)
	load := func(flag commentary.Flag, dst *[]commentary.Event) {
		p.Go(func(ctx context.Context) error {
			items, err := s.commentaryRepo.ListByFlag(ctx, matchID, flag)
			if err != nil {
				return fmt.Errorf("list %s events: %w", flag, err)
			}
			*dst = nonNil(items)
			return nil
		})
	}
	load(commentary.FlagWicket, &wickets)
	load(commentary.FlagSix, &sixes)
	load(commentary.FlagFour, &fours)
	if err := p.Wait(); err != nil {
		return MatchHighlights{}, err
	}

	inningsTeams, err := s.inningsTeams(ctx, matchID)
	if err != nil {
		return MatchHighlights{}, err
	}

	return MatchHighlights{
		MatchID: matchID,
		Innings: inningsTeams,
		Wickets: wickets,
		Sixes:   sixes,
		Fours:   fours,
		Summary: HighlightSummary{
			TotalWickets: len(wickets),
			TotalSixes:   len(sixes),
			TotalFours:   len(fours),
		},
	}, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be a positive number", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) inningsTeams(ctx context.Context, matchID int64) ([]InningsTeams, error) {
	innings, err := s.scorecardRepo.ListInningsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match innings: %w", err)
	}
	if len(innings) == 0 {
		return []InningsTeams{}, nil
	}

	teams, err := s.inningsTeamIndex(ctx, innings)
	if err != nil {
		return nil, err
	}

	out := make([]InningsTeams, 0, len(innings))
	for _, inn := range innings {
		out = append(out, InningsTeams{
			Innings:      inn,
			BattingTeam:  teams[inn.BattingTeamID],
			FieldingTeam: teams[inn.FieldingTeamID],
		})
	}
	return out, nil
}

func (s *MatchService) inningsTeamIndex(ctx context.Context, innings []scorecard.Innings) (map[int64]team.Team, error) {
	ids := make([]int64, 0, len(innings)*2)
	for _, inn := range innings {
		ids = append(ids, inn.BattingTeamID, inn.FieldingTeamID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("get innings teams: %w", err)
	}
	return indexByID(teams, func(t team.Team) int64 { return t.ID }), nil
}

// inningsCards resolves every line of the given innings. Bowlers are stable-sorted with bowlerLess.
func (s *MatchService) inningsCards(
	ctx context.Context,
	innings []scorecard.Innings,
	bowlerLess func(a, b scorecard.BowlingLine) bool,
) ([]InningsCard, error) {
	if len(innings) == 0 {
		return []InningsCard{}, nil
	}

	ids := make([]int64, 0, len(innings))
	for _, inn := range innings {
		ids = append(ids, inn.ID)
	}

	var (
		batting []scorecard.BattingLine
		bowling []scorecard.BowlingLine
		fows    []scorecard.FallOfWicket
		teams   map[int64]team.Team
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		if batting, err = s.scorecardRepo.ListBattingByInnings(ctx, ids); err != nil {
			return fmt.Errorf("list innings batting: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if bowling, err = s.scorecardRepo.ListBowlingByInnings(ctx, ids); err != nil {
			return fmt.Errorf("list innings bowling: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if fows, err = s.scorecardRepo.ListFallOfWicketsByInnings(ctx, ids); err != nil {
			return fmt.Errorf("list innings fall of wickets: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		teams, err = s.inningsTeamIndex(ctx, innings)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	playerIDs := make([]int64, 0, len(batting)+len(bowling))
	for _, line := range batting {
		playerIDs = append(playerIDs, line.PlayerID)
	}
	for _, line := range bowling {
		playerIDs = append(playerIDs, line.PlayerID)
	}
	players := map[int64]player.Player{}
	if len(playerIDs) > 0 {
		items, err := s.playerRepo.GetByIDs(ctx, uniqueIDs(playerIDs))
		if err != nil {
			return nil, fmt.Errorf("get scorecard players: %w", err)
		}
		players = indexByID(items, func(p player.Player) int64 { return p.ID })
	}

	cards := make([]InningsCard, 0, len(innings))
	index := make(map[int64]int, len(innings))
	for i, inn := range innings {
		index[inn.ID] = i
		cards = append(cards, InningsCard{
			Innings:       inn,
			BattingTeam:   teams[inn.BattingTeamID],
			FieldingTeam:  teams[inn.FieldingTeamID],
			Batsmen:       []BattingEntry{},
			Bowlers:       []BowlingEntry{},
			FallOfWickets: []scorecard.FallOfWicket{},
		})
	}
	for _, line := range batting {
		if i, ok := index[line.InningsID]; ok {
			cards[i].Batsmen = append(cards[i].Batsmen, BattingEntry{Line: line, Player: lookupPtr(players, line.PlayerID)})
		}
	}
	for _, line := range bowling {
		if i, ok := index[line.InningsID]; ok {
			cards[i].Bowlers = append(cards[i].Bowlers, BowlingEntry{Line: line, Player: lookupPtr(players, line.PlayerID)})
		}
	}
	for _, fow := range fows {
		if i, ok := index[fow.InningsID]; ok {
			cards[i].FallOfWickets = append(cards[i].FallOfWickets, fow)
		}
	}
	for i := range cards {
		bowlers := cards[i].Bowlers
		sort.SliceStable(bowlers, func(a, b int) bool { return bowlerLess(bowlers[a].Line, bowlers[b].Line) })
	}

	return cards, nil
}

func inningsByNumber(innings []scorecard.Innings, number int) (scorecard.Innings, bool) {
	for _, inn := range innings {
		if inn.Number == number {
			return inn, true
		}
	}
	return scorecard.Innings{}, false
}
