package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
)

const (
	playerListDefaultLimit = 20
	playerListMaxLimit     = 100
	topPlayersDefaultLimit = 10
	topPlayersMaxLimit     = 50
)

type PlayerListInput struct {
	Search string
	Role   string
	TeamID int64
	Page   int
	Limit  int
}

type PlayerSummary struct {
	Player  player.Player
	Teams   []team.Team
	Batting *aggregate.Batting
	Bowling *aggregate.Bowling
}

type PlayerSquad struct {
	Squad player.Squad
	Team  team.Team
}

type PlayerDetail struct {
	Player      player.Player
	Squads      []PlayerSquad
	CareerStats *player.CareerStats
	Batting     []aggregate.Batting
	Bowling     []aggregate.Bowling
}

// PlayerBattingInnings is one batting line with its innings and match. Team is the batting side.
type PlayerBattingInnings struct {
	Line    scorecard.BattingLine
	Innings scorecard.Innings
	Match   MatchSummary
	Team    team.Team
}

// PlayerBowlingInnings is one bowling line. Team is the fielding side.
type PlayerBowlingInnings struct {
	Line    scorecard.BowlingLine
	Innings scorecard.Innings
	Match   MatchSummary
	Team    team.Team
}

type PlayerService struct {
	playerRepo    player.Repository
	teamRepo      team.Repository
	aggregateRepo aggregate.Repository
	scorecardRepo scorecard.Repository
	matchRepo     match.Repository
	matches       matchHydrator
	rankings      rankingHydrator
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	aggregateRepo aggregate.Repository,
	scorecardRepo scorecard.Repository,
	matchRepo match.Repository,
	venueRepo venue.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo:    playerRepo,
		teamRepo:      teamRepo,
		aggregateRepo: aggregateRepo,
		scorecardRepo: scorecardRepo,
		matchRepo:     matchRepo,
		matches:       matchHydrator{teamRepo: teamRepo, venueRepo: venueRepo},
		rankings:      rankingHydrator{playerRepo: playerRepo, teamRepo: teamRepo},
	}
}

func (s *PlayerService) List(ctx context.Context, input PlayerListInput) (Page[PlayerSummary], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	if input.TeamID < 0 {
		return Page[PlayerSummary]{}, fmt.Errorf("%w: team id must be a positive number", ErrInvalidInput)
	}

	req := NewPageRequest(input.Page, input.Limit, playerListDefaultLimit, playerListMaxLimit)
	filter := player.ListFilter{
		Search: strings.TrimSpace(input.Search),
		Role:   strings.TrimSpace(input.Role),
		TeamID: input.TeamID,
		Offset: req.Offset(),
		Limit:  req.Limit,
	}

	players, total, err := listWithCount(ctx,
		func(ctx context.Context) ([]player.Player, error) { return s.playerRepo.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return s.playerRepo.Count(ctx, filter) },
	)
	if err != nil {
		return Page[PlayerSummary]{}, fmt.Errorf("list players: %w", err)
	}

	items, err := s.summarize(ctx, players)
	if err != nil {
		return Page[PlayerSummary]{}, err
	}

	return Page[PlayerSummary]{Items: items, Pagination: newPagination(req, total)}, nil
}

func (s *PlayerService) summarize(ctx context.Context, players []player.Player) ([]PlayerSummary, error) {
	if len(players) == 0 {
		return []PlayerSummary{}, nil
	}

	ids := make([]int64, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	ids = uniqueIDs(ids)

	var (
		squads  []player.Squad
		batting []aggregate.Batting
		bowling []aggregate.Bowling
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		if squads, err = s.playerRepo.ListSquadsByPlayerIDs(ctx, ids); err != nil {
			return fmt.Errorf("list player squads: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if batting, err = s.aggregateRepo.ListBattingByPlayers(ctx, ids, aggregate.StatMostRuns); err != nil {
			return fmt.Errorf("list player batting aggregates: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if bowling, err = s.aggregateRepo.ListBowlingByPlayers(ctx, ids, aggregate.StatTopWicketTakers); err != nil {
			return fmt.Errorf("list player bowling aggregates: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	teamIDs := make([]int64, 0, len(squads))
	for _, squad := range squads {
		teamIDs = append(teamIDs, squad.TeamID)
	}
	teamByID := map[int64]team.Team{}
	if len(teamIDs) > 0 {
		teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
		if err != nil {
			return nil, fmt.Errorf("get player teams: %w", err)
		}
		teamByID = indexByID(teams, func(t team.Team) int64 { return t.ID })
	}

	teamsByPlayer := make(map[int64][]team.Team, len(players))
	for _, squad := range squads {
		if t, ok := teamByID[squad.TeamID]; ok {
			teamsByPlayer[squad.PlayerID] = append(teamsByPlayer[squad.PlayerID], t)
		}
	}
	battingByPlayer := indexByID(batting, func(v aggregate.Batting) int64 { return v.PlayerID })
	bowlingByPlayer := indexByID(bowling, func(v aggregate.Bowling) int64 { return v.PlayerID })

	out := make([]PlayerSummary, 0, len(players))
	for _, item := range players {
		teams := teamsByPlayer[item.ID]
		if teams == nil {
			teams = []team.Team{}
		}
		out = append(out, PlayerSummary{
			Player:  item,
			Teams:   teams,
			Batting: lookupPtr(battingByPlayer, item.ID),
			Bowling: lookupPtr(bowlingByPlayer, item.ID),
		})
	}
	return out, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	item, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, err
	}

	ids := []int64{playerID}
	squads, err := s.playerRepo.ListSquadsByPlayerIDs(ctx, ids)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list player squads: %w", err)
	}
	career, hasCareer, err := s.playerRepo.GetCareerStats(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player career stats: %w", err)
	}
	batting, err := s.aggregateRepo.ListBattingByPlayers(ctx, ids, "")
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list player batting aggregates: %w", err)
	}
	bowling, err := s.aggregateRepo.ListBowlingByPlayers(ctx, ids, "")
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list player bowling aggregates: %w", err)
	}

	detail := PlayerDetail{
		Player:  item,
		Squads:  make([]PlayerSquad, 0, len(squads)),
		Batting: nonNil(batting),
		Bowling: nonNil(bowling),
	}
	if hasCareer {
		detail.CareerStats = &career
	}
	if len(squads) > 0 {
		teamIDs := make([]int64, 0, len(squads))
		for _, squad := range squads {
			teamIDs = append(teamIDs, squad.TeamID)
		}
		teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
		if err != nil {
			return PlayerDetail{}, fmt.Errorf("get player teams: %w", err)
		}
		teamByID := indexByID(teams, func(t team.Team) int64 { return t.ID })
		for _, squad := range squads {
			detail.Squads = append(detail.Squads, PlayerSquad{Squad: squad, Team: teamByID[squad.TeamID]})
		}
	}

	return detail, nil
}

// Batting lists the player's innings by runs, highest first. A player who never batted gets an empty list.
func (s *PlayerService) Batting(ctx context.Context, playerID int64) ([]PlayerBattingInnings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Batting")
	defer span.End()

	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	lines, err := s.scorecardRepo.ListBattingByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player batting lines: %w", err)
	}
	if len(lines) == 0 {
		return []PlayerBattingInnings{}, nil
	}

	inningsIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		inningsIDs = append(inningsIDs, line.InningsID)
	}
	scope, err := s.inningsScope(ctx, inningsIDs)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerBattingInnings, 0, len(lines))
	for _, line := range lines {
		inn, ok := scope.innings[line.InningsID]
		if !ok {
			continue
		}
		out = append(out, PlayerBattingInnings{
			Line:    line,
			Innings: inn,
			Match:   scope.matches[inn.MatchID],
			Team:    scope.teams[inn.BattingTeamID],
		})
	}
	return out, nil
}

// Bowling lists the player's spells by wickets, most first.
func (s *PlayerService) Bowling(ctx context.Context, playerID int64) ([]PlayerBowlingInnings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Bowling")
	defer span.End()

	if _, err := s.getPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	lines, err := s.scorecardRepo.ListBowlingByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player bowling lines: %w", err)
	}
	if len(lines) == 0 {
		return []PlayerBowlingInnings{}, nil
	}

	inningsIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		inningsIDs = append(inningsIDs, line.InningsID)
	}
	scope, err := s.inningsScope(ctx, inningsIDs)
	if err != nil {
		return nil, err
	}

	out := make([]PlayerBowlingInnings, 0, len(lines))
	for _, line := range lines {
		inn, ok := scope.innings[line.InningsID]
		if !ok {
			continue
		}
		out = append(out, PlayerBowlingInnings{
			Line:    line,
			Innings: inn,
			Match:   scope.matches[inn.MatchID],
			Team:    scope.teams[inn.FieldingTeamID],
		})
	}
	return out, nil
}

// TopBatsmen ranks the most_runs table by a client sort key, descending.
func (s *PlayerService) TopBatsmen(ctx context.Context, sortBy string, limit int) ([]BattingRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopBatsmen")
	defer span.End()

	rows, err := s.aggregateRepo.ListBatting(ctx, aggregate.Query{
		StatType: aggregate.StatMostRuns,
		Order:    aggregate.BattingOrderForSortKey(sortBy),
		Limit:    NewPageRequest(1, limit, topPlayersDefaultLimit, topPlayersMaxLimit).Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list top batsmen: %w", err)
	}
	return s.rankings.batting(ctx, rows)
}

// TopBowlers ranks the top_wicket_takers table. Economy and average sort ascending.
func (s *PlayerService) TopBowlers(ctx context.Context, sortBy string, limit int) ([]BowlingRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopBowlers")
	defer span.End()

	rows, err := s.aggregateRepo.ListBowling(ctx, aggregate.Query{
		StatType: aggregate.StatTopWicketTakers,
		Order:    aggregate.BowlingOrderForSortKey(sortBy),
		Limit:    NewPageRequest(1, limit, topPlayersDefaultLimit, topPlayersMaxLimit).Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list top bowlers: %w", err)
	}
	return s.rankings.bowling(ctx, rows)
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be a positive number", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}

type inningsScope struct {
	innings map[int64]scorecard.Innings
	matches map[int64]MatchSummary
	teams   map[int64]team.Team
}

func (s *PlayerService) inningsScope(ctx context.Context, inningsIDs []int64) (inningsScope, error) {
	innings, err := s.scorecardRepo.GetInningsByIDs(ctx, uniqueIDs(inningsIDs))
	if err != nil {
		return inningsScope{}, fmt.Errorf("get innings: %w", err)
	}

	matchIDs := make([]int64, 0, len(innings))
	teamIDs := make([]int64, 0, len(innings)*2)
	for _, inn := range innings {
		matchIDs = append(matchIDs, inn.MatchID)
		teamIDs = append(teamIDs, inn.BattingTeamID, inn.FieldingTeamID)
	}

	matches, err := s.matchRepo.GetByIDs(ctx, uniqueIDs(matchIDs))
	if err != nil {
		return inningsScope{}, fmt.Errorf("get innings matches: %w", err)
	}
	summaries, err := s.matches.hydrate(ctx, matches)
	if err != nil {
		return inningsScope{}, err
	}
	teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return inningsScope{}, fmt.Errorf("get innings teams: %w", err)
	}

	return inningsScope{
		innings: indexByID(innings, func(v scorecard.Innings) int64 { return v.ID }),
		matches: indexByID(summaries, func(v MatchSummary) int64 { return v.Match.ID }),
		teams:   indexByID(teams, func(v team.Team) int64 { return v.ID }),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
