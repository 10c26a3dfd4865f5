package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
)

const (
	statsDefaultLimit  = 10
	statsMaxLimit      = 50
	runsPerMatchWindow = 30
)

type HighestScore struct {
	Runs   int
	Balls  int
	Player string
	Match  string
}

type BestBowling struct {
	Wickets int
	Runs    int
	Overs   float64
	Player  string
	Match   string
}

type TopSixHitter struct {
	Player string
	Sixes  int64
}

// Overview is the tournament dashboard. Record holders are nil when nothing was imported.
type Overview struct {
	Tournament   *competition.Competition
	TotalMatches int64
	TotalTeams   int64
	TotalPlayers int64
	TotalRuns    int64
	TotalWickets int64
	HighestScore *HighestScore
	BestBowling  *BestBowling
	TopSixHitter *TopSixHitter
}

type TeamPerformance struct {
	Team          team.Team
	Played        int
	Win           int
	Loss          int
	Points        int
	NetRunRate    *float64
	Qualified     bool
	WinPercentage float64
}

type MatchRuns struct {
	MatchNumber int
	ShortTitle  string
	Date        time.Time
	TotalRuns   int
	TeamA       string
	TeamB       string
}

type TopScorer struct {
	Name       string
	Runs       int
	Average    *float64
	StrikeRate *float64
}

type TeamTopScorer struct {
	Team      string
	TeamName  string
	LogoURL   string
	TopScorer TopScorer
}

type StatsService struct {
	matchRepo       match.Repository
	teamRepo        team.Repository
	playerRepo      player.Repository
	competitionRepo competition.Repository
	scorecardRepo   scorecard.Repository
	standingRepo    standing.Repository
	aggregateRepo   aggregate.Repository
	rankings        rankingHydrator
	workers         int
}

func NewStatsService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	competitionRepo competition.Repository,
	scorecardRepo scorecard.Repository,
	standingRepo standing.Repository,
	aggregateRepo aggregate.Repository,
) *StatsService {
	return &StatsService{
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		competitionRepo: competitionRepo,
		scorecardRepo:   scorecardRepo,
		standingRepo:    standingRepo,
		aggregateRepo:   aggregateRepo,
		rankings:        rankingHydrator{playerRepo: playerRepo, teamRepo: teamRepo},
		workers:         defaultFanOutWorkers,
	}
}

func (s *StatsService) Overview(ctx context.Context) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Overview")
	defer span.End()

	var (
		out        Overview
		totals     scorecard.Totals
		highest    scorecard.BattingLine
		hasHighest bool
		best       scorecard.BowlingLine
		hasBest    bool
		sixes      scorecard.SixHitter
		hasSixes   bool
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		if out.TotalMatches, err = s.matchRepo.Count(ctx, match.ListFilter{}); err != nil {
			return fmt.Errorf("count matches: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if out.TotalTeams, err = s.teamRepo.Count(ctx, team.ListFilter{}); err != nil {
			return fmt.Errorf("count teams: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if out.TotalPlayers, err = s.playerRepo.Count(ctx, player.ListFilter{}); err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		item, ok, err := s.competitionRepo.First(ctx)
		if err != nil {
			return fmt.Errorf("get competition: %w", err)
		}
		if ok {
			out.Tournament = &item
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if totals, err = s.scorecardRepo.Totals(ctx); err != nil {
			return fmt.Errorf("sum innings totals: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if highest, hasHighest, err = s.scorecardRepo.HighestBattingLine(ctx); err != nil {
			return fmt.Errorf("get highest score: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if best, hasBest, err = s.scorecardRepo.BestBowlingLine(ctx); err != nil {
			return fmt.Errorf("get best bowling: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if sixes, hasSixes, err = s.scorecardRepo.TopSixHitter(ctx); err != nil {
			return fmt.Errorf("get top six hitter: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return Overview{}, err
	}

	out.TotalRuns = totals.Runs
	out.TotalWickets = totals.Wickets

	if !hasHighest && !hasBest && !hasSixes {
		return out, nil
	}

	var (
		playerIDs  []int64
		inningsIDs []int64
	)
	if hasHighest {
		playerIDs = append(playerIDs, highest.PlayerID)
		inningsIDs = append(inningsIDs, highest.InningsID)
	}
	if hasBest {
		playerIDs = append(playerIDs, best.PlayerID)
		inningsIDs = append(inningsIDs, best.InningsID)
	}
	if hasSixes {
		playerIDs = append(playerIDs, sixes.PlayerID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, uniqueIDs(playerIDs))
	if err != nil {
		return Overview{}, fmt.Errorf("get record holders: %w", err)
	}
	playerByID := indexByID(players, func(p player.Player) int64 { return p.ID })

	matchTitle := map[int64]string{}
	if len(inningsIDs) > 0 {
		innings, err := s.scorecardRepo.GetInningsByIDs(ctx, uniqueIDs(inningsIDs))
		if err != nil {
			return Overview{}, fmt.Errorf("get record innings: %w", err)
		}
		matchIDs := make([]int64, 0, len(innings))
		for _, inn := range innings {
			matchIDs = append(matchIDs, inn.MatchID)
		}
		matches, err := s.matchRepo.GetByIDs(ctx, uniqueIDs(matchIDs))
		if err != nil {
			return Overview{}, fmt.Errorf("get record matches: %w", err)
		}
		matchByID := indexByID(matches, func(m match.Match) int64 { return m.ID })
		for _, inn := range innings {
			if m, ok := matchByID[inn.MatchID]; ok {
				matchTitle[inn.ID] = m.ShortTitle
			}
		}
	}

	if hasHighest {
		p, okPlayer := playerByID[highest.PlayerID]
		title, okMatch := matchTitle[highest.InningsID]
		if okPlayer && okMatch {
			out.HighestScore = &HighestScore{
				Runs:   highest.Runs,
				Balls:  highest.BallsFaced,
				Player: p.Title,
				Match:  title,
			}
		}
	}
	if hasBest {
		p, okPlayer := playerByID[best.PlayerID]
		title, okMatch := matchTitle[best.InningsID]
		if okPlayer && okMatch {
			out.BestBowling = &BestBowling{
				Wickets: best.Wickets,
				Runs:    best.RunsConceded,
				Overs:   best.Overs,
				Player:  p.Title,
				Match:   title,
			}
		}
	}
	if hasSixes {
		if p, ok := playerByID[sixes.PlayerID]; ok {
			out.TopSixHitter = &TopSixHitter{Player: p.Title, Sixes: sixes.Sixes}
		}
	}

	return out, nil
}

// Batting ranks one batting stat type. An empty type means most_runs.
func (s *StatsService) Batting(ctx context.Context, statType string, limit int) ([]BattingRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Batting")
	defer span.End()

	statType = strings.TrimSpace(statType)
	if statType == "" {
		statType = aggregate.StatMostRuns
	}

	rows, err := s.aggregateRepo.ListBatting(ctx, aggregate.Query{
		StatType: statType,
		Order:    aggregate.BattingOrderForStatType(statType),
		Limit:    NewPageRequest(1, limit, statsDefaultLimit, statsMaxLimit).Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list batting stats: %w", err)
	}
	return s.rankings.batting(ctx, rows)
}

// Bowling ranks one bowling stat type. An empty type means top_wicket_takers.
func (s *StatsService) Bowling(ctx context.Context, statType string, limit int) ([]BowlingRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Bowling")
	defer span.End()

	statType = strings.TrimSpace(statType)
	if statType == "" {
		statType = aggregate.StatTopWicketTakers
	}

	rows, err := s.aggregateRepo.ListBowling(ctx, aggregate.Query{
		StatType: statType,
		Order:    aggregate.BowlingOrderForStatType(statType),
		Limit:    NewPageRequest(1, limit, statsDefaultLimit, statsMaxLimit).Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list bowling stats: %w", err)
	}
	return s.rankings.bowling(ctx, rows)
}

// TeamPerformance takes every team's latest standing, sorted by points.
func (s *StatsService) TeamPerformance(ctx context.Context) ([]TeamPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamPerformance")
	defer span.End()

	standings, err := s.standingRepo.LatestPerTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("list latest standings: %w", err)
	}

	out := make([]TeamPerformance, len(standings))
	err = fanOut(ctx, s.workers, len(standings), func(ctx context.Context, i int) error {
		row := standings[i]
		item, _, err := s.teamRepo.GetByID(ctx, row.TeamID)
		if err != nil {
			return fmt.Errorf("get team %d: %w", row.TeamID, err)
		}
		out[i] = TeamPerformance{
			Team:          item,
			Played:        row.Played,
			Win:           row.Win,
			Loss:          row.Loss,
			Points:        row.Points,
			NetRunRate:    row.NetRunRate,
			Qualified:     row.Qualified,
			WinPercentage: row.WinPercentage(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Points > out[j].Points })
	return out, nil
}

// RunsPerMatch totals innings runs for the first completed matches in date order.
func (s *StatsService) RunsPerMatch(ctx context.Context) ([]MatchRuns, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.RunsPerMatch")
	defer span.End()

	matches, err := s.matchRepo.ListCompletedChronological(ctx, runsPerMatchWindow)
	if err != nil {
		return nil, fmt.Errorf("list completed matches: %w", err)
	}
	if len(matches) == 0 {
		return []MatchRuns{}, nil
	}

	matchIDs := make([]int64, 0, len(matches))
	teamIDs := make([]int64, 0, len(matches)*2)
	for _, m := range matches {
		matchIDs = append(matchIDs, m.ID)
		teamIDs = append(teamIDs, m.TeamAID, m.TeamBID)
	}

	innings, err := s.scorecardRepo.ListInningsByMatchIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("list match innings: %w", err)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("get match teams: %w", err)
	}
	teamByID := indexByID(teams, func(t team.Team) int64 { return t.ID })

	runs := make(map[int64]int, len(matches))
	for _, inn := range innings {
		runs[inn.MatchID] += inn.Runs
	}

	out := make([]MatchRuns, 0, len(matches))
	for i, m := range matches {
		out = append(out, MatchRuns{
			MatchNumber: i + 1,
			ShortTitle:  m.ShortTitle,
			Date:        m.DateStart,
			TotalRuns:   runs[m.ID],
			TeamA:       teamByID[m.TeamAID].Abbr,
			TeamB:       teamByID[m.TeamBID].Abbr,
		})
	}
	return out, nil
}

// TopScorersByTeam picks each team's leading most_runs row. Teams without one are left out.
func (s *StatsService) TopScorersByTeam(ctx context.Context) ([]TeamTopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopScorersByTeam")
	defer span.End()

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	slots := make([]*TeamTopScorer, len(teams))
	err = fanOut(ctx, s.workers, len(teams), func(ctx context.Context, i int) error {
		item := teams[i]
		row, ok, err := s.aggregateRepo.TopBattingForTeam(ctx, item.ID, aggregate.StatMostRuns)
		if err != nil {
			return fmt.Errorf("get top scorer for team %d: %w", item.ID, err)
		}
		if !ok {
			return nil
		}
		p, ok, err := s.playerRepo.GetByID(ctx, row.PlayerID)
		if err != nil {
			return fmt.Errorf("get player %d: %w", row.PlayerID, err)
		}
		if !ok {
			return nil
		}
		slots[i] = &TeamTopScorer{
			Team:     item.Abbr,
			TeamName: item.Title,
			LogoURL:  item.LogoURL,
			TopScorer: TopScorer{
				Name:       p.DisplayName(),
				Runs:       row.Runs,
				Average:    row.Average,
				StrikeRate: row.StrikeRate,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]TeamTopScorer, 0, len(teams))
	for _, slot := range slots {
		if slot != nil {
			out = append(out, *slot)
		}
	}
	return out, nil
}
