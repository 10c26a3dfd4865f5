package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	aggregatemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/aggregate"
	competitionmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/competition"
	matchmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/match"
	playermock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/player"
	scorecardmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/scorecard"
	standingmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/standing"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
)

type statsServiceMocks struct {
	matches      *matchmock.Repository
	teams        *teammock.Repository
	players      *playermock.Repository
	competitions *competitionmock.Repository
	scorecards   *scorecardmock.Repository
	standings    *standingmock.Repository
	aggregates   *aggregatemock.Repository
}

func newStatsServiceForTest(t *testing.T) (*StatsService, statsServiceMocks) {
	t.Helper()

	m := statsServiceMocks{
		matches:      matchmock.NewRepository(t),
		teams:        teammock.NewRepository(t),
		players:      playermock.NewRepository(t),
		competitions: competitionmock.NewRepository(t),
		scorecards:   scorecardmock.NewRepository(t),
		standings:    standingmock.NewRepository(t),
		aggregates:   aggregatemock.NewRepository(t),
	}
	service := NewStatsService(m.matches, m.teams, m.players, m.competitions, m.scorecards, m.standings, m.aggregates)
	return service, m
}

func TestStatsService_TeamPerformance_SortedByPoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newStatsServiceForTest(t)

	m.standings.
		On("LatestPerTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]standing.Standing{
			{TeamID: 1, Played: 14, Win: 4, Points: 8},
			{TeamID: 2, Played: 14, Win: 10, Points: 20},
			{TeamID: 3, Played: 0, Points: 0},
		}, nil).
		Once()
	for id, abbr := range map[int64]string{1: "CSK", 2: "GT", 3: "NEW"} {
		m.teams.
			On("GetByID", mock.Anything, id).
			Return(team.Team{ID: id, Abbr: abbr}, true, nil).
			Once()
	}

	got, err := service.TeamPerformance(ctx)
	if err != nil {
		t.Fatalf("team performance: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected row count: %d", len(got))
	}
	if got[0].Team.Abbr != "GT" || got[1].Team.Abbr != "CSK" || got[2].Team.Abbr != "NEW" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].Team.Abbr, got[1].Team.Abbr, got[2].Team.Abbr)
	}
	if got[0].WinPercentage != 71.4 || got[1].WinPercentage != 28.6 || got[2].WinPercentage != 0 {
		t.Fatalf("unexpected win percentages: %v %v %v", got[0].WinPercentage, got[1].WinPercentage, got[2].WinPercentage)
	}
}

func TestStatsService_TopScorersByTeam_OmitsTeamsWithoutRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newStatsServiceForTest(t)

	avg := 51.33
	m.teams.
		On("ListAll", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return([]team.Team{{ID: 1, Abbr: "RR", Title: "Rajasthan Royals"}, {ID: 2, Abbr: "MI", Title: "Mumbai Indians"}}, nil).
		Once()
	m.aggregates.
		On("TopBattingForTeam", mock.Anything, int64(1), aggregate.StatMostRuns).
		Return(aggregate.Batting{PlayerID: 10, TeamID: 1, Runs: 863, Average: &avg}, true, nil).
		Once()
	m.aggregates.
		On("TopBattingForTeam", mock.Anything, int64(2), aggregate.StatMostRuns).
		Return(aggregate.Batting{}, false, nil).
		Once()
	m.players.
		On("GetByID", mock.Anything, int64(10)).
		Return(player.Player{ID: 10, Title: "Jos Buttler", ShortName: "J Buttler"}, true, nil).
		Once()

	got, err := service.TopScorersByTeam(ctx)
	if err != nil {
		t.Fatalf("top scorers by team: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one team, got %d", len(got))
	}
	if got[0].Team != "RR" || got[0].TopScorer.Name != "J Buttler" || got[0].TopScorer.Runs != 863 {
		t.Fatalf("unexpected top scorer: %+v", got[0])
	}
}

func TestStatsService_RunsPerMatch_SumsInnings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newStatsServiceForTest(t)

	start := time.Date(2022, 3, 26, 14, 0, 0, 0, time.UTC)
	m.matches.
		On("ListCompletedChronological", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), 30).
		Return([]match.Match{
			{ID: 1, ShortTitle: "CSK vs KKR", DateStart: start, TeamAID: 1, TeamBID: 2},
			{ID: 2, ShortTitle: "DC vs MI", DateStart: start.Add(24 * time.Hour), TeamAID: 3, TeamBID: 4},
		}, nil).
		Once()
	m.scorecards.
		On("ListInningsByMatchIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{1, 2}).
		Return([]scorecard.Innings{
			{ID: 11, MatchID: 1, Runs: 131},
			{ID: 12, MatchID: 1, Runs: 133},
			{ID: 21, MatchID: 2, Runs: 177},
		}, nil).
		Once()
	m.teams.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{1, 2, 3, 4}).
		Return([]team.Team{{ID: 1, Abbr: "CSK"}, {ID: 2, Abbr: "KKR"}, {ID: 3, Abbr: "DC"}, {ID: 4, Abbr: "MI"}}, nil).
		Once()

	got, err := service.RunsPerMatch(ctx)
	if err != nil {
		t.Fatalf("runs per match: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected entries: %d", len(got))
	}
	if got[0].MatchNumber != 1 || got[0].TotalRuns != 264 || got[0].TeamA != "CSK" || got[0].TeamB != "KKR" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].MatchNumber != 2 || got[1].TotalRuns != 177 {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
}

func TestStatsService_Bowling_DefaultTypeAndOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newStatsServiceForTest(t)

	m.aggregates.
		On("ListBowling", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), aggregate.Query{
			StatType: aggregate.StatTopWicketTakers,
			Order:    aggregate.Order{Column: "wickets"},
			Limit:    statsMaxLimit,
		}).
		Return([]aggregate.Bowling{}, nil).
		Once()

	got, err := service.Bowling(ctx, "", 500)
	if err != nil {
		t.Fatalf("bowling stats: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}
