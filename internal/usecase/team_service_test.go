package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	aggregatemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/aggregate"
	matchmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/match"
	playermock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/player"
	standingmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/standing"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
	venuemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/venue"
)

type teamServiceMocks struct {
	teams      *teammock.Repository
	players    *playermock.Repository
	standings  *standingmock.Repository
	aggregates *aggregatemock.Repository
	matches    *matchmock.Repository
	venues     *venuemock.Repository
}

func newTeamServiceForTest(t *testing.T) (*TeamService, teamServiceMocks) {
	t.Helper()

	m := teamServiceMocks{
		teams:      teammock.NewRepository(t),
		players:    playermock.NewRepository(t),
		standings:  standingmock.NewRepository(t),
		aggregates: aggregatemock.NewRepository(t),
		matches:    matchmock.NewRepository(t),
		venues:     venuemock.NewRepository(t),
	}
	return NewTeamService(m.teams, m.players, m.standings, m.aggregates, m.matches, m.venues), m
}

func TestTeamService_List_SecondPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newTeamServiceForTest(t)

	filter := team.ListFilter{Offset: 10, Limit: 10}
	page := make([]team.Team, 0, 10)
	for i := 11; i <= 20; i++ {
		page = append(page, team.Team{ID: int64(i), TID: int64(1000 + i), Title: fmt.Sprintf("Team %02d", i)})
	}

	m.teams.On("List", mock.Anything, filter).Return(page, nil).Once()
	m.teams.On("Count", mock.Anything, filter).Return(int64(25), nil).Once()
	m.standings.
		On("BestByTeams", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]standing.Standing{{TeamID: 11, Points: 18}}, nil).
		Once()
	m.teams.
		On("ListStatsByTeamIDs", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]team.Stats{}, nil).
		Once()

	got, err := service.List(ctx, TeamListInput{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(got.Items) != 10 {
		t.Fatalf("unexpected item count: got=%d want=10", len(got.Items))
	}
	if got.Pagination.TotalPages != 3 || got.Pagination.Total != 25 || got.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", got.Pagination)
	}
	if got.Items[0].Standing == nil || got.Items[0].Standing.Points != 18 {
		t.Fatalf("expected standing on first team, got %+v", got.Items[0].Standing)
	}
	if got.Items[1].Standing != nil {
		t.Fatalf("expected no standing on second team")
	}
}

func TestTeamService_Players_EmptySquad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newTeamServiceForTest(t)

	m.teams.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(3)).
		Return(team.Team{ID: 3, Title: "Gujarat Titans"}, true, nil).
		Once()
	m.players.
		On("ListSquadsByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(3)).
		Return([]player.Squad{}, nil).
		Once()

	got, err := service.Players(ctx, 3)
	if err != nil {
		t.Fatalf("list team players: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestTeamService_Players_TeamNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newTeamServiceForTest(t)

	m.teams.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(99)).
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.Players(ctx, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Get_InvalidID(t *testing.T) {
	t.Parallel()

	service, _ := newTeamServiceForTest(t)

	_, err := service.Get(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Get_IncludesSquad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newTeamServiceForTest(t)

	m.teams.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(team.Team{ID: 1, Title: "Chennai Super Kings", Abbr: "CSK"}, true, nil).
		Once()
	m.standings.
		On("LatestByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(standing.Standing{TeamID: 1, RoundID: 14, Points: 8}, true, nil).
		Once()
	m.teams.
		On("ListStatsByTeamIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{1}).
		Return([]team.Stats{{TeamID: 1, TotalRuns: 2100}}, nil).
		Once()
	m.players.
		On("ListSquadsByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return([]player.Squad{{TeamID: 1, PlayerID: 7, Season: "2022"}, {TeamID: 1, PlayerID: 8, Season: "2022"}}, nil).
		Once()
	m.players.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{7, 8}).
		Return([]player.Player{{ID: 7, Title: "MS Dhoni"}}, nil).
		Once()

	got, err := service.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Standing == nil || got.Standing.RoundID != 14 {
		t.Fatalf("unexpected standing: %+v", got.Standing)
	}
	if got.Stats == nil || got.Stats.TotalRuns != 2100 {
		t.Fatalf("unexpected stats: %+v", got.Stats)
	}
	if len(got.Squad) != 1 || got.Squad[0].Player.Title != "MS Dhoni" {
		t.Fatalf("expected squad members with known players only, got %+v", got.Squad)
	}
}
