package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	aggregatemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/aggregate"
	matchmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/match"
	playermock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/player"
	scorecardmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/scorecard"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
	venuemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/venue"
)

type playerServiceMocks struct {
	players    *playermock.Repository
	teams      *teammock.Repository
	aggregates *aggregatemock.Repository
	scorecards *scorecardmock.Repository
	matches    *matchmock.Repository
	venues     *venuemock.Repository
}

func newPlayerServiceForTest(t *testing.T) (*PlayerService, playerServiceMocks) {
	t.Helper()

	m := playerServiceMocks{
		players:    playermock.NewRepository(t),
		teams:      teammock.NewRepository(t),
		aggregates: aggregatemock.NewRepository(t),
		scorecards: scorecardmock.NewRepository(t),
		matches:    matchmock.NewRepository(t),
		venues:     venuemock.NewRepository(t),
	}
	service := NewPlayerService(m.players, m.teams, m.aggregates, m.scorecards, m.matches, m.venues)
	return service, m
}

func TestPlayerService_TopBowlers_EconomyAscending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newPlayerServiceForTest(t)

	m.aggregates.
		On("ListBowling", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), aggregate.Query{
			StatType: aggregate.StatTopWicketTakers,
			Order:    aggregate.Order{Column: "economy", Ascending: true},
			Limit:    topPlayersDefaultLimit,
		}).
		Return([]aggregate.Bowling{{PlayerID: 4, TeamID: 1, Wickets: 27}}, nil).
		Once()
	m.players.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{4}).
		Return([]player.Player{{ID: 4, Title: "Yuzvendra Chahal"}}, nil).
		Once()
	m.teams.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{1}).
		Return([]team.Team{{ID: 1, Abbr: "RR"}}, nil).
		Once()

	got, err := service.TopBowlers(ctx, "economy", 0)
	if err != nil {
		t.Fatalf("top bowlers: %v", err)
	}
	if len(got) != 1 || got[0].Player.Title != "Yuzvendra Chahal" || got[0].Team.Abbr != "RR" {
		t.Fatalf("unexpected rankings: %+v", got)
	}
}

func TestPlayerService_Batting_PlayerNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newPlayerServiceForTest(t)

	m.players.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(77)).
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.Batting(ctx, 77)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Get_InvalidID(t *testing.T) {
	t.Parallel()

	service, _ := newPlayerServiceForTest(t)

	_, err := service.Get(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
