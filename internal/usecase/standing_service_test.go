package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	competitionmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/competition"
	standingmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/standing"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
)

func TestStandingService_ListByRound_DefaultsToLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	standingRepo := standingmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	competitionRepo := competitionmock.NewRepository(t)
	service := NewStandingService(standingRepo, teamRepo, competitionRepo)

	standingRepo.
		On("LatestRoundID", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(int64(70), true, nil).
		Once()
	standingRepo.
		On("ListByRound", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(70)).
		Return([]standing.Standing{{TeamID: 2, CompetitionID: 5, RoundID: 70, Points: 20}}, nil).
		Once()
	teamRepo.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{2}).
		Return([]team.Team{{ID: 2, Abbr: "GT"}}, nil).
		Once()
	competitionRepo.
		On("GetByIDs", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), []int64{5}).
		Return([]competition.Competition{{ID: 5, Title: "Indian Premier League"}}, nil).
		Once()

	got, err := service.ListByRound(ctx, 0)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(got) != 1 || got[0].Team.Abbr != "GT" || got[0].Competition == nil {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestStandingService_ListByRound_NoStandings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(standingRepo, teammock.NewRepository(t), competitionmock.NewRepository(t))

	standingRepo.
		On("LatestRoundID", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(int64(0), false, nil).
		Once()

	got, err := service.ListByRound(ctx, 0)
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %#v", got)
	}
}

func TestStandingService_GetByTeam_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(standingRepo, teammock.NewRepository(t), competitionmock.NewRepository(t))

	standingRepo.
		On("LatestByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(9)).
		Return(standing.Standing{}, false, nil).
		Once()

	_, err := service.GetByTeam(ctx, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
