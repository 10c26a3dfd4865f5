package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
	commentarymock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/commentary"
	matchmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/match"
	playermock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/player"
	scorecardmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/scorecard"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
	venuemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/venue"
	wagonwheelmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/wagonwheel"
)

type matchServiceMocks struct {
	matches    *matchmock.Repository
	teams      *teammock.Repository
	venues     *venuemock.Repository
	players    *playermock.Repository
	scorecards *scorecardmock.Repository
	wagons     *wagonwheelmock.Repository
	commentary *commentarymock.Repository
}

func newMatchServiceForTest(t *testing.T) (*MatchService, matchServiceMocks) {
	t.Helper()

	m := matchServiceMocks{
		matches:    matchmock.NewRepository(t),
		teams:      teammock.NewRepository(t),
		venues:     venuemock.NewRepository(t),
		players:    playermock.NewRepository(t),
		scorecards: scorecardmock.NewRepository(t),
		wagons:     wagonwheelmock.NewRepository(t),
		commentary: commentarymock.NewRepository(t),
	}
	service := NewMatchService(m.matches, m.teams, m.venues, m.players, m.scorecards, m.wagons, m.commentary)
	return service, m
}

func TestMatchService_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newMatchServiceForTest(t)

	m.matches.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(404)).
		Return(match.Match{}, false, nil).
		Once()

	_, err := service.Get(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Get_InvalidID(t *testing.T) {
	t.Parallel()

	service, _ := newMatchServiceForTest(t)

	_, err := service.Get(context.Background(), -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Scorecard_NoInnings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newMatchServiceForTest(t)

	m.scorecards.
		On("ListInningsByMatch", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(5)).
		Return([]scorecard.Innings{}, nil).
		Once()

	_, err := service.Scorecard(ctx, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Highlights_MissingMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newMatchServiceForTest(t)

	m.matches.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(12)).
		Return(match.Match{}, false, nil).
		Once()

	_, err := service.Highlights(ctx, 12)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Highlights_Summary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, m := newMatchServiceForTest(t)

	m.matches.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return(match.Match{ID: 1}, true, nil).
		Once()
	m.commentary.
		On("ListByFlag", mock.Anything, int64(1), commentary.FlagWicket).
		Return([]commentary.Event{{EventID: "w1", IsWicket: true}}, nil).
		Once()
	m.commentary.
		On("ListByFlag", mock.Anything, int64(1), commentary.FlagSix).
		Return([]commentary.Event{{EventID: "s1", IsSix: true}, {EventID: "s2", IsSix: true}}, nil).
		Once()
	m.commentary.
		On("ListByFlag", mock.Anything, int64(1), commentary.FlagFour).
		Return(nil, nil).
		Once()
	m.scorecards.
		On("ListInningsByMatch", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(1)).
		Return([]scorecard.Innings{}, nil).
		Once()

	got, err := service.Highlights(ctx, 1)
	if err != nil {
		t.Fatalf("highlights: %v", err)
	}
	if got.Summary.TotalWickets != 1 || got.Summary.TotalSixes != 2 || got.Summary.TotalFours != 0 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	if got.Fours == nil {
		t.Fatalf("expected empty fours list, got nil")
	}
}

func TestZoneStats_CountsBoundariesFromEventName(t *testing.T) {
	t.Parallel()

	got := zoneStats([]wagonwheel.Shot{
		{ZoneID: 0, BatRun: 4, EventName: "four"},
		{ZoneID: 0, BatRun: 1, EventName: "run"},
		{ZoneID: 3, BatRun: 6, EventName: "six"},
		{ZoneID: 42, BatRun: 2, EventName: "run"},
	})

	fineLeg := got["Fine Leg"]
	if fineLeg.Runs != 5 || fineLeg.Balls != 2 || fineLeg.Fours != 1 {
		t.Fatalf("unexpected fine leg stats: %+v", fineLeg)
	}
	if got["Long on"].Sixes != 1 {
		t.Fatalf("expected a six at long on, got %+v", got["Long on"])
	}
	if got[wagonwheel.UnknownZone].Balls != 1 {
		t.Fatalf("expected out of range zone to map to %q, got %+v", wagonwheel.UnknownZone, got)
	}
}

func TestGroupCommentary_OrdersInningsAndDefaultsMissing(t *testing.T) {
	t.Parallel()

	innings := []InningsTeams{
		{Innings: scorecard.Innings{ID: 20, Number: 2, Name: "RCB inning"}, BattingTeam: team.Team{ID: 2, Abbr: "RCB"}},
		{Innings: scorecard.Innings{ID: 10, Number: 1, Name: "CSK inning"}, BattingTeam: team.Team{ID: 1, Abbr: "CSK"}},
	}
	events := []commentary.Event{
		{EventID: "a", InningsID: 20, Over: 19},
		{EventID: "b", InningsID: 20, Over: 19},
		{EventID: "c", InningsID: 10, Over: 3},
		{EventID: "d", InningsID: 99, Over: 0},
	}

	got := groupCommentary(events, innings)
	if len(got) != 2 {
		t.Fatalf("expected two groups, got %d", len(got))
	}
	if got[0].InningsNumber != 1 || got[1].InningsNumber != 2 {
		t.Fatalf("unexpected group order: %d, %d", got[0].InningsNumber, got[1].InningsNumber)
	}
	if len(got[1].Overs[19]) != 2 {
		t.Fatalf("expected two events in over 19, got %d", len(got[1].Overs[19]))
	}
	if len(got[0].Overs[0]) != 1 || got[0].Overs[0][0].EventID != "d" {
		t.Fatalf("expected unknown innings event in innings 1, got %+v", got[0].Overs)
	}
	if got[1].BattingTeam == nil || got[1].BattingTeam.Abbr != "RCB" {
		t.Fatalf("unexpected batting team: %+v", got[1].BattingTeam)
	}
}
