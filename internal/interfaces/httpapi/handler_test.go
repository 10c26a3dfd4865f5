package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	aggregatemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/aggregate"
	commentarymock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/commentary"
	competitionmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/competition"
	matchmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/match"
	playermock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/player"
	scorecardmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/scorecard"
	standingmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/standing"
	teammock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/team"
	venuemock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/venue"
	wagonwheelmock "github.com/sugerdarco/IPL-Data-Platform/internal/mocks/domain/wagonwheel"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type routerMocks struct {
	teams        *teammock.Repository
	players      *playermock.Repository
	matches      *matchmock.Repository
	venues       *venuemock.Repository
	standings    *standingmock.Repository
	aggregates   *aggregatemock.Repository
	scorecards   *scorecardmock.Repository
	competitions *competitionmock.Repository
	wagons       *wagonwheelmock.Repository
	commentary   *commentarymock.Repository
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, db usecase.Pinger) (http.Handler, routerMocks) {
	t.Helper()

	m := routerMocks{
		teams:        teammock.NewRepository(t),
		players:      playermock.NewRepository(t),
		matches:      matchmock.NewRepository(t),
		venues:       venuemock.NewRepository(t),
		standings:    standingmock.NewRepository(t),
		aggregates:   aggregatemock.NewRepository(t),
		scorecards:   scorecardmock.NewRepository(t),
		competitions: competitionmock.NewRepository(t),
		wagons:       wagonwheelmock.NewRepository(t),
		commentary:   commentarymock.NewRepository(t),
	}

	handler := NewHandler(
		usecase.NewTeamService(m.teams, m.players, m.standings, m.aggregates, m.matches, m.venues),
		usecase.NewPlayerService(m.players, m.teams, m.aggregates, m.scorecards, m.matches, m.venues),
		usecase.NewMatchService(m.matches, m.teams, m.venues, m.players, m.scorecards, m.wagons, m.commentary),
		usecase.NewStandingService(m.standings, m.teams, m.competitions),
		usecase.NewStatsService(m.matches, m.teams, m.players, m.competitions, m.scorecards, m.standings, m.aggregates),
		usecase.NewBettingService(),
		usecase.NewHealthService(db),
		logging.NewNop(),
	)

	return NewRouter(handler, logging.NewNop(), RouterConfig{
		SwaggerEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
	}), m
}

func serve(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
	}
	return rec, body
}

func errorStatus(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func TestGetMatch_NonNumericIDIsBadRequest(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, body := serve(t, router, "/v1/matches/abc")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if got := errorStatus(body); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected INVALID_ARGUMENT, got %q", got)
	}
}

func TestGetMatch_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)
	m.matches.
		On("GetByID", mock.Anything, int64(404)).
		Return(match.Match{}, false, nil).
		Once()

	rec, body := serve(t, router, "/v1/matches/404")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if got := errorStatus(body); got != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", got)
	}
}

func TestListTeamPlayers_EmptySquadReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)
	m.teams.
		On("GetByID", mock.Anything, int64(3)).
		Return(team.Team{ID: 3, Title: "Gujarat Titans", Abbr: "GT"}, true, nil).
		Once()
	m.players.
		On("ListSquadsByTeam", mock.Anything, int64(3)).
		Return([]player.Squad{}, nil).
		Once()

	rec, body := serve(t, router, "/v1/teams/3/players")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(data) != 0 {
		t.Fatalf("expected empty squad, got %d players", len(data))
	}
}

func TestListTeams_SecondPagePagination(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)
	filter := team.ListFilter{Offset: 10, Limit: 10}
	page := make([]team.Team, 0, 10)
	for i := 11; i <= 20; i++ {
		page = append(page, team.Team{ID: int64(i), Title: fmt.Sprintf("Team %02d", i)})
	}

	m.teams.On("List", mock.Anything, filter).Return(page, nil).Once()
	m.teams.On("Count", mock.Anything, filter).Return(int64(25), nil).Once()
	m.standings.
		On("BestByTeams", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]standing.Standing{}, nil).
		Once()
	m.teams.
		On("ListStatsByTeamIDs", mock.Anything, mock.AnythingOfType("[]int64")).
		Return([]team.Stats{}, nil).
		Once()

	rec, body := serve(t, router, "/v1/teams?page=2&limit=10")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := body["data"].([]any)
	if len(data) != 10 {
		t.Fatalf("expected 10 teams, got %d", len(data))
	}
	pagination, ok := body["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination block")
	}
	if got, _ := pagination["totalPages"].(float64); got != 3 {
		t.Fatalf("expected totalPages=3, got %v", pagination["totalPages"])
	}
	if got, _ := pagination["page"].(float64); got != 2 {
		t.Fatalf("expected page=2, got %v", pagination["page"])
	}
}

func TestListMatches_InvalidTeamFilter(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, _ := serve(t, router, "/v1/matches?teamId=abc")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetTeamStanding_NotFound(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)
	m.standings.
		On("LatestByTeam", mock.Anything, int64(7)).
		Return(standing.Standing{}, false, nil).
		Once()

	rec, _ := serve(t, router, "/v1/standings/team/7")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPredictMatch_ProbabilitiesSumToHundred(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, body := serve(t, router, "/v1/betting/match-predictor?teamA=gt&teamB=MI")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := body["data"].(map[string]any)
	a, _ := data["teamAWinProbability"].(float64)
	b, _ := data["teamBWinProbability"].(float64)
	if a+b != 100 {
		t.Fatalf("expected probabilities to sum to 100, got %v + %v", a, b)
	}
}

func TestPredictMatch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "missing team", target: "/v1/betting/match-predictor?teamA=GT", want: http.StatusBadRequest},
		{name: "unknown team", target: "/v1/betting/match-predictor?teamA=GT&teamB=XYZ", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, nil)
			rec, _ := serve(t, router, tt.target)
			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestGetBettingTeam_CaseInsensitive(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, body := serve(t, router, "/v1/betting/teams/csk")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data, _ := body["data"].(map[string]any)
	if got, _ := data["abbr"].(string); got != "CSK" {
		t.Fatalf("expected CSK profile, got %v", data["abbr"])
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ping       error
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{name: "connected", wantCode: http.StatusOK, wantStatus: "healthy", wantDB: "connected"},
		{name: "disconnected", ping: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy", wantDB: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, pingerFunc(func(context.Context) error { return tt.ping }))
			rec, body := serve(t, router, "/v1/health")

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			data, _ := body["data"].(map[string]any)
			if got, _ := data["status"].(string); got != tt.wantStatus {
				t.Fatalf("expected status %q, got %v", tt.wantStatus, data["status"])
			}
			if got, _ := data["database"].(string); got != tt.wantDB {
				t.Fatalf("expected database %q, got %v", tt.wantDB, data["database"])
			}
		})
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, _ := serve(t, router, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected %s header", requestIDHeader)
	}
}

func TestRouter_OpenAPI(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)
	rec, _ := serve(t, router, "/openapi.yaml")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("expected openapi document")
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: "0", wantErr: true},
		{raw: "-4", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetPathValue("matchID", tt.raw)
		got, err := pathID(req, "matchID")
		if tt.wantErr {
			if !errors.Is(err, usecase.ErrInvalidInput) {
				t.Fatalf("pathID(%q): expected ErrInvalidInput, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("pathID(%q)=%d,%v want=%d", tt.raw, got, err, tt.want)
		}
	}
}
