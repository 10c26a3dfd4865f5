package iplapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.BreakerConfig) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Breaker: breaker,
		Logger:  logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, baseURL := range []string{"", "   ", "ftp://example.com", "localhost:8080"} {
		if _, err := NewClient(ClientConfig{BaseURL: baseURL}); err == nil {
			t.Fatalf("expected error for base url %q", baseURL)
		}
	}
}

func TestBuildURL_SkipsZeroValuesAndEscapes(t *testing.T) {
	t.Parallel()

	zero := 0
	got := buildURL("http://api.local/", "/v1/matches", Params{}.
		Int64("teamId", 0).
		Int("page", 2).
		OptionalInt("status", &zero).
		OptionalInt("over", nil).
		String("search", " Royal Challengers & co ").
		String("role", ""))

	want := "http://api.local/v1/matches?page=2&status=0&search=Royal+Challengers+%26+co"
	if got != want {
		t.Fatalf("unexpected url\nwant=%s\ngot=%s", want, got)
	}

	if got := buildURL("http://api.local", "v1/teams", nil); got != "http://api.local/v1/teams" {
		t.Fatalf("unexpected url without params: %s", got)
	}
}

func TestClient_ListTeams_DecodesPage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/teams" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("search") != "mumbai" || q.Get("page") != "2" || q.Get("limit") != "5" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		writeBody(w, http.StatusOK, `{
			"apiVersion":"2.0",
			"data":[{"id":7,"tid":1105,"title":"Mumbai Indians","abbr":"MI",
				"standing":{"id":1,"teamId":7,"played":14,"win":8,"points":16,"netRunRate":0.42,"qualified":true},
				"stats":null}],
			"pagination":{"page":2,"limit":5,"total":6,"totalPages":2}
		}`)
	}, resilience.BreakerConfig{})

	page, err := client.ListTeams(context.Background(), ListTeamsInput{Search: "mumbai", Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected one team, got=%d", len(page.Items))
	}

	team := page.Items[0]
	if team.ID != 7 || team.Abbr != "MI" {
		t.Fatalf("unexpected team: %+v", team.Team)
	}
	if team.Standing == nil || team.Standing.Points != 16 || !team.Standing.Qualified {
		t.Fatalf("unexpected standing: %+v", team.Standing)
	}
	if team.Standing.NetRunRate == nil || *team.Standing.NetRunRate != 0.42 {
		t.Fatalf("unexpected net run rate: %v", team.Standing.NetRunRate)
	}
	if team.Stats != nil {
		t.Fatalf("expected nil stats, got=%+v", team.Stats)
	}
	if page.Pagination.Total != 6 || page.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}
}

func TestClient_GetMatch_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/matches/404" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeBody(w, http.StatusNotFound, `{"apiVersion":"2.0","error":{"code":404,"message":"match not found","status":"NOT_FOUND"}}`)
	}, resilience.BreakerConfig{})

	_, err := client.GetMatch(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("404 must not be reported as unavailable")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got=%T", err)
	}
	if apiErr.Code != "NOT_FOUND" || apiErr.Message != "match not found" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if client.BreakerState() != resilience.StateClosed {
		t.Fatalf("404 must not trip the breaker, state=%v", client.BreakerState())
	}
}

func TestClient_Health_AcceptsServiceUnavailablePayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusServiceUnavailable, `{"apiVersion":"2.0","data":{"status":"unhealthy","timestamp":"2026-04-01T10:00:00Z","uptime":12.5,"database":"disconnected","error":"connection refused"}}`)
	}, resilience.BreakerConfig{})

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if health.Status != "unhealthy" || health.Database != "disconnected" {
		t.Fatalf("unexpected health: %+v", health)
	}
	if health.Error != "connection refused" {
		t.Fatalf("unexpected health error: %q", health.Error)
	}
}

func TestClient_Commentary_CarriesPagination(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("events") != "wicket,six" || q.Get("over") != "0" || q.Get("inningsNumber") != "1" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		writeBody(w, http.StatusOK, `{
			"apiVersion":"2.0",
			"data":{"matchId":12,"innings":[],"commentaries":[{"id":1,"eventId":"e1","over":0,"ball":3,"run":6,"isSix":true}],
				"groupedByInnings":[],"highlights":{"wickets":0,"sixes":1,"fours":0,"totalRuns":6}},
			"pagination":{"page":1,"limit":50,"total":1,"totalPages":1}
		}`)
	}, resilience.BreakerConfig{})

	over := 0
	out, err := client.Commentary(context.Background(), 12, CommentaryInput{
		InningsNumber: 1,
		Over:          &over,
		Events:        []string{"wicket", "six"},
	})
	if err != nil {
		t.Fatalf("commentary: %v", err)
	}
	if len(out.Commentaries) != 1 || !out.Commentaries[0].IsSix {
		t.Fatalf("unexpected commentaries: %+v", out.Commentaries)
	}
	if out.Highlights.Sixes != 1 || out.Highlights.TotalRuns != 6 {
		t.Fatalf("unexpected highlights: %+v", out.Highlights)
	}
	if out.Pagination.Limit != 50 || out.Pagination.Total != 1 {
		t.Fatalf("unexpected pagination: %+v", out.Pagination)
	}
}

func TestClient_OpensBreakerAfterServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeBody(w, http.StatusInternalServerError, `{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}`)
	}, resilience.BreakerConfig{FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenProbes: 1})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := client.StatsOverview(ctx)
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusInternalServerError {
			t.Fatalf("call %d: expected 500 api error, got=%v", i, err)
		}
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d: expected ErrUnavailable, got=%v", i, err)
		}
	}

	if client.BreakerState() != resilience.StateOpen {
		t.Fatalf("expected open breaker, got=%v", client.BreakerState())
	}

	_, err := client.StatsOverview(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from open breaker, got=%v", err)
	}
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen in chain, got=%v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected open breaker to short-circuit, server hits=%d", got)
	}
}

func TestClient_PredictMatch_SendsTeams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("teamA") != "CSK" || q.Get("teamB") != "MI" || q.Has("battingFirst") {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		writeBody(w, http.StatusOK, `{"apiVersion":"2.0","data":{"teamA":{"abbr":"CSK"},"teamAWinProbability":55,"teamB":{"abbr":"MI"},"teamBWinProbability":45,"favorite":"CSK","favoriteWinProb":55,"underdog":"MI","bettingTips":["Back CSK"]}}`)
	}, resilience.BreakerConfig{})

	prediction, err := client.PredictMatch(context.Background(), "CSK", "MI", "")
	if err != nil {
		t.Fatalf("predict match: %v", err)
	}
	if prediction.Favorite != "CSK" || prediction.TeamAWinProbability+prediction.TeamBWinProbability != 100 {
		t.Fatalf("unexpected prediction: %+v", prediction)
	}
	if len(prediction.BettingTips) != 1 {
		t.Fatalf("unexpected tips: %v", prediction.BettingTips)
	}
}
