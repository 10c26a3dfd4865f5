package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) { return g.id, g.err }

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	})
	handler := RequestID(fixedIDGenerator{id: "generated-id"}, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	if got := rec.Header().Get(requestIDHeader); got != "generated-id" {
		t.Fatalf("unexpected response request id: %q", got)
	}
	if seen != "generated-id" {
		t.Fatalf("expected request id in context, got %q", seen)
	}
}

func TestRequestID_EchoesCallerValue(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	handler := RequestID(fixedIDGenerator{id: "unused"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req.Header.Set(requestIDHeader, "caller-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "caller-123" {
		t.Fatalf("expected caller request id, got %q", got)
	}
}

func TestRequestID_GeneratorFailureLeavesHeaderUnset(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { called = true })
	handler := RequestID(fixedIDGenerator{err: errors.New("entropy exhausted")}, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/teams", nil))

	if !called {
		t.Fatalf("expected next handler to run")
	}
	if got := rec.Header().Get(requestIDHeader); got != "" {
		t.Fatalf("expected no request id, got %q", got)
	}
}
