package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestRateLimit_RejectsAfterBudget(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(2, time.Minute, next)

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		last = rec
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", codes[2])
	}
	retry, err := strconv.Atoi(last.Header().Get("Retry-After"))
	if err != nil || retry < 1 {
		t.Fatalf("expected positive Retry-After, got %q", last.Header().Get("Retry-After"))
	}
}

func TestRateLimit_SeparateBudgetPerIP(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(1, time.Minute, next)

	for _, addr := range []string{"10.0.0.1:5000", "10.0.0.2:5000"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", addr, rec.Code)
		}
	}
}

func TestIPLimiter_SweepsIdleEntries(t *testing.T) {
	limiter := newIPLimiter(10, time.Second)
	now := time.Date(2022, 5, 29, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < limiterSweepThreshold; i++ {
		limiter.reserve("10.1." + strconv.Itoa(i/256) + "." + strconv.Itoa(i%256))
	}

	now = now.Add(time.Minute)
	if ok, _ := limiter.reserve("192.168.0.1"); !ok {
		t.Fatalf("expected fresh client to be allowed")
	}
	if got := len(limiter.limiters); got != 1 {
		t.Fatalf("expected idle limiters to be swept, %d remain", got)
	}
}

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := resolveClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected forwarded client ip, got %q", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := resolveClientIP(req); got != "10.0.0.9" {
		t.Fatalf("expected remote addr ip, got %q", got)
	}
}
