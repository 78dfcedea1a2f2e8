package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/ledgerexport/internal/domain"
)

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/transactions/sum", nil)
		req = req.WithContext(WithUser(req.Context(), &domain.User{ID: user, Role: domain.RoleTeam}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if got := call("a"); got != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", got)
	}
	if got := call("a"); got != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be limited, got %d", got)
	}
	if got := call("b"); got != http.StatusOK {
		t.Fatalf("expected another client to pass, got %d", got)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("old")
	now = now.Add(time.Hour)
	rl.getLimiter("fresh")

	rl.CleanupLimiters(30 * time.Minute)

	if _, ok := rl.limiters["old"]; ok {
		t.Fatalf("expected idle limiter to be removed")
	}
	if _, ok := rl.limiters["fresh"]; !ok {
		t.Fatalf("expected recent limiter to be kept")
	}
}

func TestGetIP(t *testing.T) {
	testCases := []struct {
		name     string
		header   map[string]string
		remote   string
		expected string
	}{
		{name: "forwarded chain", header: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, remote: "1.1.1.1:1", expected: "10.0.0.1"},
		{name: "real ip", header: map[string]string{"X-Real-IP": "10.0.0.3"}, remote: "1.1.1.1:1", expected: "10.0.0.3"},
		{name: "remote addr", remote: "192.168.1.5:4000", expected: "192.168.1.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			if got := getIP(req); got != tc.expected {
				t.Fatalf("getIP() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
