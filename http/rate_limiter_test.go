package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_PerClientBurst(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	defer rl.Stop()

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatalf("expected the burst to be allowed")
	}
	if rl.Allow("a") {
		t.Errorf("expected the third request to be limited")
	}
	if !rl.Allow("b") {
		t.Errorf("clients must not share a bucket")
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(10, 1)
	rl.Stop()
	rl.Stop()
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	defer rl.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RateLimitMiddleware(rl, next)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/property/analyze", nil))
	if first.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/property/analyze", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", second.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/property/types", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected a generated request id")
	}

	const id = "8f14e45f-ceea-467a-9c4b-2c1a3e6f0b7d"
	req := httptest.NewRequest(http.MethodGet, "/property/types", nil)
	req.Header.Set("X-Request-ID", id)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != id {
		t.Errorf("expected %s to be reused, got %s", id, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/property/types", nil)
	req.Header.Set("X-Request-ID", "not a uuid")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got == "not a uuid" {
		t.Errorf("malformed ids must be replaced")
	}
}
