package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(0, 2) // no refill, burst of 2 per client
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") || !limiter.Allow("10.0.0.1") {
		t.Fatal("first two calls within the burst must pass")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("third call should exceed the client's burst")
	}

	// An exhausted client must not affect a different one.
	if !limiter.Allow("10.0.0.2") {
		t.Error("a fresh client must get its own bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(0, 1)
	defer limiter.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rateLimitMiddleware(limiter, next)

	request := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/tools/cash_flow", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := request("192.0.2.1:1234"); code != http.StatusOK {
		t.Errorf("expected 200 for the first request, got %d", code)
	}
	if code := request("192.0.2.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the client's bucket is empty, got %d", code)
	}
	if code := request("192.0.2.2:1234"); code != http.StatusOK {
		t.Errorf("expected 200 for a different client, got %d", code)
	}
}
