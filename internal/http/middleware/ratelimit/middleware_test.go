package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(
		WithLimit(time.Hour, 2),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:12345"

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	for i := 0; i < 2; i++ {
		if e, g := http.StatusOK, doRequest().Code; e != g {
			t.Errorf("request %d: expected '%d', got '%d'", i, e, g)
		}
	}

	res := doRequest()

	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Errorf("res.Code: expected '%d', got '%d'", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Errorf("expected a Retry-After header")
	}
}

func TestMiddlewareTrustHeaders(t *testing.T) {
	handler := Middleware(
		WithTrustHeaders(true),
		WithLimit(time.Hour, 1),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func(forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		req.Header.Set("X-Forwarded-For", forwardedFor)

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	if e, g := http.StatusOK, doRequest("192.0.2.1").Code; e != g {
		t.Errorf("first client: expected '%d', got '%d'", e, g)
	}

	if e, g := http.StatusTooManyRequests, doRequest("192.0.2.1").Code; e != g {
		t.Errorf("first client again: expected '%d', got '%d'", e, g)
	}

	// Distinct forwarded clients get their own bucket.
	if e, g := http.StatusOK, doRequest("192.0.2.2").Code; e != g {
		t.Errorf("second client: expected '%d', got '%d'", e, g)
	}
}
