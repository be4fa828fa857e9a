// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/spotify"
	"github.com/jacksonandaudrey/wedding-api/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	clock := clockwork.NewRealClock()
	return NewRouter(db, cfg, clock, spotify.NewClient("", "", clock))
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "wedding API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Routes should match; 400/401/404/503 are all valid handler responses
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/auth/register"},
		{"POST", "/auth/login"},
		{"POST", "/auth/logout"},
		{"GET", "/auth/me"},
		{"POST", "/auth/request-reset"},
		{"POST", "/auth/reset-password"},

		{"GET", "/songs"},
		{"POST", "/songs"},
		{"POST", "/songs/test-id/vote"},

		{"GET", "/cocktails"},
		{"POST", "/cocktails"},
		{"POST", "/cocktails/test-id/vote"},

		{"GET", "/trivia/questions"},
		{"GET", "/trivia/score"},
		{"POST", "/trivia/score"},
		{"GET", "/trivia/leaderboard"},

		{"GET", "/profile"},
		{"PUT", "/profile"},

		{"GET", "/details"},
		{"GET", "/spotify/search"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"}, // Only GET is defined
		{"DELETE", "/songs"}, // Only GET and POST are defined
		{"POST", "/details"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestWriteEndpointsRequireAuth(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/songs"},
		{"POST", "/songs/test-id/vote"},
		{"POST", "/cocktails"},
		{"POST", "/cocktails/test-id/vote"},
		{"POST", "/trivia/score"},
		{"GET", "/trivia/score"},
		{"GET", "/profile"},
		{"PUT", "/profile"},
		{"GET", "/auth/me"},
		{"GET", "/spotify/search"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 for unauthenticated %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPublicReadsNeedNoAuth(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/songs"},
		{"GET", "/cocktails"},
		{"GET", "/trivia/questions"},
		{"GET", "/trivia/leaderboard"},
		{"GET", "/details"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected 200 for %s %s, got %d. Body: %s", tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}
