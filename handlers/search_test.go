// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/spotify"
	"github.com/jacksonandaudrey/wedding-api/testutil"
)

// The upstream round trip is covered in the spotify package tests; here we
// exercise the handler's own failure modes.
func TestSearchMissingQuery(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	identity := middleware.NewIdentity(conn, cfg, clock)
	client := spotify.NewClient("id", "secret", clock)
	handler := identity.RequireUser(NewSearchHandler(client).Search)

	_, token := newTestGuest(t, conn, cfg, "Alice", "alice@example.com")

	req := testutil.MakeRequest("GET", "/spotify/search", nil, testutil.AuthHeader(token))
	w := httptest.NewRecorder()
	handler(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSearchNotConfigured(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	identity := middleware.NewIdentity(conn, cfg, clock)
	client := spotify.NewClient("", "", clock)
	handler := identity.RequireUser(NewSearchHandler(client).Search)

	_, token := newTestGuest(t, conn, cfg, "Alice", "alice@example.com")

	req := testutil.MakeRequest("GET", "/spotify/search?q=september", nil, testutil.AuthHeader(token))
	w := httptest.NewRecorder()
	handler(w, req)

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestSearchRequiresAuth(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	identity := middleware.NewIdentity(conn, cfg, clock)
	client := spotify.NewClient("id", "secret", clock)
	handler := identity.RequireUser(NewSearchHandler(client).Search)

	req := testutil.MakeRequest("GET", "/spotify/search?q=september", nil, nil)
	w := httptest.NewRecorder()
	handler(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
