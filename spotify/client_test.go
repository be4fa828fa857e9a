// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// fakeSpotify stands in for both the token and search endpoints.
type fakeSpotify struct {
	tokenCalls  int
	searchCalls int
	expiresIn   int
}

func (f *fakeSpotify) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "app-token",
			"expires_in":   f.expiresIn,
		})
	})
	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		f.searchCalls++
		if r.Header.Get("Authorization") != "Bearer app-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"tracks": map[string]interface{}{
				"items": []map[string]interface{}{
					{
						"id":   "track-1",
						"name": "September",
						"artists": []map[string]string{
							{"name": "Earth, Wind & Fire"},
						},
						"album": map[string]interface{}{
							"images": []map[string]string{
								{"url": "https://img.example/september.jpg"},
							},
						},
					},
				},
			},
		})
	})
	return mux
}

func newTestClient(t *testing.T, clock clockwork.Clock) (*Client, *fakeSpotify) {
	t.Helper()

	fake := &fakeSpotify{expiresIn: 3600}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	c := NewClient("client-id", "client-secret", clock)
	c.tokenURL = srv.URL + "/token"
	c.searchURL = srv.URL + "/search"
	return c, fake
}

func TestSearch(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	client, fake := newTestClient(t, clock)

	tracks, err := client.Search(context.Background(), "september")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	if tracks[0].ID != "track-1" || tracks[0].Title != "September" {
		t.Errorf("unexpected track: %+v", tracks[0])
	}
	if tracks[0].Artists != "Earth, Wind & Fire" {
		t.Errorf("expected joined artist names, got %q", tracks[0].Artists)
	}
	if tracks[0].AlbumArt == "" {
		t.Error("expected album art URL")
	}
	if fake.tokenCalls != 1 {
		t.Errorf("expected 1 token call, got %d", fake.tokenCalls)
	}
}

func TestSearchReusesCachedToken(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	client, fake := newTestClient(t, clock)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.Search(ctx, "september"); err != nil {
			t.Fatal(err)
		}
	}

	if fake.tokenCalls != 1 {
		t.Errorf("expected token fetched once, got %d calls", fake.tokenCalls)
	}
	if fake.searchCalls != 3 {
		t.Errorf("expected 3 search calls, got %d", fake.searchCalls)
	}
}

func TestSearchRefreshesExpiredToken(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	client, fake := newTestClient(t, clock)

	ctx := context.Background()
	if _, err := client.Search(ctx, "september"); err != nil {
		t.Fatal(err)
	}

	// Advance past the token lifetime; the next search must re-fetch
	clock.Advance(2 * time.Hour)

	if _, err := client.Search(ctx, "september"); err != nil {
		t.Fatal(err)
	}
	if fake.tokenCalls != 2 {
		t.Errorf("expected token refreshed after expiry, got %d calls", fake.tokenCalls)
	}
}

func TestSearchNotConfigured(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	client := NewClient("", "", clock)

	if client.Configured() {
		t.Error("expected Configured() == false with empty credentials")
	}
	if _, err := client.Search(context.Background(), "anything"); err != ErrNotConfigured {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
