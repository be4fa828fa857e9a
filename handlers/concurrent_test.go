// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/testutil"
)

// Concurrent votes from different users must settle with counters that
// match the membership rows exactly.
func TestConcurrentVotes(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	identity := middleware.NewIdentity(conn, cfg, clock)
	handler := identity.RequireUser(NewSongHandler(conn, cfg, clock).Vote)

	songID := insertTestSong(t, conn, "Contested Song", clock.Now().UnixMilli())

	const voters = 8
	tokens := make([]string, voters)
	for i := 0; i < voters; i++ {
		_, tokens[i] = newTestGuest(t, conn, cfg, "Voter",
			fmt.Sprintf("voter%d@example.com", i))
	}

	// Every fourth voter votes down
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(token string, down bool) {
			defer wg.Done()

			direction := "up"
			if down {
				direction = "down"
			}
			req := testutil.MakeRequest("POST", "/songs/"+songID+"/vote",
				models.VoteRequest{Direction: direction}, testutil.AuthHeader(token))
			req.SetPathValue("id", songID)
			w := httptest.NewRecorder()
			handler(w, req)
			if w.Code != 200 {
				t.Errorf("Vote failed with status %d: %s", w.Code, w.Body.String())
			}
		}(tokens[i], i%4 == 3)
	}
	wg.Wait()

	var upvotes, downvotes int
	err := conn.QueryRow(`SELECT upvotes, downvotes FROM song WHERE id = $1`, songID).
		Scan(&upvotes, &downvotes)
	if err != nil {
		t.Fatalf("Failed to query counters: %v", err)
	}

	var upRows, downRows int
	err = conn.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE direction = 'up'),
			COUNT(*) FILTER (WHERE direction = 'down')
		FROM suggestion_vote WHERE kind = 'song' AND suggestion_id = $1
	`, songID).Scan(&upRows, &downRows)
	if err != nil {
		t.Fatalf("Failed to count vote rows: %v", err)
	}

	if upvotes != 6 || downvotes != 2 {
		t.Errorf("Expected counters 6/2, got %d/%d", upvotes, downvotes)
	}
	if upvotes != upRows || downvotes != downRows {
		t.Errorf("Counters %d/%d do not match rows %d/%d", upvotes, downvotes, upRows, downRows)
	}
}

// One user hammering the same button concurrently may land anywhere
// between zero and one vote, but never more, and counters stay consistent.
func TestConcurrentTogglesSameUser(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	identity := middleware.NewIdentity(conn, cfg, clock)
	handler := identity.RequireUser(NewSongHandler(conn, cfg, clock).Vote)

	songID := insertTestSong(t, conn, "Hammered Song", clock.Now().UnixMilli())
	_, token := newTestGuest(t, conn, cfg, "Alice", "alice@example.com")

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/songs/"+songID+"/vote",
				models.VoteRequest{Direction: "up"}, testutil.AuthHeader(token))
			req.SetPathValue("id", songID)
			w := httptest.NewRecorder()
			handler(w, req)
		}()
	}
	wg.Wait()

	var upvotes int
	if err := conn.QueryRow(`SELECT upvotes FROM song WHERE id = $1`, songID).Scan(&upvotes); err != nil {
		t.Fatalf("Failed to query counters: %v", err)
	}

	var rows int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM suggestion_vote WHERE kind = 'song' AND suggestion_id = $1
	`, songID).Scan(&rows)
	if err != nil {
		t.Fatalf("Failed to count vote rows: %v", err)
	}

	if upvotes != rows {
		t.Errorf("Counter %d does not match rows %d", upvotes, rows)
	}
	if rows > 1 {
		t.Errorf("Expected at most one vote row, got %d", rows)
	}
}
