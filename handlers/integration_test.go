// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/testutil"
)

// TestFullGuestWorkflow tests the complete end-to-end workflow:
// 1. Register a guest
// 2. Suggest a song
// 3. Other guests vote on it
// 4. One guest changes their mind
// 5. Verify the ranked list
// 6. Take the trivia quiz
// 7. Verify the leaderboard
func TestFullGuestWorkflow(t *testing.T) {
	conn := setupTestDB(t)
	cfg := getTestConfig()
	clock := clockwork.NewFakeClockAt(time.Unix(1_760_000_000, 0))

	authHandler := NewAuthHandler(conn, cfg, clock)
	songHandler := NewSongHandler(conn, cfg, clock)
	triviaHandler := NewTriviaHandler(conn, cfg, clock)
	identity := middleware.NewIdentity(conn, cfg, clock)

	addSong := identity.RequireUser(songHandler.Add)
	voteSong := identity.RequireUser(songHandler.Vote)
	submitScore := identity.RequireUser(triviaHandler.SubmitScore)

	// Step 1: Register a guest
	req := testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret1",
	}, nil)
	w := httptest.NewRecorder()
	authHandler.Register(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register failed: %d - %s", w.Code, w.Body.String())
	}

	var aliceAuth models.AuthResponse
	testutil.AssertJSON(t, w, &aliceAuth)
	t.Logf("Step 1 - Registered guest: %s", aliceAuth.User.ID)

	// Step 2: Suggest a song
	req = testutil.MakeRequest("POST", "/songs", models.AddSongRequest{
		SongName:   "September",
		ArtistName: "Earth, Wind & Fire",
	}, testutil.AuthHeader(aliceAuth.Token))
	w = httptest.NewRecorder()
	addSong(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 2 - Add song failed: %d - %s", w.Code, w.Body.String())
	}

	var song models.Song
	testutil.AssertJSON(t, w, &song)
	t.Logf("Step 2 - Suggested song: %s", song.ID)

	// Step 3: Three more guests vote
	tokens := make([]string, 3)
	for i := range tokens {
		req = testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
			Name:     fmt.Sprintf("Guest %d", i),
			Email:    fmt.Sprintf("guest%d@example.com", i),
			Password: "supersecret1",
		}, nil)
		w = httptest.NewRecorder()
		authHandler.Register(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Register guest %d failed: %d", i, w.Code)
		}
		var resp models.AuthResponse
		testutil.AssertJSON(t, w, &resp)
		tokens[i] = resp.Token

		direction := "up"
		if i == 2 {
			direction = "down"
		}
		req = testutil.MakeRequest("POST", "/songs/"+song.ID+"/vote",
			models.VoteRequest{Direction: direction}, testutil.AuthHeader(tokens[i]))
		req.SetPathValue("id", song.ID)
		w = httptest.NewRecorder()
		voteSong(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 3 - Vote %d failed: %d - %s", i, w.Code, w.Body.String())
		}
	}
	t.Log("Step 3 - Votes recorded: 2 up, 1 down")

	// Step 4: The downvoter changes their mind
	req = testutil.MakeRequest("POST", "/songs/"+song.ID+"/vote",
		models.VoteRequest{Direction: "up"}, testutil.AuthHeader(tokens[2]))
	req.SetPathValue("id", song.ID)
	w = httptest.NewRecorder()
	voteSong(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Vote switch failed: %d - %s", w.Code, w.Body.String())
	}

	var voteResp models.VoteResponse
	testutil.AssertJSON(t, w, &voteResp)
	if voteResp.Upvotes != 3 || voteResp.Downvotes != 0 {
		t.Fatalf("Step 4 - Expected 3/0 after switch, got %d/%d", voteResp.Upvotes, voteResp.Downvotes)
	}
	t.Log("Step 4 - Downvote moved to upvote")

	// Step 5: The list reflects the final tallies
	req = testutil.MakeRequest("GET", "/songs", nil, nil)
	w = httptest.NewRecorder()
	songHandler.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - List failed: %d", w.Code)
	}

	var songs []models.Song
	testutil.AssertJSON(t, w, &songs)
	if len(songs) != 1 || songs[0].Upvotes != 3 || len(songs[0].UpvotedBy) != 3 {
		t.Fatalf("Step 5 - Unexpected list state: %+v", songs)
	}
	t.Log("Step 5 - Ranked list verified")

	// Step 6: Alice takes the quiz
	req = testutil.MakeRequest("POST", "/trivia/score",
		models.SubmitScoreRequest{Score: 9, TotalQuestions: 10, Percentage: 90},
		testutil.AuthHeader(aliceAuth.Token))
	w = httptest.NewRecorder()
	submitScore(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 6 - Submit score failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 6 - Trivia score submitted")

	// Step 7: She leads the board
	req = testutil.MakeRequest("GET", "/trivia/leaderboard", nil, nil)
	w = httptest.NewRecorder()
	triviaHandler.Leaderboard(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Leaderboard failed: %d", w.Code)
	}

	var board []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &board)
	if len(board) != 1 || board[0].UserName != "Alice" {
		t.Fatalf("Step 7 - Unexpected leaderboard: %+v", board)
	}
	t.Log("Step 7 - Leaderboard verified")
}
