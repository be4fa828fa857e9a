// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/votes"
)

type TriviaHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewTriviaHandler(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *TriviaHandler {
	return &TriviaHandler{db: db, cfg: cfg, clock: clock}
}

// The quiz is graded client-side, so the questions carry no answers.
var triviaQuestions = []models.TriviaQuestion{
	{
		Question: "What are the names of Jackson and Audrey's fish?",
		Options:  []string{"Romulus and Remus", "Romeo and Juliet", "Salt and Pepper", "Bonnie and Clyde"},
	},
	{
		Question: "Where was Jackson and Audrey's first date?",
		Options:  []string{"Hahn Horticulture Garden", "Smithsonian National Zoo", "Central Park", "Botanical Gardens of Virginia"},
	},
	{
		Question: "What is Audrey's nickname for her car?",
		Options:  []string{"Gretta the Jetta", "Betty the Beetle", "Carla the Corolla", "Stella the Sentra"},
	},
	{
		Question: "What is Jackson's favorite sports team?",
		Options:  []string{"New York Giants", "Dallas Cowboys", "Philadelphia Eagles", "Washington Commanders"},
	},
	{
		Question: "What college did Jackson and Audrey attend together?",
		Options:  []string{"Virginia Tech", "University of Virginia", "James Madison University", "Virginia Commonwealth University"},
	},
	{
		Question: "What is Jackson and Audrey's go-to fast food?",
		Options:  []string{"Chipotle", "Chick-fil-A", "Five Guys", "Panera Bread"},
	},
	{
		Question: "What is Jackson and Audrey's favorite game to play?",
		Options:  []string{"Sea of Thieves", "Minecraft", "Fortnite", "Among Us"},
	},
	{
		Question: "Where did Jackson and Audrey first move in together?",
		Options:  []string{"Reston", "Arlington", "Alexandria", "Fairfax"},
	},
	{
		Question: "What were Jackson and Audrey's first Halloween costumes together?",
		Options:  []string{"Julius Caesar and Cleopatra", "Romeo and Juliet", "Bonnie and Clyde", "Mario and Princess Peach"},
	},
	{
		Question: "When did Jackson and Audrey meet?",
		Options:  []string{"2023", "2022", "2021", "2024"},
	},
}

// Questions handles GET /trivia/questions
func (h *TriviaHandler) Questions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, triviaQuestions)
}

// SubmitScore handles POST /trivia/score (authenticated)
// At most one score per user; a resubmission overwrites the stored one
// even if it is lower (last write wins, no best-score policy).
func (h *TriviaHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.TotalQuestions <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "total_questions must be positive")
		return
	}
	if req.Score < 0 || req.Score > req.TotalQuestions {
		middleware.ErrorResponse(w, http.StatusBadRequest, "score must be between 0 and total_questions")
		return
	}
	if req.Percentage < 0 || req.Percentage > 100 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "percentage must be between 0 and 100")
		return
	}

	record := models.TriviaScore{
		UserID:         user.ID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     req.Percentage,
		CompletedAt:    h.clock.Now().UnixMilli(),
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE trivia_score
		SET score = $1, total_questions = $2, percentage = $3, completed_at = $4
		WHERE user_id = $5
	`, record.Score, record.TotalQuestions, record.Percentage, record.CompletedAt, record.UserID)
	if err != nil {
		slog.Error("failed to update trivia score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save score")
		return
	}

	updated, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save score")
		return
	}

	if updated == 0 {
		_, err = tx.Exec(`
			INSERT INTO trivia_score (user_id, score, total_questions, percentage, completed_at)
			VALUES ($1, $2, $3, $4, $5)
		`, record.UserID, record.Score, record.TotalQuestions, record.Percentage, record.CompletedAt)
		if err != nil {
			slog.Error("failed to insert trivia score", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save score")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit trivia score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save score")
		return
	}

	slog.Info("trivia score saved", "user_id", user.ID, "score", record.Score, "percentage", record.Percentage)

	middleware.JSONResponse(w, http.StatusCreated, record)
}

// MyScore handles GET /trivia/score (authenticated)
// Returns the caller's score, or null when the quiz has not been taken.
func (h *TriviaHandler) MyScore(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var score models.TriviaScore
	err := h.db.QueryRow(`
		SELECT user_id, score, total_questions, percentage, completed_at
		FROM trivia_score
		WHERE user_id = $1
	`, user.ID).Scan(&score.UserID, &score.Score, &score.TotalQuestions, &score.Percentage, &score.CompletedAt)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		slog.Error("failed to query trivia score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, score)
}

// Leaderboard handles GET /trivia/leaderboard
// Public; percentage descending, then score, then earlier completion.
func (h *TriviaHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT t.user_id, COALESCE(u.name, 'Unknown User'),
		       t.score, t.total_questions, t.percentage, t.completed_at
		FROM trivia_score t
		LEFT JOIN app_user u ON u.id = t.user_id
	`)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.UserName, &e.Score, &e.TotalQuestions,
			&e.Percentage, &e.CompletedAt); err != nil {
			slog.Error("failed to scan leaderboard entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		e.CompletedAgo = humanize.RelTime(
			time.UnixMilli(e.CompletedAt), h.clock.Now(), "ago", "from now")
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return votes.LeaderboardLess(
			votes.LeaderboardKey{Percentage: entries[i].Percentage, Score: entries[i].Score, CompletedAt: entries[i].CompletedAt},
			votes.LeaderboardKey{Percentage: entries[j].Percentage, Score: entries[j].Score, CompletedAt: entries[j].CompletedAt},
		)
	})

	middleware.JSONResponse(w, http.StatusOK, entries)
}
