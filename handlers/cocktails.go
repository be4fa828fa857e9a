// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/votes"
)

type CocktailHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewCocktailHandler(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *CocktailHandler {
	return &CocktailHandler{db: db, cfg: cfg, clock: clock}
}

// List handles GET /cocktails
// Same ranking as songs: net score descending, newest first among ties.
func (h *CocktailHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, name, description, ingredients, image_url,
		       suggested_by_user_id, suggested_by_name, upvotes, downvotes, created_at
		FROM cocktail
	`)
	if err != nil {
		slog.Error("failed to query cocktails", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	cocktails := []models.Cocktail{}
	for rows.Next() {
		var c models.Cocktail
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Ingredients, &c.ImageURL,
			&c.SuggestedByUser, &c.SuggestedByName, &c.Upvotes, &c.Downvotes, &c.CreatedAt); err != nil {
			slog.Error("failed to scan cocktail", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		cocktails = append(cocktails, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read cocktails", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sets, err := voteSetsForKind(h.db, models.KindCocktail)
	if err != nil {
		slog.Error("failed to load cocktail vote sets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for i := range cocktails {
		if state := sets[cocktails[i].ID]; state != nil {
			cocktails[i].UpvotedBy = state.UpvotedBy
			cocktails[i].DownvotedBy = state.DownvotedBy
		}
		cocktails[i].UpvotedBy = emptyIfNil(cocktails[i].UpvotedBy)
		cocktails[i].DownvotedBy = emptyIfNil(cocktails[i].DownvotedBy)
	}

	sort.SliceStable(cocktails, func(i, j int) bool {
		return votes.SuggestionLess(
			cocktails[i].Upvotes-cocktails[i].Downvotes,
			cocktails[j].Upvotes-cocktails[j].Downvotes,
			cocktails[i].CreatedAt, cocktails[j].CreatedAt,
		)
	})

	middleware.JSONResponse(w, http.StatusOK, cocktails)
}

// Add handles POST /cocktails (authenticated)
func (h *CocktailHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var req models.AddCocktailRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	cocktail := models.Cocktail{
		ID:              uuid.NewString(),
		Name:            req.Name,
		SuggestedByUser: user.ID,
		SuggestedByName: user.Name,
		UpvotedBy:       []string{},
		DownvotedBy:     []string{},
		CreatedAt:       h.clock.Now().UnixMilli(),
	}
	if req.Description != "" {
		cocktail.Description = &req.Description
	}
	if req.Ingredients != "" {
		cocktail.Ingredients = &req.Ingredients
	}
	if req.ImageURL != "" {
		cocktail.ImageURL = &req.ImageURL
	}

	_, err := h.db.Exec(`
		INSERT INTO cocktail (id, name, description, ingredients, image_url,
		                      suggested_by_user_id, suggested_by_name, upvotes, downvotes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8)
	`, cocktail.ID, cocktail.Name, cocktail.Description, cocktail.Ingredients, cocktail.ImageURL,
		cocktail.SuggestedByUser, cocktail.SuggestedByName, cocktail.CreatedAt)

	if err != nil {
		slog.Error("failed to insert cocktail", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add cocktail")
		return
	}

	slog.Info("cocktail suggested", "cocktail_id", cocktail.ID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, cocktail)
}

// Vote handles POST /cocktails/{id}/vote (authenticated)
func (h *CocktailHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	cocktailID := r.PathValue("id")
	if cocktailID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "cocktail id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	dir, err := votes.ParseDirection(req.Direction)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	next, err := applyVote(h.db, models.KindCocktail, "cocktail", cocktailID, user.ID, dir)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Cocktail not found")
		return
	}
	if err != nil {
		slog.Error("failed to apply cocktail vote", "error", err, "cocktail_id", cocktailID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("cocktail vote recorded", "cocktail_id", cocktailID, "user_id", user.ID, "direction", string(dir))

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Upvotes:     next.Upvotes,
		Downvotes:   next.Downvotes,
		UpvotedBy:   emptyIfNil(next.UpvotedBy),
		DownvotedBy: emptyIfNil(next.DownvotedBy),
	})
}
