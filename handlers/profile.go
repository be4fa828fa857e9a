// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
)

type ProfileHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProfileHandler(db *sql.DB, cfg cliparse.Config) *ProfileHandler {
	return &ProfileHandler{db: db, cfg: cfg}
}

const defaultMaxGuests = 1

// Get handles GET /profile (authenticated)
// A user without a stored row gets the defaults rather than a 404.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var guestsJSON string
	profile := models.Profile{UserID: user.ID}
	err := h.db.QueryRow(`
		SELECT additional_guests, max_guests FROM user_profile WHERE user_id = $1
	`, user.ID).Scan(&guestsJSON, &profile.MaxGuests)

	if err == sql.ErrNoRows {
		profile.AdditionalGuests = []string{}
		profile.MaxGuests = defaultMaxGuests
		middleware.JSONResponse(w, http.StatusOK, profile)
		return
	}
	if err != nil {
		slog.Error("failed to query profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := json.Unmarshal([]byte(guestsJSON), &profile.AdditionalGuests); err != nil {
		slog.Error("failed to decode guest list", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if profile.AdditionalGuests == nil {
		profile.AdditionalGuests = []string{}
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// Update handles PUT /profile (authenticated)
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var req models.UpdateProfileRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MaxGuests < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "max_guests must be at least 1")
		return
	}

	guests := []string{}
	for _, g := range req.AdditionalGuests {
		g = strings.TrimSpace(g)
		if g != "" {
			guests = append(guests, g)
		}
	}
	// max_guests counts the account holder, so the plus-ones are one fewer
	if len(guests) > req.MaxGuests-1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "too many additional guests for this invitation")
		return
	}

	guestsJSON, err := json.Marshal(guests)
	if err != nil {
		slog.Error("failed to encode guest list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE user_profile SET additional_guests = $1, max_guests = $2 WHERE user_id = $3
	`, string(guestsJSON), req.MaxGuests, user.ID)
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	updated, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	if updated == 0 {
		_, err = tx.Exec(`
			INSERT INTO user_profile (user_id, additional_guests, max_guests)
			VALUES ($1, $2, $3)
		`, user.ID, string(guestsJSON), req.MaxGuests)
		if err != nil {
			slog.Error("failed to insert profile", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	slog.Info("profile updated", "user_id", user.ID, "guests", len(guests))

	middleware.JSONResponse(w, http.StatusOK, models.Profile{
		UserID:           user.ID,
		AdditionalGuests: guests,
		MaxGuests:        req.MaxGuests,
	})
}
