// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/spotify"
)

type SearchHandler struct {
	spotify *spotify.Client
}

func NewSearchHandler(client *spotify.Client) *SearchHandler {
	return &SearchHandler{spotify: client}
}

// Search handles GET /spotify/search?q= (authenticated)
// Proxies the track search so the app credentials never reach the browser.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	if !h.spotify.Configured() {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Spotify search is not configured")
		return
	}

	tracks, err := h.spotify.Search(r.Context(), query)
	if errors.Is(err, spotify.ErrNotConfigured) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Spotify search is not configured")
		return
	}
	if err != nil {
		slog.Error("spotify search failed", "error", err, "query", query)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Search failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Tracks: tracks})
}
