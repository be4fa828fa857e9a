// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
)

type DetailsHandler struct {
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewDetailsHandler(cfg cliparse.Config, clock clockwork.Clock) *DetailsHandler {
	return &DetailsHandler{cfg: cfg, clock: clock}
}

// Details handles GET /details
// Public; the countdown is computed per request so it never goes stale.
func (h *DetailsHandler) Details(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	remaining := int64(h.cfg.WeddingDate.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	middleware.JSONResponse(w, http.StatusOK, models.WeddingDetails{
		Couple:           "Jackson & Audrey",
		WeddingAt:        h.cfg.WeddingDate.UnixMilli(),
		Venue:            h.cfg.WeddingVenue,
		City:             h.cfg.WeddingCity,
		SecondsRemaining: remaining,
		Countdown:        humanize.RelTime(h.cfg.WeddingDate, now, "ago", "to go"),
	})
}
