// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/testutil"
)

func TestDetails(t *testing.T) {
	cfg := getTestConfig()

	// Fixed clock one hour before the wedding
	clock := clockwork.NewFakeClockAt(cfg.WeddingDate.Add(-time.Hour))
	handler := NewDetailsHandler(cfg, clock)

	req := testutil.MakeRequest("GET", "/details", nil, nil)
	w := httptest.NewRecorder()
	handler.Details(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var details models.WeddingDetails
	testutil.AssertJSON(t, w, &details)

	if details.Venue != cfg.WeddingVenue {
		t.Errorf("Expected venue %q, got %q", cfg.WeddingVenue, details.Venue)
	}
	if details.City != cfg.WeddingCity {
		t.Errorf("Expected city %q, got %q", cfg.WeddingCity, details.City)
	}
	if details.WeddingAt != cfg.WeddingDate.UnixMilli() {
		t.Errorf("Expected wedding_at %d, got %d", cfg.WeddingDate.UnixMilli(), details.WeddingAt)
	}
	if details.SecondsRemaining != 3600 {
		t.Errorf("Expected 3600 seconds remaining, got %d", details.SecondsRemaining)
	}
	if details.Countdown == "" {
		t.Error("Expected a countdown string")
	}
}

func TestDetailsAfterWedding(t *testing.T) {
	cfg := getTestConfig()

	clock := clockwork.NewFakeClockAt(cfg.WeddingDate.Add(48 * time.Hour))
	handler := NewDetailsHandler(cfg, clock)

	req := testutil.MakeRequest("GET", "/details", nil, nil)
	w := httptest.NewRecorder()
	handler.Details(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var details models.WeddingDetails
	testutil.AssertJSON(t, w, &details)

	// The countdown floors at zero once the day has passed
	if details.SecondsRemaining != 0 {
		t.Errorf("Expected 0 seconds remaining, got %d", details.SecondsRemaining)
	}
}
