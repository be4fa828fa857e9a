// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jacksonandaudrey/wedding-api/auth"
	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/db"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
// Each call gets its own database, so tests never see each other's rows.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	weddingDate, _ := time.Parse(time.RFC3339, "2026-09-26T16:00:00Z")
	return cliparse.Config{
		Port:         3324,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SessionSalt:  "test-session-salt",
		WeddingDate:  weddingDate,
		WeddingVenue: "Test Garden",
		WeddingCity:  "Blacksburg, Virginia",
	}
}

// CreateTestUser inserts a user and returns its ID. The password is
// "password123" hashed for real, so login tests exercise the bcrypt path.
func CreateTestUser(t *testing.T, conn *sql.DB, name, email string) string {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO app_user (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, name, email, hash, time.Now().UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestSession opens a session for the user and returns the signed
// bearer token, ready for an Authorization header.
func CreateTestSession(t *testing.T, conn *sql.DB, cfg cliparse.Config, userID string) string {
	t.Helper()

	sessionID, err := auth.GenerateID(16)
	if err != nil {
		t.Fatalf("Failed to generate session ID: %v", err)
	}

	now := time.Now()
	_, err = conn.Exec(`
		INSERT INTO session (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, sessionID, userID, now.UnixMilli(), now.Add(24*time.Hour).UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return auth.SessionToken{UserID: userID, SessionID: sessionID}.Encode(cfg.SessionSalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the headers map for an authenticated request
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
