// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/auth"
	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
)

const (
	sessionLifetime = 30 * 24 * time.Hour
	resetLifetime   = 15 * time.Minute

	// Reset requests per user per hour before 429
	resetRequestLimit = 3
)

// A well-formed bcrypt hash with no matching account. Login compares
// against it when the email is unknown so both failure paths cost one
// bcrypt comparison.
const unknownEmailHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, clock: clock}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
	}

	_, err = h.db.Exec(`
		INSERT INTO app_user (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, hash, h.clock.Now().UnixMilli())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "An account with this email already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := h.createSession(user.ID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{Token: token, User: user})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	var hash string
	err := h.db.QueryRow(`
		SELECT id, name, email, password_hash FROM app_user WHERE email = $1
	`, req.Email).Scan(&user.ID, &user.Name, &user.Email, &hash)

	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Same response, and the same bcrypt cost, for unknown email and
	// wrong password
	unknownEmail := err == sql.ErrNoRows
	if unknownEmail {
		hash = unknownEmailHash
	}
	if !auth.CheckPassword(hash, req.Password) || unknownEmail {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.createSession(user.ID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	slog.Info("user signed in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// Logout handles POST /auth/logout (authenticated)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	raw, _ := strings.CutPrefix(header, "Bearer ")
	token, err := auth.DecodeSessionToken(raw, h.cfg.SessionSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return
	}

	_, err = h.db.Exec(`DELETE FROM session WHERE id = $1 AND user_id = $2`,
		token.SessionID, token.UserID)
	if err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Signed out"})
}

// Me handles GET /auth/me (authenticated)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, middleware.UserFrom(r))
}

// RequestReset handles POST /auth/request-reset
// Always answers 200 for unknown emails so the endpoint does not leak
// which addresses have accounts. The code is logged rather than emailed;
// wiring a mailer is a deployment concern.
func (h *AuthHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req models.RequestResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}

	var userID string
	err := h.db.QueryRow(`SELECT id FROM app_user WHERE email = $1`, req.Email).Scan(&userID)
	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "If that account exists, a reset code has been sent"})
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.clock.Now()

	var recent int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM reset_code WHERE user_id = $1 AND created_at > $2
	`, userID, now.Add(-time.Hour).UnixMilli()).Scan(&recent)
	if err != nil {
		slog.Error("failed to count reset codes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if recent >= resetRequestLimit {
		middleware.ErrorResponse(w, http.StatusTooManyRequests, "Too many reset requests. Please try again later.")
		return
	}

	code, err := auth.GenerateResetCode()
	if err != nil {
		slog.Error("failed to generate reset code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create reset code")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO reset_code (code, user_id, created_at, expires_at, used)
		VALUES ($1, $2, $3, $4, 0)
	`, code, userID, now.UnixMilli(), now.Add(resetLifetime).UnixMilli())
	if err != nil {
		slog.Error("failed to insert reset code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create reset code")
		return
	}

	// Stands in for the email delivery
	slog.Info("password reset code issued", "user_id", userID, "code", code)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "If that account exists, a reset code has been sent"})
}

// ResetPassword handles POST /auth/reset-password
// Verifies the one-time code, sets the new password, and signs the user
// out everywhere.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and code are required")
		return
	}
	if len(req.NewPassword) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	var userID string
	err := h.db.QueryRow(`SELECT id FROM app_user WHERE email = $1`, req.Email).Scan(&userID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid reset code")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var expiresAt int64
	var used int
	err = h.db.QueryRow(`
		SELECT expires_at, used FROM reset_code WHERE code = $1 AND user_id = $2
	`, req.Code, userID).Scan(&expiresAt, &used)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid reset code")
		return
	}
	if err != nil {
		slog.Error("failed to query reset code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if used != 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "This reset code has already been used")
		return
	}
	if expiresAt <= h.clock.Now().UnixMilli() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "This reset code has expired")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE reset_code SET used = 1 WHERE code = $1`, req.Code); err != nil {
		slog.Error("failed to mark reset code used", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	if _, err := tx.Exec(`UPDATE app_user SET password_hash = $1 WHERE id = $2`, hash, userID); err != nil {
		slog.Error("failed to update password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	// A reset invalidates every open session for the account
	if _, err := tx.Exec(`DELETE FROM session WHERE user_id = $1`, userID); err != nil {
		slog.Error("failed to clear sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit password reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	slog.Info("password reset", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Password updated. Please sign in again."})
}

// createSession inserts a session row and returns the signed bearer token.
func (h *AuthHandler) createSession(userID string) (string, error) {
	sessionID, err := auth.GenerateID(16)
	if err != nil {
		return "", err
	}

	now := h.clock.Now()
	_, err = h.db.Exec(`
		INSERT INTO session (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, sessionID, userID, now.UnixMilli(), now.Add(sessionLifetime).UnixMilli())
	if err != nil {
		return "", err
	}

	return auth.SessionToken{UserID: userID, SessionID: sessionID}.Encode(h.cfg.SessionSalt), nil
}

// isUniqueViolation matches the unique-constraint error text of both
// supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
