// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/auth"
	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/models"
)

type contextKey string

const userContextKey contextKey = "current_user"

// Identity resolves bearer tokens to users. The token is decoded and
// verified here, once per request; handlers only ever see the typed user.
type Identity struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewIdentity(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *Identity {
	return &Identity{db: db, cfg: cfg, clock: clock}
}

// CurrentUser resolves the Authorization header to a user, or nil when the
// request is unauthenticated. Expired sessions and bad signatures both
// read as unauthenticated rather than errors; only the database can fail.
func (id *Identity) CurrentUser(r *http.Request) (*models.User, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, nil
	}

	token, err := auth.DecodeSessionToken(raw, id.cfg.SessionSalt)
	if err != nil {
		return nil, nil
	}

	var user models.User
	var expiresAt int64
	err = id.db.QueryRow(`
		SELECT u.id, u.name, u.email, s.expires_at
		FROM session s
		JOIN app_user u ON u.id = s.user_id
		WHERE s.id = $1 AND s.user_id = $2
	`, token.SessionID, token.UserID).Scan(&user.ID, &user.Name, &user.Email, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if expiresAt <= id.clock.Now().UnixMilli() {
		return nil, nil
	}

	return &user, nil
}

// WithUser resolves the current user (if any) into the request context.
// It never rejects: public reads run fine without identity.
func (id *Identity) WithUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := id.CurrentUser(r)
		if err != nil {
			slog.Error("failed to resolve session", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if user != nil {
			r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		}
		next(w, r)
	}
}

// RequireUser rejects unauthenticated requests with 401. Writes are gated;
// reads stay public.
func (id *Identity) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return id.WithUser(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r) == nil {
			ErrorResponse(w, http.StatusUnauthorized, models.ErrUnauthenticated.Error())
			return
		}
		next(w, r)
	})
}

// UserFrom returns the authenticated user stored by WithUser, or nil.
func UserFrom(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}
