// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL sticks to types both SQLite and PostgreSQL accept. Timestamps
// are BIGINT unix milliseconds and are always written explicitly by the
// application, so no driver-specific defaults appear here.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_app_user_email ON app_user(email);

-- Sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    created_at BIGINT NOT NULL,
    expires_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_user_id ON session(user_id);

-- Password reset codes
CREATE TABLE IF NOT EXISTS reset_code (
    code TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    created_at BIGINT NOT NULL,
    expires_at BIGINT NOT NULL,
    used INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_reset_code_user_id ON reset_code(user_id);

-- Song suggestions
CREATE TABLE IF NOT EXISTS song (
    id TEXT PRIMARY KEY,
    song_name TEXT NOT NULL,
    artist_name TEXT NOT NULL,
    spotify_id TEXT,
    album_image TEXT,
    suggested_by_user_id TEXT NOT NULL REFERENCES app_user(id),
    suggested_by_name TEXT NOT NULL,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_song_created_at ON song(created_at);
CREATE INDEX IF NOT EXISTS idx_song_suggested_by ON song(suggested_by_user_id);

-- Cocktail suggestions
CREATE TABLE IF NOT EXISTS cocktail (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    ingredients TEXT,
    image_url TEXT,
    suggested_by_user_id TEXT NOT NULL REFERENCES app_user(id),
    suggested_by_name TEXT NOT NULL,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cocktail_created_at ON cocktail(created_at);
CREATE INDEX IF NOT EXISTS idx_cocktail_suggested_by ON cocktail(suggested_by_user_id);

-- Vote membership: one row per (suggestion, user). The primary key makes a
-- double vote or a vote on both sides impossible to persist.
CREATE TABLE IF NOT EXISTS suggestion_vote (
    kind TEXT NOT NULL CHECK (kind IN ('song', 'cocktail')),
    suggestion_id TEXT NOT NULL,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    direction TEXT NOT NULL CHECK (direction IN ('up', 'down')),
    PRIMARY KEY (kind, suggestion_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_suggestion_vote_suggestion ON suggestion_vote(kind, suggestion_id);

-- Trivia scores: at most one row per user, last write wins
CREATE TABLE IF NOT EXISTS trivia_score (
    user_id TEXT PRIMARY KEY REFERENCES app_user(id) ON DELETE CASCADE,
    score INTEGER NOT NULL,
    total_questions INTEGER NOT NULL,
    percentage INTEGER NOT NULL,
    completed_at BIGINT NOT NULL
);

-- Guest profiles (RSVP extras)
CREATE TABLE IF NOT EXISTS user_profile (
    user_id TEXT PRIMARY KEY REFERENCES app_user(id) ON DELETE CASCADE,
    additional_guests TEXT NOT NULL DEFAULT '[]',
    max_guests INTEGER NOT NULL DEFAULT 1
);
`
