// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite (via modernc.org/sqlite, no cgo) is the default for development and
tests; PostgreSQL (via lib/pq) is the production target. Both accept the
$N placeholder style, so all query text is shared.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: Registered guests
  - session: Active sign-ins, referenced by signed session tokens
  - reset_code: One-time password reset codes
  - song: Song suggestions with cached vote counters
  - cocktail: Cocktail suggestions with cached vote counters
  - suggestion_vote: Vote membership, one row per (suggestion, user)
  - trivia_score: One quiz result per user, last write wins
  - user_profile: RSVP extras (additional guests)

# Vote Integrity

The cached upvotes/downvotes columns on song and cocktail rows are
maintained in the same transaction as the suggestion_vote rows they
summarize. The suggestion_vote primary key (kind, suggestion_id, user_id)
means a user can never be stored on both sides of one suggestion.

# Timestamps

All timestamps are BIGINT unix milliseconds written by the application, so
values compare identically under both drivers.
*/
package db
