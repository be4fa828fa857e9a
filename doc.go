// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the wedding API server.

The API backs Jackson and Audrey's wedding website: guests suggest songs
and cocktails and vote on them, take a trivia quiz with a leaderboard,
manage their guest profile, and search Spotify for tracks to suggest.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=wedding.db SESSION_SALT=... go run .

Or with flags:

	go run . -p 3324 -d wedding.db -session-salt "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - SESSION_SALT (-session-salt): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3324)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET: enables the search proxy
  - WEDDING_DATE / WEDDING_VENUE / WEDDING_CITY: details endpoint content

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (suggestions, trivia, auth, profile)
  - votes: pure vote-toggle engine and ranking rules
  - router: Route definitions using Go 1.22+ routing
  - middleware: identity resolution, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: session tokens, password hashing, reset codes
  - spotify: client-credentials Spotify client with a cached token
  - db: driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
