// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv); real
environment variables take precedence over file values, and CLI flags take
precedence over both.

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSalt: Secret for session token HMAC (required)
  - SpotifyClientID / SpotifyClientSecret: Optional; song search answers
    503 without them
  - WeddingDate / WeddingVenue / WeddingCity: Served by the details endpoint

# Environment Variables

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	SESSION_SALT          → -session-salt
	SPOTIFY_CLIENT_ID     → -spotify-id
	SPOTIFY_CLIENT_SECRET → -spotify-secret
	WEDDING_DATE          → -wedding-date
	WEDDING_VENUE         → -wedding-venue
	WEDDING_CITY          → -wedding-city

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - WEDDING_DATE must be RFC 3339 when set
*/
package cliparse
