// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the wedding API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, clock, spotifyClient)

# Endpoints

Health:

	GET /health

Authentication:

	POST /auth/register       - Create account
	POST /auth/login          - Sign in
	POST /auth/logout         - End the current session (auth)
	GET  /auth/me             - Current user (auth)
	POST /auth/request-reset  - Issue a password reset code
	POST /auth/reset-password - Redeem a reset code

Song suggestions (public reads, authenticated writes):

	GET  /songs           - Ranked list
	POST /songs           - Suggest a song (auth)
	POST /songs/{id}/vote - Toggle an up/down vote (auth)

Cocktail suggestions (same shape as songs):

	GET  /cocktails
	POST /cocktails
	POST /cocktails/{id}/vote

Trivia:

	GET  /trivia/questions   - Quiz questions
	GET  /trivia/score       - Caller's score (auth)
	POST /trivia/score       - Submit a score (auth)
	GET  /trivia/leaderboard - Ranked results

Guest profile (auth):

	GET /profile
	PUT /profile

Wedding details:

	GET /details

Spotify search proxy (auth):

	GET /spotify/search?q=

# Handler Initialization

The router creates handler instances with dependency injection:

	songHandler := handlers.NewSongHandler(db, cfg, clock)
	searchHandler := handlers.NewSearchHandler(spotifyClient)

Write endpoints are wrapped in identity.RequireUser; public reads use
identity.WithUser so the caller's identity is available when present.
*/
package router
