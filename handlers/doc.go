// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers contains the HTTP handlers for every API endpoint:
// song and cocktail suggestions with their vote toggles, the trivia
// leaderboard, authentication, guest profiles, wedding details, and the
// Spotify search proxy.
//
// Each handler struct takes its dependencies through a constructor and
// exposes methods matching the routes registered in the router package.
// Vote writes share the transaction core in suggestions.go.
package handlers
