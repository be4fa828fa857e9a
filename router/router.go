// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/handlers"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/spotify"
)

// NewRouter wires every endpoint. Reads are public (with the caller's
// identity resolved when a token is present); writes require a session.
func NewRouter(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock, spotifyClient *spotify.Client) *http.ServeMux {
	mux := http.NewServeMux()

	identity := middleware.NewIdentity(db, cfg, clock)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, clock)
	songHandler := handlers.NewSongHandler(db, cfg, clock)
	cocktailHandler := handlers.NewCocktailHandler(db, cfg, clock)
	triviaHandler := handlers.NewTriviaHandler(db, cfg, clock)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	detailsHandler := handlers.NewDetailsHandler(cfg, clock)
	searchHandler := handlers.NewSearchHandler(spotifyClient)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(identity.RequireUser(authHandler.Logout)))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(identity.RequireUser(authHandler.Me)))
	mux.HandleFunc("POST /auth/request-reset", middleware.WithLogging(authHandler.RequestReset))
	mux.HandleFunc("POST /auth/reset-password", middleware.WithLogging(authHandler.ResetPassword))

	// Song suggestions (public reads, authenticated writes)
	mux.HandleFunc("GET /songs", middleware.WithLogging(identity.WithUser(songHandler.List)))
	mux.HandleFunc("POST /songs", middleware.WithLogging(identity.RequireUser(songHandler.Add)))
	mux.HandleFunc("POST /songs/{id}/vote", middleware.WithLogging(identity.RequireUser(songHandler.Vote)))

	// Cocktail suggestions
	mux.HandleFunc("GET /cocktails", middleware.WithLogging(identity.WithUser(cocktailHandler.List)))
	mux.HandleFunc("POST /cocktails", middleware.WithLogging(identity.RequireUser(cocktailHandler.Add)))
	mux.HandleFunc("POST /cocktails/{id}/vote", middleware.WithLogging(identity.RequireUser(cocktailHandler.Vote)))

	// Trivia
	mux.HandleFunc("GET /trivia/questions", middleware.WithLogging(triviaHandler.Questions))
	mux.HandleFunc("GET /trivia/score", middleware.WithLogging(identity.RequireUser(triviaHandler.MyScore)))
	mux.HandleFunc("POST /trivia/score", middleware.WithLogging(identity.RequireUser(triviaHandler.SubmitScore)))
	mux.HandleFunc("GET /trivia/leaderboard", middleware.WithLogging(triviaHandler.Leaderboard))

	// Guest profile
	mux.HandleFunc("GET /profile", middleware.WithLogging(identity.RequireUser(profileHandler.Get)))
	mux.HandleFunc("PUT /profile", middleware.WithLogging(identity.RequireUser(profileHandler.Update)))

	// Wedding details
	mux.HandleFunc("GET /details", middleware.WithLogging(detailsHandler.Details))

	// Spotify search proxy
	mux.HandleFunc("GET /spotify/search", middleware.WithLogging(identity.RequireUser(searchHandler.Search)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("wedding API v1"))
	})

	return mux
}
