// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/jacksonandaudrey/wedding-api/cliparse"
	"github.com/jacksonandaudrey/wedding-api/middleware"
	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/votes"
)

type SongHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	clock clockwork.Clock
}

func NewSongHandler(db *sql.DB, cfg cliparse.Config, clock clockwork.Clock) *SongHandler {
	return &SongHandler{db: db, cfg: cfg, clock: clock}
}

// List handles GET /songs
// Public; ranked by net score descending, newest first among ties.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, song_name, artist_name, spotify_id, album_image,
		       suggested_by_user_id, suggested_by_name, upvotes, downvotes, created_at
		FROM song
	`)
	if err != nil {
		slog.Error("failed to query songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	songs := []models.Song{}
	for rows.Next() {
		var s models.Song
		if err := rows.Scan(&s.ID, &s.SongName, &s.ArtistName, &s.SpotifyID, &s.AlbumImage,
			&s.SuggestedByUser, &s.SuggestedByName, &s.Upvotes, &s.Downvotes, &s.CreatedAt); err != nil {
			slog.Error("failed to scan song", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read songs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	sets, err := voteSetsForKind(h.db, models.KindSong)
	if err != nil {
		slog.Error("failed to load song vote sets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	for i := range songs {
		if state := sets[songs[i].ID]; state != nil {
			songs[i].UpvotedBy = state.UpvotedBy
			songs[i].DownvotedBy = state.DownvotedBy
		}
		songs[i].UpvotedBy = emptyIfNil(songs[i].UpvotedBy)
		songs[i].DownvotedBy = emptyIfNil(songs[i].DownvotedBy)
	}

	// Rank is derived on every read, never stored
	sort.SliceStable(songs, func(i, j int) bool {
		return votes.SuggestionLess(
			songs[i].Upvotes-songs[i].Downvotes,
			songs[j].Upvotes-songs[j].Downvotes,
			songs[i].CreatedAt, songs[j].CreatedAt,
		)
	})

	middleware.JSONResponse(w, http.StatusOK, songs)
}

// Add handles POST /songs (authenticated)
func (h *SongHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	var req models.AddSongRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SongName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song_name is required")
		return
	}
	if req.ArtistName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "artist_name is required")
		return
	}

	song := models.Song{
		ID:              uuid.NewString(),
		SongName:        req.SongName,
		ArtistName:      req.ArtistName,
		SuggestedByUser: user.ID,
		SuggestedByName: user.Name,
		UpvotedBy:       []string{},
		DownvotedBy:     []string{},
		CreatedAt:       h.clock.Now().UnixMilli(),
	}
	if req.SpotifyID != "" {
		song.SpotifyID = &req.SpotifyID
	}
	if req.AlbumImage != "" {
		song.AlbumImage = &req.AlbumImage
	}

	_, err := h.db.Exec(`
		INSERT INTO song (id, song_name, artist_name, spotify_id, album_image,
		                  suggested_by_user_id, suggested_by_name, upvotes, downvotes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8)
	`, song.ID, song.SongName, song.ArtistName, song.SpotifyID, song.AlbumImage,
		song.SuggestedByUser, song.SuggestedByName, song.CreatedAt)

	if err != nil {
		slog.Error("failed to insert song", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add song")
		return
	}

	slog.Info("song suggested", "song_id", song.ID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, song)
}

// Vote handles POST /songs/{id}/vote (authenticated)
// Toggle semantics: same direction un-votes, opposite direction moves the vote.
func (h *SongHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r)

	songID := r.PathValue("id")
	if songID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	dir, err := votes.ParseDirection(req.Direction)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	next, err := applyVote(h.db, models.KindSong, "song", songID, user.ID, dir)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Song not found")
		return
	}
	if err != nil {
		slog.Error("failed to apply song vote", "error", err, "song_id", songID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("song vote recorded", "song_id", songID, "user_id", user.ID, "direction", string(dir))

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Upvotes:     next.Upvotes,
		Downvotes:   next.Downvotes,
		UpvotedBy:   emptyIfNil(next.UpvotedBy),
		DownvotedBy: emptyIfNil(next.DownvotedBy),
	})
}
