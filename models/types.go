package models

import "errors"

// Sentinel errors surfaced by handlers and mapped to HTTP statuses at the
// response boundary.
var (
	ErrUnauthenticated = errors.New("sign in required")
	ErrNotFound        = errors.New("record not found")
	ErrValidation      = errors.New("validation failed")
)

// Suggestion kind constants, used as the discriminator in suggestion_vote rows
const (
	KindSong     = "song"
	KindCocktail = "cocktail"
)

// Request types

type AddSongRequest struct {
	SongName   string `json:"song_name"`
	ArtistName string `json:"artist_name"`
	SpotifyID  string `json:"spotify_id,omitempty"`
	AlbumImage string `json:"album_image,omitempty"`
}

type AddCocktailRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type VoteRequest struct {
	Direction string `json:"direction"`
}

type SubmitScoreRequest struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
	Percentage     int `json:"percentage"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type UpdateProfileRequest struct {
	AdditionalGuests []string `json:"additional_guests"`
	MaxGuests        int      `json:"max_guests"`
}

// Response types

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type VoteResponse struct {
	Upvotes     int      `json:"upvotes"`
	Downvotes   int      `json:"downvotes"`
	UpvotedBy   []string `json:"upvoted_by"`
	DownvotedBy []string `json:"downvoted_by"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types
//
// Timestamps are unix milliseconds throughout. They compare cheaply for
// ranking and survive round trips through both database drivers unchanged.

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Song struct {
	ID              string   `json:"id"`
	SongName        string   `json:"song_name"`
	ArtistName      string   `json:"artist_name"`
	SpotifyID       *string  `json:"spotify_id,omitempty"`
	AlbumImage      *string  `json:"album_image,omitempty"`
	SuggestedByUser string   `json:"suggested_by_user_id"`
	SuggestedByName string   `json:"suggested_by_name"`
	Upvotes         int      `json:"upvotes"`
	Downvotes       int      `json:"downvotes"`
	UpvotedBy       []string `json:"upvoted_by"`
	DownvotedBy     []string `json:"downvoted_by"`
	CreatedAt       int64    `json:"created_at"`
}

type Cocktail struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	Ingredients     *string  `json:"ingredients,omitempty"`
	ImageURL        *string  `json:"image_url,omitempty"`
	SuggestedByUser string   `json:"suggested_by_user_id"`
	SuggestedByName string   `json:"suggested_by_name"`
	Upvotes         int      `json:"upvotes"`
	Downvotes       int      `json:"downvotes"`
	UpvotedBy       []string `json:"upvoted_by"`
	DownvotedBy     []string `json:"downvoted_by"`
	CreatedAt       int64    `json:"created_at"`
}

type TriviaScore struct {
	UserID         string `json:"user_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	CompletedAt    int64  `json:"completed_at"`
}

type LeaderboardEntry struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	CompletedAt    int64  `json:"completed_at"`
	CompletedAgo   string `json:"completed_ago"`
}

type TriviaQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type Profile struct {
	UserID           string   `json:"user_id"`
	AdditionalGuests []string `json:"additional_guests"`
	MaxGuests        int      `json:"max_guests"`
}

type WeddingDetails struct {
	Couple           string `json:"couple"`
	WeddingAt        int64  `json:"wedding_at"`
	Venue            string `json:"venue"`
	City             string `json:"city"`
	SecondsRemaining int64  `json:"seconds_remaining"`
	Countdown        string `json:"countdown"`
}

type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artists  string `json:"artists"`
	AlbumArt string `json:"album_art,omitempty"`
}

type SearchResponse struct {
	Tracks []Track `json:"tracks"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
