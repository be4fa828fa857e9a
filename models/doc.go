// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: name, email, password
  - LoginRequest: email, password
  - RequestResetRequest: email
  - ResetPasswordRequest: email, code, new_password
  - AddSongRequest: song_name, artist_name, optional Spotify fields
  - AddCocktailRequest: name, optional description/ingredients/image
  - VoteRequest: direction ("up" or "down")
  - SubmitScoreRequest: score, total_questions, percentage
  - UpdateProfileRequest: additional_guests, max_guests

# Response Types

Types for JSON responses:

  - AuthResponse: token, user
  - VoteResponse: upvotes, downvotes, upvoted_by, downvoted_by
  - SearchResponse: tracks
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: registered guest
  - Song, Cocktail: suggestions with cached counters and vote membership
  - TriviaScore: one quiz result per guest
  - LeaderboardEntry: ranked trivia result with humanized completion time
  - TriviaQuestion: question text and answer options
  - Profile: RSVP extras (additional guests, invitation size)
  - WeddingDetails: venue, date, and live countdown
  - Track: Spotify search result

Timestamps on domain types are unix milliseconds.

# Constants

Suggestion kinds, used as the discriminator in vote rows:

	KindSong     = "song"
	KindCocktail = "cocktail"

# Sentinel Errors

ErrUnauthenticated, ErrNotFound, and ErrValidation are mapped to HTTP
statuses at the response boundary.
*/
package models
