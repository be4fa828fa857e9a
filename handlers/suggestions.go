// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/jacksonandaudrey/wedding-api/models"
	"github.com/jacksonandaudrey/wedding-api/votes"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// voteState loads the membership rows for one suggestion into the pure
// engine's State. The counters come from the sets, never from the cached
// columns, so the toggle decision always works on the authoritative rows.
func voteState(q querier, kind, suggestionID string) (votes.State, error) {
	rows, err := q.Query(`
		SELECT user_id, direction
		FROM suggestion_vote
		WHERE kind = $1 AND suggestion_id = $2
	`, kind, suggestionID)
	if err != nil {
		return votes.State{}, fmt.Errorf("failed to load vote rows: %w", err)
	}
	defer rows.Close()

	var state votes.State
	for rows.Next() {
		var userID, direction string
		if err := rows.Scan(&userID, &direction); err != nil {
			return votes.State{}, fmt.Errorf("failed to scan vote row: %w", err)
		}
		switch votes.Direction(direction) {
		case votes.Up:
			state.UpvotedBy = append(state.UpvotedBy, userID)
		case votes.Down:
			state.DownvotedBy = append(state.DownvotedBy, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return votes.State{}, err
	}

	state.Upvotes = len(state.UpvotedBy)
	state.Downvotes = len(state.DownvotedBy)
	return state, nil
}

// applyVote runs one atomic read-modify-write for a (suggestion, user,
// direction) request: load state, toggle through the engine, persist the
// membership change, and refresh the cached counters.
//
// The counter refresh re-derives both columns from the suggestion_vote
// rows inside the same transaction, so concurrent votes from different
// users can never leave a counter out of sync with the sets.
//
// table must be "song" or "cocktail" (it is interpolated into SQL and is
// never caller-supplied text).
func applyVote(db *sql.DB, kind, table, suggestionID, userID string, dir votes.Direction) (votes.State, error) {
	tx, err := db.Begin()
	if err != nil {
		return votes.State{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Confirm the suggestion exists inside the transaction
	var exists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = $1)
	`, suggestionID).Scan(&exists)
	if err != nil {
		return votes.State{}, fmt.Errorf("failed to check suggestion: %w", err)
	}
	if !exists {
		return votes.State{}, models.ErrNotFound
	}

	state, err := voteState(tx, kind, suggestionID)
	if err != nil {
		return votes.State{}, err
	}

	next := votes.Apply(state, userID, dir)

	// Persist the membership change. The conflict clause covers a racing
	// toggle by the same user landing between the read and this write: the
	// later writer updates the row in place instead of tripping the
	// composite primary key.
	if after, ok := next.Membership(userID); ok {
		_, err = tx.Exec(`
			INSERT INTO suggestion_vote (kind, suggestion_id, user_id, direction)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (kind, suggestion_id, user_id) DO UPDATE SET direction = excluded.direction
		`, kind, suggestionID, userID, string(after))
		if err != nil {
			return votes.State{}, fmt.Errorf("failed to upsert vote row: %w", err)
		}
	} else {
		_, err = tx.Exec(`
			DELETE FROM suggestion_vote
			WHERE kind = $1 AND suggestion_id = $2 AND user_id = $3
		`, kind, suggestionID, userID)
		if err != nil {
			return votes.State{}, fmt.Errorf("failed to clear vote row: %w", err)
		}
	}

	// Refresh the cached counters from the rows
	_, err = tx.Exec(`
		UPDATE `+table+`
		SET upvotes = (
			SELECT COUNT(*) FROM suggestion_vote
			WHERE kind = $1 AND suggestion_id = `+table+`.id AND direction = 'up'
		),
		downvotes = (
			SELECT COUNT(*) FROM suggestion_vote
			WHERE kind = $2 AND suggestion_id = `+table+`.id AND direction = 'down'
		)
		WHERE id = $3
	`, kind, kind, suggestionID)
	if err != nil {
		return votes.State{}, fmt.Errorf("failed to update vote counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return votes.State{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	return next, nil
}

// voteSetsForKind loads the membership sets for every suggestion of a kind
// in one query, for list responses.
func voteSetsForKind(q querier, kind string) (map[string]*votes.State, error) {
	rows, err := q.Query(`
		SELECT suggestion_id, user_id, direction
		FROM suggestion_vote
		WHERE kind = $1
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load vote sets: %w", err)
	}
	defer rows.Close()

	sets := make(map[string]*votes.State)
	for rows.Next() {
		var suggestionID, userID, direction string
		if err := rows.Scan(&suggestionID, &userID, &direction); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		state := sets[suggestionID]
		if state == nil {
			state = &votes.State{}
			sets[suggestionID] = state
		}
		switch votes.Direction(direction) {
		case votes.Up:
			state.UpvotedBy = append(state.UpvotedBy, userID)
		case votes.Down:
			state.DownvotedBy = append(state.DownvotedBy, userID)
		}
	}
	return sets, rows.Err()
}

// emptyIfNil keeps JSON vote sets as [] instead of null.
func emptyIfNil(set []string) []string {
	if set == nil {
		return []string{}
	}
	return set
}
