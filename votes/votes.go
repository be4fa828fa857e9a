// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"fmt"

	"github.com/jacksonandaudrey/wedding-api/models"
)

// Direction is the side of a vote.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates a direction string from a request body. Bad
// input wraps models.ErrValidation so the response boundary maps it to
// a 400.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: direction must be %q or %q", models.ErrValidation, Up, Down)
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// State is the vote state of a single suggestion. The counters are cached
// cardinalities of the membership sets and never drift from them: Apply
// recomputes both counters from the sets on every call. A user id appears
// in at most one of the two sets.
type State struct {
	Upvotes     int
	Downvotes   int
	UpvotedBy   []string
	DownvotedBy []string
}

// Apply computes the next vote state for a (user, direction) request using
// toggle-with-exclusivity semantics:
//
//   - a vote in the opposite direction is moved, never double-counted
//   - a repeated vote in the same direction cancels out (toggle-off)
//   - a first vote adds exactly one membership
//
// Apply is pure: the input state is not modified, and applying the same
// (user, direction) twice returns to the state before the first call.
func Apply(s State, userID string, dir Direction) State {
	votedSame := false
	switch dir {
	case Up:
		votedSame = contains(s.UpvotedBy, userID)
	case Down:
		votedSame = contains(s.DownvotedBy, userID)
	}

	next := State{
		UpvotedBy:   remove(s.UpvotedBy, userID),
		DownvotedBy: remove(s.DownvotedBy, userID),
	}

	if !votedSame {
		switch dir {
		case Up:
			next.UpvotedBy = append(next.UpvotedBy, userID)
		case Down:
			next.DownvotedBy = append(next.DownvotedBy, userID)
		}
	}

	next.Upvotes = len(next.UpvotedBy)
	next.Downvotes = len(next.DownvotedBy)
	return next
}

// Membership reports which side the user is currently counted on, if any.
func (s State) Membership(userID string) (Direction, bool) {
	if contains(s.UpvotedBy, userID) {
		return Up, true
	}
	if contains(s.DownvotedBy, userID) {
		return Down, true
	}
	return "", false
}

// NetScore is the primary ranking key: upvotes minus downvotes.
func (s State) NetScore() int {
	return s.Upvotes - s.Downvotes
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

// remove returns a copy of set without id. Always copies so Apply never
// aliases the caller's slices.
func remove(set []string, id string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
