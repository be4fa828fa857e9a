// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

// SuggestionLess reports whether a suggestion with (netA, createdA) ranks
// above one with (netB, createdB): net score descending, then created_at
// descending so newer suggestions rank above older ones at equal score.
// Use with sort.SliceStable; the order is re-derived on every read and
// nothing persists a rank.
func SuggestionLess(netA, netB int, createdA, createdB int64) bool {
	if netA != netB {
		return netA > netB
	}
	return createdA > createdB
}

// LeaderboardKey is the projection of a trivia result the leaderboard order
// depends on.
type LeaderboardKey struct {
	Percentage  int
	Score       int
	CompletedAt int64
}

// LeaderboardLess reports whether a ranks above b: percentage descending,
// score descending, then completed_at ascending so an earlier completion
// beats a later one at equal score.
func LeaderboardLess(a, b LeaderboardKey) bool {
	if a.Percentage != b.Percentage {
		return a.Percentage > b.Percentage
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.CompletedAt < b.CompletedAt
}
