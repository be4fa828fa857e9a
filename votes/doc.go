// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes implements the vote toggle engine and ranking order for guest
suggestions.

# Toggle Semantics

Each guest holds at most one vote per suggestion. Apply maps the current
vote state and a (user, direction) request to the next state:

	next := votes.Apply(current, userID, votes.Up)

Voting the same direction twice cancels the vote. Voting the opposite
direction moves it. The membership sets stay disjoint and the cached
counters always equal the set sizes.

# Ranking

SuggestionLess orders suggestions by net score (upvotes minus downvotes)
descending, breaking ties by creation time with newer first.
LeaderboardLess orders trivia results by percentage, then score, then
rewards the earlier completion.

Both are plain comparison functions for sort.SliceStable; no rank is ever
persisted.

The package is pure: no I/O, no clock, no database. Handlers load state,
call Apply, and persist the result in one transaction.
*/
package votes
