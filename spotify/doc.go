// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package spotify wraps the Spotify Web API track search used to prefill
song suggestions.

# Client Credentials

The client authenticates with the app-level client-credentials grant. The
access token lives in a cache entry {token, expiresAt} owned by the Client
and guarded by a mutex; the clock is injected (clockwork) so expiry is
testable without waiting:

	client := spotify.NewClient(id, secret, clockwork.NewRealClock())
	tracks, err := client.Search(ctx, "september")

Tokens refresh automatically when less than a minute of lifetime remains.

# Unconfigured Deployments

Credentials are optional. Without them Search returns ErrNotConfigured and
the HTTP layer answers 503, leaving manual song entry working.
*/
package spotify
