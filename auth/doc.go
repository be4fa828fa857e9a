// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens, password hashing, and ID generation.

# Session Tokens

A bearer token carries a user id and a session id as one signed value:

	token := auth.SessionToken{UserID: uid, SessionID: sid}.Encode(salt)
	decoded, err := auth.DecodeSessionToken(token, salt)

The wire format is URL-safe base64 of "userID:sessionID:sig", where sig is
HMAC-SHA256 over the first two fields. Decoding verifies the signature and
yields named fields, so nothing downstream ever splits the raw string.
Tokens are decoded exactly once, in the middleware; handlers work with the
typed SessionToken.

# Passwords

bcrypt at the default cost:

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(hash, plaintext)

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Reset Codes

Six-digit numeric codes for the password reset flow:

	code, err := auth.GenerateResetCode()
*/
package auth
