// Copyright (c) 2026 Jackson Meyer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token format")
	ErrBadSignature = errors.New("token signature mismatch")
)

// SessionToken is the decoded identity carried by a bearer token. Handlers
// receive it as named fields; the wire encoding is decoded and verified
// exactly once, at the middleware boundary.
type SessionToken struct {
	UserID    string
	SessionID string
}

// Encode serializes and signs the token: base64url("userID:sessionID:sig")
// where sig is HMAC-SHA256 over "userID:sessionID" with the session salt.
func (t SessionToken) Encode(salt string) string {
	payload := t.UserID + ":" + t.SessionID
	sig := sign(payload, salt)
	return strings.TrimRight(base64.URLEncoding.EncodeToString([]byte(payload+":"+sig)), "=")
}

// DecodeSessionToken parses and verifies a bearer token. The signature
// binds the user id to the session id, so neither can be swapped without
// the salt.
func DecodeSessionToken(token, salt string) (SessionToken, error) {
	// Re-add padding stripped by Encode
	if m := len(token) % 4; m != 0 {
		token += strings.Repeat("=", 4-m)
	}
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return SessionToken{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return SessionToken{}, ErrInvalidToken
	}

	payload := parts[0] + ":" + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(sign(payload, salt))) {
		return SessionToken{}, ErrBadSignature
	}

	return SessionToken{UserID: parts[0], SessionID: parts[1]}, nil
}

func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateResetCode creates a short numeric code for password resets.
// Six digits matches what guests expect to type from an email.
func GenerateResetCode() (string, error) {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return fmt.Sprintf("%06d", n%1000000), nil
}

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
