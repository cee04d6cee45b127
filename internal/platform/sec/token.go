// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sec provides the cryptographic primitives of the platform: password
hashing, opaque access-token generation, and the resolved caller identity.

Architecture:

  - Tokens are opaque random strings, minted once per account at registration
    and stable for the account's lifetime (no rotation, no expiry).
  - Resolution happens by exact match against the stored token, so the token
    carries no claims and reveals nothing if decoded.

Collision probability across the user collection is negligible at 128 bytes
of source entropy.
*/
package sec

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/taibuivan/vinoteca/internal/platform/constants"
)

// Identity represents the authenticated caller, as resolved by the
// authentication gate from the bearer credential.
type Identity struct {
	// UserID is the account's opaque unique identifier.
	UserID string `json:"user_id"`

	// Username is the account's display handle.
	Username string `json:"username"`
}

// GenerateAccessToken returns a cryptographically random, hex-encoded
// opaque token of [constants.AccessTokenByteLength] bytes of entropy.
func GenerateAccessToken() (string, error) {
	buffer := make([]byte, constants.AccessTokenByteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("auth: failed to generate access token: %w", err)
	}
	return hex.EncodeToString(buffer), nil
}
