// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/vinoteca/internal/platform/sec"
)

/*
UserRepository defines persistent storage for account records.

Implementations must return [dberr.ErrNotFound] for missing records and
[dberr.ErrDuplicate] for username uniqueness violations.
*/
type UserRepository interface {
	// CreateUser persists a new account. The caller supplies the id, the
	// password hash, and the minted access token.
	CreateUser(ctx context.Context, user *User) error

	// FindByUsername returns the account with the exact username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByAccessToken returns the account whose stored token exactly
	// matches the presented credential.
	FindByAccessToken(ctx context.Context, token string) (*User, error)
}

/*
TokenCacheRepository defines the volatile token-resolution cache sitting in
front of [UserRepository.FindByAccessToken].

Implementations must return [dberr.ErrNotFound] on a cache miss. Cache
failures are advisory: the service degrades to the primary store.
*/
type TokenCacheRepository interface {
	// GetIdentity returns the cached identity for a token, if present.
	GetIdentity(ctx context.Context, token string) (*sec.Identity, error)

	// SetIdentity caches the resolved identity for a token with the
	// platform TTL.
	SetIdentity(ctx context.Context, token string, identity *sec.Identity) error
}
