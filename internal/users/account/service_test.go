// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vinoteca/internal/platform/apperr"
	"github.com/taibuivan/vinoteca/internal/platform/constants"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
	"github.com/taibuivan/vinoteca/internal/platform/sec"
	"github.com/taibuivan/vinoteca/internal/users/account"
)

type memoryUserRepository struct {
	users        map[string]*account.User
	tokenLookups int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*account.User)}
}

func (repo *memoryUserRepository) CreateUser(_ context.Context, user *account.User) error {
	if _, exists := repo.users[user.Username]; exists {
		return dberr.ErrDuplicate
	}
	user.CreatedAt = time.Now()
	copied := *user
	repo.users[user.Username] = &copied
	return nil
}

func (repo *memoryUserRepository) FindByUsername(_ context.Context, username string) (*account.User, error) {
	user, ok := repo.users[username]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repo *memoryUserRepository) FindByAccessToken(_ context.Context, token string) (*account.User, error) {
	repo.tokenLookups++
	for _, user := range repo.users {
		if user.AccessToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

// memoryTokenCache can be flipped into a failing state to exercise the
// degraded-cache path.
type memoryTokenCache struct {
	identities map[string]*sec.Identity
	broken     bool
}

func newMemoryTokenCache() *memoryTokenCache {
	return &memoryTokenCache{identities: make(map[string]*sec.Identity)}
}

func (cache *memoryTokenCache) GetIdentity(_ context.Context, token string) (*sec.Identity, error) {
	if cache.broken {
		return nil, errors.New("cache unreachable")
	}
	identity, ok := cache.identities[token]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return identity, nil
}

func (cache *memoryTokenCache) SetIdentity(_ context.Context, token string, identity *sec.Identity) error {
	if cache.broken {
		return errors.New("cache unreachable")
	}
	cache.identities[token] = identity
	return nil
}

func newTestService() (*account.Service, *memoryUserRepository, *memoryTokenCache) {
	repo := newMemoryUserRepository()
	cache := newMemoryTokenCache()
	return account.NewService(repo, cache, slog.Default()), repo, cache
}

/*
TestService_Register verifies that a valid registration returns the account
id, the username, and a well-formed opaque token.
*/
func TestService_Register(t *testing.T) {
	service, _, _ := newTestService()

	credentials, err := service.Register(context.Background(), "margaux", "correct horse")
	require.NoError(t, err)

	assert.NotEmpty(t, credentials.ID)
	assert.Equal(t, "margaux", credentials.Username)

	// 128 bytes of entropy, hex encoded.
	assert.Len(t, credentials.AccessToken, constants.AccessTokenByteLength*2)
	_, err = hex.DecodeString(credentials.AccessToken)
	assert.NoError(t, err)
}

func TestService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"username_too_short", "a", "longenough", true},
		{"username_at_minimum", "ab", "longenough", false},
		{"username_at_maximum", strings.Repeat("u", 20), "longenough", false},
		{"username_too_long", strings.Repeat("u", 21), "longenough", true},
		{"username_whitespace_only", "   ", "longenough", true},
		{"password_too_short", "margaux", "1234", true},
		{"password_at_minimum", "margaux", "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService()

			_, err := service.Register(context.Background(), tt.username, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	service, repo, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "margaux", "first password")
	require.NoError(t, err)

	_, err = service.Register(ctx, "margaux", "second password")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Len(t, repo.users, 1)
}

/*
TestService_Login_ReturnsStandingToken verifies that login re-reveals the
token minted at registration rather than rotating it.
*/
func TestService_Login_ReturnsStandingToken(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	registered, err := service.Register(ctx, "margaux", "correct horse")
	require.NoError(t, err)

	loggedIn, err := service.Login(ctx, "margaux", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, registered.AccessToken, loggedIn.AccessToken)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

/*
TestService_Login_IndistinguishableFailures verifies that a wrong password
and an unknown username produce the same observable outcome.
*/
func TestService_Login_IndistinguishableFailures(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, "margaux", "correct horse")
	require.NoError(t, err)

	_, wrongPassword := service.Login(ctx, "margaux", "wrong horse")
	_, unknownUser := service.Login(ctx, "nobody", "correct horse")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)

	wrongAE := apperr.As(wrongPassword)
	unknownAE := apperr.As(unknownUser)
	require.NotNil(t, wrongAE)
	require.NotNil(t, unknownAE)

	assert.Equal(t, wrongAE.Code, unknownAE.Code)
	assert.Equal(t, wrongAE.Message, unknownAE.Message)
	assert.Equal(t, wrongAE.HTTPStatus, unknownAE.HTTPStatus)
}

/*
TestService_ResolveToken verifies the cache-then-store resolution order:
the first resolution hits PostgreSQL and populates the cache, subsequent
resolutions are served from the cache alone.
*/
func TestService_ResolveToken(t *testing.T) {
	service, repo, cache := newTestService()
	ctx := context.Background()

	credentials, err := service.Register(ctx, "margaux", "correct horse")
	require.NoError(t, err)

	first, err := service.ResolveToken(ctx, credentials.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, credentials.ID, first.UserID)
	assert.Equal(t, "margaux", first.Username)
	assert.Equal(t, 1, repo.tokenLookups)
	assert.Contains(t, cache.identities, credentials.AccessToken)

	second, err := service.ResolveToken(ctx, credentials.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, 1, repo.tokenLookups, "second resolution must be served from cache")
}

func TestService_ResolveToken_Unknown(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.ResolveToken(context.Background(), "no-such-token")
	assert.Error(t, err)
}

/*
TestService_ResolveToken_DegradedCache verifies that a cache outage does not
block resolution: the primary store still answers.
*/
func TestService_ResolveToken_DegradedCache(t *testing.T) {
	service, _, cache := newTestService()
	ctx := context.Background()

	credentials, err := service.Register(ctx, "margaux", "correct horse")
	require.NoError(t, err)

	cache.broken = true

	identity, err := service.ResolveToken(ctx, credentials.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, credentials.ID, identity.UserID)
}
