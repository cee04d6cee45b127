// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/vinoteca/internal/platform/apperr"
	"github.com/taibuivan/vinoteca/internal/platform/constants"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
	"github.com/taibuivan/vinoteca/internal/platform/sec"
	"github.com/taibuivan/vinoteca/internal/platform/validate"
	"github.com/taibuivan/vinoteca/pkg/uuid"
)

type Service struct {
	repo   UserRepository
	cache  TokenCacheRepository
	logger *slog.Logger
}

func NewService(repo UserRepository, cache TokenCacheRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
Register creates a new account, mints its lifetime access token, and returns
the credentials to be revealed to the caller.

Parameters:
  - context: Request context
  - username: Desired handle, unique across all accounts
  - password: Plaintext password, hashed before storage

Returns:
  - *Credentials: id, username, and the freshly minted access token
  - error: VALIDATION_ERROR on constraint failures, CONFLICT on a taken
    username, INTERNAL_ERROR on storage or crypto faults
*/
func (service *Service) Register(context context.Context, username, password string) (*Credentials, error) {
	username = strings.TrimSpace(username)

	validator := &validate.Validator{}
	validator.TrimmedLen(FieldUsername, username, constants.UsernameMinLen, constants.UsernameMaxLen).
		MinLen(FieldPassword, password, constants.PasswordMinLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Uniqueness pre-check; the unique index backstops the race.
	if _, err := service.repo.FindByUsername(context, username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	passwordHash, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	accessToken, err := sec.GenerateAccessToken()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		AccessToken:  accessToken,
	}

	if err := service.repo.CreateUser(context, user); err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict("Username is already taken")
		}
		return nil, err
	}

	service.logger.Info("user_registered", slog.String("username", user.Username))

	credentials := user.Credentials()
	return &credentials, nil
}

/*
Login verifies a username and password pair and re-reveals the account's
standing access token.

An unknown username and a wrong password produce the same NOT_FOUND outcome,
so the response does not disclose which half of the pair was wrong. Storage
faults surface separately as server errors.
*/
func (service *Service) Login(context context.Context, username, password string) (*Credentials, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).
		Required(FieldPassword, password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.repo.FindByUsername(context, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.NotFound("User")
	}

	service.logger.Info("user_logged_in", slog.String("username", user.Username))

	credentials := user.Credentials()
	return &credentials, nil
}

/*
ResolveToken maps a presented bearer token to the caller identity. It
implements the authentication gate's resolver contract.

Resolution order:
 1. Redis cache under auth:access_token:<token>.
 2. On miss, exact match against the PostgreSQL accesstoken column, then
    repopulate the cache best-effort.

An unknown token returns an error; a degraded cache does not.
*/
func (service *Service) ResolveToken(context context.Context, token string) (*sec.Identity, error) {
	identity, err := service.cache.GetIdentity(context, token)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		// Cache outage: fall through to the primary store.
		service.logger.Warn("token_cache_degraded", slog.String("error", err.Error()))
	}

	user, err := service.repo.FindByAccessToken(context, token)
	if err != nil {
		return nil, err
	}

	identity = &sec.Identity{
		UserID:   user.ID,
		Username: user.Username,
	}

	if err := service.cache.SetIdentity(context, token, identity); err != nil {
		service.logger.Warn("token_cache_write_failed", slog.String("error", err.Error()))
	}

	return identity, nil
}
