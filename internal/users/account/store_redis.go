// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/vinoteca/internal/platform/constants"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
	"github.com/taibuivan/vinoteca/internal/platform/sec"
)

/*
RedisTokenCacheRepository caches resolved token identities in Redis under
the auth:access_token: prefix, keeping repeated gate checks off PostgreSQL.

Entries expire after [constants.AccessTokenCacheTTL]; expiry only forces a
re-lookup, it never invalidates the token itself.
*/
type RedisTokenCacheRepository struct {
	client *redis.Client
}

func NewRedisTokenCacheRepository(client *redis.Client) *RedisTokenCacheRepository {
	return &RedisTokenCacheRepository{client: client}
}

func (repository *RedisTokenCacheRepository) GetIdentity(context stdctx.Context, token string) (*sec.Identity, error) {
	payload, err := repository.client.Get(context, cacheKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dberr.ErrNotFound
		}
		return nil, fmt.Errorf("token cache: get failed: %w", err)
	}

	identity := &sec.Identity{}
	if err := json.Unmarshal([]byte(payload), identity); err != nil {
		// A corrupt entry is treated as a miss; the primary store re-resolves.
		return nil, dberr.ErrNotFound
	}

	return identity, nil
}

func (repository *RedisTokenCacheRepository) SetIdentity(context stdctx.Context, token string, identity *sec.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("token cache: marshal failed: %w", err)
	}

	if err := repository.client.Set(context, cacheKey(token), payload, constants.AccessTokenCacheTTL).Err(); err != nil {
		return fmt.Errorf("token cache: set failed: %w", err)
	}

	return nil
}

func cacheKey(token string) string {
	return constants.RedisPrefixAccessToken + token
}
