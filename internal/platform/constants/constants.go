// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Catalog: Field constraints for the wine entity.
  - Security: Access-token sizing and cache taxonomy.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "vinoteca-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Catalog Constraints

const (
	// DescriptionMinLen is the minimum length of a wine description after trimming.
	DescriptionMinLen = 2

	// DescriptionMaxLen is the maximum length of a wine description after trimming.
	DescriptionMaxLen = 300

	// PriceMin is the lowest accepted price for a catalog entry.
	PriceMin = 1.0

	// PriceMax is the highest accepted price for a catalog entry.
	PriceMax = 1000.0
)

// # Authentication

const (
	// AccessTokenByteLength is the entropy, in bytes, of an opaque access token.
	// Hex encoding doubles this on the wire (256 characters).
	AccessTokenByteLength = 128

	// AccessTokenCacheTTL bounds how long a resolved token identity stays in Redis.
	// Expiry only forces a PostgreSQL re-lookup; the token itself never expires.
	AccessTokenCacheTTL = 15 * time.Minute

	// UsernameMinLen and UsernameMaxLen bound the username at registration time.
	UsernameMinLen = 2
	UsernameMaxLen = 20

	// PasswordMinLen is the minimum plaintext password length at input time.
	PasswordMinLen = 5
)

// # Transport Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaUsers   = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixAccessToken = "auth:access_token:"
)
