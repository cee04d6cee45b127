// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/vinoteca/internal/platform/apperr"
	"github.com/taibuivan/vinoteca/internal/platform/ctxutil"
	"github.com/taibuivan/vinoteca/internal/platform/respond"
	"github.com/taibuivan/vinoteca/internal/platform/sec"
)

// TokenResolver defines the interface needed to resolve bearer tokens in middleware.
//
// # Why an interface?
//
// Defining TokenResolver here decouples the middleware from the `account`
// service implementation, allowing us to easily inject fakes during unit testing.
type TokenResolver interface {
	// ResolveToken maps an opaque access token to the owning caller identity.
	// Any failure — unknown token, cache fault, store fault — must surface as
	// an error so the gate can fail closed.
	ResolveToken(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts and resolves the opaque token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous ([RequireAuth] gates protected routes).
//  3. If present, resolve the token against the user store via [TokenResolver].
//  4. Inject [*sec.Identity] into the request context for downstream use.
//
// The gate is stateless: every request is resolved independently, with no
// session and no retry. A token resolves to the same identity for the
// lifetime of the account (tokens never rotate or expire).
//
// # Parameters
//   - resolver: The TokenResolver instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Resolution (fail closed) ─────────────────────────────
			tokenStr := parts[1]
			identity, err := resolver.ResolveToken(request.Context(), tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid access token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized before the handler runs.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := ctxutil.GetAuthUser(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
