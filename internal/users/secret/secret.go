// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package secret implements private per-user notes. Every operation is
// scoped to the authenticated owner; there is no cross-user visibility.
package secret

import "time"

// Secret is a private note owned by exactly one account.
//
// The message is free-form: empty notes are allowed and no length limit
// is enforced.
type Secret struct {
	ID      string `json:"id"`
	Message string `json:"message"`

	// UserID is the owning account. Assigned from the authenticated
	// caller, never from client input.
	UserID string `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
