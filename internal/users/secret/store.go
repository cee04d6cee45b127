// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package secret

import "context"

/*
Repository defines persistent storage for secret notes.

Listing is always owner-scoped; there is intentionally no unscoped listing
operation on this interface.
*/
type Repository interface {
	// CreateSecret persists a new note.
	CreateSecret(ctx context.Context, secret *Secret) error

	// ListByUser returns every note owned by the given account, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Secret, error)
}
