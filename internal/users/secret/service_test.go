// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package secret_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vinoteca/internal/users/secret"
)

type memoryRepository struct {
	secrets []*secret.Secret
}

func (repo *memoryRepository) CreateSecret(_ context.Context, s *secret.Secret) error {
	s.CreatedAt = time.Now()
	copied := *s
	repo.secrets = append(repo.secrets, &copied)
	return nil
}

func (repo *memoryRepository) ListByUser(_ context.Context, userID string) ([]*secret.Secret, error) {
	result := make([]*secret.Secret, 0)
	for _, s := range repo.secrets {
		if s.UserID == userID {
			copied := *s
			result = append(result, &copied)
		}
	}
	return result, nil
}

func newTestService() (*secret.Service, *memoryRepository) {
	repo := &memoryRepository{}
	return secret.NewService(repo, slog.Default()), repo
}

/*
TestService_CreateSecret verifies that the owner is taken from the caller
argument and that the stored note round-trips through the listing.
*/
func TestService_CreateSecret(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.CreateSecret(ctx, "user-1", "the 1996 vintage is overrated")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	listed, err := service.ListSecrets(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.Message, listed[0].Message)
}

// An empty message is a valid note; the field carries no constraints.
func TestService_CreateSecret_EmptyMessage(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateSecret(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Empty(t, created.Message)
	assert.Equal(t, "user-1", created.UserID)
}

/*
TestService_ListSecrets_OwnerScoped verifies that each user sees only their
own notes, and that a user with no notes gets an empty slice.
*/
func TestService_ListSecrets_OwnerScoped(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateSecret(ctx, "user-1", "note one")
	require.NoError(t, err)
	_, err = service.CreateSecret(ctx, "user-1", "note two")
	require.NoError(t, err)
	_, err = service.CreateSecret(ctx, "user-2", "someone else's note")
	require.NoError(t, err)

	mine, err := service.ListSecrets(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, s := range mine {
		assert.Equal(t, "user-1", s.UserID)
	}

	theirs, err := service.ListSecrets(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	nobody, err := service.ListSecrets(ctx, "user-3")
	require.NoError(t, err)
	assert.NotNil(t, nobody)
	assert.Empty(t, nobody)
}
