// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package secret

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vinoteca/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateSecret stores a note owned by userID. The owner always comes from
// the authenticated caller; handlers never accept it from the body. The
// message is stored verbatim, including the empty string.
func (service *Service) CreateSecret(context context.Context, userID, message string) (*Secret, error) {
	secret := &Secret{
		ID:      uuid.New(),
		Message: message,
		UserID:  userID,
	}

	if err := service.repo.CreateSecret(context, secret); err != nil {
		return nil, err
	}

	service.logger.Info("secret_created", slog.String("user_id", userID))
	return secret, nil
}

// ListSecrets returns the caller's own notes and nothing else.
func (service *Service) ListSecrets(context context.Context, userID string) ([]*Secret, error) {
	return service.repo.ListByUser(context, userID)
}
