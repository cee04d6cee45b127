// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/vinoteca/internal/platform/apperr"
	"github.com/taibuivan/vinoteca/internal/platform/constants"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
	"github.com/taibuivan/vinoteca/internal/platform/validate"
	"github.com/taibuivan/vinoteca/pkg/slug"
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

func (service *Service) ListWines(context context.Context, filter Filter) ([]*Wine, error) {
	// Filters come straight from query parameters; reject anything that would
	// be interpreted as a LIKE metacharacter instead of passing it through.
	validator := &validate.Validator{}
	validator.NoneOf(FieldVariety, filter.Variety, "%", "_", "\\")
	if filter.PriceOver != nil {
		validator.Custom(FieldPrice, *filter.PriceOver < 0, "Must not be negative")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.ListWines(context, filter)
}

func (service *Service) GetWine(context context.Context, id string) (*Wine, error) {
	if err := uuid.Parse(id); err != nil {
		return nil, validate.RequiredError("id", "Must be a valid wine id")
	}
	wine, err := service.repo.GetWine(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Wine")
		}
		return nil, err
	}
	return wine, nil
}

func (service *Service) CreateWine(context context.Context, wine *Wine) error {
	wine.Description = strings.TrimSpace(wine.Description)

	validator := &validate.Validator{}
	validator.Required(FieldName, wine.Name).
		TrimmedLen(FieldDescription, wine.Description, constants.DescriptionMinLen, constants.DescriptionMaxLen).
		FloatRange(FieldPrice, wine.Price, constants.PriceMin, constants.PriceMax).
		Required(FieldVariety, wine.Variety)

	if err := validator.Err(); err != nil {
		return err
	}

	// Name uniqueness pre-check; the unique index backstops the race.
	if _, err := service.repo.FindByName(context, wine.Name); err == nil {
		return apperr.Conflict("Wine name is already in the catalog")
	}

	wine.ID = uuid.New()
	wine.Slug = slug.From(wine.Name)

	if err := service.repo.CreateWine(context, wine); err != nil {
		return err
	}

	service.logger.Info("wine_created", slog.String("name", wine.Name))
	return nil
}

func (service *Service) UpdateDescription(context context.Context, id, description string) (*Wine, error) {
	if err := uuid.Parse(id); err != nil {
		return nil, validate.RequiredError("id", "Must be a valid wine id")
	}

	description = strings.TrimSpace(description)
	validator := &validate.Validator{}
	validator.TrimmedLen(FieldDescription, description, constants.DescriptionMinLen, constants.DescriptionMaxLen)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	wine, err := service.repo.UpdateDescription(context, id, description)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Wine")
		}
		return nil, err
	}

	service.logger.Info("wine_description_updated", slog.String("wine_id", id))
	return wine, nil
}

func (service *Service) DeleteWine(context context.Context, id string) (*Wine, error) {
	if err := uuid.Parse(id); err != nil {
		return nil, validate.RequiredError("id", "Must be a valid wine id")
	}

	wine, err := service.repo.DeleteWine(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Wine")
		}
		return nil, err
	}

	service.logger.Warn("wine_deleted", slog.String("wine_id", id))
	return wine, nil
}

// ResetCatalog truncates the wine table and inserts the default seed set.
// Runs before the server accepts requests, never during normal operation.
func (service *Service) ResetCatalog(context context.Context) error {
	if err := service.repo.Truncate(context); err != nil {
		return err
	}

	for _, seeded := range DefaultCatalog() {
		if err := service.CreateWine(context, seeded); err != nil {
			return err
		}
	}

	service.logger.Info("catalog_reseeded", slog.Int("wines", len(DefaultCatalog())))
	return nil
}
