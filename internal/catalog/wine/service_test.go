// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vinoteca/internal/catalog/wine"
	"github.com/taibuivan/vinoteca/internal/platform/apperr"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
	"github.com/taibuivan/vinoteca/pkg/pointer"
)

// memoryRepository is an in-memory Repository with the same filter
// semantics as the PostgreSQL implementation.
type memoryRepository struct {
	wines map[string]*wine.Wine
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{wines: make(map[string]*wine.Wine)}
}

func (repo *memoryRepository) ListWines(_ context.Context, f wine.Filter) ([]*wine.Wine, error) {
	threshold := 0.0
	if f.PriceOver != nil {
		threshold = *f.PriceOver
	}

	result := make([]*wine.Wine, 0)
	for _, w := range repo.wines {
		if w.Price <= threshold {
			continue
		}
		if f.Variety != "" && !strings.Contains(w.Variety, f.Variety) {
			continue
		}
		copied := *w
		result = append(result, &copied)
	}
	return result, nil
}

func (repo *memoryRepository) GetWine(_ context.Context, id string) (*wine.Wine, error) {
	w, ok := repo.wines[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (repo *memoryRepository) FindByName(_ context.Context, name string) (*wine.Wine, error) {
	for _, w := range repo.wines {
		if w.Name == name {
			copied := *w
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) CreateWine(_ context.Context, w *wine.Wine) error {
	for _, existing := range repo.wines {
		if existing.Name == w.Name {
			return dberr.ErrDuplicate
		}
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	copied := *w
	repo.wines[w.ID] = &copied
	return nil
}

func (repo *memoryRepository) UpdateDescription(_ context.Context, id, description string) (*wine.Wine, error) {
	w, ok := repo.wines[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	w.Description = description
	copied := *w
	return &copied, nil
}

func (repo *memoryRepository) DeleteWine(_ context.Context, id string) (*wine.Wine, error) {
	w, ok := repo.wines[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	delete(repo.wines, id)
	return w, nil
}

func (repo *memoryRepository) Truncate(_ context.Context) error {
	repo.wines = make(map[string]*wine.Wine)
	return nil
}

func newTestService() (*wine.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return wine.NewService(repo, slog.Default()), repo
}

func validWine(name string) *wine.Wine {
	return &wine.Wine{
		Name:        name,
		Description: "A balanced, food-friendly bottle.",
		Price:       25,
		Variety:     "red blend",
		Country:     pointer.To("Italy"),
	}
}

/*
TestService_CreateAndGet verifies that a created wine round-trips through
GetWine with all client-supplied fields intact plus generated id, slug,
and creation timestamp.
*/
func TestService_CreateAndGet(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	input := validWine("Barolo Riserva")
	require.NoError(t, service.CreateWine(ctx, input))

	assert.NotEmpty(t, input.ID)
	assert.Equal(t, "barolo-riserva", input.Slug)
	assert.False(t, input.CreatedAt.IsZero())

	fetched, err := service.GetWine(ctx, input.ID)
	require.NoError(t, err)

	assert.Equal(t, input.Name, fetched.Name)
	assert.Equal(t, input.Description, fetched.Description)
	assert.Equal(t, input.Price, fetched.Price)
	assert.Equal(t, input.Variety, fetched.Variety)
	require.NotNil(t, fetched.Country)
	assert.Equal(t, "Italy", *fetched.Country)
}

/*
TestService_Create_Validation exercises the per-field constraints of the
wine entity.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *wine.Wine)
	}{
		{"missing_name", func(w *wine.Wine) { w.Name = "" }},
		{"description_too_short", func(w *wine.Wine) { w.Description = "x" }},
		{"description_whitespace_only", func(w *wine.Wine) { w.Description = "   " }},
		{"description_too_long", func(w *wine.Wine) { w.Description = strings.Repeat("a", 301) }},
		{"price_below_minimum", func(w *wine.Wine) { w.Price = 0.5 }},
		{"price_above_maximum", func(w *wine.Wine) { w.Price = 1001 }},
		{"missing_variety", func(w *wine.Wine) { w.Variety = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService()

			input := validWine("Test Bottle")
			tt.mutate(input)

			err := service.CreateWine(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repo.wines)
		})
	}
}

/*
TestService_Create_DuplicateName verifies the name uniqueness invariant:
the second insert fails and exactly one record with the name survives.
*/
func TestService_Create_DuplicateName(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, service.CreateWine(ctx, validWine("Rioja Gran Reserva")))

	err := service.CreateWine(ctx, validWine("Rioja Gran Reserva"))
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Len(t, repo.wines, 1)
}

/*
TestService_ListWines_Filtering checks the substring variety filter, the
strictly-greater price threshold, their AND combination, and the
no-filter default.
*/
func TestService_ListWines_Filtering(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	seed := []*wine.Wine{
		{Name: "A", Description: "Dark and sturdy.", Price: 10, Variety: "red blend"},
		{Name: "B", Description: "Bright and tart.", Price: 20, Variety: "white"},
		{Name: "C", Description: "Deep and spicy.", Price: 30, Variety: "red zinfandel"},
	}
	for _, w := range seed {
		require.NoError(t, service.CreateWine(ctx, w))
	}

	tests := []struct {
		name      string
		filter    wine.Filter
		wantNames []string
	}{
		{"no_filters_returns_all", wine.Filter{}, []string{"A", "B", "C"}},
		{"variety_substring", wine.Filter{Variety: "red"}, []string{"A", "C"}},
		{"price_strictly_greater", wine.Filter{PriceOver: pointer.To(20.0)}, []string{"C"}},
		{"price_boundary_excluded", wine.Filter{PriceOver: pointer.To(30.0)}, []string{}},
		{"combined_and_semantics", wine.Filter{Variety: "red", PriceOver: pointer.To(15.0)}, []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wines, err := service.ListWines(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(wines))
			for _, w := range wines {
				names = append(names, w.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

/*
TestService_ListWines_MalformedPattern verifies that LIKE metacharacters
in the variety filter are rejected rather than passed through.
*/
func TestService_ListWines_MalformedPattern(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ListWines(context.Background(), wine.Filter{Variety: "re%d"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_UpdateDescription verifies that the partial update mutates
only the description and leaves every other field untouched.
*/
func TestService_UpdateDescription(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	input := validWine("Pinotage Estate")
	require.NoError(t, service.CreateWine(ctx, input))

	updated, err := service.UpdateDescription(ctx, input.ID, "A smoky, brambly red.")
	require.NoError(t, err)

	assert.Equal(t, "A smoky, brambly red.", updated.Description)
	assert.Equal(t, input.ID, updated.ID)
	assert.Equal(t, input.Name, updated.Name)
	assert.Equal(t, input.Slug, updated.Slug)
	assert.Equal(t, input.Price, updated.Price)
	assert.Equal(t, input.Variety, updated.Variety)
	assert.Equal(t, input.CreatedAt, updated.CreatedAt)
}

/*
TestService_Delete verifies that delete returns the prior record and a
subsequent get reports not found.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	input := validWine("Syrah Reserve")
	require.NoError(t, service.CreateWine(ctx, input))

	deleted, err := service.DeleteWine(ctx, input.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Name, deleted.Name)

	_, err = service.GetWine(ctx, input.ID)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_MalformedID verifies that a malformed identifier is a client
error on every id-taking operation, never a crash or a server error.
*/
func TestService_MalformedID(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	operations := map[string]func() error{
		"get": func() error {
			_, err := service.GetWine(ctx, "not-a-uuid")
			return err
		},
		"update": func() error {
			_, err := service.UpdateDescription(ctx, "not-a-uuid", "A new description.")
			return err
		},
		"delete": func() error {
			_, err := service.DeleteWine(ctx, "not-a-uuid")
			return err
		},
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			err := operation()
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_ResetCatalog verifies that the reset flag path clears the
table and installs the default seed set.
*/
func TestService_ResetCatalog(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	require.NoError(t, service.CreateWine(ctx, validWine("Leftover Bottle")))
	require.NoError(t, service.ResetCatalog(ctx))

	assert.Len(t, repo.wines, len(wine.DefaultCatalog()))

	_, err := repo.FindByName(ctx, "Leftover Bottle")
	assert.Error(t, err)
}
