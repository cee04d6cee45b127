// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wine

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const wineColumns = "id, name, slug, description, price, variety, country, createdat"

// ListWines builds the filtered listing query from typed filter values.
// The price threshold is always applied; absent means strictly above zero.
func (repository *PostgresRepository) ListWines(context context.Context, f Filter) ([]*Wine, error) {
	threshold := 0.0
	if f.PriceOver != nil {
		threshold = *f.PriceOver
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM catalog.wine
		WHERE price > $1
	`, wineColumns)
	args := []any{threshold}

	if f.Variety != "" {
		// Case-sensitive substring match; the service rejects LIKE
		// metacharacters before the filter reaches this layer.
		query += ` AND variety LIKE '%' || $2 || '%'`
		args = append(args, f.Variety)
	}

	query += ` ORDER BY name ASC`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_wines")
	}
	defer rows.Close()

	// An empty catalog serializes as [], not null.
	wines := make([]*Wine, 0)
	for rows.Next() {
		w := &Wine{}
		if err := rows.Scan(&w.ID, &w.Name, &w.Slug, &w.Description, &w.Price, &w.Variety, &w.Country, &w.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_wine")
		}
		wines = append(wines, w)
	}

	return wines, nil
}

func (repository *PostgresRepository) GetWine(context context.Context, id string) (*Wine, error) {
	query := fmt.Sprintf(`SELECT %s FROM catalog.wine WHERE id = $1`, wineColumns)

	w := &Wine{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&w.ID, &w.Name, &w.Slug, &w.Description, &w.Price, &w.Variety, &w.Country, &w.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_wine")
	}

	return w, nil
}

func (repository *PostgresRepository) FindByName(context context.Context, name string) (*Wine, error) {
	query := fmt.Sprintf(`SELECT %s FROM catalog.wine WHERE name = $1`, wineColumns)

	w := &Wine{}
	err := repository.db.QueryRow(context, query, name).Scan(
		&w.ID, &w.Name, &w.Slug, &w.Description, &w.Price, &w.Variety, &w.Country, &w.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_wine_by_name")
	}

	return w, nil
}

func (repository *PostgresRepository) CreateWine(context context.Context, w *Wine) error {
	const query = `
		INSERT INTO catalog.wine (id, name, slug, description, price, variety, country, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING createdat`

	err := repository.db.QueryRow(context, query,
		w.ID, w.Name, w.Slug, w.Description, w.Price, w.Variety, w.Country,
	).Scan(&w.CreatedAt)

	return dberr.Wrap(err, "create_wine")
}

func (repository *PostgresRepository) UpdateDescription(context context.Context, id, description string) (*Wine, error) {
	query := fmt.Sprintf(`
		UPDATE catalog.wine
		SET description = $2
		WHERE id = $1
		RETURNING %s`, wineColumns)

	w := &Wine{}
	err := repository.db.QueryRow(context, query, id, description).Scan(
		&w.ID, &w.Name, &w.Slug, &w.Description, &w.Price, &w.Variety, &w.Country, &w.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_wine_description")
	}

	return w, nil
}

func (repository *PostgresRepository) DeleteWine(context context.Context, id string) (*Wine, error) {
	query := fmt.Sprintf(`DELETE FROM catalog.wine WHERE id = $1 RETURNING %s`, wineColumns)

	w := &Wine{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&w.ID, &w.Name, &w.Slug, &w.Description, &w.Price, &w.Variety, &w.Country, &w.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_wine")
	}

	return w, nil
}

func (repository *PostgresRepository) Truncate(context context.Context) error {
	_, err := repository.db.Exec(context, `TRUNCATE TABLE catalog.wine`)
	if err != nil {
		return dberr.Wrap(err, "truncate_wines")
	}
	return nil
}
