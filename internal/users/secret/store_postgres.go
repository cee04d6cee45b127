// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package secret

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/vinoteca/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreateSecret(context context.Context, secret *Secret) error {
	const query = `
		INSERT INTO users.secret (id, message, userid, createdat)
		VALUES ($1, $2, $3, NOW())
		RETURNING createdat`

	err := repository.db.QueryRow(context, query,
		secret.ID, secret.Message, secret.UserID,
	).Scan(&secret.CreatedAt)

	return dberr.Wrap(err, "create_secret")
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string) ([]*Secret, error) {
	const query = `
		SELECT id, message, userid, createdat
		FROM users.secret
		WHERE userid = $1
		ORDER BY createdat DESC`

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_secrets")
	}
	defer rows.Close()

	// A user with no notes gets [], not null.
	secrets := make([]*Secret, 0)
	for rows.Next() {
		s := &Secret{}
		if err := rows.Scan(&s.ID, &s.Message, &s.UserID, &s.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_secret")
		}
		secrets = append(secrets, s)
	}

	return secrets, nil
}
