// Copyright (c) 2026 Vinoteca. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

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

const userColumns = "id, username, passwordhash, accesstoken, createdat"

func (repository *PostgresRepository) CreateUser(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (id, username, passwordhash, accesstoken, createdat)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING createdat`

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.PasswordHash, user.AccessToken,
	).Scan(&user.CreatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users.account WHERE username = $1`, userColumns)
	return repository.scanOne(context, query, username, "find_user_by_username")
}

func (repository *PostgresRepository) FindByAccessToken(context context.Context, token string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users.account WHERE accesstoken = $1`, userColumns)
	return repository.scanOne(context, query, token, "find_user_by_access_token")
}

func (repository *PostgresRepository) scanOne(context context.Context, query, arg, operation string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(context, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.AccessToken, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, operation)
	}

	return user, nil
}
