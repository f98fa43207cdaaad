package models

import (
	"context"
	"errors"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenModel struct {
	DB *pgxpool.Pool
}

// Upsert stores token as the single active token for the user,
// replacing any previously issued value.
func (m *TokenModel) Upsert(ctx context.Context, userID int64, token string) (*models.Token, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO tokens (user_id, token) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET token = excluded.token, created_at = now()
		RETURNING *`,
		userID,
		token,
	)
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Token])
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (m *TokenModel) Get(ctx context.Context, token string) (*models.Token, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM tokens WHERE token = $1", token)
	t, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Token])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (m *TokenModel) Delete(ctx context.Context, token string) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM tokens WHERE token = $1", token)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
