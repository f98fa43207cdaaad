package models

import (
	"context"
	"errors"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/storage"
	"mozi/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryModel struct {
	DB *pgxpool.Pool
}

func (m *CategoryModel) Get(ctx context.Context, id int64) (*models.Category, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM categories WHERE id = $1", id)
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (m *CategoryModel) List(ctx context.Context) ([]models.Category, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM categories ORDER BY name ASC")
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (m *CategoryModel) Insert(ctx context.Context, name string) (*models.Category, error) {
	rows, _ := m.DB.Query(ctx, "INSERT INTO categories (name) VALUES ($1) RETURNING *", name)
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &category, nil
}

func (m *CategoryModel) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE categories SET name = $1 WHERE id = $2 RETURNING *",
		category.Name,
		category.ID,
	)
	updatedCategory, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
			return nil, storage.ErrConflict
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updatedCategory, nil
}

func (m *CategoryModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
