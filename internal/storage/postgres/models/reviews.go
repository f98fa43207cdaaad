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

type ReviewModel struct {
	DB *pgxpool.Pool
}

func (m *ReviewModel) Get(ctx context.Context, id int64) (*models.Review, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM reviews WHERE id = $1", id)
	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (m *ReviewModel) GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM reviews WHERE movie_id = $1 ORDER BY created_at DESC", movieID)
	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *ReviewModel) Insert(ctx context.Context, rating int32, description string, movieID, userID int64) (*models.Review, error) {
	rows, _ := m.DB.Query(
		ctx,
		"INSERT INTO reviews (rating, description, movie_id, user_id) VALUES ($1, $2, $3, $4) RETURNING *",
		rating,
		description,
		movieID,
		userID,
	)
	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode:
			return nil, storage.ErrConflict
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrFKViolationCode:
			return nil, storage.ErrReferenceNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (m *ReviewModel) Update(ctx context.Context, review *models.Review) (*models.Review, error) {
	rows, _ := m.DB.Query(
		ctx,
		"UPDATE reviews SET rating = $1, description = $2, updated_at = now() WHERE id = $3 RETURNING *",
		review.Rating,
		review.Description,
		review.ID,
	)
	updatedReview, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updatedReview, nil
}

func (m *ReviewModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
