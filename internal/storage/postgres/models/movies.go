package models

import (
	"context"
	"errors"
	"fmt"
	"mozi/proj/internal/domain/fields"
	"mozi/proj/internal/domain/filters"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/storage"
	"mozi/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

// ratingExpr computes the aggregate rating on read instead of keeping
// a denormalized column in sync.
const ratingExpr = `(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviews.movie_id = movies.id) AS rating`

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT id, title, description, poster, release_date, category_id, created_at, `+ratingExpr+`
		FROM movies WHERE id = $1`,
		id,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) Insert(ctx context.Context, title, description, poster string, releaseDate fields.Date, categoryID int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO movies (title, description, poster, release_date, category_id) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, poster, release_date, category_id, created_at, 0::float8 AS rating`,
		title,
		description,
		poster,
		releaseDate,
		categoryID,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
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
	return &movie, nil
}

func (m *MovieModel) List(ctx context.Context, title string, categoryID int64, filters filters.Filters) ([]models.Movie, int, error) {
	query := fmt.Sprintf(`
	SELECT count(*) OVER(), id, title, description, poster, release_date, category_id, created_at, `+ratingExpr+`
	FROM movies
	WHERE (title ILIKE '%%' || $1 || '%%' OR $1 = '')
	AND (category_id = $2 OR $2 = %d)
	ORDER BY %s %s, id ASC
	LIMIT $3 OFFSET $4
	`, storage.EmptyIntValue, filters.SortColumn(), filters.SortDirection())
	args := []any{title, categoryID, filters.Limit(), filters.Offset()}
	rows, _ := m.DB.Query(ctx, query, args...)
	type row struct {
		Count int
		models.Movie
	}
	outputRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, 0, err
	}
	if len(outputRows) == 0 {
		return []models.Movie{}, 0, nil
	}
	movies := make([]models.Movie, 0, len(outputRows))
	for _, row := range outputRows {
		movies = append(movies, row.Movie)
	}
	totalRecords := outputRows[0].Count
	return movies, totalRecords, nil
}

func (m *MovieModel) Update(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE movies SET title = $1, description = $2, poster = $3, release_date = $4, category_id = $5
		WHERE id = $6
		RETURNING id, title, description, poster, release_date, category_id, created_at, `+ratingExpr,
		movie.Title,
		movie.Description,
		movie.Poster,
		movie.ReleaseDate,
		movie.CategoryID,
		movie.ID,
	)
	updatedMovie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		var pgxErr *pgconn.PgError
		switch {
		case errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrFKViolationCode:
			return nil, storage.ErrReferenceNotFound
		case errors.Is(err, pgx.ErrNoRows):
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updatedMovie, nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, "DELETE FROM movies WHERE id = $1", id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
