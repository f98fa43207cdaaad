package movies

import (
	"context"
	"errors"
	"log/slog"
	"mozi/proj/internal/domain/fields"
	"mozi/proj/internal/domain/filters"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"
)

type MoviesStorage interface {
	Get(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context, title string, categoryID int64, filters filters.Filters) ([]models.Movie, int, error)
	Insert(ctx context.Context, title, description, poster string, releaseDate fields.Date, categoryID int64) (*models.Movie, error)
	Update(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
	}
}

func (s *MovieService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) List(ctx context.Context, title string, categoryID int64, filters filters.Filters) ([]models.Movie, int, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op, "title", title, "category_id", categoryID)
	movies, totalRecords, err := s.storage.List(ctx, title, categoryID, filters)
	if err != nil {
		log.Error(err.Error())
		return nil, 0, err
	}
	return movies, totalRecords, nil
}

type CreateInput struct {
	Title       string
	Description string
	Poster      string
	ReleaseDate fields.Date
	CategoryID  int64
}

func (s *MovieService) Create(ctx context.Context, actor *models.User, input CreateInput) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	log := s.log.With("op", op, "title", input.Title)
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	movie, err := s.storage.Insert(ctx, input.Title, input.Description, input.Poster, input.ReleaseDate, input.CategoryID)
	if err != nil {
		if errors.Is(err, storage.ErrReferenceNotFound) {
			log.Info("category not found", "category_id", input.CategoryID)
			return nil, ErrCategoryNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// UpdateInput carries a partial movie update. Zero values leave the
// corresponding field unchanged.
type UpdateInput struct {
	Title       string
	Description string
	Poster      string
	ReleaseDate fields.Date
	CategoryID  int64
}

func (s *MovieService) Update(ctx context.Context, actor *models.User, id int64, input UpdateInput) (*models.Movie, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "id", id)
	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if input.Title != "" {
		movie.Title = input.Title
	}
	if input.Description != "" {
		movie.Description = input.Description
	}
	if input.Poster != "" {
		movie.Poster = input.Poster
	}
	if !input.ReleaseDate.IsZero() {
		movie.ReleaseDate = input.ReleaseDate
	}
	if input.CategoryID != 0 {
		movie.CategoryID = input.CategoryID
	}
	updatedMovie, err := s.storage.Update(ctx, movie)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrReferenceNotFound):
			log.Info("category not found", "category_id", movie.CategoryID)
			return nil, ErrCategoryNotFound
		case errors.Is(err, storage.ErrNotFound):
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updatedMovie, nil
}

func (s *MovieService) Delete(ctx context.Context, actor *models.User, id int64) (*models.Movie, error) {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}
