package movies

import (
	"context"
	"log/slog"
	"mozi/proj/internal/domain/fields"
	"mozi/proj/internal/domain/filters"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMoviesStorage struct {
	movies      map[int64]*models.Movie
	categoryIDs map[int64]bool
	nextID      int64
}

func newFakeMoviesStorage(categoryIDs ...int64) *fakeMoviesStorage {
	f := &fakeMoviesStorage{
		movies:      make(map[int64]*models.Movie),
		categoryIDs: make(map[int64]bool),
		nextID:      1,
	}
	for _, id := range categoryIDs {
		f.categoryIDs[id] = true
	}
	return f
}

func (f *fakeMoviesStorage) Get(_ context.Context, id int64) (*models.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *movie
	return &out, nil
}

func (f *fakeMoviesStorage) List(_ context.Context, title string, categoryID int64, _ filters.Filters) ([]models.Movie, int, error) {
	var out []models.Movie
	for _, movie := range f.movies {
		if categoryID != storage.EmptyIntValue && movie.CategoryID != categoryID {
			continue
		}
		out = append(out, *movie)
	}
	return out, len(out), nil
}

func (f *fakeMoviesStorage) Insert(_ context.Context, title, description, poster string, releaseDate fields.Date, categoryID int64) (*models.Movie, error) {
	if !f.categoryIDs[categoryID] {
		return nil, storage.ErrReferenceNotFound
	}
	movie := &models.Movie{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Poster:      poster,
		ReleaseDate: releaseDate,
		CategoryID:  categoryID,
		CreatedAt:   time.Now(),
	}
	f.movies[movie.ID] = movie
	f.nextID++
	out := *movie
	return &out, nil
}

func (f *fakeMoviesStorage) Update(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	if _, ok := f.movies[movie.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	if !f.categoryIDs[movie.CategoryID] {
		return nil, storage.ErrReferenceNotFound
	}
	m := *movie
	f.movies[movie.ID] = &m
	out := m
	return &out, nil
}

func (f *fakeMoviesStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

var (
	viewer = &models.User{ID: 1, Role: models.RoleViewer}
	editor = &models.User{ID: 2, Role: models.RoleEditor}
)

func newTestService(t *testing.T) *MovieService {
	t.Helper()
	return New(slog.Default(), newFakeMoviesStorage(1))
}

func testCreateInput() CreateInput {
	return CreateInput{
		Title:       "The Long Goodbye",
		ReleaseDate: fields.Date{Time: time.Date(1973, 3, 7, 0, 0, 0, 0, time.UTC)},
		CategoryID:  1,
	}
}

func TestCreate(t *testing.T) {
	service := newTestService(t)

	t.Run("viewer is denied", func(t *testing.T) {
		_, err := service.Create(context.Background(), viewer, testCreateInput())
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("anonymous is denied", func(t *testing.T) {
		_, err := service.Create(context.Background(), models.AnonymousUser, testCreateInput())
		assert.ErrorIs(t, err, authz.ErrUnauthenticated)
	})
	t.Run("editor creates", func(t *testing.T) {
		movie, err := service.Create(context.Background(), editor, testCreateInput())
		require.NoError(t, err)
		assert.Equal(t, "The Long Goodbye", movie.Title)
	})
	t.Run("unknown category", func(t *testing.T) {
		input := testCreateInput()
		input.CategoryID = 99
		_, err := service.Create(context.Background(), editor, input)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestUpdate(t *testing.T) {
	service := newTestService(t)
	movie, err := service.Create(context.Background(), editor, testCreateInput())
	require.NoError(t, err)

	t.Run("viewer is denied", func(t *testing.T) {
		_, err := service.Update(context.Background(), viewer, movie.ID, UpdateInput{Title: "Renamed"})
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("editor patches a single field", func(t *testing.T) {
		updated, err := service.Update(context.Background(), editor, movie.ID, UpdateInput{Title: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, movie.CategoryID, updated.CategoryID)
	})
	t.Run("unknown category is not a missing movie", func(t *testing.T) {
		_, err := service.Update(context.Background(), editor, movie.ID, UpdateInput{CategoryID: 99})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
	t.Run("missing movie", func(t *testing.T) {
		_, err := service.Update(context.Background(), editor, 999, UpdateInput{Title: "Renamed"})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestDelete(t *testing.T) {
	service := newTestService(t)
	movie, err := service.Create(context.Background(), editor, testCreateInput())
	require.NoError(t, err)

	t.Run("viewer is denied", func(t *testing.T) {
		_, err := service.Delete(context.Background(), viewer, movie.ID)
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("editor deletes", func(t *testing.T) {
		deleted, err := service.Delete(context.Background(), editor, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie.ID, deleted.ID)
	})
	t.Run("repeated delete reports not found", func(t *testing.T) {
		_, err := service.Delete(context.Background(), editor, movie.ID)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}
