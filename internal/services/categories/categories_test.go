package categories

import (
	"context"
	"log/slog"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoriesStorage struct {
	categories map[int64]*models.Category
	nextID     int64
}

func newFakeCategoriesStorage() *fakeCategoriesStorage {
	return &fakeCategoriesStorage{categories: make(map[int64]*models.Category), nextID: 1}
}

func (f *fakeCategoriesStorage) Get(_ context.Context, id int64) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *category
	return &out, nil
}

func (f *fakeCategoriesStorage) List(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *fakeCategoriesStorage) Insert(_ context.Context, name string) (*models.Category, error) {
	for _, category := range f.categories {
		if category.Name == name {
			return nil, storage.ErrConflict
		}
	}
	category := &models.Category{ID: f.nextID, Name: name}
	f.categories[category.ID] = category
	f.nextID++
	out := *category
	return &out, nil
}

func (f *fakeCategoriesStorage) Update(_ context.Context, category *models.Category) (*models.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	for id, existing := range f.categories {
		if id != category.ID && existing.Name == category.Name {
			return nil, storage.ErrConflict
		}
	}
	c := *category
	f.categories[category.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeCategoriesStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

var (
	viewer = &models.User{ID: 1, Role: models.RoleViewer}
	editor = &models.User{ID: 2, Role: models.RoleEditor}
	admin  = &models.User{ID: 3, Role: models.RoleAdmin}
)

func newTestService(t *testing.T) *CategoryService {
	t.Helper()
	return New(slog.Default(), newFakeCategoriesStorage())
}

func TestCreate(t *testing.T) {
	service := newTestService(t)

	t.Run("viewer is denied", func(t *testing.T) {
		_, err := service.Create(context.Background(), viewer, "Drama")
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("anonymous is denied", func(t *testing.T) {
		_, err := service.Create(context.Background(), models.AnonymousUser, "Drama")
		assert.ErrorIs(t, err, authz.ErrUnauthenticated)
	})
	t.Run("editor creates", func(t *testing.T) {
		category, err := service.Create(context.Background(), editor, "Drama")
		require.NoError(t, err)
		assert.Equal(t, "Drama", category.Name)
	})
	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := service.Create(context.Background(), admin, "Drama")
		assert.ErrorIs(t, err, ErrCategoryAlreadyExists)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	service := newTestService(t)
	category, err := service.Create(context.Background(), editor, "Drama")
	require.NoError(t, err)

	t.Run("viewer cannot update", func(t *testing.T) {
		_, err := service.Update(context.Background(), viewer, category.ID, "Thriller")
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("admin updates", func(t *testing.T) {
		updated, err := service.Update(context.Background(), admin, category.ID, "Thriller")
		require.NoError(t, err)
		assert.Equal(t, "Thriller", updated.Name)
	})
	t.Run("missing category", func(t *testing.T) {
		_, err := service.Update(context.Background(), admin, 999, "Horror")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
	t.Run("viewer cannot delete", func(t *testing.T) {
		_, err := service.Delete(context.Background(), viewer, category.ID)
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
	t.Run("editor deletes", func(t *testing.T) {
		deleted, err := service.Delete(context.Background(), editor, category.ID)
		require.NoError(t, err)
		assert.Equal(t, category.ID, deleted.ID)
		_, err = service.Delete(context.Background(), editor, category.ID)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
