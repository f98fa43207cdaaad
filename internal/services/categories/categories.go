package categories

import (
	"context"
	"errors"
	"log/slog"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"
)

type CategoriesStorage interface {
	Get(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryService struct {
	log     *slog.Logger
	storage CategoriesStorage
}

func New(log *slog.Logger, storage CategoriesStorage) *CategoryService {
	return &CategoryService{
		log:     log,
		storage: storage,
	}
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	const op = "categories.CategoryService.Get"
	log := s.log.With("op", op, "id", id)
	category, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("category not found")
			return nil, ErrCategoryNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	const op = "categories.CategoryService.List"
	log := s.log.With("op", op)
	categories, err := s.storage.List(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, actor *models.User, name string) (*models.Category, error) {
	const op = "categories.CategoryService.Create"
	log := s.log.With("op", op, "name", name)
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	category, err := s.storage.Insert(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("category already exists")
			return nil, ErrCategoryAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actor *models.User, id int64, name string) (*models.Category, error) {
	const op = "categories.CategoryService.Update"
	log := s.log.With("op", op, "id", id, "name", name)
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	category.Name = name
	updatedCategory, err := s.storage.Update(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("category already exists")
			return nil, ErrCategoryAlreadyExists
		case errors.Is(err, storage.ErrNotFound):
			log.Info("category not found")
			return nil, ErrCategoryNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updatedCategory, nil
}

func (s *CategoryService) Delete(ctx context.Context, actor *models.User, id int64) (*models.Category, error) {
	const op = "categories.CategoryService.Delete"
	log := s.log.With("op", op, "id", id)
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageCatalog(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("category not found")
			return nil, ErrCategoryNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return category, nil
}
