package users

import (
	"context"
	"errors"
	"log/slog"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type UsersStorage interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	log     *slog.Logger
	storage UsersStorage
}

func New(log *slog.Logger, storage UsersStorage) *UserService {
	return &UserService{
		log:     log,
		storage: storage,
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "id", id)
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// UpdateInput carries a partial user update. Zero values leave the
// corresponding field unchanged.
type UpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      models.Role
}

// Update patches the target user. Profile fields require the actor to be
// the target; the role field requires admin.
func (s *UserService) Update(ctx context.Context, actor *models.User, id int64, input UpdateInput) (*models.User, error) {
	const op = "users.UserService.Update"
	log := s.log.With("op", op, "id", id)
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changesRole := input.Role != "" && input.Role != user.Role
	if err := authz.CanUpdateUser(actor, user, changesRole); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error(err.Error())
			return nil, err
		}
		user.PasswordHash = passwordHash
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	updatedUser, err := s.storage.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("email already taken")
			return nil, ErrEmailTaken
		case errors.Is(err, storage.ErrNotFound):
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updatedUser, nil
}

// Delete removes the target user (self or admin) and returns the deleted
// entity. Reviews of the user are removed by the store's cascade.
func (s *UserService) Delete(ctx context.Context, actor *models.User, id int64) (*models.User, error) {
	const op = "users.UserService.Delete"
	log := s.log.With("op", op, "id", id)
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanDeleteUser(actor, user); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}
