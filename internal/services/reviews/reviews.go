package reviews

import (
	"context"
	"errors"
	"log/slog"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/storage"
)

type ReviewsStorage interface {
	Get(ctx context.Context, id int64) (*models.Review, error)
	GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error)
	Insert(ctx context.Context, rating int32, description string, movieID, userID int64) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewService struct {
	log     *slog.Logger
	storage ReviewsStorage
}

func New(log *slog.Logger, storage ReviewsStorage) *ReviewService {
	return &ReviewService{
		log:     log,
		storage: storage,
	}
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*models.Review, error) {
	const op = "reviews.ReviewService.Get"
	log := s.log.With("op", op, "id", id)
	review, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("review not found")
			return nil, ErrReviewNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	const op = "reviews.ReviewService.GetForMovie"
	log := s.log.With("op", op, "movie_id", movieID)
	reviews, err := s.storage.GetForMovie(ctx, movieID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return reviews, nil
}

// Create stores a review owned by the actor. The user_id is always taken
// from the resolved session, never from the payload.
func (s *ReviewService) Create(ctx context.Context, actor *models.User, rating int32, description string, movieID int64) (*models.Review, error) {
	const op = "reviews.ReviewService.Create"
	log := s.log.With("op", op, "movie_id", movieID)
	if err := authz.CanCreateReview(actor); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	review, err := s.storage.Insert(ctx, rating, description, movieID, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			log.Info("review already exists", "user_id", actor.ID)
			return nil, ErrReviewAlreadyExists
		case errors.Is(err, storage.ErrReferenceNotFound):
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

// Update changes the rating/description of a review owned by the actor
// (or any review, for admins). The owning user and movie are immutable.
func (s *ReviewService) Update(ctx context.Context, actor *models.User, id int64, rating int32, description string) (*models.Review, error) {
	const op = "reviews.ReviewService.Update"
	log := s.log.With("op", op, "id", id)
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageReview(actor, review); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	review.Rating = rating
	if description != "" {
		review.Description = description
	}
	updatedReview, err := s.storage.Update(ctx, review)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("review not found")
			return nil, ErrReviewNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updatedReview, nil
}

// Delete removes a review owned by the actor (or any review, for admins)
// and returns the deleted entity. A repeated delete reports NotFound.
func (s *ReviewService) Delete(ctx context.Context, actor *models.User, id int64) (*models.Review, error) {
	const op = "reviews.ReviewService.Delete"
	log := s.log.With("op", op, "id", id)
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageReview(actor, review); err != nil {
		log.Info("denied", "reason", err.Error())
		return nil, err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("review not found")
			return nil, ErrReviewNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}
