package main

import (
	"context"
	"io"
	"log/slog"
	"mozi/proj/internal/config"
	"mozi/proj/internal/domain/fields"
	"mozi/proj/internal/domain/filters"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/services"
	"mozi/proj/internal/services/auth"
	"mozi/proj/internal/services/categories"
	"mozi/proj/internal/services/movies"
	"mozi/proj/internal/services/reviews"
	"mozi/proj/internal/services/users"
	"mozi/proj/internal/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testUsersStorage struct {
	users  map[int64]*models.User
	nextID int64
}

func (f *testUsersStorage) Get(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (f *testUsersStorage) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *testUsersStorage) Insert(_ context.Context, firstName, lastName, email string, passwordHash []byte) (*models.User, error) {
	if _, err := f.GetByEmail(context.Background(), email); err == nil {
		return nil, storage.ErrConflict
	}
	user := &models.User{
		ID:           f.nextID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleViewer,
	}
	f.users[user.ID] = user
	f.nextID++
	out := *user
	return &out, nil
}

func (f *testUsersStorage) Update(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.users[user.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	u := *user
	f.users[user.ID] = &u
	out := u
	return &out, nil
}

func (f *testUsersStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *testUsersStorage) setRole(id int64, role models.Role) {
	f.users[id].Role = role
}

type testTokensStorage struct {
	byUser map[int64]*models.Token
}

func (f *testTokensStorage) Upsert(_ context.Context, userID int64, token string) (*models.Token, error) {
	t := &models.Token{UserID: userID, Token: token, CreatedAt: time.Now()}
	f.byUser[userID] = t
	out := *t
	return &out, nil
}

func (f *testTokensStorage) Get(_ context.Context, token string) (*models.Token, error) {
	for _, t := range f.byUser {
		if t.Token == token {
			out := *t
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *testTokensStorage) Delete(_ context.Context, token string) error {
	for userID, t := range f.byUser {
		if t.Token == token {
			delete(f.byUser, userID)
			return nil
		}
	}
	return storage.ErrNotFound
}

type testCategoriesStorage struct {
	categories map[int64]*models.Category
	nextID     int64
}

func (f *testCategoriesStorage) Get(_ context.Context, id int64) (*models.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *category
	return &out, nil
}

func (f *testCategoriesStorage) List(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (f *testCategoriesStorage) Insert(_ context.Context, name string) (*models.Category, error) {
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

func (f *testCategoriesStorage) Update(_ context.Context, category *models.Category) (*models.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	c := *category
	f.categories[category.ID] = &c
	out := c
	return &out, nil
}

func (f *testCategoriesStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

type testMoviesStorage struct {
	movies     map[int64]*models.Movie
	categories *testCategoriesStorage
	nextID     int64
}

func (f *testMoviesStorage) Get(_ context.Context, id int64) (*models.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *movie
	return &out, nil
}

func (f *testMoviesStorage) List(_ context.Context, title string, categoryID int64, _ filters.Filters) ([]models.Movie, int, error) {
	var out []models.Movie
	for _, movie := range f.movies {
		if categoryID != storage.EmptyIntValue && movie.CategoryID != categoryID {
			continue
		}
		out = append(out, *movie)
	}
	return out, len(out), nil
}

func (f *testMoviesStorage) Insert(_ context.Context, title, description, poster string, releaseDate fields.Date, categoryID int64) (*models.Movie, error) {
	if _, ok := f.categories.categories[categoryID]; !ok {
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

func (f *testMoviesStorage) Update(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	if _, ok := f.movies[movie.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	if _, ok := f.categories.categories[movie.CategoryID]; !ok {
		return nil, storage.ErrReferenceNotFound
	}
	m := *movie
	f.movies[movie.ID] = &m
	out := m
	return &out, nil
}

func (f *testMoviesStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.movies[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.movies, id)
	return nil
}

type testReviewsStorage struct {
	reviews map[int64]*models.Review
	movies  *testMoviesStorage
	nextID  int64
}

func (f *testReviewsStorage) Get(_ context.Context, id int64) (*models.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *review
	return &out, nil
}

func (f *testReviewsStorage) GetForMovie(_ context.Context, movieID int64) ([]models.Review, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.MovieID == movieID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (f *testReviewsStorage) Insert(_ context.Context, rating int32, description string, movieID, userID int64) (*models.Review, error) {
	if _, ok := f.movies.movies[movieID]; !ok {
		return nil, storage.ErrReferenceNotFound
	}
	for _, review := range f.reviews {
		if review.MovieID == movieID && review.UserID == userID {
			return nil, storage.ErrConflict
		}
	}
	review := &models.Review{
		ID:          f.nextID,
		Rating:      rating,
		Description: description,
		MovieID:     movieID,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.reviews[review.ID] = review
	f.nextID++
	out := *review
	return &out, nil
}

func (f *testReviewsStorage) Update(_ context.Context, review *models.Review) (*models.Review, error) {
	if _, ok := f.reviews[review.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	r := *review
	f.reviews[review.ID] = &r
	out := r
	return &out, nil
}

func (f *testReviewsStorage) Delete(_ context.Context, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(string, string, any) error { return nil }

type syncExecutor struct{}

func (syncExecutor) Add(task func()) { task() }

type testStorages struct {
	users      *testUsersStorage
	tokens     *testTokensStorage
	categories *testCategoriesStorage
	movies     *testMoviesStorage
	reviews    *testReviewsStorage
}

func NewTestApplication(cfg *config.Config, t *testing.T) (*Application, *testStorages) {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{
			AppSecret: "test-secret",
			Auth: config.Auth{
				TokenResolveTimeout: 3 * time.Second,
				ResetTokenTTL:       time.Hour,
			},
		}
	}
	stores := &testStorages{
		users:      &testUsersStorage{users: make(map[int64]*models.User), nextID: 1},
		tokens:     &testTokensStorage{byUser: make(map[int64]*models.Token)},
		categories: &testCategoriesStorage{categories: make(map[int64]*models.Category), nextID: 1},
	}
	stores.movies = &testMoviesStorage{movies: make(map[int64]*models.Movie), categories: stores.categories, nextID: 1}
	stores.reviews = &testReviewsStorage{reviews: make(map[int64]*models.Review), movies: stores.movies, nextID: 1}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApplication(cfg, log, &services.Services{
		Auth:       auth.New(log, stores.users, stores.tokens, noopMailer{}, syncExecutor{}, cfg.AppSecret, cfg.Auth.ResetTokenTTL),
		Users:      users.New(log, stores.users),
		Categories: categories.New(log, stores.categories),
		Movies:     movies.New(log, stores.movies),
		Reviews:    reviews.New(log, stores.reviews),
	})
	return app, stores
}

// seedUser registers a user with the given role and returns it together
// with a live session token.
func seedUser(t *testing.T, app *Application, stores *testStorages, email string, role models.Role) (*models.User, string) {
	t.Helper()
	user, err := app.services.Auth.Signup(context.Background(), "Test", "User", email, "pa55word")
	require.NoError(t, err)
	if role != models.RoleViewer {
		stores.users.setRole(user.ID, role)
		user.Role = role
	}
	token, err := app.services.Auth.Login(context.Background(), email, "pa55word")
	require.NoError(t, err)
	return user, token.Token
}

func seedMovie(t *testing.T, stores *testStorages) *models.Movie {
	t.Helper()
	category, err := stores.categories.Insert(context.Background(), "Drama")
	require.NoError(t, err)
	movie, err := stores.movies.Insert(
		context.Background(),
		"The Long Goodbye", "", "",
		fields.Date{Time: time.Date(1973, 3, 7, 0, 0, 0, 0, time.UTC)},
		category.ID,
	)
	require.NoError(t, err)
	return movie
}
