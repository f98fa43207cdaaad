package services

import (
	"log/slog"
	"mozi/proj/internal/config"
	"mozi/proj/internal/mails"
	"mozi/proj/internal/services/auth"
	"mozi/proj/internal/services/categories"
	"mozi/proj/internal/services/movies"
	"mozi/proj/internal/services/reviews"
	"mozi/proj/internal/services/users"
	storagemodels "mozi/proj/internal/storage/postgres/models"
)

type Services struct {
	Auth       *auth.AuthService
	Users      *users.UserService
	Categories *categories.CategoryService
	Movies     *movies.MovieService
	Reviews    *reviews.ReviewService
}

func New(log *slog.Logger, cfg *config.Config, models *storagemodels.Models, taskExecutor auth.TaskExecutor) *Services {
	mailer := mails.New(
		cfg.SMTPServer.Host,
		cfg.SMTPServer.Port,
		cfg.SMTPServer.Timeout,
		cfg.SMTPServer.Username,
		cfg.SMTPServer.Password,
		cfg.SMTPServer.Sender,
		cfg.SMTPServer.RetriesCount,
	)
	return &Services{
		Auth: auth.New(
			log,
			models.User,
			models.Token,
			mailer,
			taskExecutor,
			cfg.AppSecret,
			cfg.Auth.ResetTokenTTL,
		),
		Users:      users.New(log, models.User),
		Categories: categories.New(log, models.Category),
		Movies:     movies.New(log, models.Movie),
		Reviews:    reviews.New(log, models.Review),
	}
}
