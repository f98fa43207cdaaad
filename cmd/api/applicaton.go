package main

import (
	"log/slog"
	"mozi/proj/internal/config"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
	decoder   *schema.Decoder
}

func NewApplication(cfg *config.Config, log *slog.Logger, services *services.Services) *Application {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("sortbymoviefield", validator.ValidateSortByMovieField); err != nil {
		panic(err)
	}
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: v,
		decoder:   decoder,
		services:  services,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
	return app
}
