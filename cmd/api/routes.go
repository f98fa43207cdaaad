package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)
	router.Use(app.Authenticate)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.getMovies)
			r.Get("/{id}", app.getMovie)
			r.Get("/{id}/reviews", app.getMovieReviews)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Post("/", app.createMovie)
				r.Patch("/{id}", app.updateMovie)
				r.Delete("/{id}", app.deleteMovie)
			})
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", app.getCategories)
			r.Get("/{id}", app.getCategory)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Post("/", app.createCategory)
				r.Patch("/{id}", app.updateCategory)
				r.Delete("/{id}", app.deleteCategory)
			})
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/{id}", app.getReview)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Post("/", app.createReview)
				r.Patch("/{id}", app.updateReview)
				r.Delete("/{id}", app.deleteReview)
			})
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}", app.getUser)
			r.Group(func(r chi.Router) {
				r.Use(app.requireAuthenticatedUser)
				r.Patch("/{id}", app.updateUser)
				r.Delete("/{id}", app.deleteUser)
			})
		})
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/signup", app.signup)
			r.Post("/login", app.login)
			r.With(app.requireAuthenticatedUser).Post("/logout", app.logout)
			r.Post("/password-reset", app.sendPasswordReset)
			r.Put("/password", app.resetPassword)
		})
	})
	return router
}
