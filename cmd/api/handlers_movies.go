package main

import (
	"errors"
	"mozi/proj/internal/domain/fields"
	"mozi/proj/internal/domain/filters"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/services/movies"
	"mozi/proj/internal/storage"
	"net/http"
	"time"
)

var movieSortSafelist = []string{"id", "title", "description", "poster", "release_date", "category_id", "rating", "created_at"}

type listMoviesInput struct {
	Title      string `schema:"title"`
	CategoryID int64  `schema:"category_id" validate:"omitempty,gte=1"`
	Page       int    `schema:"page" validate:"gte=1"`
	PageSize   int    `schema:"page_size" validate:"gte=1,lte=100"`
	Sort       string `schema:"sort" validate:"sortbymoviefield"`
}

func (app *Application) getMovies(w http.ResponseWriter, r *http.Request) {
	input := listMoviesInput{Page: 1, PageSize: 20, Sort: "id"}
	if err := app.decoder.Decode(&input, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	categoryID := input.CategoryID
	if categoryID == 0 {
		categoryID = storage.EmptyIntValue
	}
	movieList, totalRecords, err := app.services.Movies.List(r.Context(), input.Title, categoryID, filters.Filters{
		Page:         input.Page,
		PageSize:     input.PageSize,
		Sort:         input.Sort,
		SortSafelist: movieSortSafelist,
	})
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movies": movieList, "total_records": totalRecords}, "")
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	movie, err := app.services.Movies.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

type createMovieInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Poster      string `json:"poster"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
	CategoryID  int64  `json:"category_id" validate:"required,gte=1"`
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input createMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	releaseDate, _ := time.Parse("2006-01-02", input.ReleaseDate)
	movie, err := app.services.Movies.Create(r.Context(), app.contextGetUser(r), movies.CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Poster:      input.Poster,
		ReleaseDate: fields.Date{Time: releaseDate},
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, movies.ErrCategoryNotFound):
			app.Http.UnprocessableEntity(w, r, map[string]string{"category_id": err.Error()})
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"movie": movie}, "")
}

type updateMovieInput struct {
	Title       string `json:"title" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Poster      string `json:"poster"`
	ReleaseDate string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID  int64  `json:"category_id" validate:"omitempty,gte=1"`
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input updateMovieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	var releaseDate fields.Date
	if input.ReleaseDate != "" {
		t, _ := time.Parse("2006-01-02", input.ReleaseDate)
		releaseDate = fields.Date{Time: t}
	}
	movie, err := app.services.Movies.Update(r.Context(), app.contextGetUser(r), id, movies.UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		Poster:      input.Poster,
		ReleaseDate: releaseDate,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, movies.ErrCategoryNotFound):
			app.Http.UnprocessableEntity(w, r, map[string]string{"category_id": err.Error()})
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	movie, err := app.services.Movies.Delete(r.Context(), app.contextGetUser(r), id)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, movies.ErrMovieNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "Movie successfully deleted")
}
