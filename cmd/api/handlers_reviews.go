package main

import (
	"errors"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/services/reviews"
	"net/http"
)

func (app *Application) getReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	review, err := app.services.Reviews.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, reviews.ErrReviewNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"review": review}, "")
}

func (app *Application) getMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	reviewList, err := app.services.Reviews.GetForMovie(r.Context(), movieID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"reviews": reviewList}, "")
}

type createReviewInput struct {
	Rating      *int32 `json:"rating" validate:"required,gte=0,lte=5"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	MovieID     int64  `json:"movie_id" validate:"required,gte=1"`
}

func (app *Application) createReview(w http.ResponseWriter, r *http.Request) {
	var input createReviewInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	review, err := app.services.Reviews.Create(r.Context(), app.contextGetUser(r), *input.Rating, input.Description, input.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, reviews.ErrMovieNotFound):
			app.Http.UnprocessableEntity(w, r, map[string]string{"movie_id": err.Error()})
		case errors.Is(err, reviews.ErrReviewAlreadyExists):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"review": review}, "")
}

type updateReviewInput struct {
	Rating      *int32 `json:"rating" validate:"required,gte=0,lte=5"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (app *Application) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input updateReviewInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	review, err := app.services.Reviews.Update(r.Context(), app.contextGetUser(r), id, *input.Rating, input.Description)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, reviews.ErrReviewNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"review": review}, "")
}

func (app *Application) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	review, err := app.services.Reviews.Delete(r.Context(), app.contextGetUser(r), id)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, reviews.ErrReviewNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"review": review}, "Review successfully deleted")
}
