package main

import (
	"errors"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/services/categories"
	"net/http"
)

func (app *Application) getCategories(w http.ResponseWriter, r *http.Request) {
	list, err := app.services.Categories.List(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"categories": list}, "")
}

func (app *Application) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	category, err := app.services.Categories.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, categories.ErrCategoryNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"category": category}, "")
}

type categoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (app *Application) createCategory(w http.ResponseWriter, r *http.Request) {
	var input categoryInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	category, err := app.services.Categories.Create(r.Context(), app.contextGetUser(r), input.Name)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, categories.ErrCategoryAlreadyExists):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Created(w, r, envelop{"category": category}, "")
}

func (app *Application) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input categoryInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	category, err := app.services.Categories.Update(r.Context(), app.contextGetUser(r), id, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, categories.ErrCategoryNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, categories.ErrCategoryAlreadyExists):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"category": category}, "")
}

func (app *Application) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	category, err := app.services.Categories.Delete(r.Context(), app.contextGetUser(r), id)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, categories.ErrCategoryNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"category": category}, "Category successfully deleted")
}
