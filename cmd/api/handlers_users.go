package main

import (
	"errors"
	"mozi/proj/internal/domain/models"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services/authz"
	"mozi/proj/internal/services/users"
	"net/http"
)

func (app *Application) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	user, err := app.services.Users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

type updateUserInput struct {
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,min=8,max=72"`
	Role      string `json:"role" validate:"omitempty,oneof=viewer editor admin"`
}

func (app *Application) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input updateUserInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, err := app.services.Users.Update(r.Context(), app.contextGetUser(r), id, users.UpdateInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      models.Role(input.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, users.ErrUserNotFound):
			app.Http.NotFound(w, r, err.Error())
		case errors.Is(err, users.ErrEmailTaken):
			app.Http.Conflict(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "")
}

func (app *Application) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	user, err := app.services.Users.Delete(r.Context(), app.contextGetUser(r), id)
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrUnauthenticated):
			app.Http.Unauthorized(w, r, err.Error())
		case errors.Is(err, authz.ErrUnauthorized):
			app.Http.Forbidden(w, r, err.Error())
		case errors.Is(err, users.ErrUserNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, envelop{"user": user}, "User successfully deleted")
}
