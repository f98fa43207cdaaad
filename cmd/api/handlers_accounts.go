package main

import (
	"errors"
	"mozi/proj/internal/lib/validator"
	"mozi/proj/internal/services/auth"
	"net/http"
)

type signupInput struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	var input signupInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, err := app.services.Auth.Signup(r.Context(), input.FirstName, input.LastName, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			app.Http.Conflict(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"user": user}, "Account successfully created")
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	token, err := app.services.Auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.Unauthorized(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"token": token.Token}, "")
}

func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if err := app.services.Auth.Logout(r.Context(), r.Header.Get(AuthTokenHeader)); err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, nil, "Successfully logged out")
}

type passwordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (app *Application) sendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var input passwordResetRequestInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	err := app.services.Auth.SendPasswordReset(r.Context(), input.Email)
	// an unknown email gets the same answer, so the endpoint can't be
	// used to probe which addresses are registered
	if err != nil && !errors.Is(err, auth.ErrUserNotFound) {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, nil, "If that email is registered, a reset message is on its way")
}

type passwordResetInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (app *Application) resetPassword(w http.ResponseWriter, r *http.Request) {
	var input passwordResetInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	if err := app.services.Auth.ResetPassword(r.Context(), input.Token, input.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidResetToken):
			app.Http.BadRequest(w, r, err.Error())
		case errors.Is(err, auth.ErrUserNotFound):
			app.Http.NotFound(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	app.Http.Ok(w, r, nil, "Password successfully changed")
}
