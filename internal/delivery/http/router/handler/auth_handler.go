package handler

import (
	"net/http"

	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler serves login, password recovery and credential changes.
type AuthHandler struct {
	login             usecase.LoginUsecase
	updateCredentials usecase.UpdateCredentialsUsecase
	recoverPassword   usecase.RecoverPasswordUsecase
}

type AuthHandlerParams struct {
	fx.In

	Login             usecase.LoginUsecase
	UpdateCredentials usecase.UpdateCredentialsUsecase
	RecoverPassword   usecase.RecoverPasswordUsecase
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		login:             params.Login,
		updateCredentials: params.UpdateCredentials,
		recoverPassword:   params.RecoverPassword,
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var cmd usecase.LoginCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	r := h.login.Execute(c.Request().Context(), cmd)

	return respond(c, http.StatusOK, r, func(v *usecase.LoginResponse) any {
		return toLoginResponse(v)
	})
}

// RecoverPassword handles POST /auth/recover-password.
func (h *AuthHandler) RecoverPassword(c echo.Context) error {
	var cmd usecase.RecoverPasswordCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	r := h.recoverPassword.Execute(c.Request().Context(), cmd)

	return respond(c, http.StatusOK, r, func(v *usecase.RecoverPasswordResponse) any {
		return &RecoverPasswordResponse{Email: v.Email}
	})
}

// UpdateCredentials handles PUT /auth/credentials/:id.
func (h *AuthHandler) UpdateCredentials(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := selfOrAdmin(c, id); err != nil {
		return err
	}

	var cmd usecase.UpdateCredentialsCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}
	cmd.UserID = id

	r := h.updateCredentials.Execute(c.Request().Context(), cmd)

	return respond(c, http.StatusOK, r, func(v *usecase.UpdateCredentialsResponse) any {
		return &CredentialsResponse{UserID: v.UserID, Email: v.Email}
	})
}
