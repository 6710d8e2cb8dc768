package handler

import (
	"net/http"

	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	users      usecase.UserUsecase
	createUser usecase.CreateUserUsecase
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Users      usecase.UserUsecase
	CreateUser usecase.CreateUserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		users:      params.Users,
		createUser: params.CreateUser,
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var cmd usecase.CreateUserCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	r := h.createUser.Execute(c.Request().Context(), cmd)

	return respond(c, http.StatusCreated, r, func(v *usecase.CreateUserResponse) any {
		return &IDResponse{ID: v.ID}
	})
}

// GetAllUsers handles GET /users?page=&perPage=.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	var query usecase.GetAllUsersQuery
	if err := bind(c, &query); err != nil {
		return err
	}

	r := h.users.GetAllUsers(c.Request().Context(), query)

	return respond(c, http.StatusOK, r, func(v []*entity.User) any {
		return toUserResponses(v)
	})
}

// GetUserByID handles GET /users/:id.
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	r := h.users.GetUserByID(c.Request().Context(), id)

	return respond(c, http.StatusOK, r, func(v *entity.User) any {
		return toUserResponse(v)
	})
}

// UpdateUserByID handles PATCH /users/:id.
func (h *UserHandler) UpdateUserByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := selfOrAdmin(c, id); err != nil {
		return err
	}

	var cmd usecase.UpdateUserCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}
	cmd.ID = id

	r := h.users.UpdateUserByID(c.Request().Context(), cmd)

	return respond(c, http.StatusOK, r, func(v *usecase.UpdateUserResponse) any {
		return &IDResponse{ID: v.ID}
	})
}

// ToggleActivityUserByID handles PATCH /users/:id/toggle-activity.
func (h *UserHandler) ToggleActivityUserByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	r := h.users.ToggleActivityUserByID(c.Request().Context(), id)

	return respond(c, http.StatusOK, r, func(v *usecase.ToggleActivityResponse) any {
		return &ActivityResponse{ID: v.ID, Active: v.Active}
	})
}
