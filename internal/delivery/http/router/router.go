// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/router/handler"
	"usersvc/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	DepartmentHandler *handler.DepartmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	departmentHandler *handler.DepartmentHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		departmentHandler: params.DepartmentHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/recover-password", r.authHandler.RecoverPassword)
		authGroup.PUT("/credentials/:id", r.authHandler.UpdateCredentials, r.authMiddleware.Authenticate)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("", r.userHandler.CreateUser, requireAdmin)
		userGroup.GET("", r.userHandler.GetAllUsers)
		userGroup.GET("/:id", r.userHandler.GetUserByID)
		userGroup.PATCH("/:id", r.userHandler.UpdateUserByID)
		userGroup.PATCH("/:id/toggle-activity", r.userHandler.ToggleActivityUserByID, requireAdmin)
	}

	departmentGroup := e.Group("/departments")
	departmentGroup.Use(r.authMiddleware.Authenticate)
	{
		departmentGroup.POST("", r.departmentHandler.CreateDepartment, requireAdmin)
		departmentGroup.GET("", r.departmentHandler.GetAllDepartments)
		departmentGroup.GET("/:id", r.departmentHandler.GetDepartmentByID)
	}
}
