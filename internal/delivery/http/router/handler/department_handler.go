package handler

import (
	"net/http"

	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DepartmentHandler struct {
	departments usecase.DepartmentUsecase
}

func NewDepartmentHandler(departments usecase.DepartmentUsecase) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// CreateDepartment handles POST /departments.
func (h *DepartmentHandler) CreateDepartment(c echo.Context) error {
	var cmd usecase.CreateDepartmentCommand
	if err := bind(c, &cmd); err != nil {
		return err
	}

	r := h.departments.CreateDepartment(c.Request().Context(), cmd)

	return respond(c, http.StatusCreated, r, func(v *usecase.CreateDepartmentResponse) any {
		return &IDResponse{ID: v.ID}
	})
}

// GetAllDepartments handles GET /departments.
func (h *DepartmentHandler) GetAllDepartments(c echo.Context) error {
	r := h.departments.GetAllDepartments(c.Request().Context())

	return respond(c, http.StatusOK, r, func(v []*entity.Department) any {
		return toDepartmentResponses(v)
	})
}

// GetDepartmentByID handles GET /departments/:id.
func (h *DepartmentHandler) GetDepartmentByID(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	r := h.departments.GetDepartmentByID(c.Request().Context(), id)

	return respond(c, http.StatusOK, r, func(v *entity.Department) any {
		return toDepartmentResponse(v)
	})
}
