package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrflow/internal/service"
)

// SeedHandler handles bulk employee imports.
type SeedHandler struct {
	employeeService service.EmployeeService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(employeeService service.EmployeeService) *SeedHandler {
	return &SeedHandler{employeeService: employeeService}
}

// SeedEmployeesResponse represents the seed response.
type SeedEmployeesResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
}

// SeedEmployees godoc
// @Summary Import employees
// @Description Creates missing employees and updates existing ones. Rows without an id or with an invalid salary, date or status are skipped.
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employees body []service.SeedRow true "Employees"
// @Success 200 {object} SeedEmployeesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/seed [post]
func (h *SeedHandler) SeedEmployees(c echo.Context) error {
	var rows []service.SeedRow
	if err := c.Bind(&rows); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	employees := make([]service.SeedEmployee, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		employee, err := row.ToSeedEmployee()
		if err != nil {
			skipped++
			continue
		}
		employees = append(employees, employee)
	}

	created, updated, err := h.employeeService.SeedEmployees(c.Request().Context(), employees)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SeedEmployeesResponse{
		Message: "employees seeded successfully",
		Created: created,
		Updated: updated,
		Skipped: skipped,
	})
}
