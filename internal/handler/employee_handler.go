package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/service"
)

// EmployeeHandler serves employee details and admin operations.
type EmployeeHandler struct {
	svc    service.EmployeeService
	apiKey string
}

// NewEmployeeHandler creates an employee handler guarded by apiKey for the
// details endpoint.
func NewEmployeeHandler(svc service.EmployeeService, apiKey string) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, apiKey: apiKey}
}

// EmpDetailsResponse wraps the employee the way the mobile app expects.
type EmpDetailsResponse struct {
	Data *model.Employee `json:"data"`
}

// CreateEmployeeRequest represents an admin request to add an employee.
type CreateEmployeeRequest struct {
	EmpID       string     `json:"empId" validate:"required,max=64"`
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"omitempty,email"`
	Phone       string     `json:"phone"`
	Designation string     `json:"designation"`
	Department  string     `json:"department"`
	Status      string     `json:"status" validate:"omitempty,oneof=Active InActive"`
	InAppRole   string     `json:"inAppRole"`
	Company     string     `json:"company"`
	Branch      string     `json:"branch"`
	JoiningDate *time.Time `json:"joiningDate"`
	GrossSalary string     `json:"grossSalary" validate:"omitempty,numeric"`
	Password    string     `json:"password" validate:"omitempty,min=6"`
}

// SetStatusRequest represents a status change.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active InActive"`
}

// GetEmpDetails godoc
// @Summary Get employee details
// @Description Endpoint called by the mobile app after sign-in. The api key is part of the path.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Param apiKey path string true "API key"
// @Success 200 {object} EmpDetailsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /v1/get/getEmpDetails/{id}/{apiKey} [get]
func (h *EmployeeHandler) GetEmpDetails(c echo.Context) error {
	if subtle.ConstantTimeCompare([]byte(c.Param("apiKey")), []byte(h.apiKey)) != 1 {
		return respondError(c, errors.ErrInvalidAPIKey)
	}

	employee, err := h.svc.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, EmpDetailsResponse{Data: employee})
}

// ListEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param company query string false "Filter by company"
// @Success 200 {array} model.Employee
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context(), c.QueryParam("company"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

// CreateEmployee godoc
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_FAILED")
	}

	salary := decimal.Zero
	if req.GrossSalary != "" {
		parsed, err := decimal.NewFromString(req.GrossSalary)
		if err != nil {
			return badRequest("invalid gross salary", "INVALID_AMOUNT")
		}
		salary = parsed
	}

	employee := &model.Employee{
		EmpID:       req.EmpID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Designation: req.Designation,
		Department:  req.Department,
		Status:      req.Status,
		InAppRole:   req.InAppRole,
		Company:     req.Company,
		Branch:      req.Branch,
		JoiningDate: req.JoiningDate,
		GrossSalary: salary,
	}
	created, err := h.svc.CreateEmployee(c.Request().Context(), employee, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// SetStatus godoc
// @Summary Activate or deactivate an employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body SetStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id}/status [post]
func (h *EmployeeHandler) SetStatus(c echo.Context) error {
	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_FAILED")
	}

	id := c.Param("id")
	if err := h.svc.SetStatus(c.Request().Context(), id, req.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"empId":  id,
		"status": req.Status,
	})
}
