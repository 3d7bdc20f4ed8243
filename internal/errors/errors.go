package errors

import (
	"errors"
	"net/http"

	"hrflow/internal/navigation"
	"hrflow/internal/profile"
)

var (
	// ErrEmployeeNotFound is returned when an employee is not found.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidStatus is returned when a status outside Active/InActive is requested.
	ErrInvalidStatus = errors.New("status must be Active or InActive")
	// ErrInvalidAPIKey is returned when the details endpoint is called with a wrong key.
	ErrInvalidAPIKey = errors.New("invalid api key")
	// ErrProfileNotLoaded is returned when the session has no stored profile.
	ErrProfileNotLoaded = errors.New("profile not loaded for session")
	// ErrNoScreen is returned when the session has not navigated yet.
	ErrNoScreen = errors.New("no screen for session")
	// ErrEmployeeExists is returned when creating an employee id that is taken.
	ErrEmployeeExists = errors.New("employee already exists")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors, including wrapped ones, to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		return NewHTTPError(http.StatusNotFound, ErrEmployeeNotFound.Error(), "EMPLOYEE_NOT_FOUND")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidStatus.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidAPIKey):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidAPIKey.Error(), "INVALID_API_KEY")
	case errors.Is(err, ErrProfileNotLoaded):
		return NewHTTPError(http.StatusNotFound, ErrProfileNotLoaded.Error(), "PROFILE_NOT_LOADED")
	case errors.Is(err, ErrNoScreen):
		return NewHTTPError(http.StatusNotFound, ErrNoScreen.Error(), "NO_SCREEN")
	case errors.Is(err, ErrEmployeeExists):
		return NewHTTPError(http.StatusConflict, ErrEmployeeExists.Error(), "EMPLOYEE_EXISTS")
	case errors.Is(err, navigation.ErrInvalidRecord):
		return NewHTTPError(http.StatusUnprocessableEntity, navigation.ErrInvalidRecord.Error(), "INVALID_RECORD")
	case profile.IsKind(err, profile.KindNotFound):
		return NewHTTPError(http.StatusNotFound, "employee profile not found", "PROFILE_NOT_FOUND")
	case profile.IsKind(err, profile.KindServerError):
		return NewHTTPError(http.StatusBadGateway, "profile service error", "PROFILE_SERVER_ERROR")
	case profile.IsKind(err, profile.KindNetworkError):
		return NewHTTPError(http.StatusServiceUnavailable, "profile service unreachable", "PROFILE_NETWORK_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
