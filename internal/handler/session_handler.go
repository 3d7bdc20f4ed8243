package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"hrflow/internal/errors"
	"hrflow/internal/flow"
	"hrflow/internal/navigation"
	"hrflow/internal/session"
)

type sessionOpener interface {
	Open(sessionID string) *session.Session
}

type flowRunner interface {
	Run(ctx context.Context, sess *session.Session, id string) (flow.Outcome, error)
}

// SessionHandler exposes the routing flow and the per-session state.
type SessionHandler struct {
	sessions sessionOpener
	flow     flowRunner
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(sessions sessionOpener, flow flowRunner) *SessionHandler {
	return &SessionHandler{sessions: sessions, flow: flow}
}

// Route godoc
// @Summary Resolve the landing screen
// @Description Fetches the signed-in employee, stores the profile for the session and returns where the app should go.
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} flow.Outcome
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /session/route [post]
func (h *SessionHandler) Route(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	outcome, err := h.flow.Run(c.Request().Context(), h.sessions.Open(claims.SessionID), claims.EmpID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outcome)
}

// Profile godoc
// @Summary Get the stored profile
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} navigation.UserRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /session/profile [get]
func (h *SessionHandler) Profile(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	rec, ok, err := h.sessions.Open(claims.SessionID).Profile.Get(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return respondError(c, errors.ErrProfileNotLoaded)
	}
	return c.JSON(http.StatusOK, rec)
}

// Screen godoc
// @Summary Get the current screen
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} navigation.Target
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /session/screen [get]
func (h *SessionHandler) Screen(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	target, ok, err := h.sessions.Open(claims.SessionID).Screen.Current(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if !ok {
		return respondError(c, errors.ErrNoScreen)
	}
	return c.JSON(http.StatusOK, target)
}

// Decide godoc
// @Summary Evaluate the routing rules
// @Description Pure evaluation of a record; nothing is stored and no screen changes.
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body navigation.UserRecord true "Record"
// @Success 200 {object} navigation.Decision
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /navigation/decide [post]
func (h *SessionHandler) Decide(c echo.Context) error {
	var rec navigation.UserRecord
	if err := c.Bind(&rec); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	decision, err := navigation.Decide(rec)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, decision)
}
