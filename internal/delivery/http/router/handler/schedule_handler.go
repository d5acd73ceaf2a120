package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vms/internal/delivery/http/response"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/domain/policy"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScheduleHandler holds dependencies for availability schedule handlers.
// Hosts manage their own windows; receptionists manage windows on behalf of
// a host named in the route.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

// WindowRequest represents the request body for creating or updating a window.
type WindowRequest struct {
	StartAt time.Time `json:"start_at" validate:"required"`
	EndAt   time.Time `json:"end_at" validate:"required"`
}

// CreateWindow adds an availability window for the host.
func (h *ScheduleHandler) CreateWindow(c echo.Context) error {
	hostID, err := h.resolveHostID(c)
	if err != nil {
		return err
	}

	var req WindowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid window input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	window, err := h.uc.CreateWindow(c.Request().Context(), hostID, usecase.WindowInput{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, window, "Availability window created successfully")
}

// UpdateWindow replaces the bounds of one of the host's windows.
func (h *ScheduleHandler) UpdateWindow(c echo.Context) error {
	hostID, err := h.resolveHostID(c)
	if err != nil {
		return err
	}

	windowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid window ID")
	}

	var req WindowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid window input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	window, err := h.uc.UpdateWindow(c.Request().Context(), hostID, windowID, usecase.WindowInput{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, window, "Availability window updated successfully")
}

// DeleteWindow removes one of the host's windows.
func (h *ScheduleHandler) DeleteWindow(c echo.Context) error {
	hostID, err := h.resolveHostID(c)
	if err != nil {
		return err
	}

	windowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid window ID")
	}

	if err := h.uc.DeleteWindow(c.Request().Context(), hostID, windowID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Availability window deleted successfully")
}

// ListWindows retrieves the host's windows ordered by start time. Legacy
// overlapping pairs, when present, are reported alongside the windows.
func (h *ScheduleHandler) ListWindows(c echo.Context) error {
	hostID, err := h.resolveHostID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListWindows(c.Request().Context(), hostID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Availability windows retrieved successfully")
}

// Availability reports whether the host is available at the given instant,
// defaulting to now.
func (h *ScheduleHandler) Availability(c echo.Context) error {
	hostID, err := uuid.Parse(c.Param("hostID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid host ID")
	}

	at := time.Now()
	if atStr := c.QueryParam("at"); atStr != "" {
		if at, err = time.Parse(time.RFC3339, atStr); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "The at parameter must be an RFC 3339 timestamp")
		}
	}

	decision, err := h.uc.ResolveAvailability(c.Request().Context(), hostID, at)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decision, "Availability resolved successfully")
}

// resolveHostID determines which host's schedule is being managed: the hostID
// route parameter when present, otherwise the authenticated user. Managing
// another host's windows is a receptionist capability.
func (h *ScheduleHandler) resolveHostID(c echo.Context) (uuid.UUID, error) {
	hostIDStr := c.Param("hostID")
	if hostIDStr == "" {
		return getUserID(c)
	}

	hostID, err := uuid.Parse(hostIDStr)
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid host ID")
	}

	userID, err := getUserID(c)
	if err != nil {
		return uuid.Nil, err
	}
	if hostID == userID {
		return hostID, nil
	}

	role, ok := c.Get("role").(entity.Role)
	if !ok || !policy.Allows(policy.ActionScheduleManageAny, role) {
		return uuid.Nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return hostID, nil
}
