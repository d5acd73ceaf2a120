package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"vms/internal/delivery/http/response"
	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VisitHandler holds dependencies for visit lifecycle handlers.
type VisitHandler struct {
	uc     usecase.VisitUsecase
	logger *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(uc usecase.VisitUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckInRequest represents the request body captured at the front desk.
// An absent time_in records the visit as starting now.
type CheckInRequest struct {
	HostID     string     `json:"host_id" validate:"required,uuid"`
	FirstName  string     `json:"first_name" validate:"required"`
	LastName   string     `json:"last_name" validate:"required"`
	NationalID string     `json:"national_id" validate:"required"`
	Phone      string     `json:"phone" validate:"required"`
	Purpose    string     `json:"purpose" validate:"required"`
	TimeIn     *time.Time `json:"time_in"`
}

// CheckIn handles recording a new visit. The host's availability is resolved
// first; an unavailable host rejects the check-in with the next available
// instant when one exists.
func (h *VisitHandler) CheckIn(c echo.Context) error {
	officerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid host ID")
	}

	input := usecase.CheckInInput{
		HostID:           hostID,
		CheckinOfficerID: officerID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		NationalID:       req.NationalID,
		Phone:            req.Phone,
		Purpose:          entity.VisitPurpose(req.Purpose),
	}
	if req.TimeIn != nil {
		input.TimeIn = *req.TimeIn
	}

	visit, err := h.uc.CheckIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, visit, "Visitor checked in successfully")
}

// CheckOutRequest represents the request body for checking a visitor out.
// The only accepted payload is a status field carrying "checked-out".
type CheckOutRequest struct {
	Status string `json:"status"`
}

// CheckOut transitions a checked-in visit to checked-out. The payload is
// strict: any key other than status, or any status other than checked-out,
// rejects the request without touching the record.
func (h *VisitHandler) CheckOut(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	var req CheckOutRequest
	if err := decoder.Decode(&req); err != nil {
		return errors.WithStack(domainerrors.ErrCheckOutPayload)
	}
	if req.Status != entity.VisitStatusCheckedOut.String() {
		return errors.WithStack(domainerrors.ErrCheckOutPayload)
	}

	visit, err := h.uc.CheckOut(c.Request().Context(), visitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visitor checked out successfully")
}

// DeleteVisit permanently removes a visit record.
func (h *VisitHandler) DeleteVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	if err := h.uc.DeleteVisit(c.Request().Context(), visitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visit deleted successfully")
}

// ListVisits retrieves the visit log, newest first. All filters are optional.
func (h *VisitHandler) ListVisits(c echo.Context) error {
	input := usecase.ListVisitsInput{
		Status:  entity.VisitStatus(c.QueryParam("status")),
		Purpose: entity.VisitPurpose(c.QueryParam("purpose")),
		Limit:   parseIntParam(c.QueryParam("limit"), 20),
		Offset:  parseIntParam(c.QueryParam("offset"), 0),
	}

	if hostIDStr := c.QueryParam("host_id"); hostIDStr != "" {
		hostID, err := uuid.Parse(hostIDStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid host ID filter")
		}
		input.HostID = hostID
	}

	var err error
	if input.From, input.To, err = parseDateRange(c); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dates must be RFC 3339 timestamps")
	}

	output, err := h.uc.ListVisits(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Visits retrieved successfully")
}

// HostVisits retrieves the authenticated host's own visit log. The today
// query parameter narrows it to the current server day.
func (h *VisitHandler) HostVisits(c echo.Context) error {
	hostID, err := getUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.HostVisits(c.Request().Context(), hostID, usecase.HostVisitsInput{
		TodayOnly: c.QueryParam("today") == "true",
		Limit:     parseIntParam(c.QueryParam("limit"), 20),
		Offset:    parseIntParam(c.QueryParam("offset"), 0),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Visits retrieved successfully")
}

// Stats aggregates visit counts within a date range.
func (h *VisitHandler) Stats(c echo.Context) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Dates must be RFC 3339 timestamps")
	}

	stats, err := h.uc.Stats(c.Request().Context(), from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Visit statistics retrieved successfully")
}

// Purposes lists the accepted visit purposes.
func (h *VisitHandler) Purposes(c echo.Context) error {
	purposes := h.uc.Purposes(c.Request().Context())

	return response.Success(c, http.StatusOK, purposes, "Visit purposes retrieved successfully")
}

// Badge renders the QR badge image for a visit.
func (h *VisitHandler) Badge(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	png, err := h.uc.Badge(c.Request().Context(), visitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parseIntParam parses a positive integer query parameter, falling back to a
// default on absence or garbage.
func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}

	return parsed
}

// parseDateRange reads the optional from/to RFC 3339 query parameters.
func parseDateRange(c echo.Context) (from, to time.Time, err error) {
	if fromStr := c.QueryParam("from"); fromStr != "" {
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toStr := c.QueryParam("to"); toStr != "" {
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	return from, to, nil
}
