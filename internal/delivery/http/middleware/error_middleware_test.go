package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vms/internal/delivery/http/response"
	domainerrors "vms/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/visits", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrAlreadyCheckedOut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "ALREADY_CHECKED_OUT", body.Error.Code)
	assert.Equal(t, "Visit is already checked out", body.Message)
}

func TestHandleHTTPError_WrappedAppErrorKeepsKind(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrVisitNotFound, "check-out failed")

	rec, body := handleError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VISIT_NOT_FOUND", body.Error.Code)
}

func TestHandleHTTPError_PayloadReachesClient(t *testing.T) {
	availableAt := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)

	rec, body := handleError(t, domainerrors.NewHostUnavailableError(availableAt))

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, body.Error.Payload)
	assert.Equal(t, "2026-03-09T14:00:00Z", body.Error.Payload["availableAt"])
	assert.Equal(t, "Unavailable", body.Error.Payload["kind"])
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	rec, body := handleError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "connection reset", body.Error.Details)
}
