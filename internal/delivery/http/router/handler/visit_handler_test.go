package handler

import (
	"net/http"
	"testing"
	"time"

	"vms/internal/domain/entity"
	domainerrors "vms/internal/domain/errors"
	mockUsecase "vms/internal/mocks/usecase"
	"vms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVisitHandler_CheckOut_RejectsMalformedPayloads(t *testing.T) {
	for name, body := range map[string]string{
		"extra key":    `{"status":"checked-out","extra":1}`,
		"empty object": `{}`,
		"wrong status": `{"status":"checked-in"}`,
		"not json":     `checked-out`,
	} {
		t.Run(name, func(t *testing.T) {
			visitID := uuid.New()

			uc := mockUsecase.NewMockVisitUsecase(t)
			h := NewVisitHandler(uc, newDiscardLogger())

			c, _ := newAuthedContext(http.MethodPatch, "/visits/"+visitID.String(), body, uuid.New(), entity.RoleSoldier)
			c.SetParamNames("id")
			c.SetParamValues(visitID.String())

			err := h.CheckOut(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrCheckOutPayload))
			uc.AssertNotCalled(t, "CheckOut")
		})
	}
}

func TestVisitHandler_CheckOut_AcceptsStrictPayload(t *testing.T) {
	visitID := uuid.New()

	uc := mockUsecase.NewMockVisitUsecase(t)
	h := NewVisitHandler(uc, newDiscardLogger())

	c, rec := newAuthedContext(http.MethodPatch, "/visits/"+visitID.String(), `{"status":"checked-out"}`, uuid.New(), entity.RoleSoldier)
	c.SetParamNames("id")
	c.SetParamValues(visitID.String())

	uc.EXPECT().
		CheckOut(c.Request().Context(), visitID).
		Return(&entity.VisitRecord{ID: visitID, Status: entity.VisitStatusCheckedOut}, nil)

	require.NoError(t, h.CheckOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVisitHandler_CheckIn_ForwardsSuppliedTimeIn(t *testing.T) {
	hostID := uuid.New()
	officerID := uuid.New()
	timeIn := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	uc := mockUsecase.NewMockVisitUsecase(t)
	h := NewVisitHandler(uc, newDiscardLogger())

	body := `{"host_id":"` + hostID.String() + `","first_name":"jane","last_name":"doe","national_id":"A123456","phone":"0700000000","purpose":"business meeting","time_in":"2025-06-02T10:30:00Z"}`
	c, rec := newAuthedContext(http.MethodPost, "/visits", body, officerID, entity.RoleSoldier)

	uc.EXPECT().
		CheckIn(c.Request().Context(), mock.MatchedBy(func(input usecase.CheckInInput) bool {
			return input.HostID == hostID && input.TimeIn.Equal(timeIn)
		})).
		Return(&entity.VisitRecord{ID: uuid.New(), HostID: hostID}, nil)

	require.NoError(t, h.CheckIn(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
