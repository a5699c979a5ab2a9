package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/framelight/FLS-BookingService/internal/usecase/get_available_slots"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotDate time.Time
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	uc.gotDate = req.Date
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
			Slots: []getAvailableSlots.Slot{
				{StartTime: types.TimeString("09:00"), Disabled: true},
				{StartTime: types.TimeString("09:30"), Disabled: false},
			},
			Available: []types.TimeString{"09:30"},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2025-03-10", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, uc.gotDate.Day())

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-03-10", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].Time)
	assert.Equal(t, "9:00 AM", resp.Slots[0].Display)
	assert.True(t, resp.Slots[0].Disabled)
	assert.Equal(t, []string{"09:30"}, resp.Available)
}

func TestHandle_MissingDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=10-03-2025", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: errors.New("clock skew")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/slots?date=2025-03-10", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
