package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestExecute_FutureDate(t *testing.T) {
	uc := newTestUseCase(datetime(2025, 3, 10, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		Date: datetime(2025, 3, 11, 0, 0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.SlotsPerDay)
	assert.Len(t, resp.Available, domain.SlotsPerDay)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Disabled)
	}
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[domain.SlotsPerDay-1].StartTime)
}

func TestExecute_TodayMidDay(t *testing.T) {
	uc := newTestUseCase(datetime(2025, 3, 10, 14, 45))

	resp, err := uc.Execute(context.Background(), &Request{
		Date: datetime(2025, 3, 10, 0, 0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, domain.SlotsPerDay)

	// 09:00-14:30 have passed; 15:00-21:00 remain.
	assert.Len(t, resp.Available, 13)
	assert.Equal(t, types.TimeString("15:00"), resp.Available[0])

	for _, slot := range resp.Slots {
		instant, err := slot.StartTime.OnDate(resp.Date)
		require.NoError(t, err)
		assert.Equal(t, instant.Before(datetime(2025, 3, 10, 14, 45)), slot.Disabled)
	}
}

func TestExecute_TodayExhausted(t *testing.T) {
	uc := newTestUseCase(datetime(2025, 3, 10, 21, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		Date: datetime(2025, 3, 10, 0, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Available)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Disabled)
	}
}

func TestExecute_PastDateAllDisabled(t *testing.T) {
	uc := newTestUseCase(datetime(2025, 3, 10, 8, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		Date: datetime(2025, 3, 9, 0, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Available)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Disabled)
	}
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(datetime(2025, 3, 10, 8, 0))

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
