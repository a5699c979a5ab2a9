package find_next_available_date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestExecute_TodayStillOpen(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 3, 10, 20, 59, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.IsToday)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_TodayExhausted(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, resp.IsToday)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), resp.Date)
}
