package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func slot(s string) types.TimeString {
	return types.TimeString(s)
}

func TestNewSession_NoSeed(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)

	s := NewSession(nil, "", now)

	assert.Equal(t, datetime(2025, 3, 10, 0, 0), s.SelectedDate())
	assert.Equal(t, slot("09:00"), s.SelectedSlot())
	assert.Equal(t, domain.MonthCursor{Year: 2025, Month: time.March}, s.Cursor())
}

func TestNewSession_SeedKept(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	seed := datetime(2025, 3, 20, 0, 0)

	s := NewSession(&seed, slot("14:00"), now)

	assert.Equal(t, datetime(2025, 3, 20, 0, 0), s.SelectedDate())
	assert.Equal(t, slot("14:00"), s.SelectedSlot())
}

func TestNewSession_PastSeedDiscarded(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	seed := datetime(2025, 3, 5, 0, 0)

	s := NewSession(&seed, "", now)

	assert.Equal(t, datetime(2025, 3, 10, 0, 0), s.SelectedDate())
}

func TestNewSession_TodayExhaustedMovesToTomorrow(t *testing.T) {
	now := datetime(2025, 3, 10, 21, 30)

	s := NewSession(nil, "", now)

	assert.Equal(t, datetime(2025, 3, 11, 0, 0), s.SelectedDate())
	assert.Equal(t, slot("09:00"), s.SelectedSlot())
}

func TestNewSession_StaleSeedSlotReconciled(t *testing.T) {
	// Seeded with today's 10:00, but it is already 10:10.
	now := datetime(2025, 3, 10, 10, 10)
	seed := datetime(2025, 3, 10, 0, 0)

	s := NewSession(&seed, slot("10:00"), now)

	assert.Equal(t, slot("10:30"), s.SelectedSlot())
}

func TestSelectDate_PastIsNoOp(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	s := NewSession(nil, "", now)

	s.SelectDate(datetime(2025, 3, 5, 0, 0), now)

	assert.Equal(t, datetime(2025, 3, 10, 0, 0), s.SelectedDate())
}

func TestSelectDate_ResetsCursorAndReconciles(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	s := NewSession(nil, "", now)
	s.SelectSlot(slot("15:00"), now)

	s.NextMonth()
	s.SelectDate(datetime(2025, 4, 2, 0, 0), now)

	assert.Equal(t, datetime(2025, 4, 2, 0, 0), s.SelectedDate())
	assert.Equal(t, domain.MonthCursor{Year: 2025, Month: time.April}, s.Cursor())
	// Slot survives: every catalog slot is open on a future day.
	assert.Equal(t, slot("15:00"), s.SelectedSlot())
}

func TestSelectDate_BackToTodayReconcilesSlot(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	future := datetime(2025, 3, 20, 0, 0)
	s := NewSession(&future, slot("09:00"), now)

	s.SelectDate(datetime(2025, 3, 10, 0, 0), now)

	// 09:00 has passed today; the nearest open slot replaces it.
	assert.Equal(t, slot("12:30"), s.SelectedSlot())
}

func TestSelectSlot_RejectsDisabledAndUnknown(t *testing.T) {
	now := datetime(2025, 3, 10, 12, 10)
	s := NewSession(nil, "", now)
	initial := s.SelectedSlot()

	s.SelectSlot(slot("09:00"), now) // passed
	assert.Equal(t, initial, s.SelectedSlot())

	s.SelectSlot(slot("13:15"), now) // not in catalog
	assert.Equal(t, initial, s.SelectedSlot())

	s.SelectSlot(slot("14:00"), now)
	assert.Equal(t, slot("14:00"), s.SelectedSlot())
}

func TestMonthNavigation_DoesNotTouchSelection(t *testing.T) {
	now := datetime(2025, 3, 10, 8, 0)
	s := NewSession(nil, "", now)

	s.NextMonth()
	s.NextMonth()
	s.PrevMonth()

	assert.Equal(t, domain.MonthCursor{Year: 2025, Month: time.April}, s.Cursor())
	assert.Equal(t, datetime(2025, 3, 10, 0, 0), s.SelectedDate())
}

func TestRecompute_SlotPassedWhileOpen(t *testing.T) {
	now := datetime(2025, 3, 10, 9, 50)
	s := NewSession(nil, "", now)
	s.SelectSlot(slot("10:00"), now)

	// Ten minutes later the chosen slot has passed.
	s.Recompute(datetime(2025, 3, 10, 10, 5))

	assert.Equal(t, slot("10:30"), s.SelectedSlot())
}

func TestRecompute_DayExhaustedClearsSlot(t *testing.T) {
	now := datetime(2025, 3, 10, 20, 45)
	today := datetime(2025, 3, 10, 0, 0)
	s := NewSession(&today, slot("21:00"), now)

	s.Recompute(datetime(2025, 3, 10, 21, 10))

	assert.True(t, s.SelectedSlot().IsZero())
}
