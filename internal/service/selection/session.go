// Package selection holds the date/time selection state owned by one open
// picker modal. Invalid interactions (past dates, unknown slots) are silent
// no-ops rather than errors; the session is discarded wholesale when the
// modal closes without confirming.
package selection

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

// Session is the selection state for one picker modal instance.
//
// Invariant: selectedSlot, when set, belongs to the available slot set for
// selectedDate. Every mutation that can change the available set funnels
// through reconcile, which is the single place a stale slot is replaced or
// cleared.
type Session struct {
	selectedDate time.Time
	selectedSlot types.TimeString
	cursor       domain.MonthCursor
}

// NewSession opens a selection session. The initial seed values come from
// whatever the caller already holds (a previously confirmed date/time); a
// missing or past initial date is silently discarded in favor of the next
// date with open slots.
func NewSession(initialDate *time.Time, initialSlot types.TimeString, now time.Time) *Session {
	var date time.Time
	if initialDate != nil && !initialDate.IsZero() && !domain.IsPastDate(*initialDate, now) {
		date = domain.DateOnly(*initialDate)
	} else {
		date = domain.FindNextAvailableDate(now)
	}

	s := &Session{
		selectedDate: date,
		selectedSlot: initialSlot,
		cursor:       domain.MonthCursorFor(date),
	}
	s.reconcile(now)
	return s
}

// reconcile realigns the selected slot with the available set for the
// selected date. Called exactly once per (date, now) change.
func (s *Session) reconcile(now time.Time) {
	available := domain.AvailableSlots(s.selectedDate, now)
	if len(available) == 0 {
		s.selectedSlot = ""
		return
	}

	if s.selectedSlot.IsZero() {
		s.selectedSlot = available[0]
		return
	}

	s.selectedSlot = domain.ReconcileSlot(s.selectedSlot, available)
}

// Recompute refreshes availability against a fresh "now". A session left
// open across a slot boundary picks up the newly passed slot here.
func (s *Session) Recompute(now time.Time) {
	s.reconcile(now)
}

// SelectDate replaces the selected date. Selecting a past calendar day is a
// no-op.
func (s *Session) SelectDate(date time.Time, now time.Time) {
	if domain.IsPastDate(date, now) {
		return
	}

	s.selectedDate = domain.DateOnly(date)
	s.cursor = domain.MonthCursorFor(s.selectedDate)
	s.reconcile(now)
}

// SelectSlot replaces the selected slot. Disabled and non-catalog slots are
// rejected silently.
func (s *Session) SelectSlot(slot types.TimeString, now time.Time) {
	if !domain.SlotInCatalog(slot) {
		return
	}
	if domain.IsSlotDisabled(s.selectedDate, slot, now) {
		return
	}
	s.selectedSlot = slot
}

// NextMonth moves the calendar cursor one month forward, wrapping December
// into January of the next year.
func (s *Session) NextMonth() {
	s.cursor = s.cursor.Next()
}

// PrevMonth moves the calendar cursor one month back, wrapping January into
// December of the previous year.
func (s *Session) PrevMonth() {
	s.cursor = s.cursor.Prev()
}

// SelectedDate returns the currently selected calendar day.
func (s *Session) SelectedDate() time.Time {
	return s.selectedDate
}

// SelectedSlot returns the currently selected slot; zero when none is
// selectable for the date.
func (s *Session) SelectedSlot() types.TimeString {
	return s.selectedSlot
}

// Cursor returns the calendar month the picker is showing.
func (s *Session) Cursor() domain.MonthCursor {
	return s.cursor
}

// Available returns the selectable slots for the selected date.
func (s *Session) Available(now time.Time) []types.TimeString {
	return domain.AvailableSlots(s.selectedDate, now)
}
