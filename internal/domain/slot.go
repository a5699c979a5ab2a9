package domain

import (
	"time"

	"github.com/framelight/FLS-BookingService/pkg/types"
)

// GenerateAllSlots returns the fixed catalog of bookable time slots: every
// SlotStepMinutes from DayOpenTime to DayCloseTime inclusive, in order.
// The catalog is the same for every date.
func GenerateAllSlots() []types.TimeString {
	open, _ := types.NewTimeStringFromString(DayOpenTime)
	close, _ := types.NewTimeStringFromString(DayCloseTime)

	slots := make([]types.TimeString, 0, SlotsPerDay)
	current := open

	for !current.IsAfter(close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// SlotInCatalog reports whether slot is one of the generated catalog values.
func SlotInCatalog(slot types.TimeString) bool {
	for _, s := range GenerateAllSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// IsSlotDisabled reports whether a slot cannot be selected for the given
// date. Slots on any day other than today are never disabled; there is no
// cross-client conflict detection, availability is a pure function of the
// wall clock. Slots today are disabled once their instant has passed.
//
// Past calendar days are the date-selection layer's concern, not this
// filter's; for them every slot reads as disabled because its instant is
// before now.
func IsSlotDisabled(date time.Time, slot types.TimeString, now time.Time) bool {
	if !IsSameDay(date, now) && !IsPastDate(date, now) {
		return false
	}

	instant, err := slot.OnDate(date)
	if err != nil {
		return true
	}
	return instant.Before(now)
}

// AvailableSlots returns the catalog slots selectable on the given date,
// preserving catalog order. For today this can be empty once every slot has
// passed; callers fall through to the next calendar day.
func AvailableSlots(date time.Time, now time.Time) []types.TimeString {
	all := GenerateAllSlots()
	available := make([]types.TimeString, 0, len(all))

	for _, slot := range all {
		if !IsSlotDisabled(date, slot, now) {
			available = append(available, slot)
		}
	}

	return available
}

// FindNextAvailableDate scans forward from today, inclusive, for the first
// date with at least one selectable slot. The scan is bounded by
// NextDateSearchHorizonDays; if nothing is found within the horizon it falls
// back to today, a degenerate but non-fatal result.
func FindNextAvailableDate(now time.Time) time.Time {
	today := DateOnly(now)

	for i := 0; i < NextDateSearchHorizonDays; i++ {
		candidate := today.AddDate(0, 0, i)
		if len(AvailableSlots(candidate, now)) > 0 {
			return candidate
		}
	}

	return today
}

// ReconcileSlot replaces a selection that is no longer available with the
// nearest valid one. If current is still in available it is returned
// unchanged. Otherwise the available slot with the smallest absolute
// minute-of-day distance wins; ties resolve to the earliest catalog-order
// match because the comparison is strict.
//
// available must be non-empty; callers with an empty set must move to a
// different date first.
func ReconcileSlot(current types.TimeString, available []types.TimeString) types.TimeString {
	for _, slot := range available {
		if slot == current {
			return current
		}
	}

	currentMinutes, err := current.MinuteOfDay()
	if err != nil {
		// Malformed current selection: fall back to the first open slot.
		return available[0]
	}

	best := available[0]
	bestDistance := -1

	for _, slot := range available {
		minutes, err := slot.MinuteOfDay()
		if err != nil {
			continue
		}

		distance := minutes - currentMinutes
		if distance < 0 {
			distance = -distance
		}

		if bestDistance < 0 || distance < bestDistance {
			best = slot
			bestDistance = distance
		}
	}

	return best
}
