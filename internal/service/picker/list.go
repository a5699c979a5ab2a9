package picker

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

// listAdapter renders the entire slot catalog with disabled slots greyed and
// non-interactive. Focus moves only across enabled slots.
type listAdapter struct {
	focus int // index into the full catalog
}

func newListAdapter(session *selection.Session, now time.Time) *listAdapter {
	a := &listAdapter{}
	a.anchorFocus(session, now)
	return a
}

func (a *listAdapter) Kind() Kind {
	return KindList
}

// anchorFocus puts focus on the selected slot, falling back to the first
// enabled slot when there is no selection.
func (a *listAdapter) anchorFocus(session *selection.Session, now time.Time) {
	catalog := domain.GenerateAllSlots()

	if selected := session.SelectedSlot(); !selected.IsZero() {
		if i := slotIndex(catalog, selected); i >= 0 {
			a.focus = i
			return
		}
	}

	for i, slot := range catalog {
		if !domain.IsSlotDisabled(session.SelectedDate(), slot, now) {
			a.focus = i
			return
		}
	}

	a.focus = 0
}

// HandleInput processes arrow-key navigation and enter confirmation. Arrow
// keys move focus to the adjacent enabled slot, skipping disabled runs; when
// no enabled slot exists in the requested direction, focus stays put. Enter
// selects the focused slot only if it is enabled.
func (a *listAdapter) HandleInput(session *selection.Session, input Input, now time.Time) {
	switch input.Key {
	case "up":
		a.moveFocus(session, -1, now)
	case "down":
		a.moveFocus(session, +1, now)
	case "enter":
		catalog := domain.GenerateAllSlots()
		if a.focus >= 0 && a.focus < len(catalog) {
			// SelectSlot rejects disabled slots itself; no separate check.
			session.SelectSlot(catalog[a.focus], now)
		}
	}
}

func (a *listAdapter) moveFocus(session *selection.Session, direction int, now time.Time) {
	catalog := domain.GenerateAllSlots()
	date := session.SelectedDate()

	for i := a.focus + direction; i >= 0 && i < len(catalog); i += direction {
		if !domain.IsSlotDisabled(date, catalog[i], now) {
			a.focus = i
			return
		}
	}
}

// Render builds the full-catalog render model.
func (a *listAdapter) Render(session *selection.Session, now time.Time) TimeRenderModel {
	catalog := domain.GenerateAllSlots()
	date := session.SelectedDate()
	selected := session.SelectedSlot()

	model := TimeRenderModel{
		Kind:  KindList,
		Items: make([]TimeItem, len(catalog)),
	}

	enabled := 0
	for i, slot := range catalog {
		disabled := domain.IsSlotDisabled(date, slot, now)
		if !disabled {
			enabled++
		}
		model.Items[i] = TimeItem{
			Time:     slot.String(),
			Display:  domain.FormatTime12h(slot),
			Disabled: disabled,
			Focused:  i == a.focus,
			Selected: !selected.IsZero() && slot == selected,
		}
	}

	model.Empty = enabled == 0
	return model
}

var _ Adapter = (*listAdapter)(nil)

// slotIndex returns the catalog index of slot, or -1.
func slotIndex(catalog []types.TimeString, slot types.TimeString) int {
	for i, s := range catalog {
		if s == slot {
			return i
		}
	}
	return -1
}
