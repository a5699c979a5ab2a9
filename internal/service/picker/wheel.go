package picker

import (
	"math"
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
)

// Wheel visual decay: items fade and shrink with distance from the centered
// row, bottoming out so far rows remain legible.
const (
	wheelOpacityStep = 0.30
	wheelOpacityMin  = 0.20
	wheelScaleStep   = 0.06
	wheelScaleMin    = 0.82
)

// wheelAdapter renders only the available slots in a vertically scrolling
// snap-to-item list. Disabled slots are never shown. Scroll input moves a
// continuous offset; release snaps to the nearest item boundary and commits
// it as the selection.
type wheelAdapter struct {
	offset float64 // scroll position in item heights
}

func newWheelAdapter(session *selection.Session, now time.Time) *wheelAdapter {
	a := &wheelAdapter{}
	a.anchorOffset(session, now)
	return a
}

func (a *wheelAdapter) Kind() Kind {
	return KindWheel
}

// anchorOffset centers the wheel on the selected slot.
func (a *wheelAdapter) anchorOffset(session *selection.Session, now time.Time) {
	available := session.Available(now)
	if i := slotIndex(available, session.SelectedSlot()); i >= 0 {
		a.offset = float64(i)
		return
	}
	a.offset = 0
}

// HandleInput accumulates scroll deltas and snaps on release. The available
// set is re-derived from the session on every event, so a slot passing while
// the wheel is open simply drops out of the item list.
func (a *wheelAdapter) HandleInput(session *selection.Session, input Input, now time.Time) {
	available := session.Available(now)
	if len(available) == 0 {
		a.offset = 0
		return
	}

	// The set can shrink between events while the wheel sits open; realign
	// the offset before interpreting the input so a snap never lands past
	// the last remaining item.
	a.offset = clamp(a.offset, 0, float64(len(available)-1))

	if input.Scroll != 0 {
		a.offset = clamp(a.offset+input.Scroll, 0, float64(len(available)-1))
	}

	if input.Release {
		index := int(math.Round(a.offset))
		a.offset = float64(index)
		session.SelectSlot(available[index], now)
	}
}

// Render builds the available-only render model with per-item visual weight.
func (a *wheelAdapter) Render(session *selection.Session, now time.Time) TimeRenderModel {
	available := session.Available(now)
	selected := session.SelectedSlot()

	model := TimeRenderModel{
		Kind:  KindWheel,
		Items: make([]TimeItem, len(available)),
		Empty: len(available) == 0,
	}
	if model.Empty {
		return model
	}

	centered := int(math.Round(clamp(a.offset, 0, float64(len(available)-1))))

	for i, slot := range available {
		distance := math.Abs(float64(i) - a.offset)
		model.Items[i] = TimeItem{
			Time:     slot.String(),
			Display:  domain.FormatTime12h(slot),
			Selected: !selected.IsZero() && slot == selected,
			Centered: i == centered,
			Opacity:  math.Max(wheelOpacityMin, 1-wheelOpacityStep*distance),
			Scale:    math.Max(wheelScaleMin, 1-wheelScaleStep*distance),
		}
	}

	return model
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ Adapter = (*wheelAdapter)(nil)
