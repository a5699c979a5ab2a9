// Package picker provides the two interchangeable presentation adapters over
// a selection session: a discrete list for pointer/keyboard input and a
// continuous snap wheel for touch input. Neither owns availability logic;
// both read and write the session and turn it into render models.
package picker

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
)

// Kind names an adapter variant.
type Kind string

const (
	KindList  Kind = "list"
	KindWheel Kind = "wheel"
)

// Capabilities is the device probe taken once per wizard session.
type Capabilities struct {
	CoarsePointer bool
	ViewportWidth int
}

// ChooseKind picks the adapter for a session: coarse pointer input or a
// narrow viewport selects the wheel, everything else the list. The choice
// does not change mid-session.
func ChooseKind(caps Capabilities) Kind {
	if caps.CoarsePointer || caps.ViewportWidth < domain.WheelViewportMaxWidth {
		return KindWheel
	}
	return KindList
}

// Input is one user interaction delivered to an adapter. Exactly one of the
// field groups is meaningful per event: Key for the list, Scroll/Release for
// the wheel. Adapters ignore inputs that do not apply to them.
type Input struct {
	Key     string  // "up", "down", "enter"
	Scroll  float64 // wheel delta, in item heights
	Release bool    // touch/mouse release or wheel debounce elapsed
}

// Adapter is the single capability both variants implement: render the items
// with one current selection, and commit a new selection on interaction.
type Adapter interface {
	Kind() Kind
	Render(session *selection.Session, now time.Time) TimeRenderModel
	HandleInput(session *selection.Session, input Input, now time.Time)
}

// NewAdapter creates an adapter of the given kind anchored on the session's
// current selection.
func NewAdapter(kind Kind, session *selection.Session, now time.Time) Adapter {
	if kind == KindWheel {
		return newWheelAdapter(session, now)
	}
	return newListAdapter(session, now)
}
