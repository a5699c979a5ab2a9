package get_available_slots

import (
	"time"

	"github.com/framelight/FLS-BookingService/pkg/types"
)

// Request asks for slot availability on one calendar date.
type Request struct {
	Date time.Time // calendar day only, time-of-day ignored
}

// Response carries the full catalog with per-slot disabled flags (for the
// list presentation, which greys disabled slots) and the filtered available
// list (for the wheel presentation, which hides them).
type Response struct {
	Date      time.Time
	Slots     []Slot
	Available []types.TimeString
}

// Slot is one catalog entry with its availability for the requested date.
type Slot struct {
	StartTime types.TimeString
	Disabled  bool
}
