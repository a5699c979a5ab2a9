package find_next_available_date

import (
	"time"
)

// Response carries the first date, scanning forward from today, that still
// has at least one selectable slot.
type Response struct {
	Date    time.Time
	IsToday bool
}
