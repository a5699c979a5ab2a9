package get_available_slots

import (
	"time"
)

// TimeProvider supplies the current time. "Now" is read fresh on every
// execution, never cached, so a picker left open across a slot boundary sees
// the slot disable on its next recomputation.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
