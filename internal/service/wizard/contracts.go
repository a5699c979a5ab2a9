package wizard

import (
	"context"
	"time"

	submitInquiry "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
)

// SubmitInquiryUseCase relays a completed inquiry to the mail relay.
type SubmitInquiryUseCase interface {
	Execute(ctx context.Context, req *submitInquiry.Request) (*submitInquiry.Response, error)
}

// TimeProvider supplies the current time. Read fresh at every
// state-computation point, never cached for a session.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by the service.
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
