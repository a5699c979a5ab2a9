package submit_inquiry

import (
	"context"
	"time"

	"github.com/framelight/FLS-BookingService/internal/integrations/mailrelay"
)

// MailRelayClient delivers the assembled inquiry to the operator's inbox.
type MailRelayClient interface {
	SendInquiry(ctx context.Context, msg *mailrelay.InquiryMessage) error
}

// TimeProvider supplies the current time.
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
