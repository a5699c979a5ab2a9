package submit_inquiry

import (
	"github.com/framelight/FLS-BookingService/internal/domain"
)

// Request is the complete booking inquiry to relay.
type Request struct {
	Inquiry domain.Inquiry
}

// Response reports a delivered inquiry. Confirmation is the display message
// with the client's name interpolated.
type Response struct {
	Confirmation string
}
