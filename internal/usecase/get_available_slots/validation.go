package get_available_slots

import (
	"fmt"
)

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
