package submit_inquiry

import "errors"

var (
	// ErrInvalidInput is returned for malformed or incomplete inquiry data.
	ErrInvalidInput = errors.New("submit_inquiry: invalid input data")

	// ErrPastDate is returned when the chosen date is before today.
	ErrPastDate = errors.New("submit_inquiry: booking date is in the past")

	// ErrRelayFailed is returned when the mail relay did not accept the
	// inquiry. The caller keeps its state and may retry.
	ErrRelayFailed = errors.New("submit_inquiry: mail relay failed")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("submit_inquiry: internal error")
)
