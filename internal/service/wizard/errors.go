package wizard

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown or expired session ID.
	ErrSessionNotFound = errors.New("wizard.service: session not found")

	// ErrPickerNotOpen is returned for picker operations without an open
	// picker modal.
	ErrPickerNotOpen = errors.New("wizard.service: no picker is open")

	// ErrSubmitFailed is returned when the relay did not accept the inquiry.
	// The session stays at the contact step and the client may retry.
	ErrSubmitFailed = errors.New("wizard.service: submission failed")

	// ErrInvalidSubmission is returned when required fields are missing or
	// malformed at submit time.
	ErrInvalidSubmission = errors.New("wizard.service: invalid submission")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("wizard.service: internal error")
)
