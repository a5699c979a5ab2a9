package submit_inquiry

import (
	"fmt"
	"strings"
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

// validateRequest validates the inquiry before it is relayed. Name, email
// and brief are required; time is optional even when a date is set, matching
// the wizard's step-3 gate.
func validateRequest(req *Request, now time.Time) error {
	inq := &req.Inquiry

	if !inq.ServiceType.Valid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, inq.ServiceType)
	}

	if !inq.HasDate() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if domain.IsPastDate(inq.Date, now) {
		return ErrPastDate
	}

	if inq.HasTime() {
		if err := inq.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
		if !domain.SlotInCatalog(inq.Time) {
			return fmt.Errorf("%w: time %s is not a bookable slot", ErrInvalidInput, inq.Time)
		}
	}

	return validateContact(&inq.Contact)
}

// validateContact validates the step-4 fields.
func validateContact(c *domain.ContactDetails) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(c.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(c.Email) > domain.MaxEmailLength || !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if strings.TrimSpace(c.Brief) == "" {
		return fmt.Errorf("%w: brief is required", ErrInvalidInput)
	}
	if len(c.Brief) > domain.MaxBriefLength {
		return fmt.Errorf("%w: brief exceeds %d characters", ErrInvalidInput, domain.MaxBriefLength)
	}

	if len(c.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}
	if len(c.Company) > domain.MaxCompanyLength {
		return fmt.Errorf("%w: company exceeds %d characters", ErrInvalidInput, domain.MaxCompanyLength)
	}
	if len(c.Budget) > domain.MaxBudgetLength {
		return fmt.Errorf("%w: budget exceeds %d characters", ErrInvalidInput, domain.MaxBudgetLength)
	}

	return nil
}
