package domain

import (
	"time"

	"github.com/framelight/FLS-BookingService/pkg/types"
)

// ServiceType identifies the bookable service category.
type ServiceType string

const (
	ServiceVideography  ServiceType = "videography"
	ServiceEditing      ServiceType = "editing"
	ServiceConsultation ServiceType = "consultation"
)

// Valid reports whether the value is one of the bookable categories.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceVideography, ServiceEditing, ServiceConsultation:
		return true
	}
	return false
}

// CustomPackageID is the sentinel package identifier meaning the client wants
// a bespoke quote rather than one of the listed packages.
const CustomPackageID = "custom"

// ContactDetails holds the step-4 fields. Name, Email and Brief are required
// for submission; the rest are optional.
type ContactDetails struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Brief   string
	Budget  string
}

// Inquiry is the booking request assembled by the wizard and relayed by mail.
// It is never persisted.
type Inquiry struct {
	ServiceType ServiceType
	PackageID   string
	Date        time.Time // calendar day only
	Time        types.TimeString
	Contact     ContactDetails
}

// HasDate reports whether a booking date has been chosen.
func (i *Inquiry) HasDate() bool {
	return !i.Date.IsZero()
}

// HasTime reports whether a time slot has been chosen.
func (i *Inquiry) HasTime() bool {
	return !i.Time.IsZero()
}
