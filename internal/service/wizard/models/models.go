package models

import (
	"github.com/framelight/FLS-BookingService/internal/service/picker"
)

// Snapshot is the full wizard state returned after every operation. Silent
// no-ops return it unchanged; the presentation layer renders it as-is.
type Snapshot struct {
	SessionID    string          `json:"sessionId"`
	Step         int             `json:"step"`
	StepName     string          `json:"stepName"`
	Submitted    bool            `json:"submitted"`
	Confirmation string          `json:"confirmation,omitempty"`
	AdapterKind  string          `json:"adapterKind"`
	Inquiry      InquirySnapshot `json:"inquiry"`
	Picker       *PickerSnapshot `json:"picker,omitempty"`
}

// InquirySnapshot is the booking state collected so far. Display fields are
// for rendering only and are never fed back into comparisons.
type InquirySnapshot struct {
	ServiceType string `json:"serviceType,omitempty"`
	PackageID   string `json:"packageId,omitempty"`
	Date        string `json:"date,omitempty"`        // YYYY-MM-DD
	DateDisplay string `json:"dateDisplay,omitempty"` // D/M/YYYY
	Time        string `json:"time,omitempty"`        // 24h HH:MM
	TimeDisplay string `json:"timeDisplay,omitempty"` // h:mm AM/PM
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Brief       string `json:"brief,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

// PickerSnapshot is the open modal's render state. Exactly one of Calendar
// or Time is set, matching the modal's mode.
type PickerSnapshot struct {
	Mode       string                      `json:"mode"`
	DateHeader string                      `json:"dateHeader"`
	Calendar   *picker.CalendarRenderModel `json:"calendar,omitempty"`
	Time       *picker.TimeRenderModel     `json:"time,omitempty"`
}
