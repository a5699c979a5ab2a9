package wizard

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/picker"
	"github.com/framelight/FLS-BookingService/internal/service/selection"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

// Step is the wizard position. The flow is strictly linear: single-step
// back/forward transitions, no skipping.
type Step int

const (
	StepServiceType Step = iota + 1
	StepPackage
	StepSchedule
	StepContact
)

// String returns the step name used in snapshots.
func (s Step) String() string {
	switch s {
	case StepServiceType:
		return "service"
	case StepPackage:
		return "package"
	case StepSchedule:
		return "schedule"
	case StepContact:
		return "contact"
	default:
		return "unknown"
	}
}

// PickerMode distinguishes the two modal instances step 3 opens.
type PickerMode string

const (
	ModeDate PickerMode = "date"
	ModeTime PickerMode = "time"
)

// openPicker is the state of the one picker modal a session may have open.
// It owns the selection session; closing without confirming discards it.
type openPicker struct {
	mode      PickerMode
	selection *selection.Session
	adapter   picker.Adapter
}

// session is one wizard run. Fields entered at later steps survive going
// back; nothing is ever rolled back automatically.
type session struct {
	id           string
	step         Step
	inquiry      domain.Inquiry
	adapterKind  picker.Kind
	picker       *openPicker
	submitted    bool
	confirmation string
	inFlight     bool // a submission request is outstanding
}

// selectService records the step-1 choice and advances. Unknown service
// types and out-of-step calls are silent no-ops.
func (s *session) selectService(svc domain.ServiceType) {
	if s.submitted || s.step != StepServiceType || !svc.Valid() {
		return
	}
	s.inquiry.ServiceType = svc
	s.step = StepPackage
}

// selectPackage records the step-2 choice (a package ID or the "custom"
// sentinel) and advances.
func (s *session) selectPackage(packageID string) {
	if s.submitted || s.step != StepPackage || packageID == "" {
		return
	}
	s.inquiry.PackageID = packageID
	s.step = StepSchedule
}

// back moves one step towards the start, preserving everything already
// entered. An open picker is discarded, matching a modal dismissed by
// leaving the step.
func (s *session) back() {
	if s.submitted || s.step <= StepServiceType {
		return
	}
	s.picker = nil
	s.step--
}

// advance applies the step-3 gate: a chosen date is required, a chosen time
// is not. (The original flow ships the same gap; see the package doc.)
func (s *session) advance() {
	if s.submitted || s.step != StepSchedule {
		return
	}
	if !s.inquiry.HasDate() {
		return
	}
	s.step = StepContact
}

// setContact overwrites the step-4 fields. Validation happens at submit.
func (s *session) setContact(contact domain.ContactDetails) {
	if s.submitted || s.step != StepContact {
		return
	}
	s.inquiry.Contact = contact
}

// openPickerModal opens the date- or time-mode picker, replacing any picker
// already open. The selection seeds from the given initial values; a nil or
// past initial date is discarded in favor of the next available date.
func (s *session) openPickerModal(mode PickerMode, initialDate *time.Time, initialSlot types.TimeString, now time.Time) {
	if s.submitted || s.step != StepSchedule {
		return
	}

	sel := selection.NewSession(initialDate, initialSlot, now)
	s.picker = &openPicker{
		mode:      mode,
		selection: sel,
		adapter:   picker.NewAdapter(s.adapterKind, sel, now),
	}
}

// confirmPicker commits the picker's selection into the inquiry and closes
// the modal. A time-mode confirm with no selectable slot is a no-op; the
// modal stays open showing its empty state.
func (s *session) confirmPicker(now time.Time) {
	p := s.picker
	if p == nil {
		return
	}

	p.selection.Recompute(now)

	switch p.mode {
	case ModeDate:
		s.inquiry.Date = p.selection.SelectedDate()
	case ModeTime:
		slot := p.selection.SelectedSlot()
		if slot.IsZero() {
			return
		}
		s.inquiry.Time = slot
	}

	s.picker = nil
}

// closePicker discards the modal and its selection state. The inquiry's
// date/time fields are untouched; they change only on explicit confirm.
func (s *session) closePicker() {
	s.picker = nil
}
