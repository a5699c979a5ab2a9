// Package wizard runs the four-step booking flow: service type, package,
// date/time, contact details, ending in a submission relayed by mail.
// Sessions are in-memory and ephemeral; a fresh session starts empty.
//
// Known gap carried over from the original flow: the step-3 gate requires a
// chosen date but not a chosen time, so an inquiry may reach the relay
// without a time. Flagged for product review rather than silently closed.
package wizard

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/picker"
	"github.com/framelight/FLS-BookingService/internal/service/wizard/models"
	submitInquiry "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
	"github.com/framelight/FLS-BookingService/pkg/ptr"
	"github.com/framelight/FLS-BookingService/pkg/types"
)

// Service owns all live wizard sessions.
//
// TODO: add an idle-session sweep; sessions currently live until process
// restart.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	submitUC     SubmitInquiryUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the wizard service with the production clock.
func NewService(submitUC SubmitInquiryUseCase, logger Logger) *Service {
	return &Service{
		sessions:     make(map[string]*session),
		submitUC:     submitUC,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create starts a fresh session. The capability probe fixes the picker
// adapter kind for the whole session.
func (s *Service) Create(caps picker.Capabilities) *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:          newSessionID(),
		step:        StepServiceType,
		adapterKind: picker.ChooseKind(caps),
	}
	s.sessions[sess.id] = sess

	s.logger.Info("Create: session=%s, adapter=%s", sess.id, sess.adapterKind)
	return s.snapshot(sess)
}

// Get returns the current snapshot.
func (s *Service) Get(id string) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.snapshot(sess), nil
}

// SelectService handles step 1; any valid choice advances immediately.
func (s *Service) SelectService(id string, serviceType string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.selectService(domain.ServiceType(serviceType))
	})
}

// SelectPackage handles step 2; any choice advances immediately.
func (s *Service) SelectPackage(id string, packageID string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.selectPackage(packageID)
	})
}

// Back moves one step towards the start without clearing anything.
func (s *Service) Back(id string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.back()
	})
}

// Advance applies the step-3 gate; without a chosen date it is a no-op.
func (s *Service) Advance(id string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.advance()
	})
}

// SetContact overwrites the step-4 fields.
func (s *Service) SetContact(id string, contact domain.ContactDetails) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.setContact(contact)
	})
}

// OpenPicker opens the date- or time-mode modal for step 3, seeded from the
// inquiry's confirmed values unless explicit initial values are supplied.
// Malformed or past initial values are discarded for computed defaults.
func (s *Service) OpenPicker(id string, mode string, initialDate string, initialTime string) (*models.Snapshot, error) {
	pickerMode := PickerMode(mode)
	if pickerMode != ModeDate && pickerMode != ModeTime {
		pickerMode = ModeDate
	}

	return s.mutate(id, func(sess *session, now time.Time) {
		seedDate := seedInitialDate(initialDate, sess.inquiry)
		seedSlot := seedInitialSlot(initialTime, sess.inquiry)
		sess.openPickerModal(pickerMode, seedDate, seedSlot, now)
	})
}

// PickerSelectDate selects a calendar cell; past dates are silent no-ops.
func (s *Service) PickerSelectDate(id string, dateStr string) (*models.Snapshot, error) {
	return s.pickerOp(id, func(sess *session, p *openPicker, now time.Time) {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, now.Location())
		if err != nil {
			return
		}
		p.selection.SelectDate(date, now)
	})
}

// PickerMonthNav moves the calendar one month; "prev" from January wraps to
// December of the previous year and "next" from December to January.
func (s *Service) PickerMonthNav(id string, direction string) (*models.Snapshot, error) {
	return s.pickerOp(id, func(sess *session, p *openPicker, now time.Time) {
		switch direction {
		case "prev":
			p.selection.PrevMonth()
		case "next":
			p.selection.NextMonth()
		}
	})
}

// PickerInput routes a key or scroll event to the session's adapter.
func (s *Service) PickerInput(id string, input picker.Input) (*models.Snapshot, error) {
	return s.pickerOp(id, func(sess *session, p *openPicker, now time.Time) {
		p.adapter.HandleInput(p.selection, input, now)
	})
}

// PickerConfirm commits the modal's selection into the inquiry.
func (s *Service) PickerConfirm(id string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, now time.Time) {
		sess.confirmPicker(now)
	})
}

// PickerClose discards the modal without committing.
func (s *Service) PickerClose(id string) (*models.Snapshot, error) {
	return s.mutate(id, func(sess *session, _ time.Time) {
		sess.closePicker()
	})
}

// Submit validates and relays the inquiry. On success the session reaches
// its terminal Submitted state; on failure it stays at the contact step and
// the client may re-submit. A second submit while one is outstanding is
// ignored.
func (s *Service) Submit(ctx context.Context, id string) (*models.Snapshot, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	if sess.submitted || sess.step != StepContact || sess.inFlight {
		snap := s.snapshot(sess)
		s.mu.Unlock()
		return snap, nil
	}

	sess.inFlight = true
	req := &submitInquiry.Request{Inquiry: sess.inquiry}
	s.mu.Unlock()

	// The relay call runs without the lock; only this session blocks on it.
	resp, err := s.submitUC.Execute(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.inFlight = false

	if err != nil {
		switch {
		case errors.Is(err, submitInquiry.ErrInvalidInput), errors.Is(err, submitInquiry.ErrPastDate):
			s.logger.Warn("Submit: session=%s rejected: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		case errors.Is(err, submitInquiry.ErrRelayFailed):
			s.logger.Error("Submit: session=%s relay failed: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
		default:
			s.logger.Error("Submit: session=%s internal error: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	sess.submitted = true
	sess.confirmation = resp.Confirmation
	s.logger.Info("Submit: session=%s submitted, service=%s", id, sess.inquiry.ServiceType)

	return s.snapshot(sess), nil
}

// mutate runs fn on the session under the lock with a fresh "now" and
// returns the resulting snapshot.
func (s *Service) mutate(id string, fn func(sess *session, now time.Time)) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	fn(sess, s.timeProvider.Now())
	return s.snapshot(sess), nil
}

// pickerOp is mutate plus the open-picker requirement. Availability is
// recomputed before the operation runs, so a slot that passed while the
// modal sat open disables before the interaction is interpreted.
func (s *Service) pickerOp(id string, fn func(sess *session, p *openPicker, now time.Time)) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.picker == nil {
		return nil, ErrPickerNotOpen
	}

	now := s.timeProvider.Now()
	sess.picker.selection.Recompute(now)
	fn(sess, sess.picker, now)

	return s.snapshot(sess), nil
}

// snapshot builds the response model. Callers hold the lock.
func (s *Service) snapshot(sess *session) *models.Snapshot {
	snap := &models.Snapshot{
		SessionID:    sess.id,
		Step:         int(sess.step),
		StepName:     sess.step.String(),
		Submitted:    sess.submitted,
		Confirmation: sess.confirmation,
		AdapterKind:  string(sess.adapterKind),
		Inquiry: models.InquirySnapshot{
			ServiceType: string(sess.inquiry.ServiceType),
			PackageID:   sess.inquiry.PackageID,
			Name:        sess.inquiry.Contact.Name,
			Email:       sess.inquiry.Contact.Email,
			Phone:       sess.inquiry.Contact.Phone,
			Company:     sess.inquiry.Contact.Company,
			Brief:       sess.inquiry.Contact.Brief,
			Budget:      sess.inquiry.Contact.Budget,
		},
	}

	if sess.inquiry.HasDate() {
		snap.Inquiry.Date = sess.inquiry.Date.Format(domain.DateFormat)
		snap.Inquiry.DateDisplay = domain.FormatShortDate(sess.inquiry.Date)
	}
	if sess.inquiry.HasTime() {
		snap.Inquiry.Time = sess.inquiry.Time.String()
		snap.Inquiry.TimeDisplay = domain.FormatTime12h(sess.inquiry.Time)
	}

	if p := sess.picker; p != nil {
		now := s.timeProvider.Now()
		pickerSnap := &models.PickerSnapshot{
			Mode:       string(p.mode),
			DateHeader: domain.FormatDateHeader(p.selection.SelectedDate()),
		}
		switch p.mode {
		case ModeDate:
			calendar := picker.RenderCalendar(p.selection, now)
			pickerSnap.Calendar = &calendar
		case ModeTime:
			timeModel := p.adapter.Render(p.selection, now)
			pickerSnap.Time = &timeModel
		}
		snap.Picker = pickerSnap
	}

	return snap
}

// seedInitialDate resolves the picker's initial date: an explicit parseable
// value wins, then the inquiry's confirmed date, else nothing.
func seedInitialDate(initial string, inquiry domain.Inquiry) *time.Time {
	if initial != "" {
		if date, err := time.ParseInLocation(domain.DateFormat, initial, time.Local); err == nil {
			return ptr.Ptr(date)
		}
		// Malformed seed: fall through to computed defaults.
	}
	if inquiry.HasDate() {
		return ptr.Ptr(inquiry.Date)
	}
	return nil
}

// seedInitialSlot resolves the picker's initial slot the same way.
func seedInitialSlot(initial string, inquiry domain.Inquiry) types.TimeString {
	if initial != "" {
		if slot, err := types.NewTimeStringFromString(initial); err == nil {
			return slot
		}
	}
	return inquiry.Time
}

// newSessionID returns a 32-hex-char random identifier.
func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; timestamp
		// fallback keeps the service alive if it somehow does.
		return hex.EncodeToString([]byte(time.Now().String()))[:32]
	}
	return hex.EncodeToString(buf)
}
