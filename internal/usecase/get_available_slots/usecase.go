// Package get_available_slots computes slot availability for one calendar
// date relative to the current instant. Availability is a pure function of
// the wall clock: there is no reservation ledger, so two clients can pick
// the same slot and both succeed.
package get_available_slots

import (
	"context"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

// UseCase computes slot availability for a date.
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the slot catalog annotated with availability for the
// requested date. Every slot on a past date reads as disabled; the available
// list for today can be empty once the last slot has passed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	all := domain.GenerateAllSlots()
	slots := make([]Slot, len(all))
	available := make([]Slot, 0, len(all))

	for i, startTime := range all {
		slots[i] = Slot{
			StartTime: startTime,
			Disabled:  domain.IsSlotDisabled(req.Date, startTime, now),
		}
		if !slots[i].Disabled {
			available = append(available, slots[i])
		}
	}

	resp := &Response{
		Date:  req.Date,
		Slots: slots,
	}
	for _, slot := range available {
		resp.Available = append(resp.Available, slot.StartTime)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d/%d",
		req.Date.Format(domain.DateFormat), len(resp.Available), len(slots))

	return resp, nil
}
