// Package find_next_available_date resolves the default date a freshly
// opened picker seeds with: today if slots remain, otherwise the next open
// day within the search horizon.
package find_next_available_date

import (
	"context"

	"github.com/framelight/FLS-BookingService/internal/domain"
)

// UseCase finds the next date with open slots.
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

// Execute scans forward from today for the first date with a non-empty
// available set. It cannot fail; the horizon fallback degrades to today.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	date := domain.FindNextAvailableDate(now)

	resp := &Response{
		Date:    date,
		IsToday: domain.IsSameDay(date, now),
	}

	uc.logger.Info("FindNextAvailableDate: date=%s, is_today=%t",
		date.Format(domain.DateFormat), resp.IsToday)

	return resp, nil
}
