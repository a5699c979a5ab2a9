package get_next_available_date

import (
	"context"

	findNextAvailableDate "github.com/framelight/FLS-BookingService/internal/usecase/find_next_available_date"
)

type FindNextAvailableDateUseCase interface {
	Execute(ctx context.Context) (*findNextAvailableDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
