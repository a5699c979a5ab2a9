package get_available_slots

import (
	"time"

	"github.com/framelight/FLS-BookingService/internal/domain"
	getAvailableSlots "github.com/framelight/FLS-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	Slots     []Slot   `json:"slots"`
	Available []string `json:"available"`
}

// Slot is one catalog entry with availability and display form.
type Slot struct {
	Time     string `json:"time"`
	Display  string `json:"display"`
	Disabled bool   `json:"disabled"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:     slot.StartTime.String(),
			Display:  domain.FormatTime12h(slot.StartTime),
			Disabled: slot.Disabled,
		}
	}

	available := make([]string, len(resp.Available))
	for i, slot := range resp.Available {
		available[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
		Available: available,
	}
}

// ToUseCaseRequest builds the use case request from the date query param.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
