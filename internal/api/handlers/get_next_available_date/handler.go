package get_next_available_date

import (
	"net/http"

	"github.com/framelight/FLS-BookingService/internal/api/handlers"
	"github.com/framelight/FLS-BookingService/internal/domain"
)

type Handler struct {
	useCase FindNextAvailableDateUseCase
	logger  Logger
}

func NewHandler(useCase FindNextAvailableDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NextAvailableDateResponse HTTP response model
type NextAvailableDateResponse struct {
	Date        string `json:"date"`
	DateDisplay string `json:"dateDisplay"`
	Header      string `json:"header"`
	IsToday     bool   `json:"isToday"`
}

// Handle GET /api/v1/availability/next-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /availability/next-date - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &NextAvailableDateResponse{
		Date:        result.Date.Format(domain.DateFormat),
		DateDisplay: domain.FormatShortDate(result.Date),
		Header:      domain.FormatDateHeader(result.Date),
		IsToday:     result.IsToday,
	}

	h.logger.Info("GET /availability/next-date - Resolved: date=%s, is_today=%t",
		response.Date, response.IsToday)
	handlers.RespondJSON(w, http.StatusOK, response)
}
