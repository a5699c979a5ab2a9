package create_inquiry

import (
	"errors"
	"net/http"

	"github.com/framelight/FLS-BookingService/internal/api/handlers"
	submitInquiry "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInquiry     = "invalid inquiry data"
	msgPastDate           = "booking date is in the past"
	msgRelayFailed        = "failed to send your request, please try again"
)

type Handler struct {
	useCase SubmitInquiryUseCase
	logger  Logger
}

func NewHandler(useCase SubmitInquiryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/inquiries
// Direct submission path for the site's plain contact form; the wizard uses
// its own session endpoints.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inquiries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /inquiries - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitInquiry.ErrPastDate):
			h.logger.Warn("POST /inquiries - Past date: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, submitInquiry.ErrInvalidInput):
			h.logger.Warn("POST /inquiries - Invalid inquiry: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInquiry)

		case errors.Is(err, submitInquiry.ErrRelayFailed):
			h.logger.Error("POST /inquiries - Relay failed: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRelayFailed)

		default:
			h.logger.Error("POST /inquiries - Failed: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inquiries - Inquiry relayed: service=%s, email=%s", req.Service, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, &CreateInquiryResponse{Confirmation: result.Confirmation})
}
