package wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/framelight/FLS-BookingService/internal/api/handlers"
	"github.com/framelight/FLS-BookingService/internal/domain"
	"github.com/framelight/FLS-BookingService/internal/service/picker"
	wizardService "github.com/framelight/FLS-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "wizard session not found"
	msgPickerNotOpen      = "no picker is open for this session"
	msgInvalidSubmission  = "inquiry is incomplete or invalid"
	msgSubmitFailed       = "failed to send your request, please try again"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/wizard/sessions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap := h.service.Create(picker.Capabilities{
		CoarsePointer: req.CoarsePointer,
		ViewportWidth: req.ViewportWidth,
	})

	handlers.RespondJSON(w, http.StatusCreated, snap)
}

// HandleGet GET /api/v1/wizard/sessions/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.Get(id)
	if err != nil {
		h.respondServiceError(w, "GET session", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleSelectService POST /api/v1/wizard/sessions/{id}/service
func (h *Handler) HandleSelectService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SelectService(id, req.Service)
	if err != nil {
		h.respondServiceError(w, "select service", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleSelectPackage POST /api/v1/wizard/sessions/{id}/package
func (h *Handler) HandleSelectPackage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SelectPackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SelectPackage(id, req.PackageID)
	if err != nil {
		h.respondServiceError(w, "select package", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleBack POST /api/v1/wizard/sessions/{id}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.Back(id)
	if err != nil {
		h.respondServiceError(w, "back", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleAdvance POST /api/v1/wizard/sessions/{id}/advance
func (h *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.Advance(id)
	if err != nil {
		h.respondServiceError(w, "advance", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleSetContact POST /api/v1/wizard/sessions/{id}/contact
func (h *Handler) HandleSetContact(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req SetContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.SetContact(id, domain.ContactDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Brief:   req.Brief,
		Budget:  req.Budget,
	})
	if err != nil {
		h.respondServiceError(w, "set contact", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleOpenPicker POST /api/v1/wizard/sessions/{id}/picker/open
func (h *Handler) HandleOpenPicker(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req OpenPickerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.OpenPicker(id, req.Mode, req.InitialDate, req.InitialTime)
	if err != nil {
		h.respondServiceError(w, "open picker", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandlePickerDate POST /api/v1/wizard/sessions/{id}/picker/date
func (h *Handler) HandlePickerDate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PickerDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.PickerSelectDate(id, req.Date)
	if err != nil {
		h.respondServiceError(w, "picker date", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandlePickerMonth POST /api/v1/wizard/sessions/{id}/picker/month
func (h *Handler) HandlePickerMonth(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PickerMonthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.PickerMonthNav(id, req.Direction)
	if err != nil {
		h.respondServiceError(w, "picker month", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandlePickerInput POST /api/v1/wizard/sessions/{id}/picker/input
func (h *Handler) HandlePickerInput(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PickerInputRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := h.service.PickerInput(id, picker.Input{
		Key:     req.Key,
		Scroll:  req.Scroll,
		Release: req.Release,
	})
	if err != nil {
		h.respondServiceError(w, "picker input", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandlePickerConfirm POST /api/v1/wizard/sessions/{id}/picker/confirm
func (h *Handler) HandlePickerConfirm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.PickerConfirm(id)
	if err != nil {
		h.respondServiceError(w, "picker confirm", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandlePickerClose DELETE /api/v1/wizard/sessions/{id}/picker
func (h *Handler) HandlePickerClose(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.PickerClose(id)
	if err != nil {
		h.respondServiceError(w, "picker close", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// HandleSubmit POST /api/v1/wizard/sessions/{id}/submit
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	snap, err := h.service.Submit(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "submit", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}

// respondServiceError maps wizard service errors onto HTTP statuses. The
// service already logged the cause at the right level; only unexpected
// errors are logged again here.
func (h *Handler) respondServiceError(w http.ResponseWriter, op string, id string, err error) {
	switch {
	case errors.Is(err, wizardService.ErrSessionNotFound):
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizardService.ErrPickerNotOpen):
		handlers.RespondBadRequest(w, msgPickerNotOpen)

	case errors.Is(err, wizardService.ErrInvalidSubmission):
		handlers.RespondBadRequest(w, msgInvalidSubmission)

	case errors.Is(err, wizardService.ErrSubmitFailed):
		handlers.RespondError(w, http.StatusBadGateway, msgSubmitFailed)

	default:
		h.logger.Error("Wizard %s - Failed: session=%s, error=%v", op, id, err)
		handlers.RespondInternalError(w)
	}
}
