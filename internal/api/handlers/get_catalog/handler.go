package get_catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/framelight/FLS-BookingService/internal/api/handlers"
	"github.com/framelight/FLS-BookingService/internal/domain"
	catalogService "github.com/framelight/FLS-BookingService/internal/service/catalog"
)

const (
	msgUnknownSection = "unknown catalog section"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog/{section}
// Sections: services, packages, projects, testimonials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	section := domain.CatalogSection(vars["section"])

	result, err := h.service.GetSection(r.Context(), section)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrUnknownSection):
			h.logger.Warn("GET /catalog/{section} - Unknown section: %s", section)
			handlers.RespondNotFound(w, msgUnknownSection)
		default:
			h.logger.Error("GET /catalog/{section} - Failed: section=%s, error=%v", section, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog/{section} - Section served: %s", section)
	handlers.RespondJSON(w, http.StatusOK, FromServiceContent(result))
}
