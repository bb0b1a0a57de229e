package list_crafts

import (
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/crafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCrafts(r.Context())
	if err != nil {
		h.logger.Error("GET /crafts - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /crafts - Fetched %d crafts", len(result.Crafts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
