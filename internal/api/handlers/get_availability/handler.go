package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	resolveAvailability "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/resolve_availability"
)

const (
	msgArtisanIDRequired  = "artisan id is required"
	msgArtisanNotFound    = "artisan not found"
	msgBackendUnavailable = "service is temporarily unavailable, please try again later"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/artisans/{artisanId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID := mux.Vars(r)["artisanId"]

	req := &resolveAvailability.Request{
		ArtisanID: artisanID,
		Date:      r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /artisans/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgArtisanIDRequired)

		case errors.Is(err, resolveAvailability.ErrArtisanNotFound):
			h.logger.Warn("GET /artisans/{id}/availability - Artisan not found: artisan_id=%s", artisanID)
			handlers.RespondNotFound(w, msgArtisanNotFound)

		case errors.Is(err, resolveAvailability.ErrBackendUnavailable):
			h.logger.Error("GET /artisans/{id}/availability - Backend unavailable: artisan_id=%s", artisanID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /artisans/{id}/availability - Failed: artisan_id=%s, error=%v", artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
