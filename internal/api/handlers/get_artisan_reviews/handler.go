package get_artisan_reviews

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	reviewsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews"
)

const (
	msgArtisanIDRequired  = "artisan id is required"
	msgBackendUnavailable = "service is temporarily unavailable, please try again later"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/artisans/{artisanId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	artisanID := mux.Vars(r)["artisanId"]

	result, err := h.service.GetArtisanReviews(r.Context(), artisanID)
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrInvalidInput):
			h.logger.Warn("GET /artisans/{id}/reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgArtisanIDRequired)

		case errors.Is(err, reviewsService.ErrBackendUnavailable):
			h.logger.Error("GET /artisans/{id}/reviews - Backend unavailable: artisan_id=%s", artisanID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /artisans/{id}/reviews - Failed: artisan_id=%s, error=%v", artisanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artisans/{id}/reviews - Fetched %d reviews: artisan_id=%s", result.Total, artisanID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
