package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	reservationsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations"
)

const (
	msgAccessDenied       = "you can only view your own reservations"
	msgSessionExpired     = "session expired, please log in again"
	msgBackendUnavailable = "service is temporarily unavailable, please try again later"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	// Пользователь видит только собственные заказы
	userID := mux.Vars(r)["userId"]
	if userID != sess.UserID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: session_user=%s, requested_user=%s",
			sess.UserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserReservations(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrSessionExpired):
			h.logger.Warn("GET /users/{id}/reservations - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, reservationsService.ErrBackendUnavailable):
			h.logger.Error("GET /users/{id}/reservations - Backend unavailable: user_id=%s", sess.UserID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/reservations - Fetched %d reservations: user_id=%s",
		len(result.Reservations), sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
