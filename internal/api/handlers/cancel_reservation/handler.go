package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	reservationsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations"
)

const (
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "you cannot cancel this reservation"
	msgTransitionNotAllowed = "this reservation can no longer be cancelled"
	msgSessionExpired       = "session expired, please log in again"
	msgBackendUnavailable   = "service is temporarily unavailable, please try again later"
	msgBackendRejected      = "the cancellation was rejected"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.service.Cancel(r.Context(), sess, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: user_id=%s, reservation_id=%s",
				sess.UserID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrTransitionNotAllowed):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Transition not allowed: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		case errors.Is(err, reservationsService.ErrSessionExpired):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, reservationsService.ErrBackendRejected):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Rejected by backend: reservation_id=%s, error=%v",
				reservationID, err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgBackendRejected
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, reservationsService.ErrBackendUnavailable):
			h.logger.Error("PATCH /reservations/{id}/cancel - Backend unavailable: reservation_id=%s", reservationID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%s, user_id=%s",
		reservationID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
