package reply_offer

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
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidPrice         = "offer price must be greater than zero"
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "you cannot reply to this reservation"
	msgTransitionNotAllowed = "this reservation does not accept offers right now"
	msgSessionExpired       = "session expired, please log in again"
	msgBackendUnavailable   = "service is temporarily unavailable, please try again later"
	msgBackendRejected      = "the offer was rejected"
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

// Handle PUT /api/v1/reservations/{reservationId}/reply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	var req ReplyOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/reply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reply(r.Context(), sess, reservationID, req.Price, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidPrice):
			h.logger.Warn("PUT /reservations/{id}/reply - Invalid price: reservation_id=%s, price=%.2f",
				reservationID, req.Price)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id}/reply - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id}/reply - Access denied: user_id=%s, reservation_id=%s",
				sess.UserID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrTransitionNotAllowed):
			h.logger.Warn("PUT /reservations/{id}/reply - Transition not allowed: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		case errors.Is(err, reservationsService.ErrSessionExpired):
			h.logger.Warn("PUT /reservations/{id}/reply - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, reservationsService.ErrBackendRejected):
			h.logger.Warn("PUT /reservations/{id}/reply - Rejected by backend: reservation_id=%s, error=%v",
				reservationID, err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgBackendRejected
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, reservationsService.ErrBackendUnavailable):
			h.logger.Error("PUT /reservations/{id}/reply - Backend unavailable: reservation_id=%s", reservationID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /reservations/{id}/reply - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id}/reply - Offer sent: reservation_id=%s, artisan_id=%s",
		reservationID, sess.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
