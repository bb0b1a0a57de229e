package respond_offer

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
	msgInvalidAction        = "action must be accept, reject or negotiate"
	msgNoteRequired         = "a note is required to negotiate"
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "you cannot respond to this reservation"
	msgTransitionNotAllowed = "this reservation has no pending offer"
	msgSessionExpired       = "session expired, please log in again"
	msgBackendUnavailable   = "service is temporarily unavailable, please try again later"
	msgBackendRejected      = "the response was rejected"
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

// Handle PUT /api/v1/reservations/{reservationId}/response
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	reservationID := mux.Vars(r)["reservationId"]

	var req RespondOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id}/response - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RespondToOffer(r.Context(), sess, reservationID, req.Action, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id}/response - Invalid action: reservation_id=%s, action=%q",
				reservationID, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, reservationsService.ErrNoteRequired):
			h.logger.Warn("PUT /reservations/{id}/response - Note required: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgNoteRequired)

		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id}/response - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id}/response - Access denied: user_id=%s, reservation_id=%s",
				sess.UserID, reservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrTransitionNotAllowed):
			h.logger.Warn("PUT /reservations/{id}/response - Transition not allowed: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		case errors.Is(err, reservationsService.ErrSessionExpired):
			h.logger.Warn("PUT /reservations/{id}/response - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, reservationsService.ErrBackendRejected):
			h.logger.Warn("PUT /reservations/{id}/response - Rejected by backend: reservation_id=%s, error=%v",
				reservationID, err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgBackendRejected
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, reservationsService.ErrBackendUnavailable):
			h.logger.Error("PUT /reservations/{id}/response - Backend unavailable: reservation_id=%s", reservationID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /reservations/{id}/response - Failed: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id}/response - Response recorded: reservation_id=%s, action=%s, status=%s",
		reservationID, req.Action, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
