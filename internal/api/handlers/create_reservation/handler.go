package create_reservation

import (
	"errors"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	createReservation "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSubjectRequired    = "either a project or a custom title is required"
	msgAmbiguousSubject   = "choose either a project or a custom title, not both"
	msgInvalidDateRange   = "delivery date must be after the start date"
	msgArtisanNotFound    = "artisan not found"
	msgAccessDenied       = "only customers can create reservations"
	msgSessionExpired     = "session expired, please log in again"
	msgBackendUnavailable = "service is temporarily unavailable, please try again later"
	msgBackendRejected    = "the reservation was rejected"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sess))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSubjectRequired):
			h.logger.Warn("POST /reservations - Subject required: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgSubjectRequired)

		case errors.Is(err, createReservation.ErrAmbiguousSubject):
			h.logger.Warn("POST /reservations - Ambiguous subject: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgAmbiguousSubject)

		case errors.Is(err, createReservation.ErrInvalidDate):
			// Сообщение валидации даты уходит в форму как есть
			h.logger.Warn("POST /reservations - Invalid date: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondBadRequest(w, dateMessage(err))

		case errors.Is(err, createReservation.ErrInvalidDateRange):
			h.logger.Warn("POST /reservations - Invalid date range: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations - Access denied: user_id=%s, role=%s", sess.UserID, sess.Role)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createReservation.ErrArtisanNotFound):
			h.logger.Warn("POST /reservations - Artisan not found: artisan_id=%s", req.ArtisanID)
			handlers.RespondNotFound(w, msgArtisanNotFound)

		case errors.Is(err, createReservation.ErrSessionExpired):
			h.logger.Warn("POST /reservations - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, createReservation.ErrBackendRejected):
			h.logger.Warn("POST /reservations - Rejected by backend: user_id=%s, error=%v", sess.UserID, err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgBackendRejected
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, createReservation.ErrBackendUnavailable):
			h.logger.Error("POST /reservations - Backend unavailable: user_id=%s", sess.UserID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, user_id=%s",
		result.Reservation.ID, sess.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// dateMessage срезает префикс сентинеля, оставляя сообщение для формы
func dateMessage(err error) string {
	message := err.Error()
	prefix := createReservation.ErrInvalidDate.Error() + ": "
	if len(message) > len(prefix) && message[:len(prefix)] == prefix {
		return message[len(prefix):]
	}
	return message
}
