package create_review

import (
	"errors"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	reviewsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidRating       = "rating must be between 1 and 5"
	msgCommentRequired     = "review comment is required"
	msgReservationNotFound = "reservation not found"
	msgAccessDenied        = "you cannot review this reservation"
	msgNotCompleted        = "only completed reservations can be reviewed"
	msgAlreadyReviewed     = "you have already reviewed this reservation"
	msgSessionExpired      = "session expired, please log in again"
	msgBackendUnavailable  = "service is temporarily unavailable, please try again later"
	msgBackendRejected     = "the review was rejected"
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateReview(r.Context(), sess, req.ReservationID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, reviewsService.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: user_id=%s, rating=%d", sess.UserID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviewsService.ErrCommentRequired):
			h.logger.Warn("POST /reviews - Comment required: user_id=%s", sess.UserID)
			handlers.RespondBadRequest(w, msgCommentRequired)

		case errors.Is(err, reviewsService.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviewsService.ErrReservationNotFound):
			h.logger.Warn("POST /reviews - Reservation not found: reservation_id=%s", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reviewsService.ErrAccessDenied):
			h.logger.Warn("POST /reviews - Access denied: user_id=%s, reservation_id=%s",
				sess.UserID, req.ReservationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reviewsService.ErrNotCompleted):
			h.logger.Warn("POST /reviews - Reservation not completed: reservation_id=%s", req.ReservationID)
			handlers.RespondConflict(w, msgNotCompleted)

		case errors.Is(err, reviewsService.ErrAlreadyReviewed):
			h.logger.Warn("POST /reviews - Already reviewed: reservation_id=%s", req.ReservationID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		case errors.Is(err, reviewsService.ErrSessionExpired):
			h.logger.Warn("POST /reviews - Session expired: user_id=%s", sess.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, reviewsService.ErrBackendRejected):
			h.logger.Warn("POST /reviews - Rejected by backend: reservation_id=%s, error=%v",
				req.ReservationID, err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgBackendRejected
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, reviewsService.ErrBackendUnavailable):
			h.logger.Error("POST /reviews - Backend unavailable: user_id=%s", sess.UserID)
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%s, error=%v", sess.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%s, user_id=%s", result.ID, sess.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
