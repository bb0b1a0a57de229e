package login

import (
	"errors"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	authService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid email or password"
	msgBackendUnavailable = "service is temporarily unavailable, please try again later"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, authService.ErrLoginRejected):
			// Сообщение backend доходит до пользователя дословно
			h.logger.Warn("POST /auth/login - Login rejected: %v", err)
			message := craftopia.BackendMessage(err)
			if message == "" {
				message = msgInvalidCredentials
			}
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		case errors.Is(err, authService.ErrBackendUnavailable):
			h.logger.Error("POST /auth/login - Backend unavailable")
			handlers.RespondServiceUnavailable(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%s, role=%s", sess.UserID, sess.Role)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSession(sess))
}
