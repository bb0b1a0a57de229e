package logout

import (
	"errors"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	authService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/auth"
)

const (
	msgSessionNotFound = "session not found"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, "authorization required")
		return
	}

	if err := h.service.Logout(r.Context(), sess.Token); err != nil {
		if errors.Is(err, authService.ErrSessionNotFound) {
			h.logger.Warn("POST /auth/logout - Session not found: user_id=%s", sess.UserID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /auth/logout - Failed to logout: user_id=%s, error=%v", sess.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - User logged out: user_id=%s", sess.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
