package login

import "github.com/craftopia-app/Craftopia-ReservationService/internal/domain"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// FromDomainSession конвертирует сессию в HTTP response
func FromDomainSession(sess *domain.Session) *LoginResponse {
	return &LoginResponse{
		Token:  sess.Token,
		Role:   string(sess.Role),
		UserID: sess.UserID,
	}
}
