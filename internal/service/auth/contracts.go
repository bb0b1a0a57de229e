package auth

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
)

// BackendClient интерфейс клиента backend для операций логина
type BackendClient interface {
	LoginCustomer(ctx context.Context, email, password string) (*craftopia.LoginResult, error)
	LoginArtisan(ctx context.Context, email, password string) (*craftopia.LoginResult, error)
	LoginAdmin(ctx context.Context, email, password string) (*craftopia.LoginResult, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, sess *domain.Session) (*domain.Session, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
