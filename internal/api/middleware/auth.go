package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionResolver интерфейс разрешения bearer-токена в сессию
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации: разрешает bearer-токен в сессию и
// кладет ее в контекст запроса. Запросы без валидной сессии получают 401.
func Auth(resolver SessionResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "authorization required")
				return
			}

			sess, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - session not resolved: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext извлекает сессию из контекста запроса.
// Возвращает nil, если middleware аутентификации не отработал.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
