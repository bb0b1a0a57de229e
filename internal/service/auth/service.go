package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	sessionRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/session"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/validate"
)

// Service сервис аутентификации. Роль пользователя заранее неизвестна,
// поэтому логин перебирает маршруты backend по цепочке
// заказчик -> мастер -> администратор. 401 означает "не эта роль, пробуем
// следующую"; любая другая ошибка останавливает цепочку.
type Service struct {
	backend  BackendClient
	sessions SessionRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(backend BackendClient, sessions SessionRepository, logger Logger) *Service {
	return &Service{
		backend:  backend,
		sessions: sessions,
		logger:   logger,
	}
}

// Login выполняет вход по цепочке ролей и создает сессию.
// Цепочка останавливается на первом успехе или первой ошибке, отличной от 401.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if !validate.Email(email) {
		s.logger.Warn("Login: invalid email format")
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	attempts := []struct {
		role  domain.Role
		login func(ctx context.Context, email, password string) (*craftopia.LoginResult, error)
	}{
		{domain.RoleCustomer, s.backend.LoginCustomer},
		{domain.RoleArtisan, s.backend.LoginArtisan},
		{domain.RoleAdmin, s.backend.LoginAdmin},
	}

	var result *craftopia.LoginResult
	var chainRole domain.Role

	for _, attempt := range attempts {
		res, err := attempt.login(ctx, email, password)
		if err == nil {
			result = res
			chainRole = attempt.role
			break
		}

		// 401 — сигнал попробовать следующую роль
		if craftopia.IsStatus(err, http.StatusUnauthorized) {
			s.logger.Info("Login: %s login rejected with 401, trying next role", attempt.role)
			continue
		}

		if errors.Is(err, craftopia.ErrUnavailable) {
			s.logger.Error("Login: backend unavailable during %s login: %v", attempt.role, err)
			return nil, ErrBackendUnavailable
		}

		// Любая другая ошибка останавливает цепочку; сообщение backend
		// сохраняется в цепочке ошибок и доходит до пользователя дословно
		s.logger.Warn("Login: %s login rejected: %v", attempt.role, err)
		return nil, fmt.Errorf("%w: %w", ErrLoginRejected, err)
	}

	if result == nil {
		s.logger.Warn("Login: all roles rejected credentials")
		return nil, ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:     uuid.NewString(),
		Token:  result.Token,
		Role:   resolveRole(result, chainRole),
		UserID: result.UserID,
	}

	created, err := s.sessions.Create(ctx, sess)
	if err != nil {
		s.logger.Error("Login: failed to store session for user=%s: %v", sess.UserID, err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s logged in with role=%s", created.UserID, created.Role)
	return created, nil
}

// Logout удаляет сессию по bearer-токену
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session removed")
	return nil
}

// Resolve находит сессию по bearer-токену (используется middleware)
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Resolve: repository error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}
	return sess, nil
}

// resolveRole определяет роль сессии: claim из токена имеет приоритет,
// затем поле role из ответа, затем роль маршрута, на котором логин удался.
// Подпись токена не проверяется: выпуск и проверка токена принадлежат
// backend, этому сервису нужен только claim роли.
func resolveRole(result *craftopia.LoginResult, chainRole domain.Role) domain.Role {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(result.Token, claims); err == nil {
		if role, ok := claims["role"].(string); ok && role != "" {
			return domain.Role(role)
		}
	}

	if result.Role != "" {
		return domain.Role(result.Role)
	}

	return chainRole
}
