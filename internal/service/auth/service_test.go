package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	sessionRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var rejected = &craftopia.APIError{StatusCode: 401, Message: "invalid credentials"}

// fakeBackend отвечает на логин по каждой роли заранее заданным результатом
type fakeBackend struct {
	customer, artisan, admin       *craftopia.LoginResult
	customerErr, artisanErr, adminErr error
	calls                          []string
}

func (f *fakeBackend) LoginCustomer(_ context.Context, _, _ string) (*craftopia.LoginResult, error) {
	f.calls = append(f.calls, "customer")
	return f.customer, f.customerErr
}

func (f *fakeBackend) LoginArtisan(_ context.Context, _, _ string) (*craftopia.LoginResult, error) {
	f.calls = append(f.calls, "artisan")
	return f.artisan, f.artisanErr
}

func (f *fakeBackend) LoginAdmin(_ context.Context, _, _ string) (*craftopia.LoginResult, error) {
	f.calls = append(f.calls, "admin")
	return f.admin, f.adminErr
}

// fakeSessions хранит сессии в памяти
type fakeSessions struct {
	byToken map[string]*domain.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byToken: make(map[string]*domain.Session)}
}

func (f *fakeSessions) Create(_ context.Context, sess *domain.Session) (*domain.Session, error) {
	f.byToken[sess.Token] = sess
	return sess, nil
}

func (f *fakeSessions) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := f.byToken[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeSessions) DeleteByToken(_ context.Context, token string) error {
	if _, ok := f.byToken[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(f.byToken, token)
	return nil
}

func TestLogin_CustomerSucceedsFirst(t *testing.T) {
	backend := &fakeBackend{
		customer: &craftopia.LoginResult{Token: "tok-c", UserID: "u1"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	sess, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, sess.Role)
	assert.Equal(t, "u1", sess.UserID)
	// Остальные роли не пробуются
	assert.Equal(t, []string{"customer"}, backend.calls)
}

func TestLogin_FallsThroughToArtisanOn401(t *testing.T) {
	backend := &fakeBackend{
		customerErr: rejected,
		artisan:     &craftopia.LoginResult{Token: "tok-a", UserID: "u2"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	sess, err := svc.Login(context.Background(), "artisan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleArtisan, sess.Role)
	assert.Equal(t, []string{"customer", "artisan"}, backend.calls)
}

func TestLogin_FallsThroughToAdmin(t *testing.T) {
	backend := &fakeBackend{
		customerErr: rejected,
		artisanErr:  rejected,
		admin:       &craftopia.LoginResult{Token: "tok-adm", UserID: "u3"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	sess, err := svc.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
	assert.Equal(t, []string{"customer", "artisan", "admin"}, backend.calls)
}

func TestLogin_AllRolesRejected(t *testing.T) {
	backend := &fakeBackend{customerErr: rejected, artisanErr: rejected, adminErr: rejected}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, []string{"customer", "artisan", "admin"}, backend.calls)
}

func TestLogin_Non401StopsChain(t *testing.T) {
	backend := &fakeBackend{
		customerErr: &craftopia.APIError{StatusCode: 403, Message: "account suspended"},
		artisan:     &craftopia.LoginResult{Token: "tok-a", UserID: "u2"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.ErrorIs(t, err, ErrLoginRejected)
	// Сообщение backend сохраняется в цепочке ошибок
	assert.Equal(t, "account suspended", craftopia.BackendMessage(err))
	// Следующая роль не пробуется
	assert.Equal(t, []string{"customer"}, backend.calls)
}

func TestLogin_BackendUnavailableStopsChain(t *testing.T) {
	backend := &fakeBackend{customerErr: craftopia.ErrUnavailable}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, []string{"customer"}, backend.calls)
}

func TestLogin_InvalidEmail(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	for _, email := range []string{"", "not-an-email", "user@", "@example.com"} {
		_, err := svc.Login(context.Background(), email, "secret")
		assert.ErrorIs(t, err, ErrInvalidInput, "email=%q", email)
	}
	assert.Empty(t, backend.calls)
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := NewService(&fakeBackend{}, newFakeSessions(), nopLogger{})

	_, err := svc.Login(context.Background(), "user@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_RoleFromResponseField(t *testing.T) {
	// Токен без claim роли: берется поле role из ответа
	backend := &fakeBackend{
		customer: &craftopia.LoginResult{Token: "opaque-token", Role: "artisan", UserID: "u1"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	sess, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleArtisan, sess.Role)
}

func TestLogin_RoleFallsBackToChainRole(t *testing.T) {
	backend := &fakeBackend{
		customerErr: rejected,
		artisan:     &craftopia.LoginResult{Token: "opaque-token", UserID: "u2"},
	}
	svc := NewService(backend, newFakeSessions(), nopLogger{})

	sess, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleArtisan, sess.Role)
}

func TestLogoutAndResolve(t *testing.T) {
	sessions := newFakeSessions()
	backend := &fakeBackend{customer: &craftopia.LoginResult{Token: "tok", UserID: "u1"}}
	svc := NewService(backend, sessions, nopLogger{})

	sess, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, resolved.UserID)

	require.NoError(t, svc.Logout(context.Background(), sess.Token))

	_, err = svc.Resolve(context.Background(), sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = svc.Logout(context.Background(), sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
