package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeResolver struct {
	sess *domain.Session
	err  error
	got  string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	f.got = token
	return f.sess, f.err
}

func TestAuth_ResolvesSessionIntoContext(t *testing.T) {
	resolver := &fakeResolver{sess: &domain.Session{ID: "s1", Token: "tok", Role: domain.RoleCustomer, UserID: "u1"}}

	var captured *domain.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "tok", resolver.got)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.UserID)
}

func TestAuth_MissingToken(t *testing.T) {
	headers := map[string]string{
		"no header":    "",
		"wrong scheme": "Basic dXNlcjpwdw==",
		"bare token":   "tok",
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			resolver := &fakeResolver{}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)
			assert.Empty(t, resolver.got)
		})
	}
}

func TestAuth_SessionNotResolved(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("session not found")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid or expired session", body["error"])
}

func TestSessionFromContext_Empty(t *testing.T) {
	assert.Nil(t, SessionFromContext(context.Background()))
}
