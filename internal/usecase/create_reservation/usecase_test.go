package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/ptr"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBackend struct {
	slots       []domain.AvailabilitySlot
	slotsErr    error
	created     *craftopia.CreateOrderRequest
	createErr   error
	reservation *domain.Reservation
}

func (f *fakeBackend) GetArtisanAvailability(_ context.Context, _ string) ([]domain.AvailabilitySlot, error) {
	return f.slots, f.slotsErr
}

func (f *fakeBackend) CreateOrder(_ context.Context, _ string, req *craftopia.CreateOrderRequest) (*domain.Reservation, error) {
	f.created = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.reservation, nil
}

// 2025-11-03 is a Monday.
var testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func newTestUseCase(backend *fakeBackend) *UseCase {
	uc := NewUseCase(backend, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func customerSession() *domain.Session {
	return &domain.Session{ID: "s1", Token: "tok", Role: domain.RoleCustomer, UserID: "cust-1"}
}

func validRequest() *Request {
	return &Request{
		Session:     customerSession(),
		ArtisanID:   "art-1",
		CustomTitle: ptr.Ptr("Oak bookshelf"),
		Kind:        "custom",
		Date:        "2025-11-03",
	}
}

func createdReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:         "res-1",
		CustomerID: "cust-1",
		ArtisanID:  "art-1",
		Status:     domain.StatusNew,
		Kind:       domain.KindCustom,
		CreatedAt:  testNow,
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "res-1", resp.Reservation.ID)

	require.NotNil(t, backend.created)
	assert.Equal(t, "art-1", backend.created.ArtisanID)
	assert.Equal(t, "custom", backend.created.Kind)
	assert.Equal(t, "2025-11-03", backend.created.Date)
}

func TestExecute_SubjectExactlyOne(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.CustomTitle = nil
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSubjectRequired)

	req = validRequest()
	req.ProjectID = ptr.Ptr("proj-1")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAmbiguousSubject)

	// Пустые строки считаются отсутствием значения
	req = validRequest()
	req.CustomTitle = ptr.Ptr("  ")
	req.ProjectID = nil
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSubjectRequired)

	assert.Nil(t, backend.created)
}

func TestExecute_DateValidationMessageSurfaced(t *testing.T) {
	slots := []domain.AvailabilitySlot{{
		Day:       "Monday",
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("17:00"),
	}}
	backend := &fakeBackend{slots: slots, reservation: createdReservation()}
	uc := newTestUseCase(backend)

	// 2025-11-04 — вторник, мастер работает только по понедельникам
	req := validRequest()
	req.Date = "2025-11-04"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, err.Error(), "The artisan is not available on this day. Available days: Monday")
	assert.Nil(t, backend.created)
}

func TestExecute_PastDateRejected(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.Date = "2025-11-02"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Contains(t, err.Error(), "Please select a date from today onwards")
}

func TestExecute_CraftRequiresEndAfterStart(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.Kind = "craft"
	req.ProjectID = ptr.Ptr("proj-1")
	req.CustomTitle = nil
	req.EndDate = ptr.Ptr("2025-11-03")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	req.EndDate = ptr.Ptr("2025-11-01")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, backend.created)
}

func TestExecute_DurationDays(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.Kind = "craft"
	req.ProjectID = ptr.Ptr("proj-1")
	req.CustomTitle = nil
	req.Date = "2025-11-03"
	req.EndDate = ptr.Ptr("2025-11-17")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 14, resp.DurationDays)
}

func TestExecute_ArtisanCannotCreate(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.Session = &domain.Session{ID: "s2", Token: "tok", Role: domain.RoleArtisan, UserID: "art-1"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unavailable", craftopia.ErrUnavailable, ErrBackendUnavailable},
		{"expired token", &craftopia.APIError{StatusCode: 401}, ErrSessionExpired},
		{"artisan missing", &craftopia.APIError{StatusCode: 404}, ErrArtisanNotFound},
		{"rejected", &craftopia.APIError{StatusCode: 422, Message: "quota exceeded"}, ErrBackendRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{createErr: tt.err}
			uc := newTestUseCase(backend)

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_UnknownKindRejected(t *testing.T) {
	backend := &fakeBackend{reservation: createdReservation()}
	uc := newTestUseCase(backend)

	req := validRequest()
	req.Kind = "sorcery"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDurationDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 11, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 14, durationDays(day(3), day(17)))
	assert.Equal(t, 1, durationDays(day(3), day(4)))
	assert.Equal(t, 0, durationDays(day(3), day(3)))
	// Дробный хвост округляется вверх
	assert.Equal(t, 2, durationDays(day(3), day(4).Add(6*time.Hour)))
	// Перевернутый диапазон дает абсолютное значение
	assert.Equal(t, 14, durationDays(day(17), day(3)))
}
