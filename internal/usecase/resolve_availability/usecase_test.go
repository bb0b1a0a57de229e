package resolve_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBackend struct {
	slots []domain.AvailabilitySlot
	err   error
}

func (f *fakeBackend) GetArtisanAvailability(_ context.Context, _ string) ([]domain.AvailabilitySlot, error) {
	return f.slots, f.err
}

// 2025-11-03 is a Monday.
var testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func newTestUseCase(backend *fakeBackend) *UseCase {
	uc := NewUseCase(backend, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func mondaySlot() domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		Day:       "Monday",
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("17:00"),
	}
}

func TestExecute_ResolvesSchedule(t *testing.T) {
	backend := &fakeBackend{slots: []domain.AvailabilitySlot{mondaySlot()}}
	uc := newTestUseCase(backend)

	resp, err := uc.Execute(context.Background(), &Request{ArtisanID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, "2025-11-03", resp.MinSelectableDate)
	assert.Equal(t, "Monday (9:00 AM - 5:00 PM)", resp.AvailableDays)
	assert.True(t, resp.AvailableToday)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "Monday", resp.Slots[0].Day)
	assert.Nil(t, resp.DateValid)
}

func TestExecute_EmptyScheduleMeansAlwaysAvailable(t *testing.T) {
	backend := &fakeBackend{}
	uc := newTestUseCase(backend)

	resp, err := uc.Execute(context.Background(), &Request{ArtisanID: "a1"})
	require.NoError(t, err)

	assert.Equal(t, "All days", resp.AvailableDays)
	assert.Equal(t, "2025-11-03", resp.MinSelectableDate)
	assert.True(t, resp.AvailableToday)
}

func TestExecute_DateCheck(t *testing.T) {
	backend := &fakeBackend{slots: []domain.AvailabilitySlot{mondaySlot()}}
	uc := newTestUseCase(backend)

	// Вторник не предлагается
	resp, err := uc.Execute(context.Background(), &Request{ArtisanID: "a1", Date: "2025-11-04"})
	require.NoError(t, err)
	require.NotNil(t, resp.DateValid)
	assert.False(t, *resp.DateValid)
	assert.Equal(t, "The artisan is not available on this day. Available days: Monday", resp.DateMessage)

	// Понедельник проходит
	resp, err = uc.Execute(context.Background(), &Request{ArtisanID: "a1", Date: "2025-11-10"})
	require.NoError(t, err)
	require.NotNil(t, resp.DateValid)
	assert.True(t, *resp.DateValid)
	assert.Empty(t, resp.DateMessage)
}

func TestExecute_MissingArtisanID(t *testing.T) {
	uc := newTestUseCase(&fakeBackend{})

	_, err := uc.Execute(context.Background(), &Request{ArtisanID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BackendErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unavailable", craftopia.ErrUnavailable, ErrBackendUnavailable},
		{"not found", &craftopia.APIError{StatusCode: 404}, ErrArtisanNotFound},
		{"other", &craftopia.APIError{StatusCode: 500}, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBackend{err: tt.err})
			_, err := uc.Execute(context.Background(), &Request{ArtisanID: "a1"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
