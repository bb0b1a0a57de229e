package resolve_availability

import (
	"context"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// BackendClient интерфейс клиента backend для получения расписания мастера
type BackendClient interface {
	GetArtisanAvailability(ctx context.Context, artisanID string) ([]domain.AvailabilitySlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
