package create_reservation

import (
	"context"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
)

// BackendClient интерфейс клиента backend для создания заказа
type BackendClient interface {
	GetArtisanAvailability(ctx context.Context, artisanID string) ([]domain.AvailabilitySlot, error)
	CreateOrder(ctx context.Context, token string, req *craftopia.CreateOrderRequest) (*domain.Reservation, error)
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
