package reservations

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// BackendClient интерфейс клиента backend для операций над заказами.
// Все мутации уходят на backend; локальное состояние не изменяется.
type BackendClient interface {
	GetOrder(ctx context.Context, token, orderID string) (*domain.Reservation, error)
	GetUserOrders(ctx context.Context, token string) ([]*domain.Reservation, error)
	ReplyOrder(ctx context.Context, token, orderID string, price float64, note *string) (*domain.Reservation, error)
	RespondToOffer(ctx context.Context, token, orderID, action string, note *string) (*domain.Reservation, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.ReservationStatus) (*domain.Reservation, error)
	CancelOrder(ctx context.Context, token, orderID string) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
