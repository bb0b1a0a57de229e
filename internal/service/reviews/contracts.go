package reviews

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
)

// BackendClient интерфейс клиента backend для операций с отзывами
type BackendClient interface {
	CreateReview(ctx context.Context, token string, req *craftopia.CreateReviewRequest) (*domain.Review, error)
	GetArtisanReviews(ctx context.Context, artisanID string) ([]*domain.Review, error)
	GetOrder(ctx context.Context, token, orderID string) (*domain.Reservation, error)
	GetUserOrders(ctx context.Context, token string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
