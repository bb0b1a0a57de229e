package get_artisan_reviews

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews/models"
)

type ReviewsService interface {
	GetArtisanReviews(ctx context.Context, artisanID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
