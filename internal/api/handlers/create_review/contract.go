package create_review

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews/models"
)

type ReviewsService interface {
	CreateReview(ctx context.Context, sess *domain.Session, reservationID string, rating int, comment string) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
