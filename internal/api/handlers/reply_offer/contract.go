package reply_offer

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	Reply(ctx context.Context, sess *domain.Session, reservationID string, price float64, note *string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
