package get_user_reservations

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetUserReservations(ctx context.Context, sess *domain.Session) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
