package list_craftsmen

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCraftsmen(ctx context.Context, filter domain.CraftsmenFilter) (*models.CraftsmanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
