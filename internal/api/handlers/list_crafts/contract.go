package list_crafts

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCrafts(ctx context.Context) (*models.CraftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
