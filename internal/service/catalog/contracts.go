package catalog

import (
	"context"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListCraftsmen(ctx context.Context, filter domain.CraftsmenFilter) ([]*domain.Craftsman, error)
	GetCraftsmanByID(ctx context.Context, id int64) (*domain.Craftsman, error)
	ListCrafts(ctx context.Context) ([]*domain.Craft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
