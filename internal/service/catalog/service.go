package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	catalogRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/catalog"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/catalog/models"
)

// Service сервис демонстрационного каталога мастеров и работ
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCraftsmen получает мастеров с фильтрацией по ремеслу, городу,
// минимальному рейтингу и подстроке имени
func (s *Service) ListCraftsmen(ctx context.Context, filter domain.CraftsmenFilter) (*models.CraftsmanListResponse, error) {
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > 5) {
		return nil, fmt.Errorf("%w: minRating must be between 0 and 5", ErrInvalidInput)
	}

	craftsmen, err := s.repo.ListCraftsmen(ctx, filter)
	if err != nil {
		s.logger.Error("ListCraftsmen: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCraftsmen - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCraftsmen: fetched %d craftsmen", len(craftsmen))
	return models.FromDomainCraftsmanList(craftsmen), nil
}

// GetCraftsman получает мастера по ID
func (s *Service) GetCraftsman(ctx context.Context, id int64) (*models.CraftsmanResponse, error) {
	craftsman, err := s.repo.GetCraftsmanByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCraftsmanNotFound) {
			return nil, ErrCraftsmanNotFound
		}
		s.logger.Error("GetCraftsman: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCraftsman - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCraftsman(craftsman), nil
}

// ListCrafts получает все каталожные работы
func (s *Service) ListCrafts(ctx context.Context) (*models.CraftListResponse, error) {
	crafts, err := s.repo.ListCrafts(ctx)
	if err != nil {
		s.logger.Error("ListCrafts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCrafts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCrafts: fetched %d crafts", len(crafts))
	return models.FromDomainCraftList(crafts), nil
}
