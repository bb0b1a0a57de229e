package resolve_availability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/availability"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
)

// UseCase use case разрешения расписания мастера: недельные окна,
// ближайшая доступная дата и сводка дней для формы бронирования
type UseCase struct {
	backend      BackendClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backend BackendClient, logger Logger) *UseCase {
	return &UseCase{
		backend:      backend,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case разрешения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAvailability: artisan=%s date=%q", req.ArtisanID, req.Date)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ArtisanID) == "" {
		return nil, fmt.Errorf("%w: artisan id is required", ErrInvalidInput)
	}

	// 2. Получаем расписание мастера; пустое расписание означает
	// "всегда доступен" и ошибкой не является
	slots, err := uc.backend.GetArtisanAvailability(ctx, req.ArtisanID)
	if err != nil {
		switch {
		case errors.Is(err, craftopia.ErrUnavailable):
			uc.logger.Error("ResolveAvailability: backend unavailable: %v", err)
			return nil, ErrBackendUnavailable
		case craftopia.IsStatus(err, http.StatusNotFound):
			uc.logger.Warn("ResolveAvailability: artisan=%s not found", req.ArtisanID)
			return nil, ErrArtisanNotFound
		default:
			uc.logger.Error("ResolveAvailability: failed to fetch schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to fetch schedule: %v", ErrInternal, err)
		}
	}

	now := uc.timeProvider.Now()

	// 3. Разрешаем расписание в подсказки для формы
	resp := &Response{
		ArtisanID:         req.ArtisanID,
		Slots:             toSlotModels(slots),
		MinSelectableDate: availability.MinSelectableDate(now, slots),
		AvailableDays:     availability.AvailableDaysText(slots, true),
		AvailableToday:    availability.IsDateAvailable(now, slots, true, now),
	}

	// 4. Точечная проверка даты, если она передана
	if strings.TrimSpace(req.Date) != "" {
		validation := availability.ValidateDateSelection(req.Date, slots, now)
		resp.DateValid = &validation.Valid
		resp.DateMessage = validation.Message
	}

	uc.logger.Info("ResolveAvailability: artisan=%s minDate=%s days=%q",
		req.ArtisanID, resp.MinSelectableDate, resp.AvailableDays)

	return resp, nil
}

func toSlotModels(slots []domain.AvailabilitySlot) []Slot {
	models := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		models = append(models, Slot{
			Day:       slot.CanonicalDay(),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return models
}
