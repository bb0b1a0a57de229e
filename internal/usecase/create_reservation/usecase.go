package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/availability"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
)

// UseCase use case создания заказа: проверка формы против расписания
// мастера и отправка заказа на backend
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

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	sess := req.Session
	uc.logger.Info("CreateReservation: user=%s artisan=%s kind=%s date=%s",
		sess.UserID, req.ArtisanID, req.Kind, req.Date)

	// 2. Заказы создает только заказчик
	if sess.Actor() != domain.ActorCustomer {
		uc.logger.Warn("CreateReservation: role=%s cannot create reservations", sess.Role)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	// 3. Получаем расписание мастера и проверяем выбранную дату
	slots, err := uc.backend.GetArtisanAvailability(ctx, req.ArtisanID)
	if err != nil {
		return nil, uc.mapBackendError("CreateReservation", err)
	}

	validation := availability.ValidateDateSelection(req.Date, slots, now)
	if !validation.Valid {
		uc.logger.Warn("CreateReservation: date %q rejected: %s", req.Date, validation.Message)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, validation.Message)
	}

	startDate, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	// 4. Для каталожных работ дата завершения обязана быть позже начала;
	// длительность считается для отображения
	kind, _ := parseKind(req.Kind)
	duration := 0

	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(*req.EndDate), now.Location())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid delivery date format", ErrInvalidInput)
		}
		if kind == domain.KindCraft {
			if err := validateDateRange(startDate, endDate); err != nil {
				uc.logger.Warn("CreateReservation: delivery date %s not after start date %s",
					endDate.Format(domain.DateFormat), startDate.Format(domain.DateFormat))
				return nil, err
			}
		}
		duration = durationDays(startDate, endDate)
	}

	// 5. Отправляем заказ на backend
	orderReq := &craftopia.CreateOrderRequest{
		ArtisanID:   req.ArtisanID,
		ProjectID:   req.ProjectID,
		CustomTitle: req.CustomTitle,
		Kind:        string(kind),
		Date:        startDate.Format(domain.DateFormat),
		EndDate:     req.EndDate,
		Price:       req.Price,
		Note:        req.Note,
	}

	reservation, err := uc.backend.CreateOrder(ctx, sess.Token, orderReq)
	if err != nil {
		return nil, uc.mapBackendError("CreateReservation", err)
	}

	uc.logger.Info("CreateReservation: reservation=%s created for artisan=%s", reservation.ID, req.ArtisanID)

	return &Response{
		Reservation:  models.FromDomainReservation(reservation),
		DurationDays: duration,
	}, nil
}

// mapBackendError нормализует ошибки backend в сентинели usecase
func (uc *UseCase) mapBackendError(op string, err error) error {
	switch {
	case errors.Is(err, craftopia.ErrUnavailable):
		uc.logger.Error("%s: backend unavailable: %v", op, err)
		return ErrBackendUnavailable

	case craftopia.IsStatus(err, http.StatusUnauthorized):
		uc.logger.Warn("%s: backend rejected token", op)
		return ErrSessionExpired

	case craftopia.IsStatus(err, http.StatusNotFound):
		uc.logger.Warn("%s: artisan not found on backend", op)
		return ErrArtisanNotFound
	}

	var apiErr *craftopia.APIError
	if errors.As(err, &apiErr) {
		uc.logger.Warn("%s: backend rejected request: %v", op, err)
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}

	uc.logger.Error("%s: backend client error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
