package reservations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла заказов. Заказ принадлежит backend;
// сервис проверяет допустимость перехода на своей стороне (недопустимые
// действия не доходят до сети), отправляет мутацию и возвращает свежую
// копию из ответа. Оптимистичных обновлений и отката нет.
type Service struct {
	backend BackendClient
	logger  Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(backend BackendClient, logger Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}

// GetUserReservations получает заказы текущего пользователя
func (s *Service) GetUserReservations(ctx context.Context, sess *domain.Session) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s role=%s", sess.UserID, sess.Role)

	reservations, err := s.backend.GetUserOrders(ctx, sess.Token)
	if err != nil {
		return nil, s.mapBackendError("GetUserReservations", err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(reservations), sess.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет заказ от имени заказчика.
// Допустимо только пока заявка новая; после принятия мастером отмена
// через этот маршрут запрещена.
func (s *Service) Cancel(ctx context.Context, sess *domain.Session, reservationID string) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: user=%s cancelling reservation=%s", sess.UserID, reservationID)

	reservation, err := s.fetchOwned(ctx, sess, reservationID, domain.ActorCustomer)
	if err != nil {
		return nil, err
	}

	if _, err := domain.NextStatus(reservation.Status, domain.ActionCancel, domain.ActorCustomer); err != nil {
		s.logger.Warn("Cancel: reservation=%s in status=%s cannot be cancelled", reservationID, reservation.Status)
		return nil, ErrTransitionNotAllowed
	}

	updated, err := s.backend.CancelOrder(ctx, sess.Token, reservationID)
	if err != nil {
		return nil, s.mapBackendError("Cancel", err)
	}

	s.logger.Info("Cancel: reservation=%s cancelled", reservationID)
	return models.FromDomainReservation(updated), nil
}

// Reply отправляет ценовое предложение мастера.
// Допустимо для новой заявки и при возобновлении торга.
func (s *Service) Reply(ctx context.Context, sess *domain.Session, reservationID string, price float64, note *string) (*models.ReservationResponse, error) {
	s.logger.Info("Reply: artisan=%s replying to reservation=%s with price=%.2f", sess.UserID, reservationID, price)

	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	reservation, err := s.fetchOwned(ctx, sess, reservationID, domain.ActorArtisan)
	if err != nil {
		return nil, err
	}

	if _, err := domain.NextStatus(reservation.Status, domain.ActionReply, domain.ActorArtisan); err != nil {
		s.logger.Warn("Reply: reservation=%s in status=%s does not accept offers", reservationID, reservation.Status)
		return nil, ErrTransitionNotAllowed
	}

	updated, err := s.backend.ReplyOrder(ctx, sess.Token, reservationID, price, note)
	if err != nil {
		return nil, s.mapBackendError("Reply", err)
	}

	s.logger.Info("Reply: offer sent for reservation=%s", reservationID)
	return models.FromDomainReservation(updated), nil
}

// RespondToOffer отправляет ответ заказчика на ценовое предложение:
// accept, reject или negotiate. Торг требует непустого комментария,
// который передается мастеру.
func (s *Service) RespondToOffer(ctx context.Context, sess *domain.Session, reservationID, action string, note *string) (*models.ReservationResponse, error) {
	s.logger.Info("RespondToOffer: user=%s responding %q to reservation=%s", sess.UserID, action, reservationID)

	domainAction, err := parseOfferAction(action)
	if err != nil {
		return nil, err
	}

	// Торг без комментария отклоняется до обращения к сети
	if domainAction == domain.ActionNegotiate {
		if note == nil || strings.TrimSpace(*note) == "" {
			s.logger.Warn("RespondToOffer: negotiation without note for reservation=%s", reservationID)
			return nil, ErrNoteRequired
		}
	}

	reservation, err := s.fetchOwned(ctx, sess, reservationID, domain.ActorCustomer)
	if err != nil {
		return nil, err
	}

	if _, err := domain.NextStatus(reservation.Status, domainAction, domain.ActorCustomer); err != nil {
		s.logger.Warn("RespondToOffer: reservation=%s in status=%s has no pending offer", reservationID, reservation.Status)
		return nil, ErrTransitionNotAllowed
	}

	updated, err := s.backend.RespondToOffer(ctx, sess.Token, reservationID, action, note)
	if err != nil {
		return nil, s.mapBackendError("RespondToOffer", err)
	}

	s.logger.Info("RespondToOffer: reservation=%s moved to status=%s", reservationID, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// UpdateStatus выполняет действие мастера над заявкой: accept, reject
// или complete.
func (s *Service) UpdateStatus(ctx context.Context, sess *domain.Session, reservationID, action string) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: artisan=%s applying %q to reservation=%s", sess.UserID, action, reservationID)

	domainAction, err := parseArtisanAction(action)
	if err != nil {
		return nil, err
	}

	reservation, err := s.fetchOwned(ctx, sess, reservationID, domain.ActorArtisan)
	if err != nil {
		return nil, err
	}

	target, err := domain.NextStatus(reservation.Status, domainAction, domain.ActorArtisan)
	if err != nil {
		s.logger.Warn("UpdateStatus: action=%q not allowed for reservation=%s in status=%s",
			action, reservationID, reservation.Status)
		return nil, ErrTransitionNotAllowed
	}

	updated, err := s.backend.UpdateOrderStatus(ctx, sess.Token, reservationID, target)
	if err != nil {
		return nil, s.mapBackendError("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: reservation=%s moved to status=%s", reservationID, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// Вспомогательные методы

// fetchOwned получает заказ и проверяет, что сессия принадлежит нужной
// стороне заказа (заказчику или мастеру)
func (s *Service) fetchOwned(ctx context.Context, sess *domain.Session, reservationID string, actor domain.Actor) (*domain.Reservation, error) {
	if sess.Actor() != actor {
		s.logger.Warn("fetchOwned: role=%s cannot act as %s on reservation=%s", sess.Role, actor, reservationID)
		return nil, ErrAccessDenied
	}

	reservation, err := s.backend.GetOrder(ctx, sess.Token, reservationID)
	if err != nil {
		return nil, s.mapBackendError("fetchOwned", err)
	}

	var ownerID string
	if actor == domain.ActorCustomer {
		ownerID = reservation.CustomerID
	} else {
		ownerID = reservation.ArtisanID
	}

	if ownerID != sess.UserID {
		s.logger.Warn("fetchOwned: user=%s is not the %s of reservation=%s", sess.UserID, actor, reservationID)
		return nil, ErrAccessDenied
	}

	return reservation, nil
}

// mapBackendError нормализует ошибки backend в сентинели сервиса.
// Сообщение backend при отказе сохраняется в цепочке и показывается
// пользователю дословно.
func (s *Service) mapBackendError(op string, err error) error {
	switch {
	case errors.Is(err, craftopia.ErrUnavailable):
		s.logger.Error("%s: backend unavailable: %v", op, err)
		return ErrBackendUnavailable

	case craftopia.IsStatus(err, http.StatusUnauthorized):
		s.logger.Warn("%s: backend rejected token", op)
		return ErrSessionExpired

	case craftopia.IsStatus(err, http.StatusNotFound):
		s.logger.Warn("%s: reservation not found on backend", op)
		return ErrReservationNotFound
	}

	var apiErr *craftopia.APIError
	if errors.As(err, &apiErr) {
		s.logger.Warn("%s: backend rejected transition: %v", op, err)
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}

	s.logger.Error("%s: backend client error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func parseOfferAction(action string) (domain.Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "accept":
		return domain.ActionAccept, nil
	case "reject":
		return domain.ActionReject, nil
	case "negotiate":
		return domain.ActionNegotiate, nil
	default:
		return "", fmt.Errorf("%w: unknown offer action %q", ErrInvalidInput, action)
	}
}

func parseArtisanAction(action string) (domain.Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "accept":
		return domain.ActionAccept, nil
	case "reject":
		return domain.ActionReject, nil
	case "complete":
		return domain.ActionComplete, nil
	default:
		return "", fmt.Errorf("%w: unknown status action %q", ErrInvalidInput, action)
	}
}
