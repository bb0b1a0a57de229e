package reviews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews/models"
)

// Service сервис отзывов. Проверки выполняются до обращения к backend:
// оценка в диапазоне 1-5, непустой комментарий, заказ завершен и еще не
// оценен. Backend остается последней инстанцией по дублированию.
type Service struct {
	backend BackendClient
	logger  Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(backend BackendClient, logger Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}

// CreateReview создает отзыв заказчика о мастере по завершенному заказу
func (s *Service) CreateReview(ctx context.Context, sess *domain.Session, reservationID string, rating int, comment string) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: user=%s reviewing reservation=%s rating=%d", sess.UserID, reservationID, rating)

	if sess.Actor() != domain.ActorCustomer {
		s.logger.Warn("CreateReview: role=%s cannot leave reviews", sess.Role)
		return nil, ErrAccessDenied
	}

	// 1. Валидация оценки и комментария
	if !domain.IsValidRating(rating) {
		return nil, ErrInvalidRating
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}
	if len(comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	// 2. Заказ должен принадлежать заказчику, быть завершенным и без отзыва
	reservation, err := s.backend.GetOrder(ctx, sess.Token, reservationID)
	if err != nil {
		return nil, s.mapBackendError("CreateReview", err)
	}

	if reservation.CustomerID != sess.UserID {
		s.logger.Warn("CreateReview: user=%s is not the customer of reservation=%s", sess.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	if reservation.Status != domain.StatusCompleted {
		s.logger.Warn("CreateReview: reservation=%s in status=%s is not reviewable", reservationID, reservation.Status)
		return nil, ErrNotCompleted
	}

	if reservation.HasReview {
		s.logger.Warn("CreateReview: reservation=%s already has a review", reservationID)
		return nil, ErrAlreadyReviewed
	}

	// 3. Отправка отзыва на backend
	review, err := s.backend.CreateReview(ctx, sess.Token, &craftopia.CreateReviewRequest{
		ArtisanID:     reservation.ArtisanID,
		ReservationID: reservationID,
		Rating:        rating,
		Comment:       comment,
	})
	if err != nil {
		return nil, s.mapBackendError("CreateReview", err)
	}

	s.logger.Info("CreateReview: review=%s created for artisan=%s", review.ID, review.ArtisanID)
	return models.FromDomainReview(review), nil
}

// GetArtisanReviews получает отзывы о мастере со сводным рейтингом.
// Маршрут публичный, токен не требуется.
func (s *Service) GetArtisanReviews(ctx context.Context, artisanID string) (*models.ReviewListResponse, error) {
	if strings.TrimSpace(artisanID) == "" {
		return nil, fmt.Errorf("%w: artisan id is required", ErrInvalidInput)
	}

	reviews, err := s.backend.GetArtisanReviews(ctx, artisanID)
	if err != nil {
		return nil, s.mapBackendError("GetArtisanReviews", err)
	}

	s.logger.Info("GetArtisanReviews: fetched %d reviews for artisan=%s", len(reviews), artisanID)
	return models.FromDomainReviewList(reviews), nil
}

// ReviewableReservations возвращает завершенные заказы пользователя,
// на которые еще можно оставить отзыв
func (s *Service) ReviewableReservations(ctx context.Context, sess *domain.Session) ([]*domain.Reservation, error) {
	if sess.Actor() != domain.ActorCustomer {
		return nil, ErrAccessDenied
	}

	reservations, err := s.backend.GetUserOrders(ctx, sess.Token)
	if err != nil {
		return nil, s.mapBackendError("ReviewableReservations", err)
	}

	reviewable := make([]*domain.Reservation, 0)
	for _, reservation := range reservations {
		if reservation.IsReviewable() {
			reviewable = append(reviewable, reservation)
		}
	}

	return reviewable, nil
}

// mapBackendError нормализует ошибки backend в сентинели сервиса
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

	case craftopia.IsStatus(err, http.StatusConflict):
		s.logger.Warn("%s: backend reports duplicate review", op)
		return ErrAlreadyReviewed
	}

	var apiErr *craftopia.APIError
	if errors.As(err, &apiErr) {
		s.logger.Warn("%s: backend rejected request: %v", op, err)
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}

	s.logger.Error("%s: backend client error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
