package models

import (
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	ArtisanID     string `json:"artisanId"`
	ReservationID string `json:"reservationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// ReviewListResponse ответ со списком отзывов и сводкой
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	Total         int              `json:"total"`
}

// Методы конвертации

// FromDomainReview конвертирует доменную модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		ArtisanID:     r.ArtisanID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReviewList конвертирует список отзывов в DTO с подсчетом
// среднего рейтинга
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	var sum int
	for _, review := range reviews {
		converted := FromDomainReview(review)
		if converted == nil {
			continue
		}
		resp.Reviews = append(resp.Reviews, *converted)
		sum += review.Rating
	}

	resp.Total = len(resp.Reviews)
	if resp.Total > 0 {
		resp.AverageRating = float64(sum) / float64(resp.Total)
	}

	return resp
}
