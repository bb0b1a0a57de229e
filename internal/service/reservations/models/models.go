package models

import (
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// Response модели

// ReservationResponse ответ с данными заказа
type ReservationResponse struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customerId"`
	ArtisanID   string  `json:"artisanId"`
	ProjectID   *string `json:"projectId,omitempty"`
	CustomTitle *string `json:"customTitle,omitempty"`
	Kind        string  `json:"kind"`
	Status      string  `json:"status"`

	ArtisanName string `json:"artisanName,omitempty"`
	CraftName   string `json:"craftName,omitempty"`

	TotalPrice *float64 `json:"totalPrice,omitempty"`
	Note       *string  `json:"note,omitempty"`

	StartDate    *string `json:"startDate,omitempty"`    // YYYY-MM-DD
	DeliveryDate *string `json:"deliveryDate,omitempty"` // YYYY-MM-DD
	CreatedAt    string  `json:"createdAt"`              // ISO 8601

	HasReview bool `json:"hasReview"`

	// Подсказки интерфейсу, какие действия сейчас допустимы
	CanCancel  bool `json:"canCancel"`
	CanRespond bool `json:"canRespond"`
	CanReview  bool `json:"canReview"`
}

// ReservationListResponse ответ со списком заказов
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует доменную модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		ArtisanID:   r.ArtisanID,
		ProjectID:   r.ProjectID,
		CustomTitle: r.CustomTitle,
		Kind:        string(r.Kind),
		Status:      string(r.Status),
		ArtisanName: r.ArtisanName,
		CraftName:   r.CraftName,
		TotalPrice:  r.TotalPrice,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		HasReview:   r.HasReview,
		CanCancel:   r.CanBeCancelled(),
		CanRespond:  r.AwaitsCustomerResponse(),
		CanReview:   r.IsReviewable(),
	}

	if r.StartDate != nil {
		startDate := r.StartDate.Format(domain.DateFormat)
		resp.StartDate = &startDate
	}
	if r.DeliveryDate != nil {
		deliveryDate := r.DeliveryDate.Format(domain.DateFormat)
		resp.DeliveryDate = &deliveryDate
	}

	return resp
}

// FromDomainReservationList конвертирует список доменных моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if converted := FromDomainReservation(reservation); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}
