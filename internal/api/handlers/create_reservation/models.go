package create_reservation

import (
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
	createReservation "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ArtisanID   string   `json:"artisanId"`
	ProjectID   *string  `json:"projectId,omitempty"`
	CustomTitle *string  `json:"customTitle,omitempty"`
	Kind        string   `json:"kind"`
	Date        string   `json:"date"`              // YYYY-MM-DD
	EndDate     *string  `json:"endDate,omitempty"` // YYYY-MM-DD
	Price       *float64 `json:"price,omitempty"`
	Note        *string  `json:"note,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation  *models.ReservationResponse `json:"reservation"`
	DurationDays int                         `json:"durationDays,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(sess *domain.Session) *createReservation.Request {
	return &createReservation.Request{
		Session:     sess,
		ArtisanID:   r.ArtisanID,
		ProjectID:   r.ProjectID,
		CustomTitle: r.CustomTitle,
		Kind:        r.Kind,
		Date:        r.Date,
		EndDate:     r.EndDate,
		Price:       r.Price,
		Note:        r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation:  resp.Reservation,
		DurationDays: resp.DurationDays,
	}
}
