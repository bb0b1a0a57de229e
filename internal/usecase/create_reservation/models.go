package create_reservation

import (
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations/models"
)

// Request модель запроса на создание заказа
type Request struct {
	Session *domain.Session // Сессия заказчика

	ArtisanID   string  // ID мастера
	ProjectID   *string // Каталожный проект (взаимоисключимо с CustomTitle)
	CustomTitle *string // Собственное название работы
	Kind        string  // Тип заказа: craft | maintenance | custom
	Date        string  // Дата начала, YYYY-MM-DD
	EndDate     *string // Дата завершения, YYYY-MM-DD (только для каталожных работ)
	Price       *float64
	Note        *string
}

// Response модель ответа на создание заказа
type Response struct {
	Reservation  *models.ReservationResponse // Созданный заказ
	DurationDays int                         // Оценка длительности работ в днях (для отображения)
}
