package resolve_availability

import "github.com/craftopia-app/Craftopia-ReservationService/pkg/types"

// Request модель запроса на разрешение расписания мастера
type Request struct {
	ArtisanID string // ID мастера
	Date      string // Дата для точечной проверки, YYYY-MM-DD (опционально)
}

// Response модель ответа с разрешенным расписанием
type Response struct {
	ArtisanID         string // ID мастера
	Slots             []Slot // Недельное расписание
	MinSelectableDate string // Ближайшая доступная дата, YYYY-MM-DD
	AvailableDays     string // Человекочитаемая сводка дней
	AvailableToday    bool   // Доступен ли мастер прямо сейчас

	// Результат точечной проверки даты; заполняется, когда Date задана
	DateValid   *bool
	DateMessage string
}

// Slot модель окна расписания
type Slot struct {
	Day       string           // День недели
	StartTime types.TimeString // Время начала работы (например, "09:00")
	EndTime   types.TimeString // Время окончания работы (например, "17:00")
}
