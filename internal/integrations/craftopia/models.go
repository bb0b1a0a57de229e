package craftopia

import (
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

// LoginResult результат успешного логина на backend
type LoginResult struct {
	Token  string
	Role   string
	UserID string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"_id"`
}

// rawAvailabilitySlot слот расписания в том виде, в каком его отдает backend.
// Backend исторически присылает ключи в двух вариантах (day/dayOfWeek,
// start_time/startTime), поэтому структура принимает оба.
type rawAvailabilitySlot struct {
	Day            string `json:"day"`
	DayOfWeek      string `json:"dayOfWeek"`
	StartTime      string `json:"startTime"`
	StartTimeSnake string `json:"start_time"`
	EndTime        string `json:"endTime"`
	EndTimeSnake   string `json:"end_time"`
}

// toDomain нормализует вариативные ключи backend в единую внутреннюю форму.
// Непарсящееся время деградирует к пустому значению (окно без границы),
// а не к ошибке.
func (s rawAvailabilitySlot) toDomain() domain.AvailabilitySlot {
	slot := domain.AvailabilitySlot{
		Day: firstNonEmpty(s.Day, s.DayOfWeek),
	}

	if start, err := types.NewTimeStringFromString(firstNonEmpty(s.StartTime, s.StartTimeSnake)); err == nil {
		slot.StartTime = start
	}
	if end, err := types.NewTimeStringFromString(firstNonEmpty(s.EndTime, s.EndTimeSnake)); err == nil {
		slot.EndTime = end
	}

	return slot
}

// orderWire заказ в проводном формате backend. Статусы и денежные поля
// также приходят в двух исторических словарях; нормализация происходит
// здесь, на границе, чтобы остальной код видел только канонический вид.
type orderWire struct {
	ID          string  `json:"_id"`
	CustomerID  string  `json:"customer"`
	ArtisanID   string  `json:"artisan"`
	ProjectID   *string `json:"projectId"`
	CustomTitle *string `json:"customTitle"`
	Kind        string  `json:"type"`
	Status      string  `json:"status"`

	ArtisanName string `json:"artisanName"`
	CraftName   string `json:"craftName"`

	TotalPrice  *float64 `json:"totalPrice"`
	AgreedPrice *float64 `json:"agreed_price"`

	Note        *string `json:"note"`
	Description *string `json:"description"`

	StartDate    string `json:"start_date"`
	DeliveryDate string `json:"deliveryDate"`
	CreatedAt    string `json:"createdAt"`

	HasReview bool `json:"hasReview"`
}

// toDomain конвертирует проводной заказ в доменную модель
func (o orderWire) toDomain() (*domain.Reservation, error) {
	status, err := domain.ParseReservationStatus(o.Status)
	if err != nil {
		return nil, err
	}

	kind := domain.ReservationKind(o.Kind)
	switch kind {
	case domain.KindCraft, domain.KindMaintenance, domain.KindCustom:
	default:
		// Старые записи без типа считаются индивидуальными заказами
		kind = domain.KindCustom
	}

	reservation := &domain.Reservation{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		ArtisanID:   o.ArtisanID,
		ProjectID:   o.ProjectID,
		CustomTitle: o.CustomTitle,
		Kind:        kind,
		Status:      status,
		ArtisanName: o.ArtisanName,
		CraftName:   o.CraftName,
		TotalPrice:  firstNonNil(o.AgreedPrice, o.TotalPrice),
		Note:        firstNonNil(o.Note, o.Description),
		HasReview:   o.HasReview,
	}

	reservation.StartDate = parseWireTime(o.StartDate)
	reservation.DeliveryDate = parseWireTime(o.DeliveryDate)
	if created := parseWireTime(o.CreatedAt); created != nil {
		reservation.CreatedAt = *created
	}

	return reservation, nil
}

// reviewWire отзыв в проводном формате backend
type reviewWire struct {
	ID            string `json:"_id"`
	CustomerID    string `json:"customer"`
	ArtisanID     string `json:"artisan"`
	ReservationID string `json:"order"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"createdAt"`
}

func (r reviewWire) toDomain() *domain.Review {
	review := &domain.Review{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		ArtisanID:     r.ArtisanID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
	if created := parseWireTime(r.CreatedAt); created != nil {
		review.CreatedAt = *created
	}
	return review
}

// parseWireTime разбирает дату backend: сначала RFC3339, затем YYYY-MM-DD.
// Пустые и непарсящиеся значения дают nil.
func parseWireTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return &t
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
