package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrUnknownStatus is returned when a wire status value cannot be
	// mapped to a canonical ReservationStatus.
	ErrUnknownStatus = errors.New("domain: unknown reservation status")

	// ErrTransitionNotAllowed is returned when a lifecycle action is not
	// permitted for the given status and actor.
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed")
)

// ReservationStatus represents the canonical status of a reservation.
type ReservationStatus string

const (
	StatusNew           ReservationStatus = "new"
	StatusOfferReceived ReservationStatus = "offer_received"
	StatusNegotiating   ReservationStatus = "negotiating"
	StatusAccepted      ReservationStatus = "accepted"
	StatusRejected      ReservationStatus = "rejected"
	StatusCancelled     ReservationStatus = "cancelled"
	StatusCompleted     ReservationStatus = "completed"
)

// statusAliases нормализует оба исторических словаря статусов
// (устаревшая демо-модель и модель заказов backend) в канонический enum.
// Применяется один раз, на границе с backend.
var statusAliases = map[string]ReservationStatus{
	"new":            StatusNew,
	"pending":        StatusNew,
	"offer_received": StatusOfferReceived,
	"price_proposed": StatusOfferReceived,
	"negotiating":    StatusNegotiating,
	"accepted":       StatusAccepted,
	"confirmed":      StatusAccepted,
	"rejected":       StatusRejected,
	"cancelled":      StatusCancelled,
	"canceled":       StatusCancelled,
	"completed":      StatusCompleted,
}

// ParseReservationStatus maps a raw wire status (either vocabulary,
// any case) to the canonical enum.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// Actor identifies who triggers a lifecycle action.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorArtisan  Actor = "artisan"
)

// Action is a lifecycle action on a reservation.
type Action string

const (
	ActionAccept    Action = "accept"
	ActionReject    Action = "reject"
	ActionCancel    Action = "cancel"
	ActionNegotiate Action = "negotiate"
	ActionReply     Action = "reply"
	ActionComplete  Action = "complete"
)

type transitionKey struct {
	from   ReservationStatus
	action Action
	actor  Actor
}

// transitions — полная таблица допустимых переходов жизненного цикла.
// Все, чего нет в таблице, запрещено на стороне клиента и не доходит до сети.
var transitions = map[transitionKey]ReservationStatus{
	// Ответ мастера на новую заявку
	{StatusNew, ActionAccept, ActorArtisan}: StatusAccepted,
	{StatusNew, ActionReject, ActorArtisan}: StatusRejected,

	// Ценовое предложение мастера (в том числе повторное после торга)
	{StatusNew, ActionReply, ActorArtisan}:         StatusOfferReceived,
	{StatusNegotiating, ActionReply, ActorArtisan}: StatusOfferReceived,

	// Отмена заказчиком возможна только пока заявка не принята
	{StatusNew, ActionCancel, ActorCustomer}: StatusCancelled,

	// Ответ заказчика на ценовое предложение
	{StatusOfferReceived, ActionAccept, ActorCustomer}:    StatusAccepted,
	{StatusOfferReceived, ActionReject, ActorCustomer}:    StatusRejected,
	{StatusOfferReceived, ActionNegotiate, ActorCustomer}: StatusNegotiating,

	// Завершение работы мастером
	{StatusAccepted, ActionComplete, ActorArtisan}: StatusCompleted,
}

// NextStatus returns the status a reservation moves to when actor performs
// action, or ErrTransitionNotAllowed if the transition is not in the table.
func NextStatus(from ReservationStatus, action Action, actor Actor) (ReservationStatus, error) {
	to, ok := transitions[transitionKey{from, action, actor}]
	if !ok {
		return "", ErrTransitionNotAllowed
	}
	return to, nil
}

// Reservation is the client-side mirror of a backend-owned order.
// It is never mutated locally: every change is a request to the backend
// that returns a fresh copy.
type Reservation struct {
	ID         string
	CustomerID string
	ArtisanID  string

	// Либо ссылка на каталожную работу, либо свободное описание
	ProjectID   *string
	CustomTitle *string

	Kind   ReservationKind
	Status ReservationStatus

	// Денормализованные данные для отображения истории
	ArtisanName string
	CraftName   string

	TotalPrice *float64
	Note       *string

	StartDate    *time.Time
	DeliveryDate *time.Time
	CreatedAt    time.Time

	// Признак наличия отзыва приходит от backend и не пересчитывается локально
	HasReview bool
}

// ReservationKind distinguishes booking flavours: catalog crafts use a date
// range, maintenance and custom jobs use a single date.
type ReservationKind string

const (
	KindCraft       ReservationKind = "craft"
	KindMaintenance ReservationKind = "maintenance"
	KindCustom      ReservationKind = "custom"
)

// IsTerminal reports whether no further lifecycle action applies.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled || r.Status == StatusCompleted
}

// CanBeCancelled reports whether the customer may still withdraw the request.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusNew
}

// AwaitsCustomerResponse reports whether a price offer is pending.
func (r *Reservation) AwaitsCustomerResponse() bool {
	return r.Status == StatusOfferReceived
}

// IsReviewable reports whether the customer may leave a review.
func (r *Reservation) IsReviewable() bool {
	return r.Status == StatusCompleted && !r.HasReview
}
