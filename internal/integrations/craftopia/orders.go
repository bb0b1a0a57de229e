package craftopia

import (
	"context"
	"fmt"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// CreateOrderRequest запрос на создание заказа на backend
type CreateOrderRequest struct {
	ArtisanID   string   `json:"artisan"`
	ProjectID   *string  `json:"projectId,omitempty"`
	CustomTitle *string  `json:"customTitle,omitempty"`
	Kind        string   `json:"type"`
	Date        string   `json:"start_date"`              // YYYY-MM-DD
	EndDate     *string  `json:"deliveryDate,omitempty"`  // YYYY-MM-DD, только для каталожных работ
	Price       *float64 `json:"totalPrice,omitempty"`
	Note        *string  `json:"note,omitempty"`
}

type replyRequest struct {
	Price float64 `json:"agreed_price"`
	Note  *string `json:"note,omitempty"`
}

type customerResponseRequest struct {
	Action string  `json:"action"` // accept | reject | negotiate
	Note   *string `json:"note,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder создает заказ. Backend возвращает свежую копию созданного
// заказа; локально ничего не сохраняется.
func (c *Client) CreateOrder(ctx context.Context, token string, req *CreateOrderRequest) (*domain.Reservation, error) {
	var wire orderWire
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

// GetOrder получает заказ по идентификатору
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*domain.Reservation, error) {
	var wire orderWire
	path := fmt.Sprintf("/orders/%s", orderID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

// GetUserOrders получает заказы текущего пользователя (заказчика или мастера,
// в зависимости от роли токена)
func (c *Client) GetUserOrders(ctx context.Context, token string) ([]*domain.Reservation, error) {
	var wires []orderWire
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &wires); err != nil {
		return nil, err
	}

	reservations := make([]*domain.Reservation, 0, len(wires))
	for _, wire := range wires {
		reservation, err := c.orderToDomain(wire)
		if err != nil {
			// Запись с неизвестным статусом пропускаем, не роняя весь список
			c.log.Warn("craftopia: skipping order %s with unknown status %q", wire.ID, wire.Status)
			continue
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// ReplyOrder отправляет ценовое предложение мастера по заказу
func (c *Client) ReplyOrder(ctx context.Context, token, orderID string, price float64, note *string) (*domain.Reservation, error) {
	var wire orderWire
	path := fmt.Sprintf("/orders/%s/reply", orderID)
	if err := c.do(ctx, http.MethodPut, path, token, replyRequest{Price: price, Note: note}, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

// RespondToOffer отправляет ответ заказчика на ценовое предложение
func (c *Client) RespondToOffer(ctx context.Context, token, orderID, action string, note *string) (*domain.Reservation, error) {
	var wire orderWire
	path := fmt.Sprintf("/orders/%s/customer-response", orderID)
	if err := c.do(ctx, http.MethodPut, path, token, customerResponseRequest{Action: action, Note: note}, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

// UpdateOrderStatus обновляет статус заказа (операции мастера)
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.ReservationStatus) (*domain.Reservation, error) {
	var wire orderWire
	path := fmt.Sprintf("/orders/%s/status", orderID)
	if err := c.do(ctx, http.MethodPut, path, token, updateStatusRequest{Status: string(status)}, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

// CancelOrder отменяет заказ от имени заказчика
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) (*domain.Reservation, error) {
	var wire orderWire
	path := fmt.Sprintf("/orders/%s/cancel", orderID)
	if err := c.do(ctx, http.MethodPost, path, token, nil, &wire); err != nil {
		return nil, err
	}
	return c.orderToDomain(wire)
}

func (c *Client) orderToDomain(wire orderWire) (*domain.Reservation, error) {
	reservation, err := wire.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: order %s: %v", ErrInvalidResponse, wire.ID, err)
	}
	return reservation, nil
}
