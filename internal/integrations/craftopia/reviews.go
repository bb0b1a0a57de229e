package craftopia

import (
	"context"
	"fmt"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва на backend
type CreateReviewRequest struct {
	ArtisanID     string `json:"artisan"`
	ReservationID string `json:"order"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// CreateReview создает отзыв о мастере
func (c *Client) CreateReview(ctx context.Context, token string, req *CreateReviewRequest) (*domain.Review, error) {
	var wire reviewWire
	if err := c.do(ctx, http.MethodPost, "/reviews", token, req, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

// GetArtisanReviews получает отзывы о мастере
func (c *Client) GetArtisanReviews(ctx context.Context, artisanID string) ([]*domain.Review, error) {
	var wires []reviewWire
	path := fmt.Sprintf("/reviews/%s", artisanID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &wires); err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(wires))
	for _, wire := range wires {
		reviews = append(reviews, wire.toDomain())
	}

	return reviews, nil
}
