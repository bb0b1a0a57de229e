package craftopia

import (
	"context"
	"fmt"
	"net/http"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// GetArtisanAvailability получает недельное расписание мастера.
// Ключи слотов нормализуются на этой границе: дальше по коду существует
// только каноническая форма.
func (c *Client) GetArtisanAvailability(ctx context.Context, artisanID string) ([]domain.AvailabilitySlot, error) {
	var raw []rawAvailabilitySlot
	path := fmt.Sprintf("/availability/%s", artisanID)

	if err := c.do(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}

	slots := make([]domain.AvailabilitySlot, 0, len(raw))
	for _, r := range raw {
		slots = append(slots, r.toDomain())
	}

	return slots, nil
}
