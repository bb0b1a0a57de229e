package get_availability

import (
	resolveAvailability "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/resolve_availability"
)

// SlotResponse HTTP model окна расписания
type SlotResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ArtisanID         string         `json:"artisanId"`
	Slots             []SlotResponse `json:"slots"`
	MinSelectableDate string         `json:"minSelectableDate"`
	AvailableDays     string         `json:"availableDays"`
	AvailableToday    bool           `json:"availableToday"`

	DateValid   *bool  `json:"dateValid,omitempty"`
	DateMessage string `json:"dateMessage,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Day:       slot.Day,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return &AvailabilityResponse{
		ArtisanID:         resp.ArtisanID,
		Slots:             slots,
		MinSelectableDate: resp.MinSelectableDate,
		AvailableDays:     resp.AvailableDays,
		AvailableToday:    resp.AvailableToday,
		DateValid:         resp.DateValid,
		DateMessage:       resp.DateMessage,
	}
}
