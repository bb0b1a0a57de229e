package domain

import (
	"strings"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

// AvailabilitySlot is a weekly time window during which an artisan accepts
// bookings. Produced by the artisan on the backend, consumed read-only here.
// Duplicate or overlapping days are tolerated: resolution takes the first
// entry whose day matches.
type AvailabilitySlot struct {
	Day       string // название дня недели, например "Monday"
	StartTime types.TimeString
	EndTime   types.TimeString
}

// MatchesDay reports whether the slot covers the given calendar date's
// weekday. The comparison is case-insensitive and tolerates short day names.
func (s AvailabilitySlot) MatchesDay(date time.Time) bool {
	day := strings.ToLower(strings.TrimSpace(s.Day))
	if day == "" {
		return false
	}
	weekday := strings.ToLower(date.Weekday().String())
	return day == weekday || day == weekday[:3]
}

// CanonicalDay returns the capitalized full weekday name for the slot,
// or "" when the day does not resolve to a known weekday.
func (s AvailabilitySlot) CanonicalDay() string {
	day := strings.ToLower(strings.TrimSpace(s.Day))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if day == name || day == name[:3] {
			return wd.String()
		}
	}
	return ""
}
