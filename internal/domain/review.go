package domain

import "time"

// Review is a customer's rating of an artisan tied to a completed
// reservation. At most one review per (customer, artisan) pair is offered
// through the client; the backend remains the final authority.
type Review struct {
	ID            string
	CustomerID    string
	ArtisanID     string
	ReservationID string
	Rating        int // 1-5
	Comment       string
	CreatedAt     time.Time
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// IsValidRating reports whether the star rating is within bounds.
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
