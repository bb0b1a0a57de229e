package create_review

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	ReservationID string `json:"reservationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}
