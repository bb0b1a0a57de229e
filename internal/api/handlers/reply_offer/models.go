package reply_offer

// ReplyOfferRequest HTTP request model
type ReplyOfferRequest struct {
	Price float64 `json:"price"`
	Note  *string `json:"note,omitempty"`
}
