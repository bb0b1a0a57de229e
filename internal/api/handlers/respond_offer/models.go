package respond_offer

// RespondOfferRequest HTTP request model
type RespondOfferRequest struct {
	Action string  `json:"action"` // accept | reject | negotiate
	Note   *string `json:"note,omitempty"`
}
