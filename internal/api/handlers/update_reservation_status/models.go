package update_reservation_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Action string `json:"action"` // accept | reject | complete
}
