package request

// CreateLabelRequest represents the request body for adding a vocabulary label
type CreateLabelRequest struct {
	Name string `json:"name"`
}
