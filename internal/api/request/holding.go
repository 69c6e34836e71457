package request

// CreateHoldingRequest represents the request body for creating a holding.
// Return figures come from the brokerage statement and may be negative.
type CreateHoldingRequest struct {
	Name             string  `json:"name"`
	Ticker           string  `json:"ticker"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	Quantity         float64 `json:"quantity"`
	Return           float64 `json:"return"`
	ReturnPercentage float64 `json:"returnPercentage"`
}

// UpdateHoldingRequest carries a partial holding edit. The stored total is
// always recomputed from price and quantity, so no total field is accepted.
type UpdateHoldingRequest struct {
	Name             *string  `json:"name,omitempty"`
	Ticker           *string  `json:"ticker,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	Quantity         *float64 `json:"quantity,omitempty"`
	Return           *float64 `json:"return,omitempty"`
	ReturnPercentage *float64 `json:"returnPercentage,omitempty"`
}
