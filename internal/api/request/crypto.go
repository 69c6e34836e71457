package request

// CreateCryptoHoldingRequest represents the request body for creating a crypto holding
type CreateCryptoHoldingRequest struct {
	Name     string  `json:"name"`
	Ticker   string  `json:"ticker"`
	Sector   string  `json:"sector"`
	Custody  string  `json:"custody"`
	PriceUSD float64 `json:"priceUsd"`
	Quantity float64 `json:"quantity"`
}

// UpdateCryptoHoldingRequest carries a partial crypto holding edit.
type UpdateCryptoHoldingRequest struct {
	Name     *string  `json:"name,omitempty"`
	Ticker   *string  `json:"ticker,omitempty"`
	Sector   *string  `json:"sector,omitempty"`
	Custody  *string  `json:"custody,omitempty"`
	PriceUSD *float64 `json:"priceUsd,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}
