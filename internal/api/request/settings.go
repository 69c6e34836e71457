package request

// UpdateRateProviderRequest represents the request body for storing the
// exchange-rate provider settings. The token is encrypted before persisting.
type UpdateRateProviderRequest struct {
	Token   string `json:"token"`
	Enabled bool   `json:"enabled"`
}
