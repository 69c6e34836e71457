package model

import "time"

// RateProviderConfig holds the external exchange-rate provider settings.
// The API token is stored fernet-encrypted; Token here is always plaintext
// and is only decrypted in the service layer.
type RateProviderConfig struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}
