package model

// CryptoHolding represents a crypto position priced in USD.
// TotalBRL holds the local-currency value as of the last recomputation with
// the prevailing USD to BRL rate; the rate itself is a per-call input and is
// never persisted on the holding.
type CryptoHolding struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Ticker   string  `json:"ticker"`
	Sector   string  `json:"sector"`
	Custody  string  `json:"custody"`
	PriceUSD float64 `json:"priceUsd"`
	Quantity float64 `json:"quantity"`
	TotalUSD float64 `json:"totalUsd"`
	TotalBRL float64 `json:"totalBrl"`
}

// SectorAllocation is one slice of the crypto sector breakdown.
// Percentage is relative to the crypto-only total, 0 when that total is 0.
type SectorAllocation struct {
	Sector     string  `json:"sector"`
	TotalUSD   float64 `json:"totalUsd"`
	Percentage float64 `json:"percentage"`
}

// CryptoMetrics aggregates the crypto tab of the portfolio.
type CryptoMetrics struct {
	TotalUSD           float64            `json:"totalUsd"`
	TotalBRL           float64            `json:"totalBrl"`
	AssetCount         int                `json:"assetCount"`
	PercentOfPortfolio float64            `json:"percentOfPortfolio"`
	TopCustody         string             `json:"topCustody"`
	StablecoinTotalUSD float64            `json:"stablecoinTotalUsd"`
	SectorAllocations  []SectorAllocation `json:"sectorAllocations"`
}
