package model

// Dashboard is the combined live view of the portfolio: one TabMetrics per
// category of traditional holdings plus the crypto tab, all percentages
// computed against the full portfolio total in BRL.
type Dashboard struct {
	PortfolioTotalBRL float64               `json:"portfolioTotalBrl"`
	USDBRLRate        float64               `json:"usdBrlRate"`
	Tabs              map[string]TabMetrics `json:"tabs"`
	Crypto            CryptoMetrics         `json:"crypto"`
}
