package model

// Holding represents a traditional asset position from the database.
// Total is always derived from Price * Quantity; edits to price or quantity
// trigger recomputation of the total, never the reverse.
type Holding struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Ticker           string  `json:"ticker"`
	Category         string  `json:"category"`
	Price            float64 `json:"price"`
	Quantity         float64 `json:"quantity"`
	Total            float64 `json:"total"`
	Return           float64 `json:"return"`
	ReturnPercentage float64 `json:"returnPercentage"`
}

// TabMetrics aggregates a single portfolio tab (one category of holdings).
// AverageReturn is weighted by position size. LargestPosition is nil when the
// tab is empty.
type TabMetrics struct {
	Total                     float64  `json:"total"`
	AssetCount                int      `json:"assetCount"`
	AverageReturn             float64  `json:"averageReturn"`
	PercentOfPortfolio        float64  `json:"percentOfPortfolio"`
	LargestPosition           *Holding `json:"largestPosition"`
	LargestPositionPercentage float64  `json:"largestPositionPercentage"`
}
