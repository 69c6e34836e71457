package model

import "time"

// DefaultCategory is the placeholder applied when a snapshot item carries no
// category label. Grouping keys must never be empty strings.
const DefaultCategory = "Sem Categoria"

// SnapshotItem is one valuation line inside a snapshot group. Items reference
// either a specific holding (AssetID set) or a synthetic aggregate such as the
// crypto total (IsCryptoTotal). Values are captured in BRL.
type SnapshotItem struct {
	ID            string  `json:"id"`
	GroupID       string  `json:"groupId"`
	AssetID       *string `json:"assetId,omitempty"`
	AssetName     string  `json:"assetName"`
	CategoryName  string  `json:"assetCategoryName"`
	TotalValueBRL float64 `json:"totalValueBrl"`
	IsCryptoTotal bool    `json:"isCryptoTotal"`
}

// SnapshotGroup is a timestamped capture of valuations across holdings.
// The group total is derived from its items, never stored.
type SnapshotGroup struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Notes     string         `json:"notes"`
	Items     []SnapshotItem `json:"items"`
}

// Total sums the valued amounts of all items in the group.
func (g SnapshotGroup) Total() float64 {
	var total float64
	for _, item := range g.Items {
		total += item.TotalValueBRL
	}
	return total
}

// AssetPivotRow is one row of the asset-by-date pivot table. Values are
// ordered to match the pivot's Dates column headers; a nil entry means the
// asset had no valuation at that date and renders as an em dash.
type AssetPivotRow struct {
	AssetKey  string     `json:"assetKey"`
	AssetName string     `json:"assetName"`
	IsTotal   bool       `json:"isTotal"`
	Values    []*float64 `json:"values"`
}

// AssetPivot is the full asset-by-date matrix: date column headers plus rows
// in first-seen asset order, the synthetic TOTAL row always last.
type AssetPivot struct {
	Dates []string        `json:"dates"`
	Rows  []AssetPivotRow `json:"rows"`
}

// DatePoint is one chart data point of the date-keyed stacked series.
// Unlike the asset pivot, every key seen in any group is present with an
// explicit zero when no item matches at that date.
type DatePoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// CategoryAllocation is one category slice of the latest in-range snapshot.
type CategoryAllocation struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// ReportSummary is the period P&L derived from a date-filtered set of
// snapshot groups.
type ReportSummary struct {
	Initial     float64              `json:"initial"`
	Final       float64              `json:"final"`
	PnL         float64              `json:"pnl"`
	PnLPercent  float64              `json:"pnlPercent"`
	Allocations []CategoryAllocation `json:"allocations"`
}
