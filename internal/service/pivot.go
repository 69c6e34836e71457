package service

import (
	"sort"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// DateGrouping selects the key used when pivoting snapshot items by date.
type DateGrouping string

const (
	// GroupByAsset keys date points by asset display name.
	GroupByAsset DateGrouping = "asset"
	// GroupByCategory keys date points by category label.
	GroupByCategory DateGrouping = "category"
)

// pivotDateFormat is the column header format of pivoted snapshot tables.
const pivotDateFormat = "2006-01-02"

// assetKey derives a stable row identity for a snapshot item. Synthetic
// aggregate items are keyed by their flag plus label so they never collide
// with a real holding; items without a holding reference fall back to the
// display name.
func assetKey(item model.SnapshotItem) string {
	if item.IsCryptoTotal {
		return "crypto-total:" + item.AssetName
	}
	if item.AssetID != nil {
		return *item.AssetID
	}
	return "name:" + item.AssetName
}

// sortGroupsByDate returns a copy of groups stably sorted ascending by
// capture timestamp. Ties keep their original relative order.
func sortGroupsByDate(groups []model.SnapshotGroup) []model.SnapshotGroup {
	sorted := make([]model.SnapshotGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// PivotByAsset transforms snapshot groups into an asset-by-date matrix with
// one column per group and one row per distinct asset, in first-seen order.
// A cell is nil when the group holds no item for that asset; rows are sparse
// on purpose so renderers can distinguish "not captured" from zero.
//
// A synthetic TOTAL row is appended last: each of its cells sums the non-nil
// values of that column, or stays nil when the whole column is empty.
func PivotByAsset(groups []model.SnapshotGroup) model.AssetPivot {
	sorted := sortGroupsByDate(groups)

	pivot := model.AssetPivot{
		Dates: make([]string, len(sorted)),
		Rows:  []model.AssetPivotRow{},
	}

	rowIndex := make(map[string]int)

	for col, g := range sorted {
		pivot.Dates[col] = g.CreatedAt.UTC().Format(pivotDateFormat)

		for _, item := range g.Items {
			key := assetKey(item)

			idx, seen := rowIndex[key]
			if !seen {
				idx = len(pivot.Rows)
				rowIndex[key] = idx
				pivot.Rows = append(pivot.Rows, model.AssetPivotRow{
					AssetKey:  key,
					AssetName: item.AssetName,
					Values:    make([]*float64, len(sorted)),
				})
			}

			if pivot.Rows[idx].Values[col] == nil {
				value := item.TotalValueBRL
				pivot.Rows[idx].Values[col] = &value
			} else {
				*pivot.Rows[idx].Values[col] += item.TotalValueBRL
			}
		}
	}

	totalRow := model.AssetPivotRow{
		AssetKey:  "total",
		AssetName: "TOTAL",
		IsTotal:   true,
		Values:    make([]*float64, len(sorted)),
	}

	for col := range sorted {
		for _, row := range pivot.Rows {
			if row.Values[col] == nil {
				continue
			}
			if totalRow.Values[col] == nil {
				value := *row.Values[col]
				totalRow.Values[col] = &value
			} else {
				*totalRow.Values[col] += *row.Values[col]
			}
		}
	}

	pivot.Rows = append(pivot.Rows, totalRow)

	return pivot
}

// PivotByDate transforms snapshot groups into a dense date-keyed series for
// stacked charts. Every key seen in any group is present in every date point
// with an explicit 0 when that date has no matching item. This differs from
// PivotByAsset's sparse cells and the difference is deliberate: stacked
// series need a numeric value for every key at every date.
func PivotByDate(groups []model.SnapshotGroup, grouping DateGrouping) []model.DatePoint {
	sorted := sortGroupsByDate(groups)

	keyOf := func(item model.SnapshotItem) string {
		if grouping == GroupByCategory {
			if item.CategoryName == "" {
				return model.DefaultCategory
			}
			return item.CategoryName
		}
		return item.AssetName
	}

	keys := []string{}
	seen := make(map[string]bool)
	for _, g := range sorted {
		for _, item := range g.Items {
			key := keyOf(item)
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	points := make([]model.DatePoint, len(sorted))

	for i, g := range sorted {
		point := model.DatePoint{
			Date:   g.CreatedAt.UTC().Format(pivotDateFormat),
			Values: make(map[string]float64, len(keys)),
		}
		for _, key := range keys {
			point.Values[key] = 0
		}
		for _, item := range g.Items {
			point.Values[keyOf(item)] += item.TotalValueBRL
		}
		points[i] = point
	}

	return points
}
