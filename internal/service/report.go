package service

import (
	"sort"
	"time"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// DateRange bounds a report period. Either side may be nil for an open end.
// The To bound is inclusive through the end of its calendar day.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil {
		end := endOfDay(*r.To)
		if t.After(end) {
			return false
		}
	}
	return true
}

func endOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, time.UTC)
}

// DeriveSummary computes period P&L over the snapshot groups falling inside
// the given range. Initial is the total of the earliest in-range group, final
// the total of the latest; both are 0 when nothing is in range. The percent
// change is 0 when the initial value is 0.
//
// The category allocation is taken from the latest in-range group alone,
// summing item values per category label and dropping zero or negative
// totals. Items without a category fall under the default placeholder.
func DeriveSummary(groups []model.SnapshotGroup, dateRange DateRange) model.ReportSummary {
	filtered := []model.SnapshotGroup{}
	for _, g := range groups {
		if dateRange.Contains(g.CreatedAt) {
			filtered = append(filtered, g)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	summary := model.ReportSummary{
		Allocations: []model.CategoryAllocation{},
	}

	if len(filtered) == 0 {
		return summary
	}

	summary.Initial = filtered[0].Total()
	summary.Final = filtered[len(filtered)-1].Total()
	summary.PnL = summary.Final - summary.Initial
	if summary.Initial != 0 {
		summary.PnLPercent = summary.PnL / summary.Initial * 100
	}

	latest := filtered[len(filtered)-1]
	totals := make(map[string]float64)
	order := []string{}

	for _, item := range latest.Items {
		category := item.CategoryName
		if category == "" {
			category = model.DefaultCategory
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += item.TotalValueBRL
	}

	for _, category := range order {
		if totals[category] <= 0 {
			continue
		}
		summary.Allocations = append(summary.Allocations, model.CategoryAllocation{
			Category: category,
			Value:    totals[category],
		})
	}

	sort.SliceStable(summary.Allocations, func(i, j int) bool {
		return summary.Allocations[i].Value > summary.Allocations[j].Value
	})

	return summary
}
