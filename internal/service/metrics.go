package service

import (
	"sort"
	"strings"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// ComputeTabMetrics aggregates one portfolio tab of holdings into dashboard
// metrics. portfolioTotal is the denominator for the percent-of-portfolio
// figure; every division guards against a zero denominator and yields 0.
//
// The average return is weighted by position size:
// sum(returnPct_i * total_i) / sum(total_i). When multiple holdings share the
// maximum total, the first in input order wins the largest-position slot.
func ComputeTabMetrics(holdings []model.Holding, portfolioTotal float64) model.TabMetrics {
	metrics := model.TabMetrics{
		AssetCount: len(holdings),
	}

	var weightedReturn float64
	largestIdx := -1

	for i, h := range holdings {
		metrics.Total += h.Total
		weightedReturn += h.ReturnPercentage * h.Total

		if largestIdx == -1 || h.Total > holdings[largestIdx].Total {
			largestIdx = i
		}
	}

	if metrics.Total != 0 {
		metrics.AverageReturn = weightedReturn / metrics.Total
	}
	if portfolioTotal != 0 {
		metrics.PercentOfPortfolio = metrics.Total / portfolioTotal * 100
	}

	if largestIdx >= 0 {
		largest := holdings[largestIdx]
		metrics.LargestPosition = &largest
		if metrics.Total != 0 {
			metrics.LargestPositionPercentage = largest.Total / metrics.Total * 100
		}
	}

	return metrics
}

// ComputeCryptoMetrics aggregates the crypto tab into dashboard metrics.
// portfolioTotalBRL is the full portfolio total used for the
// percent-of-portfolio figure. The stablecoin subtotal matches any sector
// label containing "stablecoin", case-insensitively.
func ComputeCryptoMetrics(holdings []model.CryptoHolding, portfolioTotalBRL float64) model.CryptoMetrics {
	metrics := model.CryptoMetrics{
		AssetCount:        len(holdings),
		SectorAllocations: []model.SectorAllocation{},
	}

	custodyCounts := make(map[string]int)
	custodyOrder := []string{}
	sectorTotals := make(map[string]float64)
	sectorOrder := []string{}

	for _, c := range holdings {
		metrics.TotalUSD += c.TotalUSD
		metrics.TotalBRL += c.TotalBRL

		if c.Custody != "" {
			if _, seen := custodyCounts[c.Custody]; !seen {
				custodyOrder = append(custodyOrder, c.Custody)
			}
			custodyCounts[c.Custody]++
		}

		if strings.Contains(strings.ToLower(c.Sector), "stablecoin") {
			metrics.StablecoinTotalUSD += c.TotalUSD
		}

		sector := c.Sector
		if sector == "" {
			sector = model.DefaultCategory
		}
		if _, seen := sectorTotals[sector]; !seen {
			sectorOrder = append(sectorOrder, sector)
		}
		sectorTotals[sector] += c.TotalUSD
	}

	if portfolioTotalBRL != 0 {
		metrics.PercentOfPortfolio = metrics.TotalBRL / portfolioTotalBRL * 100
	}

	// Most frequent custody label, ties broken by first-seen order.
	best := -1
	for _, custody := range custodyOrder {
		if custodyCounts[custody] > best {
			best = custodyCounts[custody]
			metrics.TopCustody = custody
		}
	}

	for _, sector := range sectorOrder {
		allocation := model.SectorAllocation{
			Sector:   sector,
			TotalUSD: sectorTotals[sector],
		}
		if metrics.TotalUSD != 0 {
			allocation.Percentage = allocation.TotalUSD / metrics.TotalUSD * 100
		}
		metrics.SectorAllocations = append(metrics.SectorAllocations, allocation)
	}

	sort.SliceStable(metrics.SectorAllocations, func(i, j int) bool {
		return metrics.SectorAllocations[i].TotalUSD > metrics.SectorAllocations[j].TotalUSD
	})

	return metrics
}
