// Package analytics derives the summary figures shown on the inventory pages.
// All functions are pure and tolerate empty input.
package analytics

import (
	"math"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

// TotalEstimatedSavings sums estimated_savings across items.
func TotalEstimatedSavings(items []model.SavingsItem) float64 {
	var total float64
	for _, it := range items {
		total += it.EstimatedSavings
	}
	return total
}

// TotalQuantity sums the on-hand quantity of every supply.
func TotalQuantity(supplies []model.Supply) int {
	total := 0
	for _, s := range supplies {
		total += s.Quantity
	}
	return total
}

// WasteReductionPercent is overstock as a share of total stock, clamped to [0, 100].
// It returns 0 when total stock is not positive.
func WasteReductionPercent(supplies []model.Supply, savings []model.SavingsItem) float64 {
	stock := float64(TotalQuantity(supplies))
	if stock <= 0 {
		return 0
	}
	var overstock float64
	for _, it := range savings {
		overstock += it.OverstockQuantity
	}
	return clamp(overstock/stock*100, 0, 100)
}

// UnitCosts indexes cost_per_unit by supply id. Supplies without a cost are omitted.
func UnitCosts(supplies []model.Supply) map[int]float64 {
	costs := make(map[int]float64, len(supplies))
	for _, s := range supplies {
		if s.CostPerUnit != nil {
			costs[s.ID] = *s.CostPerUnit
		}
	}
	return costs
}

// SavingsPercent compares the cost of following the recommendations against
// ordering only what two weeks of usage requires.
//
// original  = sum((current + recommended) * unit cost)
// optimized = sum(max(current, 2 * weekly usage) * unit cost)
//
// The result is (original - optimized) / original * 100, never negative, and 0
// when original is not positive. Missing unit costs count as 0.
func SavingsPercent(recs []model.Recommendation, unitCosts map[int]float64) float64 {
	var original, optimized float64
	for _, r := range recs {
		cost := unitCosts[r.SupplyID]
		original += (r.CurrentStock + r.RecommendedOrderQuantity) * cost
		optimized += math.Max(r.CurrentStock, 2*r.AverageWeeklyUsage) * cost
	}
	if original <= 0 {
		return 0
	}
	return math.Max((original-optimized)/original*100, 0)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
