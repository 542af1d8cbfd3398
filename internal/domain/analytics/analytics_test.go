package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

func cost(v float64) *float64 { return &v }

func TestTotalEstimatedSavings(t *testing.T) {
	assert.Zero(t, TotalEstimatedSavings(nil))
	got := TotalEstimatedSavings([]model.SavingsItem{
		{EstimatedSavings: 12.5},
		{EstimatedSavings: 7.5},
	})
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestWasteReductionPercent(t *testing.T) {
	tests := []struct {
		name     string
		supplies []model.Supply
		savings  []model.SavingsItem
		want     float64
	}{
		{
			name: "no stock",
			savings: []model.SavingsItem{
				{OverstockQuantity: 10},
			},
			want: 0,
		},
		{
			name:     "zero quantity",
			supplies: []model.Supply{{Quantity: 0}},
			savings:  []model.SavingsItem{{OverstockQuantity: 5}},
			want:     0,
		},
		{
			name:     "quarter overstock",
			supplies: []model.Supply{{Quantity: 60}, {Quantity: 40}},
			savings:  []model.SavingsItem{{OverstockQuantity: 25}},
			want:     25,
		},
		{
			name:     "clamped to 100",
			supplies: []model.Supply{{Quantity: 10}},
			savings:  []model.SavingsItem{{OverstockQuantity: 50}},
			want:     100,
		},
		{
			name:     "negative overstock clamped to 0",
			supplies: []model.Supply{{Quantity: 10}},
			savings:  []model.SavingsItem{{OverstockQuantity: -3}},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WasteReductionPercent(tt.supplies, tt.savings)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestUnitCosts(t *testing.T) {
	costs := UnitCosts([]model.Supply{
		{ID: 1, CostPerUnit: cost(2)},
		{ID: 2},
	})
	assert.Equal(t, map[int]float64{1: 2}, costs)
}

func TestSavingsPercent(t *testing.T) {
	tests := []struct {
		name  string
		recs  []model.Recommendation
		costs map[int]float64
		want  float64
	}{
		{
			name: "empty",
			want: 0,
		},
		{
			name: "missing costs",
			recs: []model.Recommendation{{SupplyID: 1, CurrentStock: 10, RecommendedOrderQuantity: 5}},
			want: 0,
		},
		{
			name: "optimized cheaper",
			// original = (10+10)*1 = 20, optimized = max(10, 2*2)*1 = 10
			recs:  []model.Recommendation{{SupplyID: 1, CurrentStock: 10, RecommendedOrderQuantity: 10, AverageWeeklyUsage: 2}},
			costs: map[int]float64{1: 1},
			want:  50,
		},
		{
			name: "optimized dearer clamps to zero",
			// original = (1+0)*1 = 1, optimized = max(1, 2*5)*1 = 10
			recs:  []model.Recommendation{{SupplyID: 1, CurrentStock: 1, AverageWeeklyUsage: 5}},
			costs: map[int]float64{1: 1},
			want:  0,
		},
		{
			name: "weighted by cost",
			recs: []model.Recommendation{
				{SupplyID: 1, CurrentStock: 4, RecommendedOrderQuantity: 4, AverageWeeklyUsage: 1},
				{SupplyID: 2, CurrentStock: 0, RecommendedOrderQuantity: 10, AverageWeeklyUsage: 5},
			},
			// original = 8*2 + 10*1 = 26; optimized = 4*2 + 10*1 = 18
			costs: map[int]float64{1: 2, 2: 1},
			want:  (26.0 - 18.0) / 26.0 * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsPercent(tt.recs, tt.costs)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}
