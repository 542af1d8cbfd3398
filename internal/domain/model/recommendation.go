//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Recommendation is a suggested reorder for one supply.
type Recommendation struct {
	SupplyID                 int     `json:"supply_id"`
	Name                     string  `json:"name,omitempty"`
	CurrentStock             float64 `json:"current_stock"`
	AverageWeeklyUsage       float64 `json:"average_weekly_usage"`
	RecommendedOrderQuantity float64 `json:"recommended_order_quantity"`
	Supplier                 string  `json:"supplier"`
}

// SavingsItem estimates money tied up in overstock for one supply.
type SavingsItem struct {
	SupplyID          int     `json:"supply_id"`
	Name              string  `json:"name"`
	OverstockQuantity float64 `json:"overstock_quantity"`
	EstimatedSavings  float64 `json:"estimated_savings"`
}

// UsageHistory is total units used per day.
type UsageHistory struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// SavingsHistory is estimated savings per month.
type SavingsHistory struct {
	Months []string  `json:"months"`
	Values []float64 `json:"values"`
}
