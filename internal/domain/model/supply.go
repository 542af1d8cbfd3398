// Package model defines the inventory data types exchanged with the SustainaStock API.
package model

// Supply is an inventory item as returned by the inventory API.
type Supply struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	ExpirationDate  Timestamp `json:"expiration_date"`
	LastUpdated     Timestamp `json:"last_updated"`
	CostPerUnit     *float64  `json:"cost_per_unit,omitempty"`
	PrimarySupplier string    `json:"primary_supplier,omitempty"`
}

// UnitCost returns the cost per unit, or 0 when the API does not report one.
func (s Supply) UnitCost() float64 {
	if s.CostPerUnit == nil {
		return 0
	}
	return *s.CostPerUnit
}

// SupplyRequest is the create/update payload for a supply.
type SupplyRequest struct {
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	ExpirationDate  Timestamp `json:"expiration_date"`
	CostPerUnit     *float64  `json:"cost_per_unit,omitempty"`
	PrimarySupplier string    `json:"primary_supplier,omitempty"`
}

// SupplyListOptions filters and pages the supply list endpoint.
type SupplyListOptions struct {
	Category string
	Skip     int
	// Limit of 0 leaves the API default in place.
	Limit int
}

// UsageRecord records consumption of a supply.
type UsageRecord struct {
	SupplyID     int `json:"supply_id"`
	QuantityUsed int `json:"quantity_used"`
}
