package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

// Form-level messages shown above the supply and usage forms.
const (
	MsgRequiredFields      = "Please fill in all required fields."
	MsgExpirationNotFuture = "Expiration date must be greater than the current date."
)

const (
	maxNameLength     = 120
	maxCategoryLength = 80
	maxSupplierLength = 120
)

// SupplyInput is the raw supply form.
type SupplyInput struct {
	Name            string
	Category        string
	Quantity        string
	ExpirationDate  string
	CostPerUnit     string
	PrimarySupplier string
}

// Result carries the outcome of validating a form. Message is the single
// form-level message; FieldErrors point at the offending inputs.
type Result struct {
	Message     string
	FieldErrors map[string]string
}

// OK reports whether the form passed.
func (r Result) OK() bool { return r.Message == "" }

// Supply validates the supply form against today's date in now's location.
// The expiration date must fall strictly after today.
func Supply(in SupplyInput, now time.Time) (model.SupplyRequest, Result) {
	fv := New().
		Validate("name", in.Name, Required("Name", maxNameLength)).
		Validate("category", in.Category, Required("Category", maxCategoryLength)).
		Validate("quantity", in.Quantity, Required("Quantity", 12), IntMin("Quantity", 0)).
		Validate("expiration_date", in.ExpirationDate, Required("Expiration date", 10), Date("Expiration date")).
		Validate("cost_per_unit", in.CostPerUnit, OptionalNonNegative("Cost per unit")).
		Validate("primary_supplier", in.PrimarySupplier, Optional("Primary supplier", maxSupplierLength))
	if !fv.OK() {
		return model.SupplyRequest{}, Result{Message: MsgRequiredFields, FieldErrors: fv.Errors()}
	}

	exp, _ := time.ParseInLocation(model.DateLayout, strings.TrimSpace(in.ExpirationDate), now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !exp.After(today) {
		fv.Fail("expiration_date", MsgExpirationNotFuture)
		return model.SupplyRequest{}, Result{Message: MsgExpirationNotFuture, FieldErrors: fv.Errors()}
	}

	qty, _ := strconv.Atoi(strings.TrimSpace(in.Quantity))
	req := model.SupplyRequest{
		Name:            strings.TrimSpace(in.Name),
		Category:        strings.TrimSpace(in.Category),
		Quantity:        qty,
		ExpirationDate:  model.NewTimestamp(time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, time.UTC)),
		PrimarySupplier: strings.TrimSpace(in.PrimarySupplier),
	}
	if raw := strings.TrimSpace(in.CostPerUnit); raw != "" {
		cost, _ := strconv.ParseFloat(raw, 64)
		req.CostPerUnit = &cost
	}
	return req, Result{}
}

// UsageInput is the raw usage form.
type UsageInput struct {
	SupplyID     string
	QuantityUsed string
}

// Usage validates the usage form: a supply must be chosen and at least one unit used.
func Usage(in UsageInput) (model.UsageRecord, Result) {
	fv := New().
		Validate("supply_id", in.SupplyID, Required("Supply", 12), IntMin("Supply", 1)).
		Validate("quantity_used", in.QuantityUsed, Required("Quantity used", 12), IntMin("Quantity used", 1))
	if !fv.OK() {
		return model.UsageRecord{}, Result{Message: MsgRequiredFields, FieldErrors: fv.Errors()}
	}
	id, _ := strconv.Atoi(strings.TrimSpace(in.SupplyID))
	used, _ := strconv.Atoi(strings.TrimSpace(in.QuantityUsed))
	return model.UsageRecord{SupplyID: id, QuantityUsed: used}, Result{}
}
