// Package inventory holds the view models for the supply table and the two
// inventory forms.
package inventory

import (
	"strconv"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/http/uiutil"
	"github.com/sustainastock/sustainastock-ui/internal/http/validation"
)

// SupplyRow is one line of the supply table.
type SupplyRow struct {
	ID          int
	Name        string
	Category    string
	Quantity    int
	Expires     string
	LastUpdated string
	UnitCost    string
	Supplier    string
}

// NewRows maps supplies onto table rows.
func NewRows(supplies []model.Supply) []SupplyRow {
	rows := make([]SupplyRow, 0, len(supplies))
	for _, s := range supplies {
		row := SupplyRow{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			Quantity:    s.Quantity,
			Expires:     uiutil.FormatFriendlyDate(s.ExpirationDate.Time),
			LastUpdated: uiutil.FormatFriendlyDateTime(s.LastUpdated.Time),
			Supplier:    s.PrimarySupplier,
		}
		if s.CostPerUnit != nil {
			row.UnitCost = uiutil.FormatMoney(*s.CostPerUnit)
		}
		rows = append(rows, row)
	}
	return rows
}

// SupplyForm is the admin add/update form.
type SupplyForm struct {
	SupplyID   int
	Values     validation.SupplyInput
	Categories []string
	Message    string
	Errors     map[string]string
	CSRFToken  string
}

// IsUpdate reports whether the form edits an existing supply.
func (f SupplyForm) IsUpdate() bool { return f.SupplyID > 0 }

// Action is the POST target.
func (f SupplyForm) Action() string {
	if f.IsUpdate() {
		return "/inventory/supplies/" + strconv.Itoa(f.SupplyID)
	}
	return "/inventory/supplies"
}

// SubmitLabel is the button text.
func (f SupplyForm) SubmitLabel() string {
	if f.IsUpdate() {
		return "Update Supply"
	}
	return "Add Supply"
}

// SupplyFormFor prefills the form from an existing supply.
func SupplyFormFor(s model.Supply) SupplyForm {
	in := validation.SupplyInput{
		Name:            s.Name,
		Category:        s.Category,
		Quantity:        strconv.Itoa(s.Quantity),
		ExpirationDate:  s.ExpirationDate.Date(),
		PrimarySupplier: s.PrimarySupplier,
	}
	if s.CostPerUnit != nil {
		in.CostPerUnit = strconv.FormatFloat(*s.CostPerUnit, 'f', -1, 64)
	}
	return SupplyForm{SupplyID: s.ID, Values: in}
}

// SupplyOption is one entry of the usage form's supply picker.
type SupplyOption struct {
	ID       int
	Name     string
	Quantity int
}

// UsageForm records consumption of a supply.
type UsageForm struct {
	Values    validation.UsageInput
	Options   []SupplyOption
	Message   string
	Errors    map[string]string
	CSRFToken string
}

// Selected reports whether id is the chosen supply.
func (f UsageForm) Selected(id int) bool {
	return f.Values.SupplyID == strconv.Itoa(id)
}

// NewOptions lists every supply for the usage picker.
func NewOptions(supplies []model.Supply) []SupplyOption {
	out := make([]SupplyOption, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, SupplyOption{ID: s.ID, Name: s.Name, Quantity: s.Quantity})
	}
	return out
}
