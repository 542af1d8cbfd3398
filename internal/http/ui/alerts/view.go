// Package alerts builds the alert card view models shared by the dashboard,
// recommendations and alerts pages.
package alerts

import (
	"net/url"
	"strconv"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/http/ui/viewmodel"
	"github.com/sustainastock/sustainastock-ui/internal/http/uiutil"
)

// Card is one rendered alert.
type Card struct {
	ID       string
	SupplyID int
	Name     string
	Issue    string
	Urgency  model.AlertUrgency
	Quantity *int
	Expires  string
}

// NewCard maps an API alert onto its card.
func NewCard(a model.Alert) Card {
	urgency := a.Urgency
	if !urgency.Valid() {
		urgency = model.UrgencyForIssue(a.Issue)
	}
	name := a.Name
	if name == "" && a.SupplyID > 0 {
		name = "Supply #" + strconv.Itoa(a.SupplyID)
	}
	return Card{
		ID:       a.ID,
		SupplyID: a.SupplyID,
		Name:     name,
		Issue:    a.Issue,
		Urgency:  urgency,
		Quantity: a.Quantity,
		Expires:  uiutil.FormatFriendlyDate(a.ExpirationDate.Time),
	}
}

// NewCards maps alerts in order.
func NewCards(in []model.Alert) []Card {
	out := make([]Card, 0, len(in))
	for _, a := range in {
		out = append(out, NewCard(a))
	}
	return out
}

// UrgencyLabel is the badge text.
func (c Card) UrgencyLabel() string {
	switch c.Urgency {
	case model.AlertUrgencyHigh:
		return "High"
	case model.AlertUrgencyMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// UrgencyClass returns the CSS modifier for the card border and badge.
func (c Card) UrgencyClass() string {
	switch c.Urgency {
	case model.AlertUrgencyHigh:
		return "urgency-high"
	case model.AlertUrgencyMedium:
		return "urgency-medium"
	default:
		return "urgency-low"
	}
}

// ResolvePath is the dismiss form action, or "" when the alert has no id.
func (c Card) ResolvePath() string {
	if c.ID == "" {
		return ""
	}
	return "/alerts/" + url.PathEscape(c.ID) + "/resolve"
}

// Page is the typed view model passed to the alerts template.
type Page struct {
	viewmodel.Layout

	Alerts       []Card
	EmptyMessage string

	Error        bool
	ErrorMessage string
}

// LayoutData returns a pointer to the embedded layout for renderer helpers.
func (p *Page) LayoutData() *viewmodel.Layout {
	return &p.Layout
}
