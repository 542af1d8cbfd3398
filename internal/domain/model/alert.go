//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AlertUrgency ranks how soon an alert needs attention.
type AlertUrgency string

const (
	AlertUrgencyLow    AlertUrgency = "low"
	AlertUrgencyMedium AlertUrgency = "medium"
	AlertUrgencyHigh   AlertUrgency = "high"
)

// Valid returns true if the urgency is one of the known levels.
func (u AlertUrgency) Valid() bool {
	switch u {
	case AlertUrgencyLow, AlertUrgencyMedium, AlertUrgencyHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the urgency.
func (u AlertUrgency) String() string {
	return string(u)
}

// Alert issue texts emitted by the inventory API.
const (
	AlertIssueOverstock  = "Overstocking"
	AlertIssueExpiration = "Nearing expiration"
)

// Alert is a waste alert for one supply.
type Alert struct {
	ID             string       `json:"id"`
	SupplyID       int          `json:"supply_id"`
	Name           string       `json:"name"`
	Issue          string       `json:"issue"`
	Urgency        AlertUrgency `json:"urgency"`
	Quantity       *int         `json:"quantity,omitempty"`
	ExpirationDate Timestamp    `json:"expiration_date"`
}

// alertWire is the superset of field names the API has used for alerts.
type alertWire struct {
	ID             json.RawMessage `json:"id"`
	SupplyID       int             `json:"supply_id"`
	Name           string          `json:"name"`
	SupplyName     string          `json:"supply_name"`
	Issue          string          `json:"issue"`
	Alert          string          `json:"alert"`
	Urgency        string          `json:"urgency"`
	Quantity       *int            `json:"quantity"`
	ExpirationDate Timestamp       `json:"expiration_date"`
}

// UnmarshalJSON maps alias fields (alert, supply_name) and derives missing ids and urgency.
func (a *Alert) UnmarshalJSON(b []byte) error {
	var w alertWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*a = Alert{
		ID:             rawID(w.ID),
		SupplyID:       w.SupplyID,
		Name:           firstNonEmpty(w.Name, w.SupplyName),
		Issue:          firstNonEmpty(w.Issue, w.Alert),
		Urgency:        AlertUrgency(strings.ToLower(strings.TrimSpace(w.Urgency))),
		Quantity:       w.Quantity,
		ExpirationDate: w.ExpirationDate,
	}
	if a.ID == "" && a.SupplyID != 0 {
		a.ID = strconv.Itoa(a.SupplyID)
	}
	if !a.Urgency.Valid() {
		a.Urgency = UrgencyForIssue(a.Issue)
	}
	return nil
}

// UrgencyForIssue derives urgency from the issue text when the API omits it.
func UrgencyForIssue(issue string) AlertUrgency {
	switch {
	case strings.EqualFold(issue, AlertIssueExpiration):
		return AlertUrgencyHigh
	case strings.EqualFold(issue, AlertIssueOverstock):
		return AlertUrgencyMedium
	default:
		return AlertUrgencyLow
	}
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
