package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

func TestNewCard(t *testing.T) {
	qty := 40
	exp := model.NewTimestamp(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		in        model.Alert
		urgency   string
		label     string
		wantName  string
		resolveTo string
	}{
		{
			name:      "explicit urgency",
			in:        model.Alert{ID: "7", SupplyID: 3, Name: "Toner", Issue: "Overstocking", Urgency: model.AlertUrgencyHigh, Quantity: &qty},
			urgency:   "urgency-high",
			label:     "High",
			wantName:  "Toner",
			resolveTo: "/alerts/7/resolve",
		},
		{
			name:      "derived from issue",
			in:        model.Alert{ID: "a b", SupplyID: 4, Issue: model.AlertIssueExpiration, ExpirationDate: exp},
			urgency:   "urgency-high",
			label:     "High",
			wantName:  "Supply #4",
			resolveTo: "/alerts/a%20b/resolve",
		},
		{
			name:     "overstock defaults to medium",
			in:       model.Alert{Name: "Pens", Issue: model.AlertIssueOverstock},
			urgency:  "urgency-medium",
			label:    "Medium",
			wantName: "Pens",
		},
		{
			name:     "unknown issue is low",
			in:       model.Alert{Name: "Paper", Issue: "Something else"},
			urgency:  "urgency-low",
			label:    "Low",
			wantName: "Paper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCard(tt.in)
			assert.Equal(t, tt.urgency, c.UrgencyClass())
			assert.Equal(t, tt.label, c.UrgencyLabel())
			assert.Equal(t, tt.wantName, c.Name)
			assert.Equal(t, tt.resolveTo, c.ResolvePath())
		})
	}
}

func TestNewCard_FormatsExpiry(t *testing.T) {
	c := NewCard(model.Alert{ExpirationDate: model.NewTimestamp(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))})
	assert.Equal(t, "Feb 1, 2026", c.Expires)
}

func TestNewCards_PreservesOrder(t *testing.T) {
	cards := NewCards([]model.Alert{{ID: "1"}, {ID: "2"}})
	assert.Equal(t, "1", cards[0].ID)
	assert.Equal(t, "2", cards[1].ID)
	assert.Empty(t, NewCards(nil))
}
