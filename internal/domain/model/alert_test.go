package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlert_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantID      string
		wantName    string
		wantIssue   string
		wantUrgency AlertUrgency
	}{
		{
			name:        "overstock alias fields",
			payload:     `{"supply_id":4,"name":"Paper","alert":"Overstocking","quantity":200}`,
			wantID:      "4",
			wantName:    "Paper",
			wantIssue:   AlertIssueOverstock,
			wantUrgency: AlertUrgencyMedium,
		},
		{
			name:        "expiration derives high urgency",
			payload:     `{"supply_id":9,"supply_name":"Toner","alert":"Nearing expiration","expiration_date":"2026-11-01T00:00:00"}`,
			wantID:      "9",
			wantName:    "Toner",
			wantIssue:   AlertIssueExpiration,
			wantUrgency: AlertUrgencyHigh,
		},
		{
			name:        "explicit id and urgency win",
			payload:     `{"id":"a-1","supply_id":2,"name":"Pens","issue":"Overstocking","urgency":"LOW"}`,
			wantID:      "a-1",
			wantName:    "Pens",
			wantIssue:   AlertIssueOverstock,
			wantUrgency: AlertUrgencyLow,
		},
		{
			name:        "numeric id",
			payload:     `{"id":17,"supply_id":2,"issue":"Something else"}`,
			wantID:      "17",
			wantIssue:   "Something else",
			wantUrgency: AlertUrgencyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Alert
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &a))
			assert.Equal(t, tt.wantID, a.ID)
			assert.Equal(t, tt.wantName, a.Name)
			assert.Equal(t, tt.wantIssue, a.Issue)
			assert.Equal(t, tt.wantUrgency, a.Urgency)
		})
	}
}

func TestAlert_UnmarshalJSONKeepsQuantityAndDate(t *testing.T) {
	var alerts []Alert
	payload := `[{"supply_id":1,"name":"A","alert":"Overstocking","quantity":120},
		{"supply_id":2,"name":"B","alert":"Nearing expiration","expiration_date":"2026-10-25"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &alerts))
	require.Len(t, alerts, 2)

	require.NotNil(t, alerts[0].Quantity)
	assert.Equal(t, 120, *alerts[0].Quantity)
	assert.Equal(t, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC), alerts[1].ExpirationDate.Time)
}

func TestUrgencyForIssue(t *testing.T) {
	assert.Equal(t, AlertUrgencyHigh, UrgencyForIssue("nearing expiration"))
	assert.Equal(t, AlertUrgencyMedium, UrgencyForIssue("Overstocking"))
	assert.Equal(t, AlertUrgencyLow, UrgencyForIssue(""))
}
