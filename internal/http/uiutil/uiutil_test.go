package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"future", now.Add(time.Hour), "just now"},
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"one minute", now.Add(-time.Minute), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"one day", now.Add(-25 * time.Hour), "1 day ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyRelativeTime(tt.at, now))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := map[float64]string{
		0:         "$0.00",
		5:         "$5.00",
		12.346:    "$12.35",
		1234.5:    "$1,234.50",
		-1000000:  "-$1,000,000.00",
		0.004:     "$0.00",
		999999.99: "$999,999.99",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMoney(in), "input %v", in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.46))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(100))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "30", FormatQuantity(30))
	assert.Equal(t, "12.5", FormatQuantity(12.5))
	assert.Equal(t, "1,200", FormatQuantity(1200))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", GroupThousands("1"))
	assert.Equal(t, "1,000", GroupThousands("1000"))
	assert.Equal(t, "-12,345,678", GroupThousands("-12345678"))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "abc…", TruncateWithEllipsis("abcdefgh", 4))
	assert.Equal(t, "…", TruncateWithEllipsis("abcdefgh", 1))
}

func TestFormatFriendlyDate(t *testing.T) {
	assert.Equal(t, "", FormatFriendlyDate(time.Time{}))
	assert.Equal(t, "Mar 4, 2026", FormatFriendlyDate(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)))
}
