// Package uiutil formats values for display in templates and view models.
package uiutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"

// FriendlyDateLayout is used for date-only fields such as expiration dates.
const FriendlyDateLayout = "Jan 2, 2006"

// FriendlyRelativeTime returns a human-friendly description of how long ago t
// occurred relative to now. Times in the future are treated as "just now".
func FriendlyRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return "just now"
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute") + " ago"
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour") + " ago"
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day") + " ago"
	default:
		return FormatFriendlyDateTime(t)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// FormatFriendlyDateTime returns a consistent, user-friendly local timestamp representation.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(FriendlyDateTimeLayout)
}

// FormatFriendlyDate formats the calendar date of t, or "" for the zero time.
func FormatFriendlyDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FriendlyDateLayout)
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

// FormatMoney renders v as dollars with two decimals and thousands separators.
func FormatMoney(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := GroupThousands(strconv.FormatInt(cents/100, 10))
	frac := cents % 100

	var b strings.Builder
	if neg && cents > 0 {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(whole)
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// FormatPercent renders v with one decimal place, e.g. "12.5%".
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatQuantity drops a trailing ".0" so whole quantities read as integers.
func FormatQuantity(v float64) string {
	if v == math.Trunc(v) {
		return GroupThousands(strconv.FormatFloat(v, 'f', 0, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GroupThousands inserts comma separators into a run of ASCII digits with an optional leading "-".
func GroupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 1)
	if neg {
		b.WriteByte('-')
	}
	prefix := len(digits) % 3
	if prefix == 0 {
		prefix = 3
	}
	b.WriteString(digits[:prefix])
	for i := prefix; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
