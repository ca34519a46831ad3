package utils

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a plain YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// FormatDate reduces an upstream timestamp (RFC3339 or already plain) to
// YYYY-MM-DD for display and edit prefill. Unparseable input yields "".
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, value); err == nil {
		return value
	}
	if len(value) >= len(dateLayout) {
		if _, err := time.Parse(dateLayout, value[:len(dateLayout)]); err == nil {
			return value[:len(dateLayout)]
		}
	}
	return ""
}

// Nights is the number of billable nights between two dates: the day
// difference rounded up, floored at 1 so a same-day range never prices to
// zero or negative.
func Nights(llegada, salida time.Time) int {
	diff := salida.Sub(llegada).Hours() / 24
	nights := int(math.Ceil(math.Abs(diff)))
	if nights < 1 {
		return 1
	}
	return nights
}

// StayTotal prices a stay to two decimal places.
func StayTotal(nightly float64, nights int) float64 {
	return math.Round(nightly*float64(nights)*100) / 100
}
