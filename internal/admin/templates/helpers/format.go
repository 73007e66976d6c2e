package helpers

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Money formats a dollar amount with thousands separators and no cents when
// the amount is whole.
func Money(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount == float64(int64(amount)) {
		return sign + "$" + humanize.FormatFloat("#,###.", amount)
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}

// Relative returns a coarse "time ago" string.
func Relative(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}
	if time.Since(ts) < time.Minute {
		return "just now"
	}
	return humanize.Time(ts)
}

// Seconds formats a duration given in seconds, e.g. "42.5s".
func Seconds(value float64) string {
	return humanize.FtoaWithDigits(value, 1) + "s"
}

// NavClass returns sidebar link classes.
func NavClass(active bool) string {
	if active {
		return "sidebar-link sidebar-link--active"
	}
	return "sidebar-link"
}

// BadgeClass maps semantic tones to badge classes.
func BadgeClass(tone string) string {
	switch tone {
	case "success", "warning", "danger":
		return "badge badge--" + tone
	default:
		return "badge"
	}
}

// PriorityTone maps a claim priority to a badge tone.
func PriorityTone(priority string) string {
	switch priority {
	case "high":
		return "danger"
	case "medium":
		return "warning"
	default:
		return ""
	}
}
