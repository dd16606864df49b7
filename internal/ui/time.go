package ui

import (
	"fmt"
	"time"

	internalage "github.com/amonks/tasklist/internal/age"
)

// TimestampLayout is the layout used for absolute times in tables and
// detail views.
const TimestampLayout = "2006-01-02 15:04"

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	duration, ok := internalage.AgeData(then, now)
	if !ok {
		return "-"
	}
	return FormatDurationShort(duration) + " ago"
}

// FormatDueShort returns a compact deadline string like "in 3h" or
// "2d overdue".
func FormatDueShort(deadline time.Time, now time.Time) string {
	remaining, ok := internalage.DueData(deadline, now)
	if !ok {
		return "-"
	}
	if remaining < 0 {
		return FormatDurationShort(-remaining) + " overdue"
	}
	return "in " + FormatDurationShort(remaining)
}

// FormatTimestamp renders an absolute time in local time, or "-" when unset.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format(TimestampLayout)
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
