package todo

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinuteLayout is a local date and time without seconds.
	MinuteLayout = "2006-01-02T15:04"

	// DateLayout is a local date. It parses as midnight.
	DateLayout = "2006-01-02"
)

// ParseTime parses user input in RFC 3339, MinuteLayout or DateLayout form.
// Inputs without a zone are interpreted in loc.
func ParseTime(input string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(input)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	for _, layout := range []string{MinuteLayout, DateLayout} {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use RFC 3339, %s, or %s)", ErrInvalidTime, input, MinuteLayout, DateLayout)
}
