// Package validation formats user-facing validation errors.
package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins string-like values for error messages, as in
// "LOW, MEDIUM, or HIGH". Empty values are shown as "none".
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			formatted = append(formatted, "none")
			continue
		}
		formatted = append(formatted, string(value))
	}

	switch len(formatted) {
	case 0:
		return ""
	case 1:
		return formatted[0]
	case 2:
		return formatted[0] + " or " + formatted[1]
	default:
		return strings.Join(formatted[:len(formatted)-1], ", ") + ", or " + formatted[len(formatted)-1]
	}
}

// FormatInvalidValueError wraps base with the rejected value and the accepted ones.
func FormatInvalidValueError[T ~string](base error, value T, valid []T) error {
	return fmt.Errorf("%w: %q (must be %s)", base, string(value), FormatValidValues(valid))
}
