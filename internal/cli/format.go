// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHours formats weekly focus hours the way the payload does.
// e.g., 12 -> "12h/wk"
func FormatHours(h int) string {
	return fmt.Sprintf("%dh/wk", h)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a whole percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatLoad describes hours as a share of maxHours, e.g. "12h/wk (30%)".
func FormatLoad(hours, maxHours int) string {
	if maxHours <= 0 {
		return FormatHours(hours)
	}
	return fmt.Sprintf("%s (%s)", FormatHours(hours), FormatPercent(float64(hours)/float64(maxHours)))
}
