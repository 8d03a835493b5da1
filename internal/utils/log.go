// Package utils holds small helpers shared by the AI clients.
package utils

import "strings"

// TruncateForLog returns a one-line preview of s with at most limit runes.
// Truncated previews end with "...".
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
