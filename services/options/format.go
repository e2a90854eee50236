package options

import (
	"fmt"
	"strconv"
	"strings"
)

// humanizeISODuration renders an ISO-8601 duration like PT7H30M as "7h 30m".
// Malformed input comes back unchanged.
func humanizeISODuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok || rest == "" {
		return iso
	}

	var parts []string
	if h, tail, found := cutNumber(rest, 'H'); found {
		parts = append(parts, fmt.Sprintf("%dh", h))
		rest = tail
	}
	if m, tail, found := cutNumber(rest, 'M'); found {
		parts = append(parts, fmt.Sprintf("%dm", m))
		rest = tail
	}
	if len(parts) == 0 || rest != "" {
		return iso
	}
	return strings.Join(parts, " ")
}

// cutNumber splits a leading "<digits><unit>" off s for the given unit.
func cutNumber(s string, unit byte) (int, string, bool) {
	idx := strings.IndexByte(s, unit)
	if idx <= 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:idx])
	if err != nil {
		return 0, s, false
	}
	return n, s[idx+1:], true
}

// stopsLabel renders a stop count for display.
func stopsLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Nonstop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// tripTypeLabel distinguishes one-way from round-trip based on the presence
// of a return date.
func tripTypeLabel(returnDate string) string {
	if returnDate == "" {
		return "One-way"
	}
	return "Round-trip"
}
