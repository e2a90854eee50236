package geo

import (
	"time"

	"wayfare/utils"

	"go.uber.org/zap"
)

const canonicalLayout = "2006-01-02"

// dayLayouts are tried in order against full dates.
var dayLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"January 2 2006",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

// monthLayouts match month/year inputs; the day is assumed to be the first.
var monthLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01",
}

// NormalizeDate converts free-text dates to canonical YYYY-MM-DD form.
// Already-canonical input is returned unchanged. When nothing parses, the
// original text comes back untouched and callers must treat it as unparsed.
func NormalizeDate(text string) string {
	if text == "" {
		return text
	}
	if _, err := time.Parse(canonicalLayout, text); err == nil {
		return text
	}

	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(canonicalLayout)
		}
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format(canonicalLayout)
		}
	}

	utils.GetLogger().Warn("Could not normalize date", zap.String("input", text))
	return text
}
