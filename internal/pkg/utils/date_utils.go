package utils

import (
	"strings"
	"time"
)

// DefaultDateLayout mimics the en-US short date ("1/2/2006").
const DefaultDateLayout = "1/2/2006"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

const dateOnlyLayout = "2006-01-02"

// ParseTimestamp parses the ISO-8601-like timestamps OneSource returns.
// Date-time values without a zone are read in loc (time.Local when nil),
// date-only values as UTC midnight, the way browsers read them.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// FormatDisplayDate converts a raw timestamp to a display date in loc
// (time.Local when loc is nil). Unparseable input is returned unchanged.
func FormatDisplayDate(raw, layout string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseTimestamp(raw, loc)
	if !ok {
		return raw
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.In(loc).Format(layout)
}
