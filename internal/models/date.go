package models

import (
	"strings"
	"time"
)

// DateValue holds a filter timestamp that may arrive either as free text
// (form input, "dd/mm/yyyy" or an ISO string) or as an already-parsed time.
// The zero value means "not set" and is dropped during query compaction.
type DateValue struct {
	text    string
	at      time.Time
	hasText bool
	hasTime bool
}

// DateText wraps a user-supplied date string.
func DateText(s string) DateValue {
	return DateValue{text: s, hasText: true}
}

// DateAt wraps an already-parsed time.
func DateAt(t time.Time) DateValue {
	return DateValue{at: t, hasTime: true}
}

// IsZero reports whether no value was supplied.
func (d DateValue) IsZero() bool { return !d.hasText && !d.hasTime }

// Resolve returns the value as a time. For text input it parses with
// ParseDateTime; empty or unparseable text yields ok=false, never an error.
func (d DateValue) Resolve() (time.Time, bool) {
	if d.hasTime {
		return d.at, true
	}
	if d.hasText && d.text != "" {
		return ParseDateTime(d.text)
	}
	return time.Time{}, false
}

// absoluteLayouts are tried in order for non-slash date strings.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses either an absolute timestamp or a Brazilian-style
// "dd/mm/yyyy [hh:mm[:ss]]" string. Dates without an explicit zone are
// interpreted as UTC so that the same input always normalizes to the same
// instant. Returns ok=false instead of an error when nothing matches.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		for _, layout := range []string{
			"02/01/2006 15:04:05",
			"02/01/2006 15:04",
			"02/01/2006",
		} {
			if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
