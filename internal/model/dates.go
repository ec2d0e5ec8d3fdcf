package model

import (
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01", "2006-01-02", "2006"}

// FormatDate renders a stored date string as "Mon YYYY" (e.g. "Jan 2024").
// Empty or unparseable input renders as empty text, never as a placeholder.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

// DateRange renders a start/end pair for an experience entry. A current
// entry always reads "Present" regardless of any stored end date.
func DateRange(start, end string, current bool) string {
	from := FormatDate(start)
	to := FormatDate(end)
	if current {
		to = "Present"
	}
	switch {
	case from == "" && to == "":
		return ""
	case to == "":
		return from
	case from == "":
		return to
	}
	return from + " - " + to
}
