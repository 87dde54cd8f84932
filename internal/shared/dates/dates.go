// Package dates formats the optional calendar dates the catalog
// displays. Absent dates render as empty strings so templates can show
// their own placeholder.
package dates

import "time"

const (
	displayLayout = "Jan 2, 2006"
	isoLayout     = "2006-01-02"
)

// Display renders t in medium locale style, e.g. "Oct 6, 1952".
func Display(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(displayLayout)
}

// ISO renders t as an ISO-8601 calendar date, e.g. "1952-10-06".
// Used to pre-fill date inputs on update forms.
func ISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(isoLayout)
}

// Range renders a "from - to" span with open ends left blank,
// e.g. "Oct 6, 1952 - " for a living author.
func Range(from, to *time.Time) string {
	return Display(from) + " - " + Display(to)
}
