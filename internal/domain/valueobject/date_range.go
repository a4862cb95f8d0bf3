// Package valueobject contains domain value objects for the FinFlow system.
package valueobject

import (
	"fmt"
	"time"
)

// DateRange is a closed interval of observed transaction dates.
type DateRange struct {
	Min time.Time
	Max time.Time
}

// Span returns the length of the range.
func (r DateRange) Span() time.Duration {
	return r.Max.Sub(r.Min)
}

// Label renders the range the way the dashboard header shows it,
// e.g. "Jan 2024 - Mar 2024".
func (r DateRange) Label() string {
	return fmt.Sprintf("%s - %s", r.Min.Format("Jan 2006"), r.Max.Format("Jan 2006"))
}

// Extend returns the smallest range covering both r and t.
func (r DateRange) Extend(t time.Time) DateRange {
	if t.Before(r.Min) {
		r.Min = t
	}
	if t.After(r.Max) {
		r.Max = t
	}
	return r
}

// Union returns the smallest range covering both ranges.
func (r DateRange) Union(other DateRange) DateRange {
	return r.Extend(other.Min).Extend(other.Max)
}
