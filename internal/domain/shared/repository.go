package shared

import (
	"time"
)

// Filter represents query filter options
type Filter struct {
	OrderBy  string
	OrderDir string
	// Range restricts results to a time window on the entity's business date
	// column. A nil range means no restriction.
	Range *DateRange
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// WithRange returns a copy of the filter restricted to r
func (f Filter) WithRange(r DateRange) Filter {
	f.Range = &r
	return f
}

// DateRange is an inclusive time window
type DateRange struct {
	From time.Time
	To   time.Time
}

// DayRange spans from the first instant of start's day to the last millisecond
// of end's day, in the location of each argument.
func DayRange(start, end time.Time) DateRange {
	return DateRange{
		From: StartOfDay(start),
		To:   EndOfDay(end),
	}
}

// SingleDay spans the whole calendar day containing t
func SingleDay(t time.Time) DateRange {
	return DayRange(t, t)
}

// StartOfDay returns 00:00:00.000 of t's day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Contains reports whether t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Valid reports whether From is not after To
func (r DateRange) Valid() bool {
	return !r.From.After(r.To)
}
