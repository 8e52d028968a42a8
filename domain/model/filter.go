package model

import (
	"fmt"
	"time"
)

// Filter narrows a Table by month and by day of week.
// A nil field places no constraint; both set means both must match.
type Filter struct {
	Month *time.Month
	Day   *Weekday
}

// NewFilter returns a filter without constraints.
func NewFilter() Filter {
	return Filter{}
}

// WithMonth returns a copy of f constrained to month m.
func (f Filter) WithMonth(m time.Month) Filter {
	f.Month = &m
	return f
}

// WithDay returns a copy of f constrained to weekday d.
func (f Filter) WithDay(d Weekday) Filter {
	f.Day = &d
	return f
}

// IsEmpty returns true if no constraint is set.
func (f Filter) IsEmpty() bool {
	return f.Month == nil && f.Day == nil
}

// Validate checks that the month is in 1..12 and the day in 0..6.
func (f Filter) Validate() error {
	if f.Month != nil && (*f.Month < time.January || *f.Month > time.December) {
		return fmt.Errorf("%w: month %d is out of range 1..12", ErrInvalidFilter, int(*f.Month))
	}
	if f.Day != nil && !f.Day.Valid() {
		return fmt.Errorf("%w: day %d is out of range 0..6", ErrInvalidFilter, int(*f.Day))
	}
	return nil
}

// Match reports whether trip satisfies every constraint of f.
func (f Filter) Match(trip Trip) bool {
	if f.Month != nil && trip.Month != *f.Month {
		return false
	}
	if f.Day != nil && trip.Weekday != *f.Day {
		return false
	}
	return true
}

// String describes the filter, e.g. "March, all days".
func (f Filter) String() string {
	month := "all months"
	if f.Month != nil {
		month = f.Month.String()
	}
	day := "all days"
	if f.Day != nil {
		day = f.Day.String() + "s"
	}
	return month + ", " + day
}
