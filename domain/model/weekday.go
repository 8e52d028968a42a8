package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is a day of the week counted from Monday (0) to Sunday (6).
type Weekday int

const (
	// Monday is the first day of the week
	Monday Weekday = iota
	// Tuesday is the second day of the week
	Tuesday
	// Wednesday is the third day of the week
	Wednesday
	// Thursday is the fourth day of the week
	Thursday
	// Friday is the fifth day of the week
	Friday
	// Saturday is the sixth day of the week
	Saturday
	// Sunday is the last day of the week
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOf returns the Monday-based weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Valid reports whether d is in 0..6.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the English name of the day.
func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// ParseWeekday parses a weekday given as a digit 0..6 (0 = Monday),
// an English name, or a three letter abbreviation. Case is ignored.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		if !d.Valid() {
			return 0, fmt.Errorf("%w: day %d is out of range 0..6", ErrInvalidFilter, n)
		}
		return d, nil
	}
	for i, name := range weekdayNames {
		lower := strings.ToLower(name)
		if s == lower || (len(s) == 3 && strings.HasPrefix(lower, s)) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrInvalidFilter, s)
}

// ParseMonth parses an English month name or three letter abbreviation,
// or a number 1..12. Case is ignored.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: month %d is out of range 1..12", ErrInvalidFilter, n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		lower := strings.ToLower(m.String())
		if s == lower || (len(s) == 3 && strings.HasPrefix(lower, s)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidFilter, s)
}
