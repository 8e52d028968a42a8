package model

import "time"

// Schema records which optional columns a dataset provides.
// It is detected once when the dataset is loaded.
type Schema struct {
	// HasEndTime is true when the source has an End Time column
	HasEndTime bool
	// HasGender is true when the source has a Gender column
	HasGender bool
	// HasBirthYear is true when the source has a Birth Year column
	HasBirthYear bool
}

// Trip is one trip record.
type Trip struct {
	// StartTime is when the trip started.
	StartTime time.Time
	// EndTime is when the trip ended. Zero when unknown.
	EndTime time.Time
	// StartStation is the station the trip started from.
	StartStation string
	// EndStation is the station the trip ended at.
	EndStation string
	// Duration is the trip length in seconds.
	Duration int64
	// UserType is the rider category, e.g. "Subscriber". Empty when missing.
	UserType string
	// Gender of the rider. Empty when missing for this row or absent from the schema.
	Gender string
	// BirthYear of the rider. 0 when missing for this row or absent from the schema.
	BirthYear int

	// Month is derived from StartTime.
	Month time.Month
	// Weekday is derived from StartTime.
	Weekday Weekday
}

// NewTrip creates a Trip and fills in the derived fields.
func NewTrip(start time.Time, startStation, endStation string, duration int64, userType string) Trip {
	t := Trip{
		StartTime:    start,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
	}
	t.Derive()
	return t
}

// Derive (re)computes Month and Weekday from StartTime.
func (t *Trip) Derive() {
	t.Month = t.StartTime.Month()
	t.Weekday = WeekdayOf(t.StartTime)
}

// StartHour returns the hour of day (0..23) the trip started.
func (t Trip) StartHour() int {
	return t.StartTime.Hour()
}

// HasBirthYear reports whether the row carries a birth year.
func (t Trip) HasBirthYear() bool {
	return t.BirthYear > 0
}
