package bikeshare

import (
	"time"

	"github.com/nao1215/bikeshare/domain/model"
)

// TimeReport holds the most frequent times of travel.
type TimeReport struct {
	// Month is the most common month.
	Month time.Month
	// Day is the most common day of week.
	Day model.Weekday
	// Hour is the most common start hour, 0..23.
	Hour int
}

// TimeOfTravel computes the most common month, day of week and start hour.
// It returns model.ErrEmptyDataset for an empty table.
func TimeOfTravel(t *model.Table) (TimeReport, error) {
	trips := t.Trips()
	if len(trips) == 0 {
		return TimeReport{}, model.ErrEmptyDataset
	}

	month, _, err := modeOf(trips, func(trip model.Trip) time.Month { return trip.Month })
	if err != nil {
		return TimeReport{}, err
	}
	day, _, err := modeOf(trips, func(trip model.Trip) model.Weekday { return trip.Weekday })
	if err != nil {
		return TimeReport{}, err
	}
	hour, _, err := modeOf(trips, func(trip model.Trip) int { return trip.StartHour() })
	if err != nil {
		return TimeReport{}, err
	}

	return TimeReport{Month: month, Day: day, Hour: hour}, nil
}

// StationPair is a start and end station. Pairs are compared field by field,
// so no station name can make two different pairs collide.
type StationPair struct {
	Start string
	End   string
}

// String renders the pair as "start - end".
func (p StationPair) String() string {
	return p.Start + " - " + p.End
}

// StationReport holds the most popular stations and trip.
type StationReport struct {
	// Start is the most common start station.
	Start string
	// End is the most common end station.
	End string
	// Trip is the most common start/end combination.
	Trip StationPair
	// TripCount is how many trips used Trip.
	TripCount int
}

// StationPopularity computes the most common start station, end station
// and start/end pair. It returns model.ErrEmptyDataset for an empty table.
func StationPopularity(t *model.Table) (StationReport, error) {
	trips := t.Trips()
	if len(trips) == 0 {
		return StationReport{}, model.ErrEmptyDataset
	}

	start, _, err := modeOf(trips, func(trip model.Trip) string { return trip.StartStation })
	if err != nil {
		return StationReport{}, err
	}
	end, _, err := modeOf(trips, func(trip model.Trip) string { return trip.EndStation })
	if err != nil {
		return StationReport{}, err
	}
	pair, count, err := modeOf(trips, func(trip model.Trip) StationPair {
		return StationPair{Start: trip.StartStation, End: trip.EndStation}
	})
	if err != nil {
		return StationReport{}, err
	}

	return StationReport{Start: start, End: end, Trip: pair, TripCount: count}, nil
}

// DurationReport holds total and mean trip duration in seconds.
type DurationReport struct {
	// Total is the sum of all durations. It is 0 for an empty table.
	Total int64
	// Count is the number of trips.
	Count int
	// Mean is Total / Count. Only meaningful when Count > 0.
	Mean float64
}

// TotalDuration returns the sum of trip durations in seconds. The sum over
// zero trips is 0.
func TotalDuration(t *model.Table) int64 {
	var total int64
	for _, trip := range t.Trips() {
		total += trip.Duration
	}
	return total
}

// MeanDuration returns the arithmetic mean of trip durations in seconds.
// It returns model.ErrEmptyDataset for an empty table.
func MeanDuration(t *model.Table) (float64, error) {
	if t.Len() == 0 {
		return 0, model.ErrEmptyDataset
	}
	return float64(TotalDuration(t)) / float64(t.Len()), nil
}

// TripDuration computes total and mean trip duration.
// For an empty table it returns a report with Total 0 together with
// model.ErrEmptyDataset, because the total is defined but the mean is not.
func TripDuration(t *model.Table) (DurationReport, error) {
	report := DurationReport{Total: TotalDuration(t), Count: t.Len()}
	mean, err := MeanDuration(t)
	if err != nil {
		return report, err
	}
	report.Mean = mean
	return report, nil
}

// Count is the number of trips with a given value.
type Count struct {
	Value string
	Count int
}

// Counts is a frequency table ordered by descending count.
type Counts []Count

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, v := range c {
		total += v.Count
	}
	return total
}

// countValues tallies the non-blank values returned by field
func countValues(trips []model.Trip, field func(model.Trip) string) Counts {
	t := newTally[string]()
	for _, trip := range trips {
		if v := field(trip); v != "" {
			t.add(v)
		}
	}
	keys, counts := t.byCount()
	result := make(Counts, len(keys))
	for i := range keys {
		result[i] = Count{Value: keys[i], Count: counts[i]}
	}
	return result
}

// UserTypeCounts counts trips per user type. Rows without a user type are
// skipped. An empty table yields empty Counts.
func UserTypeCounts(t *model.Table) Counts {
	return countValues(t.Trips(), func(trip model.Trip) string { return trip.UserType })
}

// GenderCounts counts trips per gender. It returns model.ErrFieldUnavailable
// when the dataset has no gender column. When the column exists but no row
// carries a value the result is empty and the error is nil.
func GenderCounts(t *model.Table) (Counts, error) {
	if !t.Schema().HasGender {
		return nil, model.ErrFieldUnavailable
	}
	return countValues(t.Trips(), func(trip model.Trip) string { return trip.Gender }), nil
}

// BirthYearSummary holds the earliest, most recent and most common birth year.
type BirthYearSummary struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// BirthYearStats summarizes birth years. It returns model.ErrFieldUnavailable
// when the dataset has no birth year column, and model.ErrEmptyDataset when
// the column exists but no row carries a value.
func BirthYearStats(t *model.Table) (BirthYearSummary, error) {
	if !t.Schema().HasBirthYear {
		return BirthYearSummary{}, model.ErrFieldUnavailable
	}

	years := newTally[int]()
	var summary BirthYearSummary
	for _, trip := range t.Trips() {
		if !trip.HasBirthYear() {
			continue
		}
		if years.len() == 0 || trip.BirthYear < summary.Earliest {
			summary.Earliest = trip.BirthYear
		}
		if years.len() == 0 || trip.BirthYear > summary.MostRecent {
			summary.MostRecent = trip.BirthYear
		}
		years.add(trip.BirthYear)
	}

	common, _, err := years.mode()
	if err != nil {
		return BirthYearSummary{}, err
	}
	summary.MostCommon = common
	return summary, nil
}

// DemographicsReport bundles the user statistics. Gender and birth year
// are optional per dataset, so each keeps its own error.
type DemographicsReport struct {
	UserTypes Counts

	Genders   Counts
	GenderErr error

	BirthYears   BirthYearSummary
	BirthYearErr error
}

// Demographics computes user type counts, gender counts and the birth
// year summary. Gender and birth year availability are checked independently.
func Demographics(t *model.Table) DemographicsReport {
	report := DemographicsReport{UserTypes: UserTypeCounts(t)}
	report.Genders, report.GenderErr = GenderCounts(t)
	report.BirthYears, report.BirthYearErr = BirthYearStats(t)
	return report
}
