package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nao1215/bikeshare"
	"github.com/nao1215/bikeshare/domain/model"
)

// separator is printed after every section
var separator = strings.Repeat("-", 40)

// cellReplacer keeps values from breaking tabwriter columns
var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// cell makes v safe to print as one tabwriter cell
func cell(v string) string {
	return cellReplacer.Replace(v)
}

// noDataMessage is printed when a statistic has no rows to work on
const noDataMessage = "No data for this filter combination."

// section is one printed report
type section struct {
	title  string
	render func(w io.Writer, t *model.Table) error
}

// sections are printed in this order
var sections = []section{
	{title: "Calculating The Most Frequent Times of Travel...", render: renderTimeOfTravel},
	{title: "Calculating The Most Popular Stations and Trip...", render: renderStations},
	{title: "Calculating Trip Duration...", render: renderTripDuration},
	{title: "Calculating User Stats...", render: renderDemographics},
}

// WriteReport prints the four reports for t without pauses.
func WriteReport(w io.Writer, t *model.Table) error {
	for _, sec := range sections {
		if err := writeSection(w, sec, t); err != nil {
			return err
		}
	}
	return nil
}

// writeSection prints one report framed by its title, timing and separator
func writeSection(w io.Writer, sec section, t *model.Table) error {
	fmt.Fprintf(w, "\n%s\n", sec.title)
	started := time.Now()
	if err := sec.render(w, t); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nThis took %.6f seconds.\n", time.Since(started).Seconds())
	fmt.Fprintln(w, separator)
	return nil
}

// renderTimeOfTravel prints the most common month, day and hour
func renderTimeOfTravel(w io.Writer, t *model.Table) error {
	report, err := bikeshare.TimeOfTravel(t)
	if errors.Is(err, model.ErrEmptyDataset) {
		fmt.Fprintf(w, "\n%s\n", noDataMessage)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nThe most popular month is: %s\n", report.Month)
	fmt.Fprintf(w, "\nThe most popular day of week is: %s\n", report.Day)
	fmt.Fprintf(w, "\nThe most popular start hour is: %d\n", report.Hour)
	return nil
}

// renderStations prints the most popular stations and trip
func renderStations(w io.Writer, t *model.Table) error {
	report, err := bikeshare.StationPopularity(t)
	if errors.Is(err, model.ErrEmptyDataset) {
		fmt.Fprintf(w, "\n%s\n", noDataMessage)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nThe most popular start station is: %s\n", report.Start)
	fmt.Fprintf(w, "\nThe most popular end station is: %s\n", report.End)
	fmt.Fprintf(w, "\nThe most popular combination of start station and end station is: %s (%d trips)\n",
		report.Trip, report.TripCount)
	return nil
}

// renderTripDuration prints total and mean travel time
func renderTripDuration(w io.Writer, t *model.Table) error {
	report, err := bikeshare.TripDuration(t)
	fmt.Fprintf(w, "\nThe total travel time in seconds is: %d\n", report.Total)
	if errors.Is(err, model.ErrEmptyDataset) {
		fmt.Fprintf(w, "\nThe mean travel time is undefined. %s\n", noDataMessage)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nThe mean travel time in seconds is: %.2f\n", report.Mean)
	return nil
}

// renderDemographics prints user type, gender and birth year statistics
func renderDemographics(w io.Writer, t *model.Table) error {
	report := bikeshare.Demographics(t)

	fmt.Fprint(w, "\nUser types and their count:\n\n")
	if len(report.UserTypes) == 0 {
		fmt.Fprintln(w, noDataMessage)
	} else {
		writeCounts(w, report.UserTypes)
	}

	switch {
	case errors.Is(report.GenderErr, model.ErrFieldUnavailable):
		fmt.Fprint(w, "\nThere is no gender information in the data set.\n")
	case report.GenderErr != nil:
		return report.GenderErr
	case len(report.Genders) == 0:
		fmt.Fprintf(w, "\nGender of the users and their count:\n\n%s\n", noDataMessage)
	default:
		fmt.Fprint(w, "\nGender of the users and their count:\n\n")
		writeCounts(w, report.Genders)
	}

	switch {
	case errors.Is(report.BirthYearErr, model.ErrFieldUnavailable):
		fmt.Fprint(w, "\nThere is no data of birth year in the data set.\n")
	case errors.Is(report.BirthYearErr, model.ErrEmptyDataset):
		fmt.Fprintf(w, "\nNo birth year data. %s\n", noDataMessage)
	case report.BirthYearErr != nil:
		return report.BirthYearErr
	default:
		fmt.Fprintf(w, "\nThe earliest year of birth is %d\n", report.BirthYears.Earliest)
		fmt.Fprintf(w, "\nThe most recent year of birth is %d\n", report.BirthYears.MostRecent)
		fmt.Fprintf(w, "\nThe most common year of birth is %d\n", report.BirthYears.MostCommon)
	}
	return nil
}

// writeCounts prints a frequency table as aligned columns
func writeCounts(w io.Writer, counts bikeshare.Counts) {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", cell(c.Value), c.Count)
	}
	_ = tw.Flush()
}
