package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nao1215/bikeshare/domain/model"
)

// defaultPageSize is the number of rows the pager prints at a time
const defaultPageSize = 5

// browse shows the raw trips of t page by page while the user asks for more
func (s *Shell) browse(t *model.Table) error {
	more, err := s.askYesNo(fmt.Sprintf("\nWould you like to view %d rows of individual trip data? Enter yes or no\n", s.pageSize))
	if err != nil {
		return err
	}

	for start := 0; more; start += s.pageSize {
		end := start + s.pageSize
		writeTrips(s.out, t, start, end)
		if end >= t.Len() {
			fmt.Fprint(s.out, "\nYou have hit the end of the data set.\n")
			return nil
		}
		more, err = s.askYesNo("Do you wish to continue? (yes/no) ")
		if err != nil {
			return err
		}
	}
	return nil
}

// writeTrips prints trips [from, to) of t with their row numbers
func writeTrips(w io.Writer, t *model.Table, from, to int) {
	schema := t.Schema()

	columns := []string{"#", "Start Time"}
	if schema.HasEndTime {
		columns = append(columns, "End Time")
	}
	columns = append(columns, "Trip Duration", "Start Station", "End Station", "User Type")
	if schema.HasGender {
		columns = append(columns, "Gender")
	}
	if schema.HasBirthYear {
		columns = append(columns, "Birth Year")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))

	for i, trip := range t.Slice(from, to) {
		cells := []string{strconv.Itoa(from + i), trip.StartTime.Format(time.DateTime)}
		if schema.HasEndTime {
			cells = append(cells, formatOptionalTime(trip.EndTime))
		}
		cells = append(cells,
			strconv.FormatInt(trip.Duration, 10),
			cell(trip.StartStation),
			cell(trip.EndStation),
			cell(trip.UserType),
		)
		if schema.HasGender {
			cells = append(cells, cell(trip.Gender))
		}
		if schema.HasBirthYear {
			year := ""
			if trip.HasBirthYear() {
				year = strconv.Itoa(trip.BirthYear)
			}
			cells = append(cells, year)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// formatOptionalTime formats t, or returns "" for the zero time
func formatOptionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateTime)
}
