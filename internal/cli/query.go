package cli

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare"
)

// newQueryCommand builds "bikeshare query"
func newQueryCommand(opts *options) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "query SQL",
		Short: "Run a SQL query against the filtered trips",
		Long: `Load one city's trips, apply the optional month and day filter, copy
them into an in-memory SQLite table named "trips" and run SQL against it.

Columns: start_time, end_time, start_station, end_station, trip_duration,
user_type, gender, birth_year, month, day_of_week (0 = Monday), start_hour.
end_time, gender and birth_year exist only when the dataset has them.

Examples:
  bikeshare query --city chicago "SELECT user_type, AVG(trip_duration) FROM trips GROUP BY 1"
  bikeshare query --city washington --month may "SELECT start_hour, COUNT(*) FROM trips GROUP BY 1 ORDER BY 2 DESC LIMIT 3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, table, err := loadFiltered(cmd, opts, flags)
			if err != nil {
				return err
			}

			db, err := bikeshare.OpenDB(cmd.Context(), table)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.QueryContext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			defer rows.Close()

			return writeRows(cmd.OutOrStdout(), rows)
		},
	}
	flags.register(cmd)
	return cmd
}

// cellReplacer keeps values from breaking tabwriter columns
var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// writeRows prints a result set as aligned columns. NULL prints as "NULL".
func writeRows(w io.Writer, rows *sql.Rows) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = cellReplacer.Replace(c)
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	cells := make([]string, len(columns))
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		for i, v := range values {
			if v.Valid {
				cells[i] = cellReplacer.Replace(v.String)
			} else {
				cells[i] = "NULL"
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return tw.Flush()
}
