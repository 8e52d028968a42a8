package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare/internal/shell"
)

// newReportCommand builds "bikeshare report"
func newReportCommand(opts *options) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the trip statistics once, without prompts",
		Long: `Print the time of travel, station, trip duration and user statistics
for one city and an optional month and day of week.

Examples:
  bikeshare report --city chicago
  bikeshare report --city "new york" --month march
  bikeshare report --city washington --month june --day 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			city, filter, table, err := loadFiltered(cmd, opts, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, %s: %d trips\n", city.Title(), filter, table.Len())
			return shell.WriteReport(out, table)
		},
	}
	flags.register(cmd)
	return cmd
}
