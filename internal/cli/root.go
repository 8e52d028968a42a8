// Package cli defines the bikeshare command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare"
	"github.com/nao1215/bikeshare/domain/model"
	"github.com/nao1215/bikeshare/internal/shell"
)

// dataDirEnv names the environment variable holding the default data directory
const dataDirEnv = "BIKESHARE_DATA_DIR"

// options holds the persistent flags
type options struct {
	dataDir string
	verbose bool
	pause   time.Duration
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers so tests can capture it.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bike share trip data",
		Long: `bikeshare prints statistics about bike share trips in Chicago,
New York City and Washington.

Without a subcommand it starts an interactive session that asks for a city
and an optional month and day of week, prints the most frequent travel times,
the most popular stations, trip durations and user demographics, and lets you
page through the raw trips.

Datasets are read from --data-dir (default $BIKESHARE_DATA_DIR or the current
directory) as chicago.csv, new_york_city.csv and washington.csv.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			loader := newLoader(opts, logger)
			sh := shell.New(loader, cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithPause(opts.pause),
				shell.WithLogger(logger),
			)
			return sh.Run(cmd.Context())
		},
	}

	defaultDir := os.Getenv(dataDirEnv)
	if defaultDir == "" {
		defaultDir = "."
	}
	rootCmd.PersistentFlags().StringVarP(&opts.dataDir, "data-dir", "d", defaultDir, "Directory holding the city datasets")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().DurationVar(&opts.pause, "pause", 0, "Pause between reports in the interactive session")

	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newQueryCommand(opts))
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger creates the text logger used by every command
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newLoader creates a loader for the default file names in the data directory
func newLoader(opts *options, logger *slog.Logger) *bikeshare.Loader {
	return bikeshare.NewLoader(bikeshare.DefaultSources(opts.dataDir), bikeshare.WithLogger(logger))
}

// filterFlags are the --city/--month/--day flags shared by report and query
type filterFlags struct {
	city  string
	month string
	day   string
}

// register adds the flags to cmd
func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.city, "city", "c", "", "City: chicago, new york, washington")
	cmd.Flags().StringVarP(&f.month, "month", "m", "", "Month name or number (default: all months)")
	cmd.Flags().StringVar(&f.day, "day", "", "Day of week, name or 0..6 with 0 = Monday (default: all days)")
	_ = cmd.MarkFlagRequired("city")
}

// parse validates the flags
func (f *filterFlags) parse() (bikeshare.City, model.Filter, error) {
	filter := model.NewFilter()

	city, err := bikeshare.ParseCity(f.city)
	if err != nil {
		return "", filter, err
	}
	if f.month != "" {
		month, err := model.ParseMonth(f.month)
		if err != nil {
			return "", filter, err
		}
		filter = filter.WithMonth(month)
	}
	if f.day != "" {
		day, err := model.ParseWeekday(f.day)
		if err != nil {
			return "", filter, err
		}
		filter = filter.WithDay(day)
	}
	return city, filter, nil
}

// loadFiltered loads the city named by the flags and applies the filter
func loadFiltered(cmd *cobra.Command, opts *options, flags *filterFlags) (bikeshare.City, model.Filter, *model.Table, error) {
	city, filter, err := flags.parse()
	if err != nil {
		return "", filter, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	table, err := newLoader(opts, logger).Load(cmd.Context(), city)
	if err != nil {
		return "", filter, nil, err
	}
	return city, filter, bikeshare.Filter(table, filter), nil
}
