// Package shell implements the interactive bikeshare session: it asks for a
// city and filters, prints the reports, pages through raw trips and offers
// to start over.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/bikeshare"
	"github.com/nao1215/bikeshare/domain/model"
)

// Loader loads a city's dataset. *bikeshare.Loader satisfies it.
type Loader interface {
	Load(ctx context.Context, city bikeshare.City) (*model.Table, error)
}

// Shell is one interactive session.
type Shell struct {
	loader   Loader
	in       *bufio.Reader
	out      io.Writer
	pause    time.Duration
	pageSize int
	logger   *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithPause sets the pause between reports.
func WithPause(d time.Duration) Option {
	return func(s *Shell) {
		if d > 0 {
			s.pause = d
		}
	}
}

// WithPageSize sets how many raw rows are shown per page.
func WithPageSize(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Shell reading answers from in and writing to out.
func New(loader Loader, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		loader:   loader,
		in:       bufio.NewReader(in),
		out:      out,
		pageSize: defaultPageSize,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run runs sessions until the user declines to restart or input ends.
// Load failures are reported to the user and do not end the session.
func (s *Shell) Run(ctx context.Context) error {
	s.logger = s.logger.With(slog.String("session", uuid.New().String()))
	s.logger.DebugContext(ctx, "session started")

	fmt.Fprintln(s.out, "Hello! Let's explore some US bikeshare data!")
	for {
		if err := s.iterate(ctx); err != nil {
			if errors.Is(err, errEndOfInput) {
				return nil
			}
			return err
		}

		restart, err := s.readLine("\nWould you like to restart? Enter yes or no.\n")
		if errors.Is(err, errEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(restart, "yes") {
			return nil
		}
	}
}

// iterate runs one question, load, report and browse cycle
func (s *Shell) iterate(ctx context.Context) error {
	city, err := s.askCity()
	if err != nil {
		return err
	}
	filter, err := s.askFilter()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, separator)

	s.logger.DebugContext(ctx, "loading", slog.String("city", string(city)), slog.String("filter", filter.String()))
	table, err := s.loader.Load(ctx, city)
	if err != nil {
		var dsErr *bikeshare.DataSourceError
		if errors.As(err, &dsErr) || errors.Is(err, bikeshare.ErrUnknownCity) {
			s.logger.ErrorContext(ctx, "failed to load dataset", slog.Any("error", err))
			fmt.Fprintf(s.out, "\nCould not load data for %s: %v\n", city.Title(), err)
			return nil
		}
		return err
	}

	filtered := bikeshare.Filter(table, filter)
	fmt.Fprintf(s.out, "\n%s, %s: %d trips\n", city.Title(), filter, filtered.Len())

	for i, sec := range sections {
		if err := writeSection(s.out, sec, filtered); err != nil {
			return err
		}
		if i < len(sections)-1 {
			if err := s.wait(ctx); err != nil {
				return err
			}
		}
	}

	return s.browse(filtered)
}

// wait sleeps for the configured pause unless ctx is done first
func (s *Shell) wait(ctx context.Context) error {
	if s.pause <= 0 {
		return nil
	}
	timer := time.NewTimer(s.pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
