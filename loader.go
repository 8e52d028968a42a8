package bikeshare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/nao1215/bikeshare/domain/model"
)

// ctxCheckInterval is how many rows are converted between cancellation checks
const ctxCheckInterval = 4096

// Loader reads city datasets into tables.
type Loader struct {
	sources   Sources
	logger    *slog.Logger
	validator *validator
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader for the given city sources.
//
// Example:
//
//	loader := bikeshare.NewLoader(bikeshare.DefaultSources("./data"))
//	table, err := loader.Load(ctx, bikeshare.Chicago)
func NewLoader(sources Sources, opts ...LoaderOption) *Loader {
	copied := make(Sources, len(sources))
	for city, path := range sources {
		copied[city] = path
	}
	l := &Loader{
		sources:   copied,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator: newValidator(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the dataset of city and returns it with derived fields populated.
//
// A city without a configured source returns ErrUnknownCity, and a canceled
// or expired ctx returns ctx.Err() unwrapped. Every other failure is a
// *DataSourceError.
func (l *Loader) Load(ctx context.Context, city City) (*model.Table, error) {
	path, err := l.sources.path(city)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	l.logger.DebugContext(ctx, "loading dataset", slog.String("city", string(city)), slog.String("path", path))

	if err := l.validator.validatePath(path); err != nil {
		return nil, newDataSourceError("open", city, path, err)
	}

	f := newFile(path)
	raw, err := f.toTable(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, newDataSourceError("parse", city, path, err).
			withDetails(f.describe())
	}

	table, err := l.convert(ctx, city, path, raw)
	if err != nil {
		return nil, err
	}

	schema := table.Schema()
	l.logger.DebugContext(ctx, "loaded dataset",
		slog.String("city", string(city)),
		slog.Int("rows", table.Len()),
		slog.Bool("end_time", schema.HasEndTime),
		slog.Bool("gender", schema.HasGender),
		slog.Bool("birth_year", schema.HasBirthYear),
		slog.Duration("elapsed", time.Since(started)),
	)
	return table, nil
}

// columnIndex holds the position of every known column, -1 when absent
type columnIndex struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// newColumnIndex locates the known columns in h
func newColumnIndex(h header) columnIndex {
	return columnIndex{
		startTime:    h.index(colStartTime),
		endTime:      h.index(colEndTime),
		duration:     h.index(colTripDuration),
		startStation: h.index(colStartStation),
		endStation:   h.index(colEndStation),
		userType:     h.index(colUserType),
		gender:       h.index(colGender),
		birthYear:    h.index(colBirthYear),
	}
}

// convert turns a parsed source into a typed table
func (l *Loader) convert(ctx context.Context, city City, path string, raw *rawTable) (*model.Table, error) {
	h := raw.getHeader()
	if err := l.validator.validateColumnNames(h); err != nil {
		return nil, newDataSourceError("validate", city, path, err)
	}
	if err := l.validator.validateRequiredColumns(h); err != nil {
		return nil, newDataSourceError("validate", city, path, err)
	}

	schema := l.validator.detectSchema(h)
	idx := newColumnIndex(h)

	records := raw.getRecords()
	trips := make([]model.Trip, 0, len(records))
	for i, rec := range records {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		trip, column, err := convertRecord(rec, idx)
		if err != nil {
			return nil, newDataSourceError("convert", city, path, fmt.Errorf("%w: %w", ErrInvalidData, err)).
				withCell(i+1, column)
		}
		trips = append(trips, trip)
	}

	return model.NewTable(string(city), schema, trips), nil
}

// convertRecord converts one row. On failure it returns the offending column.
func convertRecord(rec record, idx columnIndex) (model.Trip, string, error) {
	start, err := parseTimestamp(rec.get(idx.startTime))
	if err != nil {
		return model.Trip{}, colStartTime, fmt.Errorf("%w: %q", err, rec.get(idx.startTime))
	}

	duration, err := parseTripDuration(rec.get(idx.duration))
	if err != nil {
		return model.Trip{}, colTripDuration, err
	}

	trip := model.NewTrip(start, rec.get(idx.startStation), rec.get(idx.endStation), duration, rec.get(idx.userType))

	if v := rec.get(idx.endTime); v != "" {
		end, err := parseTimestamp(v)
		if err != nil {
			return model.Trip{}, colEndTime, fmt.Errorf("%w: %q", err, v)
		}
		trip.EndTime = end
	}

	trip.Gender = rec.get(idx.gender)

	year, err := parseBirthYear(rec.get(idx.birthYear))
	if err != nil {
		return model.Trip{}, colBirthYear, err
	}
	trip.BirthYear = year

	return trip, "", nil
}

// parseTripDuration parses seconds given as an integer or a decimal.
// Decimals are rounded to the nearest second.
func parseTripDuration(value string) (int64, error) {
	if value == "" {
		return 0, errors.New("empty trip duration")
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative trip duration %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("trip duration %q is not a number", value)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative trip duration %s", value)
	}
	if f >= math.MaxInt64 {
		return 0, fmt.Errorf("trip duration %s is too large", value)
	}
	return int64(math.Round(f)), nil
}

// parseBirthYear parses "1989" or "1989.0". A blank cell yields 0.
func parseBirthYear(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("birth year %q is not a number", value)
	}
	if f != math.Trunc(f) || f < 1 || f > 9999 {
		return 0, fmt.Errorf("birth year %q is not a valid year", value)
	}
	return int(f), nil
}
