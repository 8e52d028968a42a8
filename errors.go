package bikeshare

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownCity indicates a city outside the configured set
	ErrUnknownCity = errors.New("bikeshare: unknown city")

	// ErrFileNotFound indicates the data source does not exist
	ErrFileNotFound = errors.New("bikeshare: file not found")

	// ErrUnsupportedFormat indicates an unsupported source file format
	ErrUnsupportedFormat = errors.New("bikeshare: unsupported file format")

	// ErrEmptyData indicates that the data source has no header row
	ErrEmptyData = errors.New("bikeshare: empty data source")

	// ErrMissingColumn indicates that a required column is absent
	ErrMissingColumn = errors.New("bikeshare: missing required column")

	// ErrDuplicateColumn indicates that a column name appears twice
	ErrDuplicateColumn = errors.New("bikeshare: duplicate column name")

	// ErrInvalidData indicates a malformed cell or file
	ErrInvalidData = errors.New("bikeshare: invalid data format")
)

// DataSourceError reports a dataset that could not be loaded.
// It always wraps one of the sentinel errors above, or the error returned
// by the underlying reader, so callers can use errors.Is.
type DataSourceError struct {
	// Operation is the step that failed, e.g. "open" or "parse".
	Operation string
	// City is the city being loaded.
	City City
	// Path is the source file.
	Path string
	// Row is the 1-based data row, 0 when not row specific.
	Row int
	// Column is the column name, empty when not column specific.
	Column string
	// Details is free text.
	Details string
	// Err is the underlying error.
	Err error
}

// newDataSourceError creates a new error for operation on path
func newDataSourceError(operation string, city City, path string, err error) *DataSourceError {
	return &DataSourceError{
		Operation: operation,
		City:      city,
		Path:      path,
		Err:       err,
	}
}

// withCell adds row and column context to the error
func (e *DataSourceError) withCell(row int, column string) *DataSourceError {
	e.Row = row
	e.Column = column
	return e
}

// withDetails adds details to the error
func (e *DataSourceError) withDetails(details string) *DataSourceError {
	e.Details = details
	return e
}

// Error implements the error interface.
func (e *DataSourceError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("bikeshare: %s failed", e.Operation))

	if e.City != "" {
		parts = append(parts, "city: "+string(e.City))
	}
	if e.Path != "" {
		parts = append(parts, "file: "+e.Path)
	}
	if e.Row > 0 {
		parts = append(parts, "row: "+strconv.Itoa(e.Row))
	}
	if e.Column != "" {
		parts = append(parts, "column: "+e.Column)
	}
	if e.Details != "" {
		parts = append(parts, "details: "+e.Details)
	}

	msg := strings.Join(parts, ", ")
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *DataSourceError) Unwrap() error {
	return e.Err
}
