// Package model provides the domain model for bikeshare
package model

import "errors"

var (
	// ErrEmptyDataset is returned when a statistic that needs at least one
	// value (mode, mean, min, max) is requested over zero rows.
	ErrEmptyDataset = errors.New("bikeshare: no data for this filter combination")

	// ErrFieldUnavailable is returned when an optional field (gender, birth year)
	// is not part of the active dataset's schema.
	ErrFieldUnavailable = errors.New("bikeshare: field not available in this dataset")

	// ErrInvalidFilter is returned when a filter holds an out-of-range month or day
	ErrInvalidFilter = errors.New("bikeshare: invalid filter")
)
