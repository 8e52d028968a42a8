package bikeshare

import (
	"errors"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Source timestamps carry no zone
// and are read as UTC wall-clock time.
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 15:04",
}

// errBadTimestamp is returned when no layout matches
var errBadTimestamp = errors.New("unrecognized timestamp")

// parseTimestamp parses a source timestamp with at least minute resolution.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errBadTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadTimestamp
}
