package bikeshare

import "strings"

// File format delimiters
const (
	// csvDelimiter is the delimiter for CSV files
	csvDelimiter = ','
	// tsvDelimiter is the delimiter for TSV files
	tsvDelimiter = '\t'
	// ltsvSeparator separates label and value in an LTSV field
	ltsvSeparator = ":"
)

// utf8BOM is stripped from the first header cell
const utf8BOM = "\ufeff"

// Source column names
const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colTripDuration = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// requiredColumns must be present in every dataset
var requiredColumns = []string{
	colStartTime,
	colTripDuration,
	colStartStation,
	colEndStation,
	colUserType,
}

// header is file header.
type header []string

// newHeader create new header.
func newHeader(h []string) header {
	return header(h)
}

// index returns the position of the named column, ignoring case and
// surrounding spaces, or -1.
func (h header) index(name string) int {
	for i, v := range h {
		if normalizeColumnName(v) == normalizeColumnName(name) {
			return i
		}
	}
	return -1
}

// normalizeColumnName folds a column name for comparison
func normalizeColumnName(name string) string {
	name = strings.TrimPrefix(name, utf8BOM)
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// record is file records.
type record []string

// newRecord create new record.
func newRecord(r []string) record {
	return record(r)
}

// get returns the trimmed value at column i, or "" when i is out of range.
func (r record) get(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}
