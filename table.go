package bikeshare

// rawTable is a parsed source file before typed conversion.
type rawTable struct {
	// header is the first row.
	header header
	// records are the remaining rows.
	records []record
}

// newRawTable create new rawTable.
func newRawTable(header header, records []record) *rawTable {
	return &rawTable{
		header:  header,
		records: records,
	}
}

// getHeader return table header.
func (t *rawTable) getHeader() header {
	return t.header
}

// getRecords return table records.
func (t *rawTable) getRecords() []record {
	return t.records
}
