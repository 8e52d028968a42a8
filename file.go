package bikeshare

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"
)

// FileType represents a supported source format, independent of compression
type FileType int

const (
	// FileTypeCSV represents CSV file type
	FileTypeCSV FileType = iota
	// FileTypeTSV represents TSV file type
	FileTypeTSV
	// FileTypeLTSV represents LTSV file type
	FileTypeLTSV
	// FileTypeParquet represents Parquet file type
	FileTypeParquet
	// FileTypeXLSX represents Excel XLSX file type
	FileTypeXLSX
	// FileTypeUnsupported represents unsupported file type
	FileTypeUnsupported
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extLTSV is the LTSV file extension
	extLTSV = ".ltsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
)

// String returns the format name
func (ft FileType) String() string {
	switch ft {
	case FileTypeCSV:
		return "csv"
	case FileTypeTSV:
		return "tsv"
	case FileTypeLTSV:
		return "ltsv"
	case FileTypeParquet:
		return "parquet"
	case FileTypeXLSX:
		return "xlsx"
	default:
		return "unsupported"
	}
}

// detectFileType detects file type from extension, ignoring any compression extension
func detectFileType(path string) FileType {
	ext := strings.ToLower(filepath.Ext(removeCompressionExtension(path)))
	switch ext {
	case extCSV:
		return FileTypeCSV
	case extTSV:
		return FileTypeTSV
	case extLTSV:
		return FileTypeLTSV
	case extParquet:
		return FileTypeParquet
	case extXLSX:
		return FileTypeXLSX
	default:
		return FileTypeUnsupported
	}
}

// isSupportedFile checks if the file has a supported extension
func isSupportedFile(path string) bool {
	return detectFileType(path) != FileTypeUnsupported
}

// file represents a source file that can be converted to a rawTable
type file struct {
	path        string
	fileType    FileType
	compression CompressionType
}

// newFile creates a new file
func newFile(path string) *file {
	return &file{
		path:        path,
		fileType:    detectFileType(path),
		compression: detectCompressionType(path),
	}
}

// isCompressed returns true if file is compressed
func (f *file) isCompressed() bool {
	return f.compression != CompressionNone
}

// describe names the format and, for compressed files, the compression
func (f *file) describe() string {
	if f.isCompressed() {
		return fmt.Sprintf("format %s, compression %s", f.fileType, f.compression)
	}
	return "format " + f.fileType.String()
}

// toTable reads and parses the file
func (f *file) toTable(ctx context.Context) (*rawTable, error) {
	if f.fileType == FileTypeUnsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.path)
	}

	reader, closer, err := openDecompressed(f.path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = closer() // read-only, nothing to flush
	}()

	header, records, err := parseSource(ctx, reader, f.fileType)
	if err != nil {
		return nil, err
	}
	return newRawTable(header, records), nil
}

// parseSource parses already decompressed content of the given format
func parseSource(ctx context.Context, reader io.Reader, fileType FileType) (header, []record, error) {
	switch fileType {
	case FileTypeCSV:
		return parseDelimited(reader, csvDelimiter)
	case FileTypeTSV:
		return parseDelimited(reader, tsvDelimiter)
	case FileTypeLTSV:
		return parseLTSV(reader)
	case FileTypeParquet:
		return parseParquet(ctx, reader)
	case FileTypeXLSX:
		return parseXLSX(reader)
	default:
		return nil, nil, ErrUnsupportedFormat
	}
}

// parseDelimited parses CSV or TSV content with the specified delimiter
func parseDelimited(reader io.Reader, delimiter rune) (header, []record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.ReuseRecord = false

	first, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyData
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	var records []record
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		records = append(records, newRecord(row))
	}

	return newHeader(first), records, nil
}

// parseLTSV parses LTSV content. Labels become columns in first-seen order.
func parseLTSV(reader io.Reader) (header, []record, error) {
	var (
		columns []string
		index   = make(map[string]int)
		rows    []map[string]string
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		row := make(map[string]string)
		for _, pair := range strings.Split(line, "\t") {
			kv := strings.SplitN(pair, ltsvSeparator, 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			row[key] = strings.TrimSpace(kv[1])
			if _, seen := index[key]; !seen {
				index[key] = len(columns)
				columns = append(columns, key)
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	records := make([]record, 0, len(rows))
	for _, row := range rows {
		r := make(record, len(columns))
		for i, key := range columns {
			r[i] = row[key]
		}
		records = append(records, r)
	}
	return newHeader(columns), records, nil
}

// parseParquet parses Parquet content. Parquet needs random access, so
// the whole content is buffered first.
func parseParquet(ctx context.Context, reader io.Reader) (header, []record, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create parquet reader: %w", ErrInvalidData, err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create arrow reader: %w", ErrInvalidData, err)
	}

	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read table: %w", ErrInvalidData, err)
	}
	defer table.Release()

	schema := table.Schema()
	columns := make(header, schema.NumFields())
	for i, field := range schema.Fields() {
		columns[i] = field.Name
	}

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	records := make([]record, 0, table.NumRows())
	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := int(batch.NumRows())
		for i := 0; i < numRows; i++ {
			row := make(record, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = arrowValueString(col, i)
			}
			records = append(records, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: error reading table records: %w", ErrInvalidData, err)
	}

	return columns, records, nil
}

// arrowValueString renders one arrow cell as source text. Nulls become "".
func arrowValueString(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	if ts, ok := col.(*array.Timestamp); ok {
		unit := ts.DataType().(*arrow.TimestampType).Unit
		return ts.Value(i).ToTime(unit).UTC().Format(time.DateTime)
	}
	return col.ValueStr(i)
}

// parseXLSX parses the first sheet of an XLSX workbook.
// Rows shorter than the header are padded with empty strings.
func parseXLSX(reader io.Reader) (header, []record, error) {
	xlsxFile, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, nil, ErrEmptyData
	}

	rows, err := xlsxFile.GetRows(sheetNames[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read sheet %s: %w", ErrInvalidData, sheetNames[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	headers, records := convertXLSXRowsToTable(rows)
	return headers, records, nil
}

// convertXLSXRowsToTable converts XLSX rows to table headers and records
// First row becomes headers, remaining rows become records with padding
func convertXLSXRowsToTable(rows [][]string) (header, []record) {
	headers := make(header, len(rows[0]))
	copy(headers, rows[0])

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(record, len(headers))
		for j := range headers {
			if j < len(row) {
				r[j] = row[j]
			}
		}
		records = append(records, r)
	}
	return headers, records
}
