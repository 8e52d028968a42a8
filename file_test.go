package bikeshare

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectFileType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want FileType
	}{
		{path: "chicago.csv", want: FileTypeCSV},
		{path: "chicago.CSV", want: FileTypeCSV},
		{path: "chicago.csv.gz", want: FileTypeCSV},
		{path: "chicago.tsv.bz2", want: FileTypeTSV},
		{path: "chicago.ltsv.xz", want: FileTypeLTSV},
		{path: "chicago.parquet.zst", want: FileTypeParquet},
		{path: "chicago.xlsx", want: FileTypeXLSX},
		{path: "chicago.txt", want: FileTypeUnsupported},
		{path: "chicago.gz", want: FileTypeUnsupported},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, detectFileType(tt.path))
			assert.Equal(t, tt.want != FileTypeUnsupported, isSupportedFile(tt.path))
		})
	}
}

func TestNewFile(t *testing.T) {
	t.Parallel()

	f := newFile("data/chicago.tsv.zst")
	assert.Equal(t, FileTypeTSV, f.fileType)
	assert.Equal(t, CompressionZSTD, f.compression)
	assert.True(t, f.isCompressed())

	assert.Equal(t, "format tsv, compression zstd", f.describe())

	f = newFile("data/chicago.csv")
	assert.False(t, f.isCompressed())
	assert.Equal(t, "format csv", f.describe())
}

func TestParseDelimited(t *testing.T) {
	t.Parallel()

	t.Run("CSV with quoted comma", func(t *testing.T) {
		t.Parallel()

		h, records, err := parseDelimited(strings.NewReader("Start Station,End Station\n\"Clark St, North\",B\n"), csvDelimiter)
		require.NoError(t, err)
		assert.Equal(t, header{"Start Station", "End Station"}, h)
		require.Len(t, records, 1)
		assert.Equal(t, record{"Clark St, North", "B"}, records[0])
	})

	t.Run("TSV", func(t *testing.T) {
		t.Parallel()

		h, records, err := parseDelimited(strings.NewReader("a\tb\n1\t2\n3\t4\n"), tsvDelimiter)
		require.NoError(t, err)
		assert.Len(t, h, 2)
		assert.Len(t, records, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDelimited(strings.NewReader(""), csvDelimiter)
		assert.ErrorIs(t, err, ErrEmptyData)
	})

	t.Run("ragged rows", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseDelimited(strings.NewReader("a,b\n1,2,3\n"), csvDelimiter)
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("header only", func(t *testing.T) {
		t.Parallel()

		h, records, err := parseDelimited(strings.NewReader("a,b\n"), csvDelimiter)
		require.NoError(t, err)
		assert.Len(t, h, 2)
		assert.Empty(t, records)
	})
}

func TestParseLTSV(t *testing.T) {
	t.Parallel()

	input := "Start Station:A\tEnd Station:B\n\nEnd Station:C\tStart Station:D\tGender:Male\n"

	h, records, err := parseLTSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, header{"Start Station", "End Station", "Gender"}, h)
	require.Len(t, records, 2)
	assert.Equal(t, record{"A", "B", ""}, records[0])
	assert.Equal(t, record{"D", "C", "Male"}, records[1])

	_, _, err = parseLTSV(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestFile_ToTable_CompressedCSV(t *testing.T) {
	t.Parallel()

	path := writeGzipFile(t, "chicago.csv.gz", chicagoCSV)

	table, err := newFile(path).toTable(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.getHeader(), 9)
	assert.Len(t, table.getRecords(), 5)
}

func TestFile_ToTable_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "chicago.txt", "a,b\n")

	_, err := newFile(path).toTable(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseXLSX(t *testing.T) {
	t.Parallel()

	book := excelize.NewFile()
	defer func() {
		_ = book.Close()
	}()

	sheet := book.GetSheetName(0)
	rows := [][]string{
		{"Start Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-01-01 09:07:57", "300", "A", "B", "Subscriber"},
		{"2017-01-02 10:00:00", "120", "B"},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cell, &rows[i]))
	}

	var buf bytes.Buffer
	_, err := book.WriteTo(&buf)
	require.NoError(t, err)

	h, records, err := parseXLSX(&buf)
	require.NoError(t, err)
	assert.Len(t, h, 5)
	require.Len(t, records, 2)
	assert.Equal(t, record{"2017-01-02 10:00:00", "120", "B", "", ""}, records[1], "short rows are padded")
}

func TestParseXLSX_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := parseXLSX(strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrInvalidData)
}

// writeParquet encodes a small trip table with a timestamp column and a
// nullable birth year.
func writeParquet(t *testing.T) []byte {
	t.Helper()

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "Start Time", Type: &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}},
		{Name: "Trip Duration", Type: arrow.PrimitiveTypes.Int64},
		{Name: "Start Station", Type: arrow.BinaryTypes.String},
		{Name: "End Station", Type: arrow.BinaryTypes.String},
		{Name: "User Type", Type: arrow.BinaryTypes.String},
		{Name: "Birth Year", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	start := time.Date(2017, time.February, 3, 7, 45, 0, 0, time.UTC)
	builder.Field(0).(*array.TimestampBuilder).AppendValues([]arrow.Timestamp{
		arrow.Timestamp(start.UnixMilli()),
		arrow.Timestamp(start.Add(time.Hour).UnixMilli()),
	}, nil)
	builder.Field(1).(*array.Int64Builder).AppendValues([]int64{300, 450}, nil)
	builder.Field(2).(*array.StringBuilder).AppendValues([]string{"A", "B"}, nil)
	builder.Field(3).(*array.StringBuilder).AppendValues([]string{"B", "C"}, nil)
	builder.Field(4).(*array.StringBuilder).AppendValues([]string{"Subscriber", "Customer"}, nil)
	builder.Field(5).(*array.Float64Builder).AppendValues([]float64{1990, 0}, []bool{true, false})

	rec := builder.NewRecord()
	defer rec.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, pqarrow.WriteTable(tbl, &buf, 1024, nil, pqarrow.DefaultWriterProps()))
	return buf.Bytes()
}

func TestParseParquet(t *testing.T) {
	t.Parallel()

	h, records, err := parseParquet(context.Background(), bytes.NewReader(writeParquet(t)))
	require.NoError(t, err)

	assert.Equal(t, header{"Start Time", "Trip Duration", "Start Station", "End Station", "User Type", "Birth Year"}, h)
	require.Len(t, records, 2)

	assert.Equal(t, "2017-02-03 07:45:00", records[0][0])
	assert.Equal(t, "300", records[0][1])
	assert.Equal(t, "A", records[0][2])
	assert.Equal(t, "1990", records[0][5])
	assert.Equal(t, "", records[1][5], "null birth year must become an empty cell")
}

func TestParseParquet_Empty(t *testing.T) {
	t.Parallel()

	_, _, err := parseParquet(context.Background(), bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestLoader_LoadParquetFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chicago.parquet")
	require.NoError(t, os.WriteFile(path, writeParquet(t), 0o600))

	table, err := NewLoader(Sources{Chicago: path}).Load(context.Background(), Chicago)
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.True(t, table.Schema().HasBirthYear)
	assert.False(t, table.Schema().HasGender)
	assert.Equal(t, time.February, table.Trip(0).Month)
	assert.Equal(t, 1990, table.Trip(0).BirthYear)
	assert.False(t, table.Trip(1).HasBirthYear())
}
