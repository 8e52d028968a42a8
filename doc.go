// Package bikeshare computes descriptive statistics over bike share trip logs
// for Chicago, New York City and Washington.
//
// The pipeline is one-directional: a Loader reads a city's dataset and
// derives month and day of week from each trip's start time, Filter narrows
// the table by month and/or day of week, and the statistics functions
// summarize what is left.
//
// # Basic Usage
//
//	loader := bikeshare.NewLoader(bikeshare.DefaultSources("./data"))
//	table, err := loader.Load(ctx, bikeshare.Chicago)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	march := bikeshare.Filter(table, model.NewFilter().WithMonth(time.March))
//	report, err := bikeshare.TimeOfTravel(march)
//	if errors.Is(err, model.ErrEmptyDataset) {
//	    fmt.Println("no trips in March")
//	}
//
// # Data Sources
//
// A source may be CSV, TSV, LTSV, Parquet or Excel (XLSX, first sheet),
// optionally compressed with gzip (.gz), bzip2 (.bz2), xz (.xz) or
// zstandard (.zst). The format is detected from the file extension.
//
// Required columns are Start Time, Trip Duration, Start Station,
// End Station and User Type. End Time, Gender and Birth Year are optional;
// which of them a dataset provides is recorded in its model.Schema when it
// is loaded. Column names are matched without regard to case.
//
// # Errors
//
// Load failures are reported as *DataSourceError. Statistics that need at
// least one value return model.ErrEmptyDataset, and statistics over an
// optional column the dataset lacks return model.ErrFieldUnavailable.
// The two are never conflated and never replaced by a zero value.
//
// # SQL
//
// OpenDB copies a table into an in-memory SQLite database so that ad hoc
// questions can be answered with SQL.
package bikeshare
