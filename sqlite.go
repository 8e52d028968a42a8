package bikeshare

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/nao1215/bikeshare/domain/model"
)

const (
	// sqliteDriverName is the name modernc.org/sqlite registers
	sqliteDriverName = "sqlite"
	// TripsTableName is the SQL table OpenDB creates
	TripsTableName = "trips"
)

// sqlColumn describes one column of the trips table
type sqlColumn struct {
	name    string
	sqlType string
	value   func(model.Trip) any
}

// sqlColumns returns the columns for schema. Optional columns are only
// present when the dataset has them.
func sqlColumns(schema model.Schema) []sqlColumn {
	columns := []sqlColumn{
		{"start_time", "TEXT", func(t model.Trip) any { return t.StartTime.Format(time.DateTime) }},
	}
	if schema.HasEndTime {
		columns = append(columns, sqlColumn{"end_time", "TEXT", func(t model.Trip) any {
			if t.EndTime.IsZero() {
				return nil
			}
			return t.EndTime.Format(time.DateTime)
		}})
	}
	columns = append(columns,
		sqlColumn{"start_station", "TEXT", func(t model.Trip) any { return t.StartStation }},
		sqlColumn{"end_station", "TEXT", func(t model.Trip) any { return t.EndStation }},
		sqlColumn{"trip_duration", "INTEGER", func(t model.Trip) any { return t.Duration }},
		sqlColumn{"user_type", "TEXT", func(t model.Trip) any { return nullIfEmpty(t.UserType) }},
	)
	if schema.HasGender {
		columns = append(columns, sqlColumn{"gender", "TEXT", func(t model.Trip) any { return nullIfEmpty(t.Gender) }})
	}
	if schema.HasBirthYear {
		columns = append(columns, sqlColumn{"birth_year", "INTEGER", func(t model.Trip) any {
			if !t.HasBirthYear() {
				return nil
			}
			return int64(t.BirthYear)
		}})
	}
	columns = append(columns,
		sqlColumn{"month", "INTEGER", func(t model.Trip) any { return int64(t.Month) }},
		sqlColumn{"day_of_week", "INTEGER", func(t model.Trip) any { return int64(t.Weekday) }},
		sqlColumn{"start_hour", "INTEGER", func(t model.Trip) any { return int64(t.StartHour()) }},
	)
	return columns
}

// nullIfEmpty maps a missing text value to SQL NULL
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// OpenDB copies t into a private in-memory SQLite database as the table
// "trips". The caller must close the returned database.
//
// Example:
//
//	db, err := bikeshare.OpenDB(ctx, table)
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//	rows, err := db.QueryContext(ctx, "SELECT start_station, COUNT(*) FROM trips GROUP BY 1")
func OpenDB(ctx context.Context, t *model.Table) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := loadTable(ctx, db, t); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadTable creates the trips table and inserts every trip in one transaction
func loadTable(ctx context.Context, db *sql.DB, t *model.Table) error {
	columns := sqlColumns(t.Schema())

	if _, err := db.ExecContext(ctx, buildCreateTableQuery(columns)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	stmt, err := tx.PrepareContext(ctx, buildInsertQuery(columns))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for _, trip := range t.Trips() {
		for i, c := range columns {
			args[i] = c.value(trip)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// buildCreateTableQuery constructs a CREATE TABLE query for the given columns
func buildCreateTableQuery(columns []sqlColumn) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = fmt.Sprintf("[%s] %s", c.name, c.sqlType)
	}
	return fmt.Sprintf("CREATE TABLE [%s] (%s)", TripsTableName, strings.Join(defs, ", "))
}

// buildInsertQuery constructs an INSERT query with one placeholder per column
func buildInsertQuery(columns []sqlColumn) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO [%s] VALUES (%s)", TripsTableName, placeholders)
}
