package bikeshare

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/bikeshare/domain/model"
)

func TestOpenDB(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "chicago.csv", chicagoCSV)
	table, err := NewLoader(Sources{Chicago: path}).Load(context.Background(), Chicago)
	require.NoError(t, err)

	ctx := context.Background()
	db, err := OpenDB(ctx, table)
	require.NoError(t, err)
	defer db.Close()

	t.Run("row count", func(t *testing.T) {
		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count))
		assert.Equal(t, 5, count)
	})

	t.Run("derived columns", func(t *testing.T) {
		var month, day, hour int
		var start string
		err := db.QueryRowContext(ctx,
			"SELECT start_time, month, day_of_week, start_hour FROM trips WHERE trip_duration = 321").
			Scan(&start, &month, &day, &hour)
		require.NoError(t, err)
		assert.Equal(t, "2017-06-23 15:09:32", start)
		assert.Equal(t, 6, month)
		assert.Equal(t, int(model.Friday), day)
		assert.Equal(t, 15, hour)
	})

	t.Run("missing values are NULL", func(t *testing.T) {
		var gender sql.NullString
		var birthYear sql.NullInt64
		err := db.QueryRowContext(ctx,
			"SELECT gender, birth_year FROM trips WHERE user_type = 'Customer'").
			Scan(&gender, &birthYear)
		require.NoError(t, err)
		assert.False(t, gender.Valid)
		assert.False(t, birthYear.Valid)
	})

	t.Run("aggregates match the statistics engine", func(t *testing.T) {
		var total int64
		require.NoError(t, db.QueryRowContext(ctx, "SELECT SUM(trip_duration) FROM trips").Scan(&total))
		assert.Equal(t, TotalDuration(table), total)
	})
}

func TestOpenDB_OptionalColumnsAbsent(t *testing.T) {
	t.Parallel()

	table := model.NewTable("washington", model.Schema{}, []model.Trip{
		trip(t, "2017-01-02 08:00:00", "A", "B", 10),
	})

	ctx := context.Background()
	db, err := OpenDB(ctx, table)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT * FROM trips")
	require.NoError(t, err)
	defer rows.Close()

	columns, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"start_time", "start_station", "end_station", "trip_duration",
		"user_type", "month", "day_of_week", "start_hour",
	}, columns)
	require.NoError(t, rows.Err())

	_, err = db.ExecContext(ctx, "SELECT gender FROM trips")
	assert.Error(t, err)
}

func TestOpenDB_EmptyTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := OpenDB(ctx, model.NewTable("chicago", fullSchema, nil))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestBuildQueries(t *testing.T) {
	t.Parallel()

	columns := sqlColumns(model.Schema{HasGender: true})
	assert.Equal(t,
		"CREATE TABLE [trips] ([start_time] TEXT, [start_station] TEXT, [end_station] TEXT, [trip_duration] INTEGER, [user_type] TEXT, [gender] TEXT, [month] INTEGER, [day_of_week] INTEGER, [start_hour] INTEGER)",
		buildCreateTableQuery(columns))
	assert.Equal(t,
		"INSERT INTO [trips] VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		buildInsertQuery(columns))
}
