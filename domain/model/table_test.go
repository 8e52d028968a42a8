package model

import (
	"testing"
	"time"
)

func sampleTrips() []Trip {
	return []Trip{
		NewTrip(time.Date(2017, time.January, 2, 9, 7, 57, 0, time.UTC), "A", "B", 300, "Subscriber"),
		NewTrip(time.Date(2017, time.March, 5, 18, 0, 0, 0, time.UTC), "B", "C", 120, "Customer"),
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	schema := Schema{HasGender: true}
	trips := sampleTrips()

	table := NewTable("chicago", schema, trips)

	if table.Name() != "chicago" {
		t.Errorf("expected name 'chicago', got %s", table.Name())
	}

	if table.Schema() != schema {
		t.Errorf("expected schema %+v, got %+v", schema, table.Schema())
	}

	if table.Len() != 2 {
		t.Errorf("expected 2 trips, got %d", table.Len())
	}

	if !table.Trip(0).Equal(trips[0]) {
		t.Errorf("expected first trip %+v, got %+v", trips[0], table.Trip(0))
	}
}

func TestTable_Equal(t *testing.T) {
	t.Parallel()

	trips := sampleTrips()

	table1 := NewTable("test", Schema{}, trips)
	table2 := NewTable("test", Schema{}, trips)
	table3 := NewTable("different", Schema{}, trips)

	if !table1.Equal(table2) {
		t.Error("expected tables to be equal")
	}

	if table1.Equal(table3) {
		t.Error("expected tables with different names to be not equal")
	}

	table4 := NewTable("test", Schema{HasBirthYear: true}, trips)
	if table1.Equal(table4) {
		t.Error("expected tables with different schemas to be not equal")
	}

	table5 := NewTable("test", Schema{}, trips[:1])
	if table1.Equal(table5) {
		t.Error("expected tables with different trip counts to be not equal")
	}

	changed := append([]Trip(nil), trips...)
	changed[1].EndStation = "Z"
	table6 := NewTable("test", Schema{}, changed)
	if table1.Equal(table6) {
		t.Error("expected tables with different trips to be not equal")
	}
}

func TestTable_Slice(t *testing.T) {
	t.Parallel()

	table := NewTable("test", Schema{}, sampleTrips())

	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{name: "whole table", from: 0, to: 2, want: 2},
		{name: "past the end", from: 1, to: 10, want: 1},
		{name: "negative start", from: -3, to: 1, want: 1},
		{name: "empty range", from: 2, to: 7, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := len(table.Slice(tt.from, tt.to)); got != tt.want {
				t.Errorf("Slice(%d, %d) returned %d trips, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
