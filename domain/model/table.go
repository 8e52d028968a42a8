package model

// Table is an ordered sequence of trips sharing one schema.
// A Table is not modified after it is created; Filter produces a new one.
type Table struct {
	// name is the dataset name, usually the city.
	name string
	// schema lists the optional columns present in the source.
	schema Schema
	// trips in source order.
	trips []Trip
}

// NewTable create new Table.
func NewTable(name string, schema Schema, trips []Trip) *Table {
	return &Table{
		name:   name,
		schema: schema,
		trips:  trips,
	}
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Schema return the table schema.
func (t *Table) Schema() Schema {
	return t.schema
}

// Trips return table trips. The slice must not be modified.
func (t *Table) Trips() []Trip {
	return t.trips
}

// Len returns the number of trips.
func (t *Table) Len() int {
	return len(t.trips)
}

// Trip returns the i-th trip.
func (t *Table) Trip(i int) Trip {
	return t.trips[i]
}

// Slice returns trips in [from, to), clamped to the table bounds.
func (t *Table) Slice(from, to int) []Trip {
	if from < 0 {
		from = 0
	}
	if to > len(t.trips) {
		to = len(t.trips)
	}
	if from >= to {
		return nil
	}
	return t.trips[from:to]
}

// Equal compare Table.
func (t *Table) Equal(t2 *Table) bool {
	if t.Name() != t2.Name() {
		return false
	}
	if t.schema != t2.schema {
		return false
	}
	if len(t.trips) != len(t2.trips) {
		return false
	}
	for i, trip := range t.trips {
		if !trip.Equal(t2.trips[i]) {
			return false
		}
	}
	return true
}

// Equal compare Trip.
func (t Trip) Equal(t2 Trip) bool {
	return t.StartTime.Equal(t2.StartTime) &&
		t.EndTime.Equal(t2.EndTime) &&
		t.StartStation == t2.StartStation &&
		t.EndStation == t2.EndStation &&
		t.Duration == t2.Duration &&
		t.UserType == t2.UserType &&
		t.Gender == t2.Gender &&
		t.BirthYear == t2.BirthYear &&
		t.Month == t2.Month &&
		t.Weekday == t2.Weekday
}
