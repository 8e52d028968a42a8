package bikeshare

import "github.com/nao1215/bikeshare/domain/model"

// Filter returns the trips of t that match f, in their original order.
// The result shares t's name and schema. An unconstrained filter returns t
// itself; no match yields an empty table, not an error.
func Filter(t *model.Table, f model.Filter) *model.Table {
	if f.IsEmpty() {
		return t
	}

	trips := t.Trips()
	kept := make([]model.Trip, 0, len(trips))
	for _, trip := range trips {
		if f.Match(trip) {
			kept = append(kept, trip)
		}
	}
	return model.NewTable(t.Name(), t.Schema(), kept)
}
