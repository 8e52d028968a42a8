package bikeshare

import (
	"slices"

	"github.com/nao1215/bikeshare/domain/model"
)

// tally counts values in first-seen order.
type tally[K comparable] struct {
	index  map[K]int
	keys   []K
	counts []int
}

// newTally creates an empty tally
func newTally[K comparable]() *tally[K] {
	return &tally[K]{index: make(map[K]int)}
}

// add counts one occurrence of k
func (t *tally[K]) add(k K) {
	i, ok := t.index[k]
	if !ok {
		i = len(t.keys)
		t.index[k] = i
		t.keys = append(t.keys, k)
		t.counts = append(t.counts, 0)
	}
	t.counts[i]++
}

// len returns the number of distinct values
func (t *tally[K]) len() int {
	return len(t.keys)
}

// mode returns the most frequent value. Among tied values the one seen
// first wins. An empty tally returns model.ErrEmptyDataset.
func (t *tally[K]) mode() (K, int, error) {
	var zero K
	if len(t.keys) == 0 {
		return zero, 0, model.ErrEmptyDataset
	}
	best := 0
	for i := 1; i < len(t.counts); i++ {
		if t.counts[i] > t.counts[best] {
			best = i
		}
	}
	return t.keys[best], t.counts[best], nil
}

// modeOf tallies key(trip) over all trips and returns the mode
func modeOf[K comparable](trips []model.Trip, key func(model.Trip) K) (K, int, error) {
	t := newTally[K]()
	for _, trip := range trips {
		t.add(key(trip))
	}
	return t.mode()
}

// byCount returns the distinct values and their counts ordered by
// descending count. Ties keep first-seen order.
func (t *tally[K]) byCount() ([]K, []int) {
	order := make([]int, len(t.keys))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return t.counts[b] - t.counts[a]
	})
	keys := make([]K, len(order))
	counts := make([]int, len(order))
	for i, j := range order {
		keys[i] = t.keys[j]
		counts[i] = t.counts[j]
	}
	return keys, counts
}
