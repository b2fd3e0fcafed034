package core

import (
	"fmt"
	"math"
	"sort"
)

// Table is the immutable, index-addressed list of locations.
// Index i of the table is node i of the distance graph.
type Table struct {
	locs   []Location
	byName map[string]int
}

// NewTable validates locs and assigns each its dense index in input order.
// The input slice is copied; any Index already set on the records is
// overwritten.
//
// A price on a location without a charger is kept but never used: Price
// reports ok=false for it.
//
// Returns ErrEmptyTable, *ValidationError (ErrInvalid) or ErrDuplicateName.
func NewTable(locs []Location) (*Table, error) {
	if len(locs) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		locs:   make([]Location, len(locs)),
		byName: make(map[string]int, len(locs)),
	}
	for i, l := range locs {
		l.Index = i
		if err := Validate(l); err != nil {
			return nil, fmt.Errorf("core: location %d: %w", i, err)
		}
		if math.IsNaN(l.UnitPrice) || math.IsInf(l.UnitPrice, 0) {
			return nil, fmt.Errorf("core: location %d (%s): price %v: %w", i, l.Name, l.UnitPrice, ErrInvalid)
		}
		if prev, dup := t.byName[l.Name]; dup {
			return nil, fmt.Errorf("core: %q at %d and %d: %w", l.Name, prev, i, ErrDuplicateName)
		}
		t.byName[l.Name] = i
		t.locs[i] = l
	}

	return t, nil
}

// Len returns the number of locations N.
func (t *Table) Len() int { return len(t.locs) }

// At returns location i.
func (t *Table) At(i int) (Location, error) {
	if i < 0 || i >= len(t.locs) {
		return Location{}, fmt.Errorf("core: At(%d) not in [0,%d): %w", i, len(t.locs), ErrOutOfRange)
	}

	return t.locs[i], nil
}

// location is At without bounds checks.
func (t *Table) location(i int) Location { return t.locs[i] }

// Index resolves a location name to its index.
func (t *Table) Index(name string) (int, error) {
	i, ok := t.byName[name]
	if !ok {
		return -1, fmt.Errorf("core: %q: %w", name, ErrUnknownLocation)
	}

	return i, nil
}

// Has reports whether i is a valid location index.
func (t *Table) Has(i int) bool { return i >= 0 && i < len(t.locs) }

// All returns a copy of every location in index order.
func (t *Table) All() []Location {
	out := make([]Location, len(t.locs))
	copy(out, t.locs)

	return out
}

// Stations returns the locations with a charger installed, ordered by unit
// price ascending; equal prices keep index order.
func (t *Table) Stations() []Location {
	out := make([]Location, 0, len(t.locs))
	for _, l := range t.locs {
		if l.ChargerInstalled {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].UnitPrice < out[b].UnitPrice })

	return out
}

// IsStation reports whether location i has a charger. Out-of-range
// indices are not stations.
func (t *Table) IsStation(i int) bool {
	return t.Has(i) && t.location(i).ChargerInstalled
}

// Names maps a sequence of indices (typically a path) to location names.
func (t *Table) Names(path []int) ([]string, error) {
	out := make([]string, len(path))
	for k, i := range path {
		l, err := t.At(i)
		if err != nil {
			return nil, err
		}
		out[k] = l.Name
	}

	return out, nil
}
