package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/evcharge/core"
	"github.com/katalvlaran/evcharge/dijkstra"
)

var (
	// ErrBadRecord indicates a line that could not be parsed.
	ErrBadRecord = errors.New("loader: malformed record")

	// ErrSizeMismatch indicates a weight grid whose size differs from the
	// number of locations.
	ErrSizeMismatch = errors.New("loader: weight grid does not match location count")
)

// ReadLocations parses location lines from r.
func ReadLocations(r io.Reader) ([]core.Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var locs []core.Location
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: locations: %w: %w", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)

		loc, err := parseLocation(row)
		if err != nil {
			return nil, fmt.Errorf("loader: locations line %d: %w", line, err)
		}
		locs = append(locs, loc)
	}

	return locs, nil
}

// parseLocation converts one name,charger,price row.
func parseLocation(row []string) (core.Location, error) {
	if len(row) != 3 {
		return core.Location{}, fmt.Errorf("want 3 fields, got %d: %w", len(row), ErrBadRecord)
	}

	name := strings.TrimSpace(row[0])
	var charger bool
	switch strings.TrimSpace(row[1]) {
	case "1":
		charger = true
	case "0":
	default:
		return core.Location{}, fmt.Errorf("charger flag %q: %w", row[1], ErrBadRecord)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return core.Location{}, fmt.Errorf("price %q: %w", row[2], ErrBadRecord)
	}

	return core.Location{Name: name, ChargerInstalled: charger, UnitPrice: price}, nil
}

// ReadWeights parses a whitespace separated grid from r. Row lengths are
// not checked here; matrix.NewWeightMatrix rejects ragged input.
func ReadWeights(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)

	var rows [][]float64
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("loader: weights line %d column %d: %q: %w", line, j+1, f, ErrBadRecord)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: weights: %w", err)
	}

	return rows, nil
}

// FromReaders builds the location table and the graph from two readers.
func FromReaders(locations, weights io.Reader) (*core.Table, *dijkstra.Graph, error) {
	locs, err := ReadLocations(locations)
	if err != nil {
		return nil, nil, err
	}
	t, err := core.NewTable(locs)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}

	rows, err := ReadWeights(weights)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) != t.Len() {
		return nil, nil, fmt.Errorf("loader: %d locations, %d weight rows: %w", t.Len(), len(rows), ErrSizeMismatch)
	}
	g, err := dijkstra.FromTable(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}

	return t, g, nil
}

// Load opens both files and calls FromReaders.
func Load(locationsPath, weightsPath string) (*core.Table, *dijkstra.Graph, error) {
	lf, err := os.Open(locationsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	defer lf.Close()

	wf, err := os.Open(weightsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loader: %w", err)
	}
	defer wf.Close()

	return FromReaders(lf, wf)
}
