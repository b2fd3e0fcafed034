// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Ingest a raw distance table (0 = "no road") into a dense weight matrix
//     where +Inf means "no edge". Shared by the graph engine and the loader.
//
// Contract:
//   - Square table; finite, non-negative cells; direction kept as read.

package matrix

import (
	"fmt"
	"math"
)

const opNewWeightMatrix = "NewWeightMatrix"

// NewWeightMatrix builds an N×N weight matrix from rows.
//
// Every raw 0 becomes +Inf (no directed edge i→j), the diagonal included.
// Any other value is kept as the edge weight. The table is validated in a
// fixed order so the first offending cell is always the one reported:
//
//	empty → ErrBadShape; ragged or non-square → ErrNonSquare;
//	NaN/±Inf → ErrNaNInf; negative → ErrNegativeWeight.
//
// The input slice is not retained.
// Complexity: O(N²) time and memory.
func NewWeightMatrix(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf(opNewWeightMatrix, ErrBadShape)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				opNewWeightMatrix, i, len(rows[i]), n, ErrNonSquare)
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewWeightMatrix, err)
	}

	// Rewrite values row-by-row in a fixed order for determinism.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("%s: cell (%d,%d)=%v: %w", opNewWeightMatrix, i, j, v, ErrNaNInf)
			case v < 0:
				return nil, fmt.Errorf("%s: cell (%d,%d)=%v: %w", opNewWeightMatrix, i, j, v, ErrNegativeWeight)
			case v == 0:
				v = math.Inf(1)
			}
			m.data[i*n+j] = v
		}
	}

	return m, nil
}

// IsEdge reports whether w denotes an existing edge (finite weight).
func IsEdge(w float64) bool {
	return !math.IsInf(w, 1)
}

// matrixErrorf prefixes err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
