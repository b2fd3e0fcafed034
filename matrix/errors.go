// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// %w) and tests check them with errors.Is. Nothing here panics on
// user-triggered input.

package matrix

import "errors"

// Every message is prefixed with "matrix: " to keep logs greppable.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when an ingested table is empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value in a raw weight table.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative value in a raw weight table.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
