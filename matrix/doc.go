// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage behind the charging graph.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - NewWeightMatrix, which ingests a raw N×N distance table where a
//     0 cell means "no direct road" and turns every such cell into +Inf.
//   - Validators (ValidateNotNil, ValidateSquare) shared by callers that
//     accept the Matrix interface.
//
// Weight policy:
//
//   - Raw 0 → +Inf, including the diagonal unless it was given explicitly.
//   - Raw values must be finite and non-negative; direction is preserved
//     exactly as read (W[i][j] and W[j][i] are independent).
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V²) build time are acceptable, which is the case for hand-maintained
// location tables of tens of rows.
package matrix
