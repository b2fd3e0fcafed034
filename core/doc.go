// Package core defines the read-only location table shared by the graph
// engine and the charging advisor.
//
// A Location is a named place that may carry a charger with a per-kWh unit
// price. Locations are identified by their dense index (0..N-1, assigned in
// load order) which is also their node index in the dijkstra.Graph.
//
// A Table is built once with NewTable and never mutated afterwards, so it
// can be shared across goroutines without locking.
//
// Validation:
//
//	Records are checked with go-playground/validator struct tags; failures
//	come back as *ValidationError carrying English, field-level messages
//	and matching ErrInvalid through errors.Is.
//
// Errors:
//
//	ErrInvalid          - a record (or any struct passed to Validate) failed validation.
//	ErrEmptyTable       - NewTable was given no locations.
//	ErrDuplicateName    - two locations share a name.
//	ErrUnknownLocation  - Index was asked for a name that is not in the table.
//	ErrOutOfRange       - At was given an index outside [0, Len).
package core
