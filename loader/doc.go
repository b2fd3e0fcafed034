// Package loader reads the two input artifacts of the advisor from text:
//
// Locations, one per line, comma separated (blank lines ignored):
//
//	name,charger,price
//	Central Library,1,0.0
//	Bus Depot,0,0
//
// charger is 1 (installed) or 0; price is the per-kWh unit price.
// Indices are assigned in line order.
//
// Weights, one matrix row per line, whitespace separated:
//
//	0  10 100
//	0  0  5
//	0  0  0
//
// A 0 cell means "no direct road". The grid must be N×N where N is the
// number of locations.
//
// Parse failures wrap ErrBadRecord and name the offending line.
package loader
