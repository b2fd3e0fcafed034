package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the location table.
var (
	// ErrInvalid indicates a record that failed struct validation.
	ErrInvalid = errors.New("core: validation failed")

	// ErrEmptyTable indicates that NewTable received no locations.
	ErrEmptyTable = errors.New("core: location table is empty")

	// ErrDuplicateName indicates two locations with the same name.
	ErrDuplicateName = errors.New("core: duplicate location name")

	// ErrUnknownLocation indicates a lookup by a name that does not exist.
	ErrUnknownLocation = errors.New("core: unknown location")

	// ErrOutOfRange indicates a location index outside [0, Len).
	ErrOutOfRange = errors.New("core: location index out of range")
)

// Location is one row of the location table.
//
// UnitPrice is the price per kWh and is meaningful only when
// ChargerInstalled is true; use Price to read it safely.
type Location struct {
	// Index is the dense identity assigned by NewTable (load order).
	Index int `json:"index"`

	// Name is unique within a Table.
	Name string `json:"name" validate:"required"`

	// ChargerInstalled marks the location as a charging candidate.
	ChargerInstalled bool `json:"charger_installed"`

	// UnitPrice is the currency cost per kWh; 0 means free of charge.
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// Price returns the usable unit price. ok is false when no charger is
// installed: such a location has no price at all, not a zero price.
func (l Location) Price() (price float64, ok bool) {
	if !l.ChargerInstalled {
		return 0, false
	}

	return l.UnitPrice, true
}

// IsFree reports whether the location charges for free.
func (l Location) IsFree() bool {
	p, ok := l.Price()

	return ok && p == 0
}

// String renders the location the way a station listing shows it:
// "free of charge", "N/A" without a charger, "$0.25/kWh" otherwise.
func (l Location) String() string {
	switch p, ok := l.Price(); {
	case !ok:
		return fmt.Sprintf("%d %s (N/A)", l.Index, l.Name)
	case p == 0:
		return fmt.Sprintf("%d %s (free of charge)", l.Index, l.Name)
	default:
		return fmt.Sprintf("%d %s ($%.2f/kWh)", l.Index, l.Name, p)
	}
}
