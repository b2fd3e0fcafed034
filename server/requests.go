package server

import (
	"net/http"
	"strings"
)

// FromRequest names a single location.
type FromRequest struct {
	From string `json:"from" validate:"required"`
}

// Bind trims the location name.
func (s *FromRequest) Bind(r *http.Request) error {
	s.From = strings.TrimSpace(s.From)
	return nil
}

// PathRequest names an origin and a destination.
type PathRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

// Bind trims the location names.
func (s *PathRequest) Bind(r *http.Request) error {
	s.Origin = strings.TrimSpace(s.Origin)
	s.Destination = strings.TrimSpace(s.Destination)
	return nil
}

// ChargeRequest is a single-location query with an optional charging
// amount in kWh; a missing amount is drawn at random.
type ChargeRequest struct {
	From   string `json:"from" validate:"required"`
	Amount *int   `json:"amount" validate:"omitempty,gte=0,lte=1000"`
}

// Bind trims the location name.
func (s *ChargeRequest) Bind(r *http.Request) error {
	s.From = strings.TrimSpace(s.From)
	return nil
}

// TripRequest is an origin/destination query with an optional charging
// amount in kWh; a missing amount is drawn at random.
type TripRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Amount      *int   `json:"amount" validate:"omitempty,gte=0,lte=1000"`
}

// Bind trims the location names.
func (s *TripRequest) Bind(r *http.Request) error {
	s.Origin = strings.TrimSpace(s.Origin)
	s.Destination = strings.TrimSpace(s.Destination)
	return nil
}
