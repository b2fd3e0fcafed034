package server

import (
	"math"

	"github.com/katalvlaran/evcharge/advisor"
	"github.com/katalvlaran/evcharge/core"
)

// DistanceEntry is one element of a distance vector. Distance is omitted
// for unreachable locations.
type DistanceEntry struct {
	Location  string   `json:"location"`
	Index     int      `json:"index"`
	Reachable bool     `json:"reachable"`
	Distance  *float64 `json:"distance,omitempty"`
}

// DistancesResponse answers /distances.
type DistancesResponse struct {
	From      string          `json:"from"`
	Distances []DistanceEntry `json:"distances"`
}

// PathResponse answers /path.
type PathResponse struct {
	Found    bool     `json:"found"`
	Path     []string `json:"path,omitempty"`
	Indices  []int    `json:"indices,omitempty"`
	Distance float64  `json:"distance,omitempty"`
}

// StationsResponse answers /adjacent and /stations.
type StationsResponse struct {
	Stations []core.Location `json:"stations"`
}

// NearestResponse answers /nearest.
type NearestResponse struct {
	Found    bool           `json:"found"`
	Station  *core.Location `json:"station,omitempty"`
	Distance float64        `json:"distance,omitempty"`
}

// QuoteResponse answers the single-station cost queries.
type QuoteResponse struct {
	Found        bool           `json:"found"`
	Amount       int            `json:"amount"`
	Station      *core.Location `json:"station,omitempty"`
	TravelCost   float64        `json:"travel_cost"`
	ChargingCost float64        `json:"charging_cost"`
	TotalCost    float64        `json:"total_cost"`
	Path         []string       `json:"path,omitempty"`
}

// StopResponse is one charging stop of a plan.
type StopResponse struct {
	Station string `json:"station"`
	Index   int    `json:"index"`
	Amount  int    `json:"amount"`
}

// PlanResponse answers /best-plan.
type PlanResponse struct {
	Found        bool             `json:"found"`
	Strategy     advisor.Strategy `json:"strategy"`
	Amount       int              `json:"amount"`
	Stops        []StopResponse   `json:"stops,omitempty"`
	TravelCost   float64          `json:"travel_cost"`
	ChargingCost float64          `json:"charging_cost"`
	TotalCost    float64          `json:"total_cost"`
	Path         []string         `json:"path,omitempty"`
}

func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
