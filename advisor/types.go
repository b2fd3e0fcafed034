package advisor

import (
	"errors"
	"fmt"
)

// NoStation is the station index reported when nothing qualifies.
const NoStation = -1

// Sentinel errors returned by the advisor.
var (
	// ErrNilGraph indicates that New was given a nil graph.
	ErrNilGraph = errors.New("advisor: graph is nil")

	// ErrNilTable indicates that New was given a nil location table.
	ErrNilTable = errors.New("advisor: location table is nil")

	// ErrSizeMismatch indicates that the graph order differs from the table length.
	ErrSizeMismatch = errors.New("advisor: graph and location table sizes differ")

	// ErrNegativeAmount indicates a negative charging amount.
	ErrNegativeAmount = errors.New("advisor: charging amount must be non-negative")

	// ErrBadCostPerDistance is the panic message for a negative or NaN rate.
	ErrBadCostPerDistance = errors.New("advisor: cost per distance must be a non-negative number")

	// ErrBadRoundTripFactor is the panic message for a negative or NaN factor.
	ErrBadRoundTripFactor = errors.New("advisor: round-trip factor must be a non-negative number")

	// ErrBadFreeChargeLimit is the panic message for a negative limit.
	ErrBadFreeChargeLimit = errors.New("advisor: free charge limit must be non-negative")
)

// Quote is the cost of charging at one station.
type Quote struct {
	Station      int     `json:"station"`
	TravelCost   float64 `json:"travel_cost"`
	ChargingCost float64 `json:"charging_cost"`
}

// noQuote is the "nothing qualifies" result; both costs are zero.
var noQuote = Quote{Station: NoStation}

// Found reports whether the quote names a station.
func (q Quote) Found() bool { return q.Station != NoStation }

// Total is TravelCost + ChargingCost.
func (q Quote) Total() float64 { return q.TravelCost + q.ChargingCost }

// Route is a quote for an intermediate stop together with the travelled
// path origin → station → destination.
type Route struct {
	Quote
	Path []int `json:"path"`
}

// Strategy names the shape of a charging plan.
type Strategy int

const (
	// NoPlan means no feasible station exists for any strategy.
	NoPlan Strategy = iota

	// SingleStop charges the whole amount at one station.
	SingleStop

	// SplitCharge tops up FreeChargeLimit at the cheapest small-amount
	// station and charges the remainder at a second station.
	SplitCharge
)

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	switch s {
	case NoPlan:
		return "none"
	case SingleStop:
		return "single"
	case SplitCharge:
		return "split"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a name produced by MarshalText.
func (s *Strategy) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*s = NoPlan
	case "single":
		*s = SingleStop
	case "split":
		*s = SplitCharge
	default:
		return fmt.Errorf("advisor: unknown strategy %q", b)
	}

	return nil
}

// Stop is one charging stop of a plan.
type Stop struct {
	Station int `json:"station"`
	Amount  int `json:"amount"`
}

// Plan is the recommendation of BestChargingPlan. Stops are in travel
// order and Path runs origin → stops → destination with junction nodes
// listed once.
type Plan struct {
	Strategy     Strategy `json:"strategy"`
	Stops        []Stop   `json:"stops,omitempty"`
	TravelCost   float64  `json:"travel_cost"`
	ChargingCost float64  `json:"charging_cost"`
	Path         []int    `json:"path,omitempty"`
}

// Found reports whether the plan recommends anything.
func (p Plan) Found() bool { return p.Strategy != NoPlan }

// Total is TravelCost + ChargingCost.
func (p Plan) Total() float64 { return p.TravelCost + p.ChargingCost }
