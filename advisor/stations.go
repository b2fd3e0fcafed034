package advisor

import (
	"math"

	"github.com/katalvlaran/evcharge/core"
)

// CheapestAdjacentStation scans the direct neighbours of from and returns
// the eligible station with the lowest
//
//	w(from,s) × RoundTripFactor × CostPerDistance + amount × price(s).
//
// Only one-hop neighbours are considered, not full reachability. Returns
// a NoStation quote when no neighbour qualifies.
func (a *Advisor) CheapestAdjacentStation(from, amount int) (Quote, error) {
	if err := a.checkIndex("CheapestAdjacentStation", from); err != nil {
		return noQuote, err
	}
	if err := checkAmount("CheapestAdjacentStation", amount); err != nil {
		return noQuote, err
	}

	adj, err := a.g.Adjacent(from)
	if err != nil {
		return noQuote, err
	}

	best := noQuote
	lowest := math.Inf(1)
	var w, price, travel, charging float64
	var ok bool
	for _, s := range adj {
		if price, ok = a.eligible(s, amount); !ok {
			continue
		}
		w, _ = a.g.Weight(from, s)
		travel = w * a.opts.RoundTripFactor * a.opts.CostPerDistance
		charging = float64(amount) * price
		if travel+charging < lowest {
			lowest = travel + charging
			best = Quote{Station: s, TravelCost: travel, ChargingCost: charging}
		}
	}

	return best, nil
}

// AdjacentChargingStations lists the direct neighbours of from that have
// a charger, in adjacency order.
func (a *Advisor) AdjacentChargingStations(from int) ([]int, error) {
	if err := a.checkIndex("AdjacentChargingStations", from); err != nil {
		return nil, err
	}
	adj, err := a.g.Adjacent(from)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(adj))
	for _, s := range adj {
		if a.t.IsStation(s) {
			out = append(out, s)
		}
	}

	return out, nil
}

// NearestChargingStation returns the station other than from with the
// smallest shortest distance, and that distance. Returns NoStation and
// +Inf when no station is reachable.
//
// Complexity: O(N²).
func (a *Advisor) NearestChargingStation(from int) (int, float64, error) {
	if err := a.checkIndex("NearestChargingStation", from); err != nil {
		return NoStation, math.Inf(1), err
	}
	dist, err := a.g.ShortestDistances(from)
	if err != nil {
		return NoStation, math.Inf(1), err
	}

	best, minDist := NoStation, math.Inf(1)
	for s, d := range dist {
		if s == from || !a.t.IsStation(s) {
			continue
		}
		if d < minDist {
			best, minDist = s, d
		}
	}

	return best, minDist, nil
}

// StationsByPrice lists every location with a charger, cheapest first.
func (a *Advisor) StationsByPrice() []core.Location { return a.t.Stations() }
