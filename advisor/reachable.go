package advisor

import (
	"fmt"
	"math"
)

// CheapestReachableStation picks the intermediate charging stop s that
// minimises
//
//	(d(origin,s) + d(s,destination)) × CostPerDistance + amount × price(s)
//
// over every eligible station except avoid (pass NoStation to exclude
// none). Stations with an unreachable leg are skipped. The result never
// names avoid; a NoStation quote means nothing qualified.
//
// Complexity: O(N³) worst case, one O(N²) distance run per distinct source.
func (a *Advisor) CheapestReachableStation(origin, destination, avoid, amount int) (Quote, error) {
	if err := a.checkQuery("CheapestReachableStation", origin, destination, avoid, amount); err != nil {
		return noQuote, err
	}

	return a.cheapestReachable(newDistCache(a.g), origin, destination, avoid, amount)
}

// CheapestOtherStation quotes a round trip from → s → from to the cheapest
// eligible station other than from itself.
func (a *Advisor) CheapestOtherStation(from, amount int) (Quote, error) {
	return a.CheapestReachableStation(from, from, from, amount)
}

// CheapestStationOnRoute is CheapestReachableStation with no avoided
// station, returning the travelled path as well.
func (a *Advisor) CheapestStationOnRoute(origin, destination, amount int) (Route, error) {
	q, err := a.CheapestReachableStation(origin, destination, NoStation, amount)
	if err != nil || !q.Found() {
		return Route{Quote: q}, err
	}

	path, err := a.joinLegs(origin, q.Station, destination)
	if err != nil {
		return Route{Quote: noQuote}, err
	}

	return Route{Quote: q, Path: path}, nil
}

// checkQuery validates the common arguments of multi-hop queries.
func (a *Advisor) checkQuery(op string, origin, destination, avoid, amount int) error {
	if err := a.checkIndex(op, origin); err != nil {
		return err
	}
	if err := a.checkIndex(op, destination); err != nil {
		return err
	}
	if avoid != NoStation {
		if err := a.checkIndex(op+" avoid", avoid); err != nil {
			return err
		}
	}

	return checkAmount(op, amount)
}

// cheapestReachable is the unchecked core of CheapestReachableStation.
func (a *Advisor) cheapestReachable(c *distCache, origin, destination, avoid, amount int) (Quote, error) {
	best := noQuote
	lowest := math.Inf(1)

	var (
		price, toS, toD, travel, charging float64
		ok                                bool
		err                               error
	)
	for s := 0; s < a.g.Order(); s++ {
		if s == avoid {
			continue
		}
		if price, ok = a.eligible(s, amount); !ok {
			continue
		}
		if toS, err = c.dist(origin, s); err != nil {
			return noQuote, fmt.Errorf("advisor: distances from %d: %w", origin, err)
		}
		if math.IsInf(toS, 1) {
			continue
		}
		if toD, err = c.dist(s, destination); err != nil {
			return noQuote, fmt.Errorf("advisor: distances from %d: %w", s, err)
		}
		if math.IsInf(toD, 1) {
			continue
		}

		travel = (toS + toD) * a.opts.CostPerDistance
		charging = float64(amount) * price
		if travel+charging < lowest {
			lowest = travel + charging
			best = Quote{Station: s, TravelCost: travel, ChargingCost: charging}
		}
	}

	return best, nil
}
