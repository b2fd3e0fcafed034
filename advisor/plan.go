package advisor

import "math"

// BestChargingPlan compares two strategies for charging amount on the way
// from origin to destination and returns the cheaper one by total cost.
//
//   - SingleStop: CheapestReachableStation(origin, destination, NoStation, amount).
//   - SplitCharge, only when amount > FreeChargeLimit: first find the
//     cheapest station F for a FreeChargeLimit top-up on the same trip,
//     then place the remaining amount−FreeChargeLimit either before F
//     (best stop on origin→F) or after F (best stop on F→destination),
//     excluding F from both sub-searches. A side is skipped when F equals
//     origin (before) or destination (after). Before wins ties with after.
//
// SingleStop wins ties with SplitCharge. When neither strategy is feasible
// the plan has Strategy NoPlan and no stops.
//
// Complexity: O(N³); distance vectors are shared across sub-searches.
func (a *Advisor) BestChargingPlan(origin, destination, amount int) (Plan, error) {
	if err := a.checkQuery("BestChargingPlan", origin, destination, NoStation, amount); err != nil {
		return Plan{}, err
	}

	c := newDistCache(a.g)
	single, err := a.singleStop(c, origin, destination, amount)
	if err != nil {
		return Plan{}, err
	}
	split, err := a.splitCharge(c, origin, destination, amount)
	if err != nil {
		return Plan{}, err
	}

	best := single
	if split.Found() && (!single.Found() || split.Total() < single.Total()) {
		best = split
	}
	if !best.Found() {
		return Plan{Strategy: NoPlan}, nil
	}

	waypoints := make([]int, 0, len(best.Stops)+2)
	waypoints = append(waypoints, origin)
	for _, st := range best.Stops {
		waypoints = append(waypoints, st.Station)
	}
	waypoints = append(waypoints, destination)
	if best.Path, err = a.joinLegs(waypoints...); err != nil {
		return Plan{}, err
	}

	return best, nil
}

// singleStop charges everything at one station.
func (a *Advisor) singleStop(c *distCache, origin, destination, amount int) (Plan, error) {
	q, err := a.cheapestReachable(c, origin, destination, NoStation, amount)
	if err != nil || !q.Found() {
		return Plan{Strategy: NoPlan}, err
	}

	return Plan{
		Strategy:     SingleStop,
		Stops:        []Stop{{Station: q.Station, Amount: amount}},
		TravelCost:   q.TravelCost,
		ChargingCost: q.ChargingCost,
	}, nil
}

// splitCharge builds the cheaper of the before/after variants of the
// two-stop plan, or NoPlan when neither applies.
func (a *Advisor) splitCharge(c *distCache, origin, destination, amount int) (Plan, error) {
	limit := a.opts.FreeChargeLimit
	if amount <= limit {
		return Plan{Strategy: NoPlan}, nil
	}

	top, err := a.cheapestReachable(c, origin, destination, NoStation, limit)
	if err != nil || !top.Found() {
		return Plan{Strategy: NoPlan}, err
	}
	f := top.Station
	topUp := top.ChargingCost
	rest := amount - limit

	before := Plan{Strategy: NoPlan}
	if f != origin {
		if before, err = a.splitSide(c, origin, f, f, destination, rest, topUp, true); err != nil {
			return Plan{}, err
		}
	}
	after := Plan{Strategy: NoPlan}
	if f != destination {
		if after, err = a.splitSide(c, f, destination, f, origin, rest, topUp, false); err != nil {
			return Plan{}, err
		}
	}

	switch {
	case before.Found() && (!after.Found() || before.Total() <= after.Total()):
		return before, nil
	case after.Found():
		return after, nil
	default:
		return Plan{Strategy: NoPlan}, nil
	}
}

// splitSide searches the best remainder stop on from→to, excluding the
// top-up station f, and adds the fixed leg between f and other (f→other
// when the remainder comes first, other→f otherwise).
func (a *Advisor) splitSide(c *distCache, from, to, f, other, rest int, topUp float64, restFirst bool) (Plan, error) {
	q, err := a.cheapestReachable(c, from, to, f, rest)
	if err != nil || !q.Found() {
		return Plan{Strategy: NoPlan}, err
	}

	var fixed float64
	if restFirst {
		fixed, err = c.dist(f, other)
	} else {
		fixed, err = c.dist(other, f)
	}
	if err != nil {
		return Plan{}, err
	}
	if math.IsInf(fixed, 1) {
		return Plan{Strategy: NoPlan}, nil
	}

	stops := []Stop{{Station: f, Amount: a.opts.FreeChargeLimit}, {Station: q.Station, Amount: rest}}
	if restFirst {
		stops[0], stops[1] = stops[1], stops[0]
	}

	return Plan{
		Strategy:     SplitCharge,
		Stops:        stops,
		TravelCost:   q.TravelCost + fixed*a.opts.CostPerDistance,
		ChargingCost: q.ChargingCost + topUp,
	}, nil
}
