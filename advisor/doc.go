// Package advisor turns shortest distances into money: it ranks charging
// stations by travel cost plus energy cost and composes two-stop
// (split-charge) plans.
//
// Cost model:
//
//	travel   = distance × CostPerDistance          (× RoundTripFactor for adjacent stops)
//	charging = amount   × unit price of the station
//
// Eligibility filter:
//
//	A station is a candidate only if its unit price is positive or the
//	requested amount is at most FreeChargeLimit. Free stations therefore
//	compete only for small top-ups; for larger amounts a priced station
//	may still win on total cost.
//
// Tie-breaking:
//
//	Candidates are scanned in ascending location index and only a strictly
//	cheaper candidate replaces the current best, so the lowest index wins
//	ties. The same holds for NearestChargingStation.
//
// Results versus errors:
//
//   - "No feasible station" is a normal result: Quote.Station == NoStation,
//     Plan.Strategy == NoPlan. It is never returned as an error.
//   - Invalid location indices fail with an error matching
//     dijkstra.ErrOutOfRange; a negative amount fails with ErrNegativeAmount.
//
// Complexity:
//
//   - CheapestAdjacentStation:  O(deg(from)).
//   - NearestChargingStation:   O(N²).
//   - CheapestReachableStation: O(N³) worst case; one distance vector per
//     distinct source is computed and cached for the duration of the query.
//   - BestChargingPlan:         O(N³), sharing the cache across sub-queries.
//
// An Advisor is immutable; every method may be called from many goroutines.
//
// Example usage:
//
//	a, err := advisor.New(g, table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan, err := a.BestChargingPlan(origin, destination, 40)
package advisor
