// Package evcharge is an electric-vehicle charging advisor built on a
// dense, index-addressed road graph.
//
// Given a table of locations (some with chargers and a per-kWh price) and
// a square matrix of directed road weights, it answers:
//
//   - shortest distances from one location to all others, and the route
//     between two locations;
//   - the cheapest adjacent, nearest, or cheapest reachable charging
//     station under a travel-plus-energy cost model;
//   - the best charging plan for a trip, comparing a single stop with a
//     split charge (free top-up plus a paid remainder).
//
// Layout:
//
//	matrix/       dense float64 storage and weight-matrix validation
//	dijkstra/     the graph engine: O(N²) Dijkstra and path reconstruction
//	core/         Location and the immutable location Table
//	advisor/      the cost model and every charging query
//	loader/       text readers for the two input files
//	config/       process settings (defaults, .env, environment, flags)
//	server/       HTTP API with prometheus metrics
//	cmd/evcharge/ the serve / query binary
//
// Quick start:
//
//	tab, g, err := loader.Load("Locations.txt", "Weights.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a, _ := advisor.New(g, tab)
//	plan, _ := a.BestChargingPlan(0, 4, 40)
//	fmt.Println(plan.Strategy, plan.Stops, plan.Total())
//
// Every type is immutable after construction and safe for concurrent
// readers; each query allocates its own scratch state.
package evcharge
