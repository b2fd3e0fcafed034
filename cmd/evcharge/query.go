package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/evcharge/advisor"
	"github.com/katalvlaran/evcharge/core"
	"github.com/katalvlaran/evcharge/dijkstra"
	"golang.org/x/exp/rand"
)

// queryArity is the number of location names each operation takes.
var queryArity = map[string]int{
	"locations":         0,
	"stations":          0,
	"distances":         1,
	"path":              2,
	"adjacent":          1,
	"cheapest-adjacent": 1,
	"nearest":           1,
	"cheapest-other":    1,
	"cheapest-route":    2,
	"best-plan":         2,
}

// takesAmount lists operations that accept a trailing kWh amount.
var takesAmount = map[string]bool{
	"cheapest-adjacent": true,
	"cheapest-other":    true,
	"cheapest-route":    true,
	"best-plan":         true,
}

// runQuery answers one operation and writes plain text to w.
func runQuery(w io.Writer, a *advisor.Advisor, rng *rand.Rand, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("query needs an operation: %w", errUsage)
	}
	op, rest := args[0], args[1:]
	n, ok := queryArity[op]
	if !ok {
		return fmt.Errorf("unknown operation %q: %w", op, errUsage)
	}
	if len(rest) < n || len(rest) > n+1 || (len(rest) == n+1 && !takesAmount[op]) {
		return fmt.Errorf("%s takes %d location name(s): %w", op, n, errUsage)
	}

	tab := a.Table()
	idx := make([]int, n)
	for k := 0; k < n; k++ {
		i, err := tab.Index(rest[k])
		if err != nil {
			return err
		}
		idx[k] = i
	}

	amount := 0
	if takesAmount[op] {
		if len(rest) == n+1 {
			v, err := strconv.Atoi(rest[n])
			if err != nil {
				return fmt.Errorf("amount %q: %w", rest[n], errUsage)
			}
			amount = v
		} else {
			amount = advisor.RandomAmount(rng)
		}
		fmt.Fprintf(w, "Charging amount: %d kWh\n", amount)
	}

	switch op {
	case "locations":
		return printLocations(w, tab.All())
	case "stations":
		return printLocations(w, a.StationsByPrice())
	case "distances":
		dist, err := a.Graph().ShortestDistances(idx[0])
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, d := range dist {
			l, _ := tab.At(i)
			if math.IsInf(d, 1) {
				fmt.Fprintf(tw, "%s\tunreachable\n", l.Name)
				continue
			}
			fmt.Fprintf(tw, "%s\t%g\n", l.Name, d)
		}
		return tw.Flush()
	case "path":
		p, err := a.Graph().ShortestPath(idx[0], idx[1])
		if errors.Is(err, dijkstra.ErrNoPath) {
			fmt.Fprintf(w, "No path from %s to %s.\n", rest[0], rest[1])
			return nil
		}
		if err != nil {
			return err
		}
		cost, err := a.Graph().PathCost(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Path: %s\nDistance: %g\n", joinNames(tab, p), cost)
	case "adjacent":
		adj, err := a.AdjacentChargingStations(idx[0])
		if err != nil {
			return err
		}
		if len(adj) == 0 {
			fmt.Fprintln(w, "No charging station adjacent.")
			return nil
		}
		fmt.Fprintf(w, "Adjacent charging stations: %s\n", joinNames(tab, adj))
	case "cheapest-adjacent":
		q, err := a.CheapestAdjacentStation(idx[0], amount)
		if err != nil {
			return err
		}
		printQuote(w, tab, q)
	case "nearest":
		s, d, err := a.NearestChargingStation(idx[0])
		if err != nil {
			return err
		}
		if s == advisor.NoStation {
			fmt.Fprintln(w, "No charging station reachable.")
			return nil
		}
		l, _ := tab.At(s)
		fmt.Fprintf(w, "Nearest charging station: %s\nDistance: %g\n", l.Name, d)
	case "cheapest-other":
		q, err := a.CheapestOtherStation(idx[0], amount)
		if err != nil {
			return err
		}
		printQuote(w, tab, q)
	case "cheapest-route":
		r, err := a.CheapestStationOnRoute(idx[0], idx[1], amount)
		if err != nil {
			return err
		}
		printQuote(w, tab, r.Quote)
		if r.Found() {
			fmt.Fprintf(w, "Travel path: %s\n", joinNames(tab, r.Path))
		}
	case "best-plan":
		p, err := a.BestChargingPlan(idx[0], idx[1], amount)
		if err != nil {
			return err
		}
		printPlan(w, tab, p)
	}

	return nil
}

func printLocations(w io.Writer, locs []core.Location) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Index\tName\tCharger\tPrice")
	for _, l := range locs {
		charger, price := "no", "N/A"
		if p, ok := l.Price(); ok {
			charger = "yes"
			price = "free"
			if p > 0 {
				price = fmt.Sprintf("$%.2f/kWh", p)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Index, l.Name, charger, price)
	}

	return tw.Flush()
}

func printQuote(w io.Writer, tab *core.Table, q advisor.Quote) {
	if !q.Found() {
		fmt.Fprintln(w, "No feasible charging station.")
		return
	}
	l, _ := tab.At(q.Station)
	fmt.Fprintf(w, "Charge at: %s\nTravel cost: $%.2f\nCharging cost: $%.2f\nTotal cost: $%.2f\n",
		l.Name, q.TravelCost, q.ChargingCost, q.Total())
}

func printPlan(w io.Writer, tab *core.Table, p advisor.Plan) {
	if !p.Found() {
		fmt.Fprintln(w, "No feasible charging plan.")
		return
	}
	fmt.Fprintf(w, "Strategy: %s\n", p.Strategy)
	for _, st := range p.Stops {
		l, _ := tab.At(st.Station)
		fmt.Fprintf(w, "Charge %d kWh at %s\n", st.Amount, l.Name)
	}
	fmt.Fprintf(w, "Travel cost: $%.2f\nCharging cost: $%.2f\nTotal cost: $%.2f\nTravel path: %s\n",
		p.TravelCost, p.ChargingCost, p.Total(), joinNames(tab, p.Path))
}

func joinNames(tab *core.Table, path []int) string {
	names, err := tab.Names(path)
	if err != nil {
		return err.Error()
	}

	return strings.Join(names, " -> ")
}
