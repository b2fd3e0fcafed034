package server

import (
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/render"
	"github.com/katalvlaran/evcharge/advisor"
	"github.com/katalvlaran/evcharge/core"
	"github.com/katalvlaran/evcharge/dijkstra"
)

// decode binds and validates the request body into data. On failure the
// error response has already been rendered and ok is false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	if err := core.Validate(data); err != nil {
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			render.Render(w, r, ErrValidation(err, ve.Messages))
		} else {
			render.Render(w, r, ErrInvalidRequest(err))
		}
		return false
	}

	return true
}

// resolve maps location names to indices, rendering a 400 for unknown names.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request, names ...string) ([]int, bool) {
	idx := make([]int, len(names))
	for k, name := range names {
		i, err := s.adv.Table().Index(name)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return nil, false
		}
		idx[k] = i
	}

	return idx, true
}

// amount returns the requested amount or a generated one.
func (s *Server) amount(requested *int) int {
	if requested != nil {
		return *requested
	}

	return advisor.RandomAmount(s.rng)
}

// fail renders a query error: caller mistakes are 400, anything else 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, dijkstra.ErrOutOfRange) || errors.Is(err, advisor.ErrNegativeAmount) ||
		errors.Is(err, core.ErrUnknownLocation) {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	s.log.Error("query failed", "operation", op, "error", err)
	render.Render(w, r, ErrInternalServerErrorRend(errors.New("internal server error")))
}

func (s *Server) locationPtr(i int) *core.Location {
	l, err := s.adv.Table().At(i)
	if err != nil {
		return nil
	}

	return &l
}

func (s *Server) names(path []int) []string {
	out, _ := s.adv.Table().Names(path)
	return out
}

func (s *Server) quoteResponse(q advisor.Quote, amount int) *QuoteResponse {
	resp := &QuoteResponse{Found: q.Found(), Amount: amount}
	if !q.Found() {
		return resp
	}
	resp.Station = s.locationPtr(q.Station)
	resp.TravelCost = roundFloat(q.TravelCost, 2)
	resp.ChargingCost = roundFloat(q.ChargingCost, 2)
	resp.TotalCost = roundFloat(q.Total(), 2)

	return resp
}

func (s *Server) locations(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, s.adv.Table().All())
}

func (s *Server) stations(w http.ResponseWriter, r *http.Request) {
	st := s.adv.StationsByPrice()
	s.metrics.observe("stations", len(st) > 0)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &StationsResponse{Stations: st})
}

func (s *Server) distances(w http.ResponseWriter, r *http.Request) {
	data := &FromRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.From)
	if !ok {
		return
	}

	dist, err := s.adv.Graph().ShortestDistances(idx[0])
	if err != nil {
		s.fail(w, r, "distances", err)
		return
	}

	resp := &DistancesResponse{From: data.From, Distances: make([]DistanceEntry, len(dist))}
	for i, d := range dist {
		e := DistanceEntry{Location: s.names([]int{i})[0], Index: i}
		if !math.IsInf(d, 1) {
			v := d
			e.Reachable, e.Distance = true, &v
		}
		resp.Distances[i] = e
	}
	s.metrics.observe("distances", true)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	data := &PathRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.Origin, data.Destination)
	if !ok {
		return
	}

	p, err := s.adv.Graph().ShortestPath(idx[0], idx[1])
	if errors.Is(err, dijkstra.ErrNoPath) {
		s.metrics.observe("path", false)
		render.Status(r, http.StatusOK)
		render.JSON(w, r, &PathResponse{Found: false})
		return
	}
	if err != nil {
		s.fail(w, r, "path", err)
		return
	}
	cost, err := s.adv.Graph().PathCost(p)
	if err != nil {
		s.fail(w, r, "path", err)
		return
	}
	s.metrics.observe("path", true)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &PathResponse{Found: true, Path: s.names(p), Indices: p, Distance: roundFloat(cost, 2)})
}

func (s *Server) adjacent(w http.ResponseWriter, r *http.Request) {
	data := &FromRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.From)
	if !ok {
		return
	}

	adj, err := s.adv.AdjacentChargingStations(idx[0])
	if err != nil {
		s.fail(w, r, "adjacent", err)
		return
	}
	resp := &StationsResponse{Stations: make([]core.Location, 0, len(adj))}
	for _, i := range adj {
		resp.Stations = append(resp.Stations, *s.locationPtr(i))
	}
	s.metrics.observe("adjacent", len(adj) > 0)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (s *Server) cheapestAdjacent(w http.ResponseWriter, r *http.Request) {
	data := &ChargeRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.From)
	if !ok {
		return
	}

	amount := s.amount(data.Amount)
	q, err := s.adv.CheapestAdjacentStation(idx[0], amount)
	if err != nil {
		s.fail(w, r, "cheapest_adjacent", err)
		return
	}
	s.metrics.observe("cheapest_adjacent", q.Found())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, s.quoteResponse(q, amount))
}

func (s *Server) nearest(w http.ResponseWriter, r *http.Request) {
	data := &FromRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.From)
	if !ok {
		return
	}

	st, d, err := s.adv.NearestChargingStation(idx[0])
	if err != nil {
		s.fail(w, r, "nearest", err)
		return
	}
	resp := &NearestResponse{Found: st != advisor.NoStation}
	if resp.Found {
		resp.Station = s.locationPtr(st)
		resp.Distance = roundFloat(d, 2)
	}
	s.metrics.observe("nearest", resp.Found)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (s *Server) cheapestOther(w http.ResponseWriter, r *http.Request) {
	data := &ChargeRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.From)
	if !ok {
		return
	}

	amount := s.amount(data.Amount)
	q, err := s.adv.CheapestOtherStation(idx[0], amount)
	if err != nil {
		s.fail(w, r, "cheapest_other", err)
		return
	}
	s.metrics.observe("cheapest_other", q.Found())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, s.quoteResponse(q, amount))
}

func (s *Server) cheapestRoute(w http.ResponseWriter, r *http.Request) {
	data := &TripRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.Origin, data.Destination)
	if !ok {
		return
	}

	amount := s.amount(data.Amount)
	route, err := s.adv.CheapestStationOnRoute(idx[0], idx[1], amount)
	if err != nil {
		s.fail(w, r, "cheapest_route", err)
		return
	}
	resp := s.quoteResponse(route.Quote, amount)
	resp.Path = s.names(route.Path)
	s.metrics.observe("cheapest_route", route.Found())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (s *Server) bestPlan(w http.ResponseWriter, r *http.Request) {
	data := &TripRequest{}
	if !s.decode(w, r, data) {
		return
	}
	idx, ok := s.resolve(w, r, data.Origin, data.Destination)
	if !ok {
		return
	}

	amount := s.amount(data.Amount)
	plan, err := s.adv.BestChargingPlan(idx[0], idx[1], amount)
	if err != nil {
		s.fail(w, r, "best_plan", err)
		return
	}

	resp := &PlanResponse{Found: plan.Found(), Strategy: plan.Strategy, Amount: amount}
	if plan.Found() {
		for _, st := range plan.Stops {
			resp.Stops = append(resp.Stops, StopResponse{
				Station: s.names([]int{st.Station})[0],
				Index:   st.Station,
				Amount:  st.Amount,
			})
		}
		resp.TravelCost = roundFloat(plan.TravelCost, 2)
		resp.ChargingCost = roundFloat(plan.ChargingCost, 2)
		resp.TotalCost = roundFloat(plan.Total(), 2)
		resp.Path = s.names(plan.Path)
	}
	s.metrics.observe("best_plan", plan.Found())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}
