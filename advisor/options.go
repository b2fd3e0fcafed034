package advisor

import "math"

// Options holds the cost model parameters.
//
// CostPerDistance  – currency per distance unit travelled. Default 0.1.
// RoundTripFactor  – multiplier for trips to an adjacent station and back. Default 2.
// FreeChargeLimit  – largest amount for which a free station is eligible,
//
//	and the top-up size of a split-charge plan. Default 25.
type Options struct {
	CostPerDistance float64
	RoundTripFactor float64
	FreeChargeLimit int
}

// Option represents a functional option for configuring an Advisor.
type Option func(*Options)

// DefaultOptions returns the standard cost model.
func DefaultOptions() Options {
	return Options{
		CostPerDistance: 0.1,
		RoundTripFactor: 2,
		FreeChargeLimit: 25,
	}
}

// WithCostPerDistance sets the per-distance-unit travel rate.
// Panics on a negative or NaN rate.
func WithCostPerDistance(rate float64) Option {
	return func(o *Options) {
		if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			panic(ErrBadCostPerDistance.Error())
		}
		o.CostPerDistance = rate
	}
}

// WithRoundTripFactor sets the multiplier applied to adjacent-station trips.
// Panics on a negative or NaN factor.
func WithRoundTripFactor(f float64) Option {
	return func(o *Options) {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			panic(ErrBadRoundTripFactor.Error())
		}
		o.RoundTripFactor = f
	}
}

// WithFreeChargeLimit sets the free-station eligibility limit.
// Panics on a negative limit.
func WithFreeChargeLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadFreeChargeLimit.Error())
		}
		o.FreeChargeLimit = limit
	}
}
