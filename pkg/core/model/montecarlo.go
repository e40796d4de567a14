package model

import (
	"fmt"
	"math/rand"
	"time"
)

// MonteCarloNPV draws n independent discount rates from N(mean, std),
// computes the NPV of the schedule at each draw and returns the samples
// in draw order. Only aggregate statistics over the result are
// meaningful downstream; per-sample identity does not matter.
//
// rng controls reproducibility. Pass nil for a fresh time-seeded source
// per invocation, so two runs differ, or inject a seeded *rand.Rand for
// deterministic output.
//
// A sampled rate of exactly -1 propagates NPV's ErrDegenerateRate. With
// std == 0 every draw equals mean and the samples are all identical.
func MonteCarloNPV(cashflows []float64, mean, std float64, n int, rng *rand.Rand) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative simulation count %d", n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	samples := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		rate := mean + std*rng.NormFloat64()
		npv, err := NPV(cashflows, rate)
		if err != nil {
			return nil, fmt.Errorf("simulation %d: %w", i, err)
		}
		samples = append(samples, npv)
	}
	return samples, nil
}
