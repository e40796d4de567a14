package model

import (
	"fmt"
	"math"
)

// NPV discounts an ordered cash-flow schedule at a single rate.
//
// FORMULA: NPV = Σ CF_i / (1 + r)^i   for i = 0..N-1
//
// The schedule is 0-indexed: the first element is a time-zero flow and
// is not discounted. An empty schedule degenerates to 0, which is an
// accepted result rather than an error. r == -1 is the only failure
// mode (division by zero) and returns ErrDegenerateRate.
func NPV(cashflows []float64, rate float64) (float64, error) {
	if rate == -1 {
		return 0, fmt.Errorf("discount rate -1 zeroes every discount factor: %w", ErrDegenerateRate)
	}

	var npv float64
	for i, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(i))
	}
	return npv, nil
}
