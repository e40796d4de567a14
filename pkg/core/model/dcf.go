package model

import (
	"fmt"
	"math"
)

// DCFResult holds the enterprise-value breakdown of a DCF valuation.
type DCFResult struct {
	EnterpriseValue float64 `json:"enterprise_value"`
	PVFCF           float64 `json:"pv_fcf"`      // Present value of the explicit FCF schedule
	PVTerminal      float64 `json:"pv_terminal"` // Present value of the terminal value
	TerminalValue   float64 `json:"terminal_value"`
}

// ValueEnterprise performs a two-stage DCF over an ordered free-cash-flow
// schedule.
//
// The explicit stage discounts each flow one full period from today, so
// the schedule is 1-indexed:
//
//	PV = Σ FCF_i / (1 + r)^i    for i = 1..N
//
// The terminal stage applies Gordon growth to the final flow and
// discounts it back N periods:
//
//	TV = FCF_N × (1 + g) / (r - g)
//
// Note the asymmetry with NPV, which treats its first element as an
// undiscounted time-zero flow. The two conventions serve different
// callers and both are load-bearing.
//
// r == g makes the terminal value a division by zero and r == -1 makes
// every discount factor one; both return ErrDegenerateRate rather than
// an infinite result. No other input is rejected.
func ValueEnterprise(fcf []float64, discountRate, terminalGrowth float64) (DCFResult, error) {
	if len(fcf) == 0 {
		return DCFResult{}, fmt.Errorf("empty cash-flow schedule: nothing to value")
	}
	if discountRate == terminalGrowth {
		return DCFResult{}, fmt.Errorf("terminal value undefined: discount rate equals terminal growth (%g): %w", discountRate, ErrDegenerateRate)
	}
	if discountRate == -1 {
		return DCFResult{}, fmt.Errorf("discount rate -1 zeroes every discount factor: %w", ErrDegenerateRate)
	}

	var pvFCF float64
	for i, flow := range fcf {
		pvFCF += flow / math.Pow(1+discountRate, float64(i+1))
	}

	terminalValue := fcf[len(fcf)-1] * (1 + terminalGrowth) / (discountRate - terminalGrowth)
	pvTerminal := terminalValue / math.Pow(1+discountRate, float64(len(fcf)))

	return DCFResult{
		EnterpriseValue: pvFCF + pvTerminal,
		PVFCF:           pvFCF,
		PVTerminal:      pvTerminal,
		TerminalValue:   terminalValue,
	}, nil
}
