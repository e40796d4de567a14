package model

import (
	"math"
	"math/rand"
	"testing"
)

func TestMonteCarloNPV_ZeroStdIsDeterministic(t *testing.T) {
	flows := []float64{100, 100, 100}
	want, _ := NPV(flows, 0.1)

	samples, err := MonteCarloNPV(flows, 0.1, 0, 50, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(samples) != 50 {
		t.Fatalf("Expected 50 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if math.Abs(s-want) > 1e-9 {
			t.Errorf("Sample %d: expected %f with zero std, got %f", i, want, s)
		}
	}
}

func TestMonteCarloNPV_SeededReproducible(t *testing.T) {
	flows := []float64{250, 300, 320, 340, 360}

	a, err := MonteCarloNPV(flows, 0.1, 0.02, 200, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := MonteCarloNPV(flows, 0.1, 0.02, 200, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sample %d differs across identically-seeded runs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestMonteCarloNPV_SampleSpread(t *testing.T) {
	// With a nonzero std the draws should actually vary.
	samples, err := MonteCarloNPV([]float64{100, 100, 100}, 0.1, 0.02, 100, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	distinct := map[float64]bool{}
	for _, s := range samples {
		distinct[s] = true
	}
	if len(distinct) < 2 {
		t.Error("Expected varying samples for nonzero std")
	}
}

func TestMonteCarloNPV_Counts(t *testing.T) {
	samples, err := MonteCarloNPV([]float64{100}, 0.1, 0.02, 0, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Expected no samples for n=0, got %d", len(samples))
	}

	if _, err := MonteCarloNPV([]float64{100}, 0.1, 0.02, -1, nil); err == nil {
		t.Error("Expected error for negative simulation count")
	}
}
