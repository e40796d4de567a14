package model

import (
	"errors"
	"math"
	"testing"
)

func TestNPV_HandComputed(t *testing.T) {
	// 0-indexed: the first flow is at time zero and not discounted.
	// NPV = 100 + 100/1.1 + 100/1.21 = 273.5537...
	expected := 100 + 100/1.1 + 100/1.21

	npv, err := NPV([]float64{100, 100, 100}, 0.1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(npv-expected) > 0.0001 {
		t.Errorf("NPV expected %f, got %f", expected, npv)
	}
}

func TestNPV_ZeroRateIsSum(t *testing.T) {
	schedules := [][]float64{
		{100, 100, 100},
		{1, -2, 3.5, 0},
		{-50},
	}
	for _, s := range schedules {
		var sum float64
		for _, cf := range s {
			sum += cf
		}
		npv, err := NPV(s, 0)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if math.Abs(npv-sum) > 1e-9 {
			t.Errorf("NPV at rate 0 expected sum %f, got %f", sum, npv)
		}
	}
}

func TestNPV_EmptyScheduleIsZero(t *testing.T) {
	// Degenerate but accepted: the sum over zero elements is 0.
	npv, err := NPV(nil, 0.1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if npv != 0 {
		t.Errorf("Expected 0 for empty schedule, got %f", npv)
	}
}

func TestNPV_DegenerateRate(t *testing.T) {
	_, err := NPV([]float64{100, 100}, -1)
	if !errors.Is(err, ErrDegenerateRate) {
		t.Errorf("Expected ErrDegenerateRate for r == -1, got %v", err)
	}
}

func TestNPV_IndexingAsymmetryWithDCF(t *testing.T) {
	// NPV leaves the first flow undiscounted; the DCF explicit stage
	// discounts it one period. Both conventions are load-bearing for
	// their respective callers, so pin the difference here.
	flows := []float64{100, 100, 100}
	rate := 0.1

	npv, err := NPV(flows, rate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	dcf, err := ValueEnterprise(flows, rate, 0.03)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// PV_dcf = NPV / 1.1 exactly, since every term shifts one period.
	if math.Abs(dcf.PVFCF-npv/1.1) > 0.0001 {
		t.Errorf("Expected DCF explicit PV %f (= NPV/1.1), got %f", npv/1.1, dcf.PVFCF)
	}
}
