package risk

import (
	"math"
	"sort"
)

// Summary aggregates a Monte Carlo sample set. Consumers read these
// statistics; the raw samples are only kept for histogramming.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"` // population standard deviation
	P5     float64 `json:"p5"`
	P95    float64 `json:"p95"`
}

// Summarize computes mean, population standard deviation and the 5th and
// 95th percentiles of a sample set. An empty set yields the zero Summary.
func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, s := range samples {
		d := s - mean
		sqDiff += d * d
	}
	std := math.Sqrt(sqDiff / float64(n))

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return Summary{
		Count:  n,
		Mean:   mean,
		StdDev: std,
		P5:     percentile(sorted, 5),
		P95:    percentile(sorted, 95),
	}
}

// percentile linearly interpolates between the two nearest order
// statistics. Input must be sorted and non-empty.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// HistogramBin is one bar of the NPV distribution histogram.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram buckets samples into bins of equal width spanning
// [min, max]. The top edge is inclusive so the maximum lands in the last
// bin. Degenerate input (no samples, bins < 1, or zero spread) returns
// a single bin holding everything.
func Histogram(samples []float64, bins int) []HistogramBin {
	if len(samples) == 0 {
		return nil
	}

	lo, hi := samples[0], samples[0]
	for _, s := range samples {
		lo = math.Min(lo, s)
		hi = math.Max(hi, s)
	}
	if bins < 1 || lo == hi {
		return []HistogramBin{{Low: lo, High: hi, Count: len(samples)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i] = HistogramBin{Low: lo + float64(i)*width, High: lo + float64(i+1)*width}
	}
	for _, s := range samples {
		idx := int((s - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
