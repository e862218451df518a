package domain

import "math"

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RoundPct converts a 0..1 ratio into a rounded integer percentage.
func RoundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}

// Mean returns the arithmetic mean of vals, or fallback if vals is empty.
func Mean(vals []float64, fallback float64) float64 {
	if len(vals) == 0 {
		return fallback
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Variance returns the population variance of vals (0 for fewer than two values).
func Variance(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := Mean(vals, 0)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals))
}

// Pearson returns the Pearson correlation coefficient of xs and ys in [-1, 1].
// Returns 0 when the series are shorter than two points, differ in length,
// or either has zero variance.
func Pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	mx, my := Mean(xs, 0), Mean(ys, 0)
	var cov, vx, vy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}
	return cov / math.Sqrt(vx*vy)
}

// WindowTrend returns mean(last window) - mean(preceding window) over vals,
// or 0 when fewer than 2*window values exist.
func WindowTrend(vals []float64, window int) float64 {
	if window <= 0 || len(vals) < 2*window {
		return 0
	}
	n := len(vals)
	recent := Mean(vals[n-window:], 0)
	prior := Mean(vals[n-2*window:n-window], 0)
	return recent - prior
}
