// Package scale computes the per-batch bounds used to map raw magnitudes to
// visual proportions: bar widths, marker radii, heatmap intensity.
package scale

// Bound returns the largest value in the batch, floored at 1 so proportional
// division is always safe even when every value is zero. Bounds are derived
// per render call, never cached, so a filtered subset rescales everything.
func Bound(values []float64) float64 {
	max := 1.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

// Proportion returns v/bound clamped to [0,1].
func Proportion(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	p := v / bound
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Lerp interpolates linearly between lo and hi by t in [0,1].
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
