package math

import "math"

func Abs[T float64 | float32](val T) float64 {
	return math.Abs(float64(val))
}

// Clip limits val to [lo, hi]. If lo > hi, hi wins.
func Clip(val, lo, hi float64) float64 {
	return math.Min(math.Max(val, lo), hi)
}

// Interp linearly interpolates x over the breakpoints xp and values fp.
// Values outside the breakpoints are held at the ends.
func Interp(x float64, xp, fp []float64) float64 {
	n := min(len(xp), len(fp))
	if n == 0 {
		return 0
	}
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[n-1] {
		return fp[n-1]
	}
	for i := 1; i < n; i++ {
		if x < xp[i] {
			span := xp[i] - xp[i-1]
			if span == 0 {
				return fp[i]
			}
			t := (x - xp[i-1]) / span
			return fp[i-1] + t*(fp[i]-fp[i-1])
		}
	}
	return fp[n-1]
}
