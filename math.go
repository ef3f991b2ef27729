package ranger

import "math"

// lerp returns the linear interpolation between a and b at factor f.
// The form a*(1-f) + b*f is exact at both ends (f=0 and f=1).
func lerp(a, b, f float64) float64 {
	return a*(1-f) + b*f
}

// clamp restricts v to the closed interval bounded by a and b, in either order.
func clamp(v, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// finite returns whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validStep returns whether dt may be used as a time step.
func validStep(dt float64) bool {
	return finite(dt) && dt > 0
}

// maxSteps bounds the number of steps of a single run.
const maxSteps = math.MaxInt32

// stepCount returns the number of t values in [0, total) at increment dt, and
// false if that number is not finite or exceeds maxSteps.
func stepCount(dt, total float64) (int, bool) {
	if total <= 0 {
		return 0, true
	}
	n := math.Ceil(total / dt)
	if !finite(n) || n > maxSteps {
		return 0, false
	}
	return int(n), true
}
