package common

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1 for negative values, 1 for positive values, and 0 for zero.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToward moves v toward target by at most maxDelta without overshooting.
func MoveToward(v, target, maxDelta float64) float64 {
	d := target - v
	if d > maxDelta {
		return v + maxDelta
	}
	if d < -maxDelta {
		return v - maxDelta
	}
	return target
}
