package sdf

import "github.com/chewxy/math32"

// inf32 is a reusable positive float32 infinity, used as the initial
// "nothing found yet" sentinel in distance accumulation.
var inf32 = math32.Inf(1)

// sqrtf, absf, floorToInt and ceilToInt wrap github.com/chewxy/math32,
// and minf, maxf, clampf and signf are plain float32 comparisons, so the
// rest of the package never has to round-trip through float64.

func sqrtf(x float32) float32 { return math32.Sqrt(x) }

func absf(x float32) float32 { return math32.Abs(x) }

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min3f(a, b, c float32) float32 {
	return minf(minf(a, b), c)
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func signf(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func floorToInt(x float32) int {
	return int(math32.Floor(x))
}

func ceilToInt(x float32) int {
	return int(math32.Ceil(x))
}
