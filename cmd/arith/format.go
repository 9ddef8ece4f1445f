package main

import (
	"math"
	"strconv"
)

// intTolerance is how close a result must be to an integer to print as one.
const intTolerance = 1e-12

// format renders a result. Values within intTolerance of their truncation to
// int64 print as that integer. Everything else, including NaN, infinities, and
// values outside the int64 range, uses the shortest representation that
// round-trips.
func format(r float64) string {
	if r >= math.MinInt64 && r < -math.MinInt64 {
		n := int64(r)
		if math.Abs(r-float64(n)) < intTolerance {
			return strconv.FormatInt(n, 10)
		}
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}
