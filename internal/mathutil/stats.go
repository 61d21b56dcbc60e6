package mathutil

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-trajectory/internal/simdops"
)

// Column copies one axis of points into a new slice.
func Column(points [][NumAxes]float64, axis int) []float64 {
	col := make([]float64, len(points))
	for i, p := range points {
		col[i] = p[axis]
	}
	return col
}

// Mean returns the per-axis arithmetic mean of points.
// The mean of an empty sequence is the zero point.
func Mean(points [][NumAxes]float64) [NumAxes]float64 {
	var out [NumAxes]float64
	if len(points) == 0 {
		return out
	}
	sum := simdops.Float64Ops().Sum
	n := float64(len(points))
	for axis := range NumAxes {
		out[axis] = sum(Column(points, axis)) / n
	}
	return out
}

// Bounds returns the per-axis minimum and maximum of points.
// ok is false for an empty sequence.
func Bounds(points [][NumAxes]float64) (lo, hi [NumAxes]float64, ok bool) {
	if len(points) == 0 {
		return lo, hi, false
	}
	for axis := range NumAxes {
		col := Column(points, axis)
		lo[axis] = floats.Min(col)
		hi[axis] = floats.Max(col)
	}
	return lo, hi, true
}
