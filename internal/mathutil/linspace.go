// Package mathutil provides the array helpers shared by the trajectory
// packages: numpy-compatible spacing and per-axis reductions.
package mathutil

import (
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values over [start, stop], matching
// numpy.linspace with endpoint=True. The last value is exactly stop.
//
// n == 0 yields an empty slice; n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n < minSpanPoints {
		return []float64{start}
	}
	dst := floats.Span(make([]float64, n), start, stop)
	dst[n-1] = stop
	return dst
}

// Tile concatenates n copies of values.
func Tile(values []float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, 0, len(values)*n)
	for range n {
		out = append(out, values...)
	}
	return out
}

// Repeat repeats each element of values n times consecutively.
func Repeat(values []float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, 0, len(values)*n)
	for _, v := range values {
		for range n {
			out = append(out, v)
		}
	}
	return out
}
