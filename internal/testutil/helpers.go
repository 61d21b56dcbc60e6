// Package testutil provides reusable assertions for trajectory tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-12
	ReferenceTolerance = 1e-9
)

// AssertPointInDelta verifies that two 3-D points match component-wise.
func AssertPointInDelta(t *testing.T, expected, actual [3]float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	ok := true
	for c := range expected {
		if !assert.InDelta(t, expected[c], actual[c], tolerance,
			"component %d: %v != %v", c, expected, actual) {
			ok = false
		}
	}
	if !ok && len(msgAndArgs) > 0 {
		t.Log(msgAndArgs...)
	}
	return ok
}

// AssertPointsInDelta verifies that two point sequences match element-wise.
func AssertPointsInDelta(t *testing.T, expected, actual [][3]float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if !AssertPointInDelta(t, expected[i], actual[i], tolerance, "index", i) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no component of any point is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, points [][3]float64) bool {
	t.Helper()
	for i, p := range points {
		for c, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return assert.Fail(t, "non-finite value", "points[%d][%d] = %v", i, c, v)
			}
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertConstant verifies that every point equals the first one.
func AssertConstant(t *testing.T, points [][3]float64) bool {
	t.Helper()
	for i := 1; i < len(points); i++ {
		if !assert.Equal(t, points[0], points[i], "points[%d] differs from points[0]", i) {
			return false
		}
	}
	return true
}
