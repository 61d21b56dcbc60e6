// Package bezier evaluates rational cubic Bézier curves defined by four
// homogeneous handles and maps the result into world space.
package bezier

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// NumHandles is the number of control points of a cubic curve.
	NumHandles = 4

	// HomogeneousDim is the size of a homogeneous point (x, y, z, w).
	HomogeneousDim = 4

	// EuclideanDim is the size of an output point.
	EuclideanDim = 3

	// Binomial coefficient of the two inner Bernstein terms.
	bernsteinScale = 3.0

	cubeExponent = 3.0
)

// ErrInvalidInput indicates malformed or non-finite handles, a bad transform,
// a non-finite parameter or a degenerate homogeneous divisor.
var ErrInvalidInput = errors.New("invalid trajectory input")

// Handle is a homogeneous control point (x, y, z, w).
type Handle [HomogeneousDim]float64

// Basis returns the cubic Bernstein weights at t:
//
//	(1-t)³, 3(1-t)²t, 3(1-t)t², t³
//
// t is not clamped; values outside [0, 1] extrapolate the curve.
func Basis(t float64) [NumHandles]float64 {
	r := 1 - t
	return [NumHandles]float64{
		math.Pow(r, cubeExponent),
		bernsteinScale * (r * r) * t,
		bernsteinScale * r * (t * t),
		math.Pow(t, cubeExponent),
	}
}

// Blend returns the homogeneous point B(t) = Σ basis_k(t) * handles[k],
// applied to all four coordinates.
func Blend(t float64, handles []Handle) Handle {
	b := Basis(t)
	var out Handle
	for c := range HomogeneousDim {
		// Explicit conversions keep the compiler from fusing into FMA, so
		// results are identical across architectures.
		out[c] = float64(b[0]*handles[0][c]) + float64(b[1]*handles[1][c]) +
			float64(b[2]*handles[2][c]) + float64(b[3]*handles[3][c])
	}
	return out
}

// Normalize performs the perspective divide, returning a point with w = 1.
// A zero or non-finite w is rejected, as is a divide that overflows.
func Normalize(p Handle) (Handle, error) {
	w := p[HomogeneousDim-1]
	if w == 0 {
		return Handle{}, fmt.Errorf("%w: homogeneous divisor is zero", ErrInvalidInput)
	}
	if !isFinite(w) {
		return Handle{}, fmt.Errorf("%w: homogeneous divisor is %v", ErrInvalidInput, w)
	}
	var out Handle
	for c := range HomogeneousDim {
		out[c] = p[c] / w
		if !isFinite(out[c]) {
			return Handle{}, fmt.Errorf("%w: component %d is %v after divide by %v", ErrInvalidInput, c, out[c], w)
		}
	}
	return out, nil
}

// CheckHandles verifies that exactly four handles with finite components
// were provided.
func CheckHandles(handles []Handle) error {
	if len(handles) != NumHandles {
		return fmt.Errorf("%w: expected %d handles, got %d", ErrInvalidInput, NumHandles, len(handles))
	}
	for k, h := range handles {
		for c, v := range h {
			if !isFinite(v) {
				return fmt.Errorf("%w: handle %d component %d is %v", ErrInvalidInput, k, c, v)
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckTransform verifies that world is a 4x4 matrix.
func CheckTransform(world mat.Matrix) error {
	if world == nil {
		return fmt.Errorf("%w: world transform is missing", ErrInvalidInput)
	}
	r, c := world.Dims()
	if r != HomogeneousDim || c != HomogeneousDim {
		return fmt.Errorf("%w: world transform must be %dx%d, got %dx%d",
			ErrInvalidInput, HomogeneousDim, HomogeneousDim, r, c)
	}
	for i := range r {
		for j := range c {
			if v := world.At(i, j); !isFinite(v) {
				return fmt.Errorf("%w: world transform [%d][%d] is %v", ErrInvalidInput, i, j, v)
			}
		}
	}
	return nil
}

// Interpolate evaluates the curve at every value of t and returns the
// world-space positions in input order.
//
// All inputs are validated before any point is computed. The result is
// world · (B(t) / B(t).w) with the homogeneous coordinate dropped.
func Interpolate(t []float64, handles []Handle, world mat.Matrix) ([][EuclideanDim]float64, error) {
	if err := CheckHandles(handles); err != nil {
		return nil, err
	}
	if err := CheckTransform(world); err != nil {
		return nil, err
	}

	out := make([][EuclideanDim]float64, len(t))
	if len(t) == 0 {
		return out, nil
	}

	// Column i holds the normalized homogeneous point for t[i].
	points := mat.NewDense(HomogeneousDim, len(t), nil)
	for i, ti := range t {
		if !isFinite(ti) {
			return nil, fmt.Errorf("%w: t[%d] is %v", ErrInvalidInput, i, ti)
		}
		p, err := Normalize(Blend(ti, handles))
		if err != nil {
			return nil, fmt.Errorf("%w (t[%d]=%v)", err, i, ti)
		}
		for c := range HomogeneousDim {
			points.Set(c, i, p[c])
		}
	}

	var transformed mat.Dense
	transformed.Mul(world, points)

	for i := range out {
		for c := range EuclideanDim {
			out[i][c] = transformed.At(c, i)
		}
	}
	return out, nil
}
