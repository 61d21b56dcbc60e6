package trajectory

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LookAtMatrix returns the world matrix of a camera at eye facing target.
//
// The camera looks down its local -Z axis with local +Y as up, so the
// returned matrix maps camera space to world space and its translation
// column equals eye. It fails with ErrInvalidInput when eye and target
// coincide or the view direction is parallel to up.
func LookAtMatrix(eye, target, up [3]float64) (mgl64.Mat4, error) {
	e, c, u := mgl64.Vec3(eye), mgl64.Vec3(target), mgl64.Vec3(up)

	forward := c.Sub(e)
	if forward.Len() < lookAtEpsilon {
		return mgl64.Mat4{}, fmt.Errorf("%w: camera at %v coincides with its target", ErrInvalidInput, eye)
	}
	if forward.Normalize().Cross(u).Len() < lookAtEpsilon {
		return mgl64.Mat4{}, fmt.Errorf("%w: view direction from %v is parallel to up %v", ErrInvalidInput, eye, up)
	}

	view := mgl64.LookAtV(e, c, u)
	return view.Inv(), nil
}

// CameraMatrices returns one look-at world matrix per position.
func CameraMatrices(positions Positions, target, up [3]float64) ([]mgl64.Mat4, error) {
	out := make([]mgl64.Mat4, len(positions))
	for i, p := range positions {
		m, err := LookAtMatrix(p, target, up)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// RowMajor converts matrices to nested row-major arrays, so element
// [i][r][c] is row r, column c of matrix i. mgl64 stores columns first.
func RowMajor(ms []mgl64.Mat4) [][homogeneousDim][homogeneousDim]float64 {
	out := make([][homogeneousDim][homogeneousDim]float64, len(ms))
	for i, m := range ms {
		for r := range homogeneousDim {
			for c := range homogeneousDim {
				out[i][r][c] = m.At(r, c)
			}
		}
	}
	return out
}
