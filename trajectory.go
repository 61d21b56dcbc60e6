package trajectory

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-trajectory/internal/bezier"
)

// Common errors returned by the package.
var (
	// ErrInvalidInput indicates malformed control points, a transform of the
	// wrong shape or a zero homogeneous divisor.
	ErrInvalidInput = bezier.ErrInvalidInput

	// ErrInvalidConfig indicates an invalid scene configuration.
	ErrInvalidConfig = errors.New("invalid scene configuration")

	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Handle is a homogeneous control point (x, y, z, w). The w component need
// not be 1; it weights the handle in the rational blend.
type Handle = bezier.Handle

// ControlPoints are the four handles of a cubic rational Bézier curve.
type ControlPoints []Handle

// Positions is a sequence of world-space points, one per time value.
type Positions [][3]float64

// WorldTransform maps homogeneous curve-space points into world space.
// The zero value is unset and rejected by Interpolate.
type WorldTransform struct {
	m *mat.Dense
}

// NewWorldTransform builds a transform from row-major rows. The matrix must
// be 4x4.
func NewWorldTransform(rows [][]float64) (WorldTransform, error) {
	if len(rows) != homogeneousDim {
		return WorldTransform{}, fmt.Errorf("%w: world transform needs %d rows, got %d",
			ErrInvalidInput, homogeneousDim, len(rows))
	}
	data := make([]float64, 0, homogeneousDim*homogeneousDim)
	for i, row := range rows {
		if len(row) != homogeneousDim {
			return WorldTransform{}, fmt.Errorf("%w: world transform row %d has %d columns, want %d",
				ErrInvalidInput, i, len(row), homogeneousDim)
		}
		data = append(data, row...)
	}
	return WorldTransform{m: mat.NewDense(homogeneousDim, homogeneousDim, data)}, nil
}

// Transform builds a transform from a fixed 4x4 array.
func Transform(rows [homogeneousDim][homogeneousDim]float64) WorldTransform {
	data := make([]float64, 0, homogeneousDim*homogeneousDim)
	for _, row := range rows {
		data = append(data, row[:]...)
	}
	return WorldTransform{m: mat.NewDense(homogeneousDim, homogeneousDim, data)}
}

// IdentityTransform returns the 4x4 identity.
func IdentityTransform() WorldTransform {
	return Transform([homogeneousDim][homogeneousDim]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// IsZero reports whether the transform is unset.
func (w WorldTransform) IsZero() bool {
	return w.m == nil
}

// Matrix returns the underlying matrix, or nil if unset.
func (w WorldTransform) Matrix() mat.Matrix {
	if w.m == nil {
		return nil
	}
	return w.m
}

// Rows returns a row-major copy of the matrix.
func (w WorldTransform) Rows() [][]float64 {
	if w.m == nil {
		return nil
	}
	r, c := w.m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(make([]float64, c), i, w.m)
	}
	return rows
}

// MarshalYAML encodes the transform as a list of rows.
func (w WorldTransform) MarshalYAML() (any, error) {
	return w.Rows(), nil
}

// UnmarshalYAML decodes a list of four 4-element rows.
func (w *WorldTransform) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]float64
	if err := node.Decode(&rows); err != nil {
		return err
	}
	t, err := NewWorldTransform(rows)
	if err != nil {
		return err
	}
	*w = t
	return nil
}

// Interpolate maps every normalized time in t through the rational cubic
// curve defined by handles and then through world.
//
// For each t the four handles are blended with the cubic Bernstein basis,
// divided by the blended w, transformed by world, and reduced to 3-D. Values
// of t outside [0, 1] extrapolate. An empty t yields an empty result.
//
// It fails with ErrInvalidInput if handles does not hold exactly four points,
// world is not 4x4, or a blended w is exactly zero. No partial result is
// returned on failure.
func Interpolate(t []float64, handles ControlPoints, world WorldTransform) (Positions, error) {
	out, err := bezier.Interpolate(t, handles, world.Matrix())
	if err != nil {
		return nil, err
	}
	return Positions(out), nil
}
