package bezier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const testTolerance = 1e-12

func identity() *mat.Dense {
	return mat.NewDense(HomogeneousDim, HomogeneousDim, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

func unitHandles() []Handle {
	return []Handle{
		{0, 0, 0, 1},
		{1, 2, 0, 1},
		{3, 2, 1, 1},
		{4, 0, 2, 1},
	}
}

func TestBasis_PartitionOfUnity(t *testing.T) {
	for _, tv := range []float64{-1, 0, 0.1, 0.25, 0.5, 0.9, 1, 2} {
		b := Basis(tv)
		assert.InDelta(t, 1.0, b[0]+b[1]+b[2]+b[3], testTolerance, "t=%v", tv)
	}
}

func TestBasis_Endpoints(t *testing.T) {
	assert.Equal(t, [NumHandles]float64{1, 0, 0, 0}, Basis(0))
	assert.Equal(t, [NumHandles]float64{0, 0, 0, 1}, Basis(1))
}

func TestBlend_Midpoint(t *testing.T) {
	h := unitHandles()
	got := Blend(0.5, h)

	// Weights at t=0.5 are 1/8, 3/8, 3/8, 1/8.
	want := Handle{
		0.125*0 + 0.375*1 + 0.375*3 + 0.125*4,
		0.125*0 + 0.375*2 + 0.375*2 + 0.125*0,
		0.125*0 + 0.375*0 + 0.375*1 + 0.125*2,
		1,
	}
	for c := range HomogeneousDim {
		assert.InDelta(t, want[c], got[c], testTolerance, "coordinate %d", c)
	}
}

func TestNormalize(t *testing.T) {
	p, err := Normalize(Handle{2, 4, 6, 2})
	require.NoError(t, err)
	assert.Equal(t, Handle{1, 2, 3, 1}, p)

	_, err = Normalize(Handle{1, 1, 1, 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterpolate_Shape(t *testing.T) {
	ts := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	out, err := Interpolate(ts, unitHandles(), identity())
	require.NoError(t, err)
	assert.Len(t, out, len(ts))
}

func TestInterpolate_Empty(t *testing.T) {
	out, err := Interpolate(nil, unitHandles(), identity())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInterpolate_Translation(t *testing.T) {
	world := identity()
	world.Set(0, 3, 10)
	world.Set(1, 3, -5)

	out, err := Interpolate([]float64{0, 1}, unitHandles(), world)
	require.NoError(t, err)
	assert.Equal(t, [EuclideanDim]float64{10, -5, 0}, out[0])
	assert.Equal(t, [EuclideanDim]float64{14, -5, 2}, out[1])
}

func TestInterpolate_RationalWeights(t *testing.T) {
	// Scaling a handle uniformly (including w) moves where the curve is at a
	// given t but never its endpoints.
	h := unitHandles()
	h[1] = Handle{2, 4, 0, 2}

	out, err := Interpolate([]float64{0, 1}, h, identity())
	require.NoError(t, err)
	assert.Equal(t, [EuclideanDim]float64{0, 0, 0}, out[0])
	assert.Equal(t, [EuclideanDim]float64{4, 0, 2}, out[1])

	mid, err := Interpolate([]float64{0.5}, h, identity())
	require.NoError(t, err)
	plain, err := Interpolate([]float64{0.5}, unitHandles(), identity())
	require.NoError(t, err)
	assert.NotEqual(t, plain[0], mid[0])
}

func TestInterpolate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		t       []float64
		handles []Handle
		world   mat.Matrix
	}{
		{"three_handles", []float64{0.5}, unitHandles()[:3], identity()},
		{"five_handles", []float64{0.5}, append(unitHandles(), Handle{0, 0, 0, 1}), identity()},
		{"nil_world", []float64{0.5}, unitHandles(), nil},
		{"world_3x4", []float64{0.5}, unitHandles(), mat.NewDense(3, 4, nil)},
		{"world_4x3", []float64{0.5}, unitHandles(), mat.NewDense(4, 3, nil)},
		{"zero_w", []float64{0.5}, []Handle{{0, 0, 0, 0}, {1, 0, 0, 0}, {2, 0, 0, 0}, {3, 0, 0, 0}}, identity()},
		{"empty_t_bad_handles", nil, unitHandles()[:2], identity()},
		{"nan_t", []float64{0, math.NaN()}, unitHandles(), identity()},
		{"inf_t", []float64{math.Inf(1)}, unitHandles(), identity()},
		{"neg_inf_t", []float64{math.Inf(-1)}, unitHandles(), identity()},
		{"inf_w", []float64{0.5}, []Handle{{0, 0, 0, 1}, {1, 0, 0, 1}, {2, 0, 0, 1}, {3, 0, 0, math.Inf(1)}}, identity()},
		{"nan_x", []float64{0.5}, []Handle{{math.NaN(), 0, 0, 1}, {1, 0, 0, 1}, {2, 0, 0, 1}, {3, 0, 0, 1}}, identity()},
		{"inf_handle_empty_t", nil, []Handle{{0, 0, 0, 1}, {1, 0, 0, 1}, {2, math.Inf(-1), 0, 1}, {3, 0, 0, 1}}, identity()},
		{"nan_world", []float64{0.5}, unitHandles(), mat.NewDense(4, 4, []float64{
			1, 0, 0, 0,
			0, 1, 0, math.NaN(),
			0, 0, 1, 0,
			0, 0, 0, 1,
		})},
		{"overflowing_divide", []float64{0}, []Handle{{math.MaxFloat64, 0, 0, 1e-300}, {1, 0, 0, 1}, {2, 0, 0, 1}, {3, 0, 0, 1}}, identity()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Interpolate(tt.t, tt.handles, tt.world)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Nil(t, out)
		})
	}
}

func TestNormalize_NonFinite(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Normalize(Handle{1, 2, 3, w})
		require.ErrorIs(t, err, ErrInvalidInput, "w=%v", w)
	}
}

func TestInterpolate_ZeroDivisorOnlyAtSomeT(t *testing.T) {
	// w blends to 1-2t, which is zero exactly at t=0.5.
	h := []Handle{
		{0, 0, 0, 1},
		{0, 0, 0, 1.0 / 3},
		{0, 0, 0, -1.0 / 3},
		{0, 0, 0, -1},
	}
	_, err := Interpolate([]float64{0, 0.25}, h, identity())
	require.NoError(t, err)

	_, err = Interpolate([]float64{0, 0.25, 0.5}, h, identity())
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "t[2]")
}

func BenchmarkInterpolate(b *testing.B) {
	ts := make([]float64, 1024)
	for i := range ts {
		ts[i] = float64(i) / float64(len(ts)-1)
	}
	h := unitHandles()
	w := identity()

	b.ResetTimer()
	for range b.N {
		_, _ = Interpolate(ts, h, w)
	}
}
