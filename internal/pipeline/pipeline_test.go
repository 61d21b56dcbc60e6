package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-trajectory/internal/testutil"
)

const (
	axisY = 1
	axisZ = 2
)

func sampleTracks() []Track {
	return []Track{
		{
			Name:      "a",
			Positions: [][numAxes]float64{{0, 1, -1}, {2, 3, -2}, {4, 5, -3}},
			Floor:     true,
			Collapse:  true,
			Clamps: []Clamp{
				{Axis: axisZ, Source: SourceGlobalMin, Offset: 0.5},
				{Axis: axisY, Source: SourceSelfMin},
			},
		},
		{
			Name:      "b",
			Positions: [][numAxes]float64{{1, 1, -4}, {1, 2, 0}},
			Floor:     true,
			Collapse:  true,
			Clamps:    []Clamp{{Axis: axisY, Source: SourceSelfMax}},
		},
		{
			Name:      "cam",
			Positions: [][numAxes]float64{{9, 9, -100}, {8, 8, 8}},
		},
	}
}

func TestAggregateExtrema(t *testing.T) {
	ext := AggregateExtrema(sampleTracks())

	require.True(t, ext.HasGlobal)
	assert.Equal(t, [numAxes]float64{0, 1, -4}, ext.Global.Min)
	assert.Equal(t, [numAxes]float64{4, 5, 0}, ext.Global.Max)
	assert.Equal(t, [numAxes]float64{0, 1, -3}, ext.Self["a"].Min)
	assert.Equal(t, [numAxes]float64{8, 8, 8}, ext.Self["cam"].Max)
}

func TestAggregateExtrema_TrueMinimumAcrossTracks(t *testing.T) {
	// The smallest z sits in the first floor track; a later track with a
	// higher minimum must not overwrite it.
	tracks := []Track{
		{Name: "low", Positions: [][numAxes]float64{{0, 0, -5}}, Floor: true},
		{Name: "high", Positions: [][numAxes]float64{{0, 0, 2}}, Floor: true},
	}
	ext := AggregateExtrema(tracks)
	assert.Equal(t, -5.0, ext.Global.Min[axisZ])
}

func TestAggregateExtrema_NoFloor(t *testing.T) {
	ext := AggregateExtrema([]Track{{Name: "x", Positions: [][numAxes]float64{{1, 2, 3}}}})
	assert.False(t, ext.HasGlobal)
	assert.Contains(t, ext.Self, "x")
}

func TestCollapse(t *testing.T) {
	in := sampleTracks()
	out := Collapse(in)

	require.Len(t, out, 3)
	testutil.AssertConstant(t, out[0].Positions)
	testutil.AssertPointInDelta(t, [3]float64{2, 3, -2}, out[0].Positions[0], 1e-12)

	// Non-collapsing tracks pass through unchanged.
	assert.Equal(t, in[2].Positions, out[2].Positions)

	// Inputs are not modified.
	assert.Equal(t, [numAxes]float64{0, 1, -1}, in[0].Positions[0])
}

func TestRun(t *testing.T) {
	in := sampleTracks()
	res, err := Run(in)
	require.NoError(t, err)

	assert.Equal(t, []string{StageAggregate, StageCollapse, StageClamp}, res.Stages)

	a := res.Tracks[0]
	testutil.AssertConstant(t, a.Positions)
	assert.InDelta(t, 2.0, a.Positions[0][0], 1e-12)
	// y pinned to the pre-collapse minimum, z to global min minus offset.
	assert.Equal(t, 1.0, a.Positions[0][axisY])
	assert.Equal(t, -4.5, a.Positions[0][axisZ])

	b := res.Tracks[1]
	testutil.AssertConstant(t, b.Positions)
	assert.Equal(t, 2.0, b.Positions[0][axisY])
	assert.InDelta(t, -2.0, b.Positions[0][axisZ], 1e-12)

	assert.Equal(t, in[2].Positions, res.Tracks[2].Positions)
}

func TestRun_ClampErrors(t *testing.T) {
	tests := []struct {
		name   string
		tracks []Track
	}{
		{
			name: "global_without_floor",
			tracks: []Track{{
				Name:      "x",
				Positions: [][numAxes]float64{{0, 0, 0}},
				Clamps:    []Clamp{{Axis: axisZ, Source: SourceGlobalMin}},
			}},
		},
		{
			name: "axis_out_of_range",
			tracks: []Track{{
				Name:      "x",
				Positions: [][numAxes]float64{{0, 0, 0}},
				Clamps:    []Clamp{{Axis: 3, Source: SourceSelfMin}},
			}},
		},
		{
			name: "unknown_source",
			tracks: []Track{{
				Name:      "x",
				Positions: [][numAxes]float64{{0, 0, 0}},
				Clamps:    []Clamp{{Axis: 0, Source: Source(42)}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.tracks)
			require.Error(t, err)
			assert.Contains(t, err.Error(), StageClamp)
		})
	}
}

func TestRun_GlobalWithoutFloorIsNoReference(t *testing.T) {
	_, err := Run([]Track{{
		Name:      "x",
		Positions: [][numAxes]float64{{0, 0, 0}},
		Clamps:    []Clamp{{Axis: axisZ, Source: SourceGlobalMin}},
	}})
	assert.ErrorIs(t, err, ErrNoReference)
}

func TestRun_EmptyTrack(t *testing.T) {
	res, err := Run([]Track{{
		Name:     "empty",
		Collapse: true,
		Clamps:   []Clamp{{Axis: axisY, Source: SourceSelfMin}},
	}})
	require.NoError(t, err)
	assert.Empty(t, res.Tracks[0].Positions)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "global-min", SourceGlobalMin.String())
	assert.Equal(t, "self-min", SourceSelfMin.String())
	assert.Equal(t, "self-max", SourceSelfMax.String())
	assert.Equal(t, "Source(9)", Source(9).String())
}
