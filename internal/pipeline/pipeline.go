// Package pipeline implements the post-processing stages applied to
// interpolated trajectories.
//
// Stages run in a fixed order:
//
//	interpolate -> aggregate-extrema -> collapse -> clamp
//
// Interpolation happens before tracks enter this package. Extrema are always
// taken from the interpolated (pre-collapse) positions, so a clamp sees the
// same reference values no matter which tracks are collapsed.
package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory/internal/mathutil"
)

// ErrNoReference indicates that a clamp asked for an extremum no track provides.
var ErrNoReference = errors.New("clamp reference unavailable")

// Source selects the value a clamp pins an axis to.
type Source int

const (
	// SourceGlobalMin is the minimum of the axis across all floor tracks.
	SourceGlobalMin Source = iota

	// SourceSelfMin is the track's own minimum along the axis.
	SourceSelfMin

	// SourceSelfMax is the track's own maximum along the axis.
	SourceSelfMax
)

func (s Source) String() string {
	switch s {
	case SourceGlobalMin:
		return "global-min"
	case SourceSelfMin:
		return "self-min"
	case SourceSelfMax:
		return "self-max"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Clamp pins one axis of every position to reference - Offset.
type Clamp struct {
	Axis   int
	Source Source
	Offset float64
}

// Track is one entity's positions plus its post-processing rules.
type Track struct {
	Name      string
	Positions [][numAxes]float64

	// Floor tracks contribute to the global extrema.
	Floor bool

	// Collapse replaces every position with the track mean.
	Collapse bool

	Clamps []Clamp
}

// Bounds holds per-axis extrema.
type Bounds struct {
	Min [numAxes]float64
	Max [numAxes]float64
}

// Extrema is the output of the aggregate stage.
type Extrema struct {
	// Global spans every non-empty floor track. Valid only if HasGlobal.
	Global    Bounds
	HasGlobal bool

	// Self maps track name to its own bounds. Empty tracks are absent.
	Self map[string]Bounds
}

// AggregateExtrema computes per-track and cross-track bounds.
func AggregateExtrema(tracks []Track) Extrema {
	ext := Extrema{Self: make(map[string]Bounds, len(tracks))}
	for i := range ext.Global.Min {
		ext.Global.Min[i] = math.Inf(1)
		ext.Global.Max[i] = math.Inf(-1)
	}

	for _, tr := range tracks {
		lo, hi, ok := mathutil.Bounds(tr.Positions)
		if !ok {
			continue
		}
		ext.Self[tr.Name] = Bounds{Min: lo, Max: hi}
		if !tr.Floor {
			continue
		}
		ext.HasGlobal = true
		for a := range numAxes {
			ext.Global.Min[a] = min(ext.Global.Min[a], lo[a])
			ext.Global.Max[a] = max(ext.Global.Max[a], hi[a])
		}
	}
	return ext
}

// Collapse returns copies of tracks where collapsing tracks hold their mean
// at every frame. Inputs are not modified.
func Collapse(tracks []Track) []Track {
	out := make([]Track, len(tracks))
	for i, tr := range tracks {
		out[i] = tr
		out[i].Positions = make([][numAxes]float64, len(tr.Positions))
		if !tr.Collapse {
			copy(out[i].Positions, tr.Positions)
			continue
		}
		mean := mathutil.Mean(tr.Positions)
		for j := range out[i].Positions {
			out[i].Positions[j] = mean
		}
	}
	return out
}

// ApplyClamps pins axes according to each track's clamps and ext.
// Tracks are modified in place.
func ApplyClamps(tracks []Track, ext Extrema) error {
	for i := range tracks {
		tr := &tracks[i]
		if len(tr.Positions) == 0 {
			continue
		}
		for _, c := range tr.Clamps {
			if c.Axis < 0 || c.Axis >= numAxes {
				return fmt.Errorf("track %q: axis %d out of range", tr.Name, c.Axis)
			}
			ref, err := reference(tr.Name, c, ext)
			if err != nil {
				return err
			}
			v := ref - c.Offset
			for j := range tr.Positions {
				tr.Positions[j][c.Axis] = v
			}
		}
	}
	return nil
}

func reference(name string, c Clamp, ext Extrema) (float64, error) {
	switch c.Source {
	case SourceGlobalMin:
		if !ext.HasGlobal {
			return 0, fmt.Errorf("%w: track %q needs %s but no floor track has positions",
				ErrNoReference, name, c.Source)
		}
		return ext.Global.Min[c.Axis], nil
	case SourceSelfMin, SourceSelfMax:
		b, ok := ext.Self[name]
		if !ok {
			return 0, fmt.Errorf("%w: track %q has no bounds", ErrNoReference, name)
		}
		if c.Source == SourceSelfMin {
			return b.Min[c.Axis], nil
		}
		return b.Max[c.Axis], nil
	default:
		return 0, fmt.Errorf("track %q: unknown clamp source %s", name, c.Source)
	}
}

// Result is the output of Run.
type Result struct {
	Tracks  []Track
	Extrema Extrema

	// Stages lists the executed stage names in order.
	Stages []string
}

// Run executes aggregate-extrema, collapse and clamp over tracks.
// The input tracks are left untouched.
func Run(tracks []Track) (*Result, error) {
	res := &Result{Stages: make([]string, 0, 3)}

	res.Extrema = AggregateExtrema(tracks)
	res.Stages = append(res.Stages, StageAggregate)

	res.Tracks = Collapse(tracks)
	res.Stages = append(res.Stages, StageCollapse)

	if err := ApplyClamps(res.Tracks, res.Extrema); err != nil {
		return nil, fmt.Errorf("%s: %w", StageClamp, err)
	}
	res.Stages = append(res.Stages, StageClamp)

	return res, nil
}
