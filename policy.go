package trajectory

import (
	"fmt"

	"github.com/tphakala/go-trajectory/internal/pipeline"
)

// Trajectory is the resolved motion of one entity.
type Trajectory struct {
	Name string
	Role Role

	// Times is the normalized time sequence the positions were derived from.
	Times []float64

	// Raw holds the positions straight out of the interpolator.
	Raw Positions

	// Positions holds the post-processed positions.
	Positions Positions
}

// Evaluate derives an entity's times and raw positions. It does not apply
// post-processing.
func Evaluate(e *EntityConfig) (Trajectory, error) {
	tr := Trajectory{Name: e.Name, Role: e.Role}

	switch e.Path {
	case PathBezier:
		tr.Times = e.Times.Times()
		raw, err := Interpolate(tr.Times, e.Handles, e.World)
		if err != nil {
			return Trajectory{}, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		tr.Raw = raw

	case PathOscillator:
		if e.Oscillator == nil {
			return Trajectory{}, fmt.Errorf("%w: entity %q: oscillator parameters are missing", ErrInvalidConfig, e.Name)
		}
		tr.Times = OscillatorOffsets(e.Times.Frames, e.Times.Frequency, e.Oscillator.Amplitude, e.Times.Domain)
		tr.Raw = Oscillate(e.Oscillator.Base, e.Oscillator.Axis, tr.Times)

	default:
		return Trajectory{}, fmt.Errorf("%w: entity %q: unknown path %d", ErrInvalidConfig, e.Name, int(e.Path))
	}
	return tr, nil
}

// Oscillate returns base with the given axis replaced by each offset.
func Oscillate(base [3]float64, axis Axis, offsets []float64) Positions {
	out := make(Positions, len(offsets))
	for i, v := range offsets {
		out[i] = base
		out[i][axis] = v
	}
	return out
}

// Resolve validates cfg and runs every entity through the named stages
//
//	interpolate -> aggregate-extrema -> collapse -> clamp
//
// Trajectories are returned in the order of cfg.Entities.
func Resolve(cfg *SceneConfig) ([]Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]Trajectory, len(cfg.Entities))
	tracks := make([]pipeline.Track, len(cfg.Entities))
	for i := range cfg.Entities {
		e := &cfg.Entities[i]
		tr, err := Evaluate(e)
		if err != nil {
			return nil, err
		}
		out[i] = tr
		tracks[i] = pipeline.Track{
			Name:      e.Name,
			Positions: tr.Raw,
			Floor:     e.Floor,
			Collapse:  e.Collapse,
			Clamps:    toPipelineClamps(e.Clamps),
		}
	}

	res, err := pipeline.Run(tracks)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
	}
	for i := range out {
		out[i].Positions = res.Tracks[i].Positions
	}
	return out, nil
}

func toPipelineClamps(rules []ClampRule) []pipeline.Clamp {
	if len(rules) == 0 {
		return nil
	}
	out := make([]pipeline.Clamp, len(rules))
	for i, r := range rules {
		out[i] = pipeline.Clamp{
			Axis:   int(r.Axis),
			Source: toPipelineSource(r.Source),
			Offset: r.Offset,
		}
	}
	return out
}

func toPipelineSource(s ClampSource) pipeline.Source {
	switch s {
	case ClampSelfMin:
		return pipeline.SourceSelfMin
	case ClampSelfMax:
		return pipeline.SourceSelfMax
	default:
		return pipeline.SourceGlobalMin
	}
}
