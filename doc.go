// Package trajectory generates keyframed object and camera trajectories for
// procedurally built 3-D scenes.
//
// Positions come from a rational cubic Bézier curve: four homogeneous
// handles are blended with the Bernstein basis, divided by the blended w and
// mapped through a 4x4 world transform. The curve parameter for each frame is
// derived from a periodic function of the frame index, so a run is fully
// determined by its scene configuration.
//
// # Quick Start
//
// Evaluating a curve directly:
//
//	times := trajectory.PeriodicTimes(45, 3.33, trajectory.DomainHalfPi, false)
//	pos, err := trajectory.Interpolate(times, trajectory.BunnyHandles(), trajectory.BunnyWorld())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Generating and saving a complete scene:
//
//	cfg, _ := trajectory.Preset(trajectory.PresetTrioValid)
//	ds, err := trajectory.Generate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := ds.Save("output_valid"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Time Sequences
//
// [PeriodicTimes] samples |cos(f·x)| (optionally squared) on an evenly spaced
// grid over [-π/2, π/2] or [-π, π]. The result sweeps between 0 and 1 at a
// rate set by f. [OscillatorOffsets] produces amplitude·cos(f·x) for entities
// that bob along a single axis instead of following a curve.
//
// # Post-Processing
//
// Each entity selects rules in its [EntityConfig]. [Resolve] applies them in
// a fixed order:
//
//	interpolate -> aggregate-extrema -> collapse -> clamp
//
// Extrema are measured on the interpolated positions before any collapse. A
// [ClampGlobalMin] rule uses the true minimum over every floor entity of the
// scene, not just the last one evaluated.
//
// # Output
//
// [Dataset.Save] writes .npy arrays readable with numpy.load plus a
// manifest.yaml describing their shapes. Camera matrices are stored as an
// (F, 4, 4) array indexed [frame][row][column].
//
// # Thread Safety
//
// All functions are pure with respect to package state. Scene configurations
// are plain values returned fresh by [Preset], so independent runs can
// proceed concurrently.
package trajectory
