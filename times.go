package trajectory

import (
	"fmt"
	"math"

	"github.com/tphakala/go-trajectory/internal/mathutil"
	"github.com/tphakala/go-trajectory/internal/simdops"
)

// Domain is the span of the frame grid that periodic functions are sampled on.
type Domain int

const (
	// DomainHalfPi spans [-π/2, π/2].
	DomainHalfPi Domain = iota

	// DomainFullPi spans [-π, π].
	DomainFullPi
)

// Bounds returns the start and end of the domain.
func (d Domain) Bounds() (lo, hi float64) {
	if d == DomainFullPi {
		return -math.Pi, math.Pi
	}
	return -math.Pi / 2, math.Pi / 2
}

func (d Domain) String() string {
	switch d {
	case DomainHalfPi:
		return "half-pi"
	case DomainFullPi:
		return "full-pi"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Domain) MarshalText() ([]byte, error) {
	if d != DomainHalfPi && d != DomainFullPi {
		return nil, fmt.Errorf("%w: unknown domain %d", ErrInvalidConfig, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Domain) UnmarshalText(text []byte) error {
	switch string(text) {
	case "half-pi", "":
		*d = DomainHalfPi
	case "full-pi":
		*d = DomainFullPi
	default:
		return fmt.Errorf("%w: unknown domain %q", ErrInvalidConfig, text)
	}
	return nil
}

// FrameGrid returns numFrames evenly spaced samples over the domain,
// endpoints included.
func FrameGrid(numFrames int, d Domain) []float64 {
	lo, hi := d.Bounds()
	return mathutil.Linspace(lo, hi, numFrames)
}

// PeriodicTimes derives a normalized time sequence from a frame count and a
// frequency:
//
//	time[i] = |cos(f * xs[i])|      or, when squared,   |cos(f * xs[i])²|
//
// where xs is FrameGrid(numFrames, d). The result sweeps between 0 and 1 and
// depends only on its arguments.
func PeriodicTimes(numFrames int, f float64, d Domain, squared bool) []float64 {
	xs := FrameGrid(numFrames, d)
	for i, x := range xs {
		c := math.Cos(x * f)
		if squared {
			c *= c
		}
		xs[i] = math.Abs(c)
	}
	return xs
}

// OscillatorOffsets returns amplitude * cos(f * xs[i]) over the frame grid.
func OscillatorOffsets(numFrames int, f, amplitude float64, d Domain) []float64 {
	xs := FrameGrid(numFrames, d)
	for i, x := range xs {
		xs[i] = math.Cos(x * f)
	}
	out := make([]float64, len(xs))
	simdops.Float64Ops().Scale(out, xs, amplitude)
	return out
}

// Tile concatenates n copies of times. Per-object time arrays are tiled once
// per camera frame so they line up with the rendered frame sequence.
func Tile(times []float64, n int) []float64 {
	return mathutil.Tile(times, n)
}

// TimeSpec describes how an entity's time sequence is derived.
type TimeSpec struct {
	Frames    int     `yaml:"frames"`
	Frequency float64 `yaml:"frequency"`
	Domain    Domain  `yaml:"domain"`
	Squared   bool    `yaml:"squared,omitempty"`
}

// Validate checks that the spec can produce a time sequence.
func (s TimeSpec) Validate() error {
	if s.Frames < 1 {
		return fmt.Errorf("%w: frames must be at least 1, got %d", ErrInvalidConfig, s.Frames)
	}
	if math.IsNaN(s.Frequency) || math.IsInf(s.Frequency, 0) {
		return fmt.Errorf("%w: frequency must be finite", ErrInvalidConfig)
	}
	if s.Domain != DomainHalfPi && s.Domain != DomainFullPi {
		return fmt.Errorf("%w: unknown domain %d", ErrInvalidConfig, int(s.Domain))
	}
	return nil
}

// Times returns the periodic time sequence for the spec.
func (s TimeSpec) Times() []float64 {
	return PeriodicTimes(s.Frames, s.Frequency, s.Domain, s.Squared)
}
