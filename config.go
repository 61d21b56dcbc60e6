package trajectory

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-trajectory/internal/bezier"
)

// Role determines how an entity's trajectory is keyframed and exported.
type Role int

const (
	// RoleObject is a scene object; its positions are exported as N x 3.
	RoleObject Role = iota

	// RoleCamera is the rendering camera. It looks at the scene target and
	// its world matrices are exported per rendered frame.
	RoleCamera

	// RoleProbe is an auxiliary camera with its own frame sequence, used to
	// export extra viewpoints without affecting the main timeline.
	RoleProbe
)

var roleNames = []string{"object", "camera", "probe"}

func (r Role) String() string                { return enumString(roleNames, int(r), "Role") }
func (r Role) MarshalText() ([]byte, error)  { return enumMarshal(roleNames, int(r), "role") }
func (r *Role) UnmarshalText(b []byte) error { return enumUnmarshal(roleNames, b, "role", (*int)(r)) }

// PathKind selects how positions are produced from times.
type PathKind int

const (
	// PathBezier runs times through the rational cubic interpolator.
	PathBezier PathKind = iota

	// PathOscillator moves one axis of a fixed base position by
	// amplitude * cos(f * x).
	PathOscillator
)

var pathNames = []string{"bezier", "oscillator"}

func (p PathKind) String() string               { return enumString(pathNames, int(p), "PathKind") }
func (p PathKind) MarshalText() ([]byte, error) { return enumMarshal(pathNames, int(p), "path") }
func (p *PathKind) UnmarshalText(b []byte) error {
	return enumUnmarshal(pathNames, b, "path", (*int)(p))
}

// Axis indexes a coordinate of a 3-D point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = []string{"x", "y", "z"}

func (a Axis) String() string                { return enumString(axisNames, int(a), "Axis") }
func (a Axis) MarshalText() ([]byte, error)  { return enumMarshal(axisNames, int(a), "axis") }
func (a *Axis) UnmarshalText(b []byte) error { return enumUnmarshal(axisNames, b, "axis", (*int)(a)) }

// ClampSource selects the reference value of a clamp.
type ClampSource int

const (
	// ClampGlobalMin uses the axis minimum across all floor entities.
	ClampGlobalMin ClampSource = iota

	// ClampSelfMin uses the entity's own minimum along the axis.
	ClampSelfMin

	// ClampSelfMax uses the entity's own maximum along the axis.
	ClampSelfMax
)

var clampSourceNames = []string{"global-min", "self-min", "self-max"}

func (s ClampSource) String() string { return enumString(clampSourceNames, int(s), "ClampSource") }
func (s ClampSource) MarshalText() ([]byte, error) {
	return enumMarshal(clampSourceNames, int(s), "clamp source")
}
func (s *ClampSource) UnmarshalText(b []byte) error {
	return enumUnmarshal(clampSourceNames, b, "clamp source", (*int)(s))
}

// Layout determines how entity frames map onto rendered frames.
type Layout int

const (
	// LayoutSequential renders frame i of every entity at frame i.
	LayoutSequential Layout = iota

	// LayoutNested renders every object frame for each camera frame, so the
	// scene has cameraFrames * objectFrames frames.
	LayoutNested
)

var layoutNames = []string{"sequential", "nested"}

func (l Layout) String() string               { return enumString(layoutNames, int(l), "Layout") }
func (l Layout) MarshalText() ([]byte, error) { return enumMarshal(layoutNames, int(l), "layout") }
func (l *Layout) UnmarshalText(b []byte) error {
	return enumUnmarshal(layoutNames, b, "layout", (*int)(l))
}

func enumString(names []string, v int, typ string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func enumMarshal(names []string, v int, kind string) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, fmt.Errorf("%w: unknown %s %d", ErrInvalidConfig, kind, v)
	}
	return []byte(names[v]), nil
}

func enumUnmarshal(names []string, b []byte, kind string, dst *int) error {
	i := slices.Index(names, string(b))
	if i < 0 {
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, kind, b)
	}
	*dst = i
	return nil
}

// ClampRule pins one axis of an entity to a reference value minus Offset.
type ClampRule struct {
	Axis   Axis        `yaml:"axis"`
	Source ClampSource `yaml:"source"`
	Offset float64     `yaml:"offset,omitempty"`
}

// Oscillator parameterizes a PathOscillator entity.
type Oscillator struct {
	Base      [3]float64 `yaml:"base"`
	Axis      Axis       `yaml:"axis"`
	Amplitude float64    `yaml:"amplitude"`
}

// EntityConfig is the static description of one animated entity.
type EntityConfig struct {
	Name string   `yaml:"name"`
	Role Role     `yaml:"role"`
	Path PathKind `yaml:"path"`

	// Handles and World are required for PathBezier.
	Handles ControlPoints  `yaml:"handles,omitempty"`
	World   WorldTransform `yaml:"world,omitempty"`

	// Oscillator is required for PathOscillator.
	Oscillator *Oscillator `yaml:"oscillator,omitempty"`

	Times TimeSpec `yaml:"times"`

	// Floor entities contribute to the shared floor minimum.
	Floor bool `yaml:"floor,omitempty"`

	// Collapse freezes the entity at its mean position.
	Collapse bool `yaml:"collapse,omitempty"`

	// Clamps are applied after Collapse.
	Clamps []ClampRule `yaml:"clamps,omitempty"`

	// Colorize emits a colour keyframe per frame with hue = time / 2.
	Colorize bool `yaml:"colorize,omitempty"`
}

// Validate checks a single entity.
func (e *EntityConfig) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: entity name is empty", ErrInvalidConfig)
	}
	if e.Role < RoleObject || e.Role > RoleProbe {
		return fmt.Errorf("%w: entity %q: unknown role %d", ErrInvalidConfig, e.Name, int(e.Role))
	}
	if err := e.Times.Validate(); err != nil {
		return fmt.Errorf("entity %q: %w", e.Name, err)
	}

	switch e.Path {
	case PathBezier:
		if err := bezier.CheckHandles(e.Handles); err != nil {
			return fmt.Errorf("%w: entity %q: %w", ErrInvalidConfig, e.Name, err)
		}
		if e.World.IsZero() {
			return fmt.Errorf("%w: entity %q: world transform is missing", ErrInvalidConfig, e.Name)
		}
		if err := bezier.CheckTransform(e.World.Matrix()); err != nil {
			return fmt.Errorf("%w: entity %q: %w", ErrInvalidConfig, e.Name, err)
		}
	case PathOscillator:
		if e.Oscillator == nil {
			return fmt.Errorf("%w: entity %q: oscillator parameters are missing", ErrInvalidConfig, e.Name)
		}
		if !validAxis(e.Oscillator.Axis) {
			return fmt.Errorf("%w: entity %q: oscillator axis %d out of range",
				ErrInvalidConfig, e.Name, int(e.Oscillator.Axis))
		}
	default:
		return fmt.Errorf("%w: entity %q: unknown path %d", ErrInvalidConfig, e.Name, int(e.Path))
	}

	for i, c := range e.Clamps {
		if !validAxis(c.Axis) {
			return fmt.Errorf("%w: entity %q: clamp %d axis %d out of range",
				ErrInvalidConfig, e.Name, i, int(c.Axis))
		}
		if c.Source < ClampGlobalMin || c.Source > ClampSelfMax {
			return fmt.Errorf("%w: entity %q: clamp %d has unknown source %d",
				ErrInvalidConfig, e.Name, i, int(c.Source))
		}
		if math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) {
			return fmt.Errorf("%w: entity %q: clamp %d offset must be finite", ErrInvalidConfig, e.Name, i)
		}
	}
	return nil
}

func validAxis(a Axis) bool {
	return a >= AxisX && a <= AxisZ
}

// SceneConfig is a named set of entities evaluated together. Post-processing
// rules that reference other entities (the floor minimum) only see entities
// of the same scene.
type SceneConfig struct {
	Name     string         `yaml:"name"`
	Layout   Layout         `yaml:"layout"`
	Entities []EntityConfig `yaml:"entities"`

	// LookAt is the point cameras and probes face.
	LookAt [3]float64 `yaml:"look_at"`

	// Up is the world up vector for cameras. Zero means +Z.
	Up [3]float64 `yaml:"up,omitempty"`

	// StaticCamera is the position of a fixed camera, if any.
	StaticCamera *[3]float64 `yaml:"static_camera,omitempty"`
}

// Validate checks the scene and every entity.
func (c *SceneConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: scene name is empty", ErrInvalidConfig)
	}
	if c.Layout != LayoutSequential && c.Layout != LayoutNested {
		return fmt.Errorf("%w: unknown layout %d", ErrInvalidConfig, int(c.Layout))
	}
	if len(c.Entities) == 0 {
		return fmt.Errorf("%w: scene %q has no entities", ErrInvalidConfig, c.Name)
	}

	seen := make(map[string]struct{}, len(c.Entities))
	var cameras, objects, floors int
	globalClamp := ""
	objectFrames := -1
	for i := range c.Entities {
		e := &c.Entities[i]
		if err := e.Validate(); err != nil {
			return err
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidConfig, e.Name)
		}
		seen[e.Name] = struct{}{}

		if e.Floor {
			floors++
		}
		if globalClamp == "" && slices.ContainsFunc(e.Clamps, func(r ClampRule) bool {
			return r.Source == ClampGlobalMin
		}) {
			globalClamp = e.Name
		}

		switch e.Role {
		case RoleCamera:
			cameras++
		case RoleObject:
			objects++
			if objectFrames < 0 {
				objectFrames = e.Times.Frames
			} else if e.Times.Frames != objectFrames {
				return fmt.Errorf("%w: object %q has %d frames, other objects have %d",
					ErrInvalidConfig, e.Name, e.Times.Frames, objectFrames)
			}
		}
	}

	if globalClamp != "" && floors == 0 {
		return fmt.Errorf("%w: entity %q clamps to %s but scene %q has no floor entity",
			ErrInvalidConfig, globalClamp, ClampGlobalMin, c.Name)
	}
	if cameras > 1 {
		return fmt.Errorf("%w: scene %q has %d cameras, at most one is allowed", ErrInvalidConfig, c.Name, cameras)
	}
	if cameras == 1 && c.StaticCamera != nil {
		return fmt.Errorf("%w: scene %q has both a moving and a static camera", ErrInvalidConfig, c.Name)
	}

	switch c.Layout {
	case LayoutNested:
		if cameras != 1 || objects == 0 {
			return fmt.Errorf("%w: nested layout needs one camera and at least one object", ErrInvalidConfig)
		}
	case LayoutSequential:
		if cam := c.camera(); cam != nil && objects > 0 && cam.Times.Frames != objectFrames {
			return fmt.Errorf("%w: sequential camera %q has %d frames, objects have %d",
				ErrInvalidConfig, cam.Name, cam.Times.Frames, objectFrames)
		}
	}
	return nil
}

func (c *SceneConfig) camera() *EntityConfig {
	for i := range c.Entities {
		if c.Entities[i].Role == RoleCamera {
			return &c.Entities[i]
		}
	}
	return nil
}

// up returns the configured up vector, defaulting to +Z.
func (c *SceneConfig) up() [3]float64 {
	if c.Up == [3]float64{} {
		return [3]float64{0, 0, 1}
	}
	return c.Up
}

// ParseSceneConfig decodes and validates a YAML scene description.
// Unknown fields are rejected.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg SceneConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSceneConfig reads a YAML scene description from path.
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return ParseSceneConfig(data)
}

// MarshalSceneConfig encodes cfg as YAML.
func MarshalSceneConfig(cfg *SceneConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
