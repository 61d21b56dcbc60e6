package trajectory

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tphakala/go-trajectory/internal/mathutil"
)

// Keyframe assigns an entity's state to a rendered frame. Frames are
// 1-based and contiguous.
type Keyframe struct {
	Frame    int
	Entity   string
	Position [3]float64

	// Color is set for colorized entities.
	Color *colorful.Color

	// Camera is the look-at world matrix for cameras and probes.
	Camera *mgl64.Mat4
}

// Dataset is the full output of one scene run.
type Dataset struct {
	Scene  string
	Layout Layout

	// Frames is the number of frames on the main timeline.
	Frames int

	Trajectories []Trajectory

	// FrameTimes maps entity name to its times aligned with the main
	// timeline (probes keep their own sequence).
	FrameTimes map[string][]float64

	// Cameras maps camera and probe names to one world matrix per frame of
	// their timeline.
	Cameras map[string][]mgl64.Mat4

	// Keyframes lists main-timeline keyframes in frame order, followed by
	// probe keyframes.
	Keyframes []Keyframe

	StaticCamera *[3]float64
}

// Trajectory returns the named trajectory.
func (d *Dataset) Trajectory(name string) (Trajectory, bool) {
	for _, tr := range d.Trajectories {
		if tr.Name == name {
			return tr, true
		}
	}
	return Trajectory{}, false
}

// Generate resolves cfg and builds its keyframe schedule, per-frame times
// and camera matrices.
func Generate(cfg *SceneConfig) (*Dataset, error) {
	trajs, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		Scene:        cfg.Name,
		Layout:       cfg.Layout,
		Trajectories: trajs,
		FrameTimes:   make(map[string][]float64, len(trajs)),
		Cameras:      make(map[string][]mgl64.Mat4),
	}
	if cfg.StaticCamera != nil {
		cam := *cfg.StaticCamera
		d.StaticCamera = &cam
	}

	target, up := cfg.LookAt, cfg.up()
	for _, tr := range trajs {
		if tr.Role == RoleObject {
			continue
		}
		ms, err := CameraMatrices(tr.Positions, target, up)
		if err != nil {
			return nil, fmt.Errorf("camera %q: %w", tr.Name, err)
		}
		d.Cameras[tr.Name] = ms
	}

	colorize := make(map[string]bool, len(cfg.Entities))
	for _, e := range cfg.Entities {
		colorize[e.Name] = e.Colorize
	}

	switch cfg.Layout {
	case LayoutNested:
		d.scheduleNested(colorize)
	default:
		d.scheduleSequential(colorize)
	}
	d.scheduleProbes()
	return d, nil
}

// scheduleNested steps the camera in the outer loop and every object frame
// in the inner loop.
func (d *Dataset) scheduleNested(colorize map[string]bool) {
	var cam Trajectory
	var objects []Trajectory
	for _, tr := range d.Trajectories {
		switch tr.Role {
		case RoleCamera:
			cam = tr
		case RoleObject:
			objects = append(objects, tr)
		}
	}

	camFrames := len(cam.Positions)
	objFrames := 0
	if len(objects) > 0 {
		objFrames = len(objects[0].Positions)
	}
	d.Frames = camFrames * objFrames

	for _, obj := range objects {
		d.FrameTimes[obj.Name] = Tile(obj.Times, camFrames)
	}
	d.FrameTimes[cam.Name] = mathutil.Repeat(cam.Times, objFrames)

	camMats := d.Cameras[cam.Name]
	perCam := make([]mgl64.Mat4, 0, d.Frames)
	d.Keyframes = make([]Keyframe, 0, d.Frames*(len(objects)+1))

	frame := 1
	for c := range camFrames {
		for o := range objFrames {
			for _, obj := range objects {
				d.Keyframes = append(d.Keyframes, objectKeyframe(frame, obj, o, colorize[obj.Name]))
			}
			m := camMats[c]
			d.Keyframes = append(d.Keyframes, Keyframe{
				Frame:    frame,
				Entity:   cam.Name,
				Position: cam.Positions[c],
				Camera:   &m,
			})
			perCam = append(perCam, m)
			frame++
		}
	}
	d.Cameras[cam.Name] = perCam
}

// scheduleSequential renders frame i of every non-probe entity at frame i+1.
func (d *Dataset) scheduleSequential(colorize map[string]bool) {
	for _, tr := range d.Trajectories {
		if tr.Role == RoleProbe {
			continue
		}
		d.Frames = max(d.Frames, len(tr.Positions))
		d.FrameTimes[tr.Name] = tr.Times
	}

	for i := range d.Frames {
		for _, tr := range d.Trajectories {
			if tr.Role == RoleProbe || i >= len(tr.Positions) {
				continue
			}
			if tr.Role == RoleCamera {
				m := d.Cameras[tr.Name][i]
				d.Keyframes = append(d.Keyframes, Keyframe{
					Frame:    i + 1,
					Entity:   tr.Name,
					Position: tr.Positions[i],
					Camera:   &m,
				})
				continue
			}
			d.Keyframes = append(d.Keyframes, objectKeyframe(i+1, tr, i, colorize[tr.Name]))
		}
	}
}

// scheduleProbes gives every probe its own 1-based frame sequence.
func (d *Dataset) scheduleProbes() {
	for _, tr := range d.Trajectories {
		if tr.Role != RoleProbe {
			continue
		}
		d.FrameTimes[tr.Name] = tr.Times
		for i, p := range tr.Positions {
			m := d.Cameras[tr.Name][i]
			d.Keyframes = append(d.Keyframes, Keyframe{
				Frame:    i + 1,
				Entity:   tr.Name,
				Position: p,
				Camera:   &m,
			})
		}
	}
}

func objectKeyframe(frame int, tr Trajectory, i int, colorize bool) Keyframe {
	kf := Keyframe{Frame: frame, Entity: tr.Name, Position: tr.Positions[i]}
	if colorize {
		c := TimeColor(tr.Times[i])
		kf.Color = &c
	}
	return kf
}

// TimeColor maps a normalized time to a fully saturated colour with
// hue = time / 2 (as a fraction of the colour wheel).
func TimeColor(t float64) colorful.Color {
	return colorful.Hsv(t/hueDivisor*hueDegrees, 1, 1)
}
