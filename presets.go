package trajectory

import (
	"fmt"
	"slices"
)

// Split selects the frequency set of the trio scene.
type Split int

const (
	// SplitTrain animates all three objects at the same frequency.
	SplitTrain Split = iota

	// SplitValid gives each object its own frequency.
	SplitValid
)

func (s Split) suffix() string {
	if s == SplitTrain {
		return "train"
	}
	return "valid"
}

// Preset names accepted by Preset.
const (
	PresetTrioTrain = "trio-train"
	PresetTrioValid = "trio-valid"
	PresetTrioTop   = "trio-top"
	PresetCubes     = "cubes"
)

// PresetNames lists the built-in scenes in sorted order.
func PresetNames() []string {
	names := []string{PresetTrioTrain, PresetTrioValid, PresetTrioTop, PresetCubes}
	slices.Sort(names)
	return names
}

// Preset returns a fresh copy of a built-in scene.
func Preset(name string) (*SceneConfig, error) {
	switch name {
	case PresetTrioTrain:
		return TrioScene(SplitTrain), nil
	case PresetTrioValid:
		return TrioScene(SplitValid), nil
	case PresetTrioTop:
		return TrioTopScene(), nil
	case PresetCubes:
		return CubesScene(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
}

// Handles shared by the bunny and teapot curves.
func objectHandles() ControlPoints {
	return ControlPoints{
		{0.044713765382766724, -1.0193415880203247, 0.8044384121894836, 1.0},
		{0.056191492825746536, -0.31232786178588867, 0.8044384121894836, 1.0},
		{0.0, 0.0, 0.0, 1.0},
		{1.0, 0.0, 0.0, 1.0},
	}
}

func suzanneHandles() ControlPoints {
	return ControlPoints{
		{-1.0, 0.0, 0.0, 1.0},
		{-0.2928931713104248, 2.9802322387695312e-08, 0.0, 1.0},
		{0.0, 0.0, 0.0, 1.0},
		{1.0, 0.0, 0.0, 1.0},
	}
}

func cameraHandles() ControlPoints {
	return ControlPoints{
		{0.11302351206541061, -2.022498846054077, -0.03925067186355591, 1.0},
		{0.2999248206615448, -2.991917133331299, 0.536824643611908, 1.0},
		{0.1303337812423706, -5.388640403747559, 0.32903361320495605, 1.0},
		{0.3103395700454712, -6.060530662536621, -0.3085057735443115, 1.0},
	}
}

// BunnyWorld is the world transform of the bunny curve.
func BunnyWorld() WorldTransform {
	return Transform([4][4]float64{
		{-1.0, 3.2584136988589307e-07, 0.0, 0.7087775468826294},
		{-3.2584136988589307e-07, -1.0, 0.0, -1.2878063917160034},
		{0.0, 0.0, 1.0, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	})
}

// BunnyHandles are the control points of the bunny curve.
func BunnyHandles() ControlPoints {
	return objectHandles()
}

func suzanneWorld() WorldTransform {
	return Transform([4][4]float64{
		{1.0, 0.0, 0.0, -0.8567398190498352},
		{0.0, 1.0, 0.0, 0.0},
		{0.0, 0.0, 1.0, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	})
}

func teapotWorld() WorldTransform {
	return Transform([4][4]float64{
		{1.0, 0.0, 0.0, -0.9078792333602905},
		{0.0, 1.0, 0.0, 1.2115877866744995},
		{0.0, 0.0, 1.0, 0.0},
		{0.0, 0.0, 0.0, 1.0},
	})
}

func cameraWorld(split Split) WorldTransform {
	if split == SplitTrain {
		return Transform([4][4]float64{
			{1.0, 0.0, 0.0, 5.299691677093506},
			{0.0, 1.0, 0.0, 2.9463558197021484},
			{0.0, 0.0, 1.0, 4.46529483795166},
			{0.0, 0.0, 0.0, 1.0},
		})
	}
	return Transform([4][4]float64{
		{1.0, 0.0, 0.0, 5.299691677093506},
		{0.0, 1.0, 0.0, 2.946355819702148},
		{0.0, 0.0, 1.0, 3.7338485717773438},
		{0.0, 0.0, 0.0, 1.0},
	})
}

func halfPi(frames int, f float64) TimeSpec {
	return TimeSpec{Frames: frames, Frequency: f, Domain: DomainHalfPi}
}

// TrioScene returns the bunny/teapot/suzanne scene with a moving camera.
//
// The objects are frozen at their mean pose and placed on a shared floor:
// bunny and teapot sit below the lowest object z by fixed offsets, bunny and
// suzanne take their lowest y, teapot its highest.
func TrioScene(split Split) *SceneConfig {
	bunnyF, teapotF, suzanneF := trioTrainFrequency, trioTrainFrequency, trioTrainFrequency
	if split == SplitValid {
		bunnyF, teapotF, suzanneF = trioValidBunnyFreq, trioValidTeapotFreq, trioValidSuzanneFreq
	}

	camTimes := TimeSpec{Frames: trioCameraFrames, Frequency: trioCameraFrequency, Domain: DomainHalfPi, Squared: true}
	probeTimes := camTimes
	probeTimes.Frames = trioProbeFrames

	return &SceneConfig{
		Name:   "trio-" + split.suffix(),
		Layout: LayoutNested,
		Entities: []EntityConfig{
			{
				Name:     "bunny",
				Handles:  objectHandles(),
				World:    BunnyWorld(),
				Times:    halfPi(trioObjectFrames, bunnyF),
				Floor:    true,
				Collapse: true,
				Colorize: true,
				Clamps: []ClampRule{
					{Axis: AxisZ, Source: ClampGlobalMin, Offset: bunnyFloorOffset},
					{Axis: AxisY, Source: ClampSelfMin},
				},
			},
			{
				Name:     "teapot",
				Handles:  objectHandles(),
				World:    teapotWorld(),
				Times:    halfPi(trioObjectFrames, teapotF),
				Floor:    true,
				Collapse: true,
				Colorize: true,
				Clamps: []ClampRule{
					{Axis: AxisZ, Source: ClampGlobalMin, Offset: teapotFloorOffset},
					{Axis: AxisY, Source: ClampSelfMax},
				},
			},
			{
				Name:     "suzanne",
				Handles:  suzanneHandles(),
				World:    suzanneWorld(),
				Times:    halfPi(trioObjectFrames, suzanneF),
				Floor:    true,
				Collapse: true,
				Colorize: true,
				Clamps: []ClampRule{
					{Axis: AxisY, Source: ClampSelfMin},
				},
			},
			{
				Name:    "camera",
				Role:    RoleCamera,
				Handles: cameraHandles(),
				World:   cameraWorld(split),
				Times:   camTimes,
			},
			{
				Name:    "fake_camera",
				Role:    RoleProbe,
				Handles: cameraHandles(),
				World:   cameraWorld(split),
				Times:   probeTimes,
			},
		},
	}
}

// TrioTopScene returns the top-down trio scene: three objects moving along
// their curves under a fixed overhead camera.
func TrioTopScene() *SceneConfig {
	cam := [3]float64{0, 0, trioTopCameraZ}
	return &SceneConfig{
		Name:         PresetTrioTop,
		Layout:       LayoutSequential,
		StaticCamera: &cam,
		Entities: []EntityConfig{
			{Name: "bunny", Handles: objectHandles(), World: BunnyWorld(), Times: halfPi(trioTopFrames, trioTopBunnyFreq)},
			{Name: "teapot", Handles: objectHandles(), World: teapotWorld(), Times: halfPi(trioTopFrames, trioTopTeapotFreq)},
			{Name: "suzanne", Handles: suzanneHandles(), World: suzanneWorld(), Times: halfPi(trioTopFrames, trioTopSuzanneFreq)},
		},
	}
}

// CubesScene returns three cubes in a row bobbing along z at different rates.
func CubesScene() *SceneConfig {
	freqs := [cubesNumEntities]float64{cubesFrequency1, cubesFrequency2, cubesFrequency3}
	cam := [3]float64{cubesCameraX, 0, 0}

	cfg := &SceneConfig{
		Name:         PresetCubes,
		Layout:       LayoutSequential,
		StaticCamera: &cam,
		Entities:     make([]EntityConfig, 0, cubesNumEntities),
	}
	for i, f := range freqs {
		cfg.Entities = append(cfg.Entities, EntityConfig{
			Name: fmt.Sprintf("cube-%d", i+1),
			Path: PathOscillator,
			Oscillator: &Oscillator{
				Base:      [3]float64{0, float64(i-1) * cubesRowSpacing, cubesBaseHeight},
				Axis:      AxisZ,
				Amplitude: cubesAmplitude,
			},
			Times: TimeSpec{Frames: cubesFrames, Frequency: f, Domain: DomainFullPi},
		})
	}
	return cfg
}
