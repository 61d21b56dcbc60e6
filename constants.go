package trajectory

// Homogeneous and Euclidean dimensions.
const (
	numHandles     = 4
	homogeneousDim = 4
	euclideanDim   = 3
)

// Trio scene parameters.
const (
	trioObjectFrames = 45
	trioCameraFrames = 20
	trioProbeFrames  = 100

	trioTrainFrequency   = 3.33
	trioValidBunnyFreq   = 3.33
	trioValidTeapotFreq  = 2.13
	trioValidSuzanneFreq = 4.11
	trioCameraFrequency  = 1.0

	// Floor offsets below the shared minimum z.
	bunnyFloorOffset  = 0.42538
	teapotFloorOffset = 0.22788
)

// Top-down trio scene parameters.
const (
	trioTopFrames      = 480
	trioTopBunnyFreq   = 8.33
	trioTopTeapotFreq  = 5.13
	trioTopSuzanneFreq = 7.11
	trioTopCameraZ     = 6.0
)

// Cubes scene parameters.
const (
	cubesFrames      = 480
	cubesAmplitude   = -0.5
	cubesFrequency1  = 2.11
	cubesFrequency2  = 3.17
	cubesFrequency3  = 1.5
	cubesCameraX     = 4.0
	cubesRowSpacing  = 1.0
	cubesBaseHeight  = -0.5
	cubesNumEntities = 3
)

// Colour keyframes use hue = time / hueDivisor with full saturation and value.
const (
	hueDivisor = 2.0
	hueDegrees = 360.0
)

// Output file layout.
const (
	positionsSuffix  = ".npy"
	timesSuffix      = "_time.npy"
	staticCameraFile = "camera_pos.npy"
	manifestFile     = "manifest.yaml"
	dirPerm          = 0o755
	filePerm         = 0o644
)

// Degenerate look-at threshold.
const lookAtEpsilon = 1e-12
