package mathutil

// Axis indices of a 3-D point.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2

	// NumAxes is the dimension of a position.
	NumAxes = 3
)

// minSpanPoints is the shortest sequence floats.Span accepts.
const minSpanPoints = 2
