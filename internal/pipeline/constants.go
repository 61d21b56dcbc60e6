package pipeline

// Stage names, in execution order.
const (
	StageAggregate = "aggregate-extrema"
	StageCollapse  = "collapse"
	StageClamp     = "clamp"
)

// Number of axes of a position.
const numAxes = 3
