package parameter

// Node kinematics
const (
	// NodeCount is the fixed number of nodes created at startup
	NodeCount = 80

	// NodeSpeed is the nominal speed magnitude in surface units per tick
	// Also the restoring target of the drift nudge
	NodeSpeed = 0.3

	// NodeRadius is the render radius of a node in surface units
	NodeRadius = 3.0
)

// Pointer interaction
const (
	// PushRadius is the distance within which the pointer perturbs node velocity
	PushRadius = 100.0

	// PushStrength is the force magnitude at zero distance, falling off linearly to 0 at PushRadius
	PushStrength = 5.0

	// VelocityDecay is the per-frame velocity multiplier for nodes outside the push radius
	VelocityDecay = 0.95

	// DriftNudge is the width of the uniform random nudge applied to a slow axis, centered on 0
	DriftNudge = 0.1
)

// Connections
const (
	// ConnectionDistance is the exclusive upper bound on pair distance for a line to be drawn
	ConnectionDistance = 150.0
)
