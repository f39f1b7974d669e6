package parameter

// Dash
const (
	// DashMinDistance is the budget of a dash committed with no charge
	DashMinDistance = 5.0
	// DashMaxDistance is the budget of a fully charged dash
	DashMaxDistance = 50.0
	// DashMaxChargeTime caps the charge accumulator, seconds
	DashMaxChargeTime = 3.0
	// DashMinPunchSpeed is the horizontal hand speed that commits a charged dash, m/s
	DashMinPunchSpeed = 5.0
	// DashHeadBlend weights head forward against hand velocity when aiming a dash
	DashHeadBlend = 0.7
)

// Uppercut
const (
	UppercutDistance       = 20.0
	UppercutSpeedThreshold = 5.0
	// UppercutForwardFactor scales head forward x/z into the mostly vertical uppercut direction
	UppercutForwardFactor = 0.1
)

// Ground slam
const (
	SlamDistance       = 20.0
	SlamSpeedThreshold = 5.0
)

// GestureSpeed drives every moving gesture, m/s
const GestureSpeed = 25.0

// GestureEndEpsilon is the remaining distance at which a gesture completes
const GestureEndEpsilon = 0.01
