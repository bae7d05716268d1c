package scene

import "math"

// Team identifies which side a robot plays for.
type Team int

const (
	TeamBlue Team = iota
	TeamYellow
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Robot is a single robot pose in field-centered millimetres.
type Robot struct {
	ID          int
	X, Y        float64
	Orientation float64 // radians, 0 along +x
	Team        Team
}

// Ball is the ball position in field-centered millimetres.
type Ball struct {
	X, Y float64
}

// Pose is one externally supplied robot record. It is the input of
// Scene.ReplaceRobots and carries the same fields a vision feed would.
type Pose struct {
	ID             int
	XMM            float64
	YMM            float64
	OrientationRad float64
	Team           Team
}

const fullTurn = 2 * math.Pi

// WrapAngle reduces a into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}
