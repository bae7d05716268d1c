package scene

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Pitch-Sense/internal/field"
)

// Waypoint is one sample along a visualised path.
type Waypoint struct {
	X, Y    float64 // mm, field-centered
	Heading float64 // rad
}

// Path is an ordered run of waypoints belonging to one robot.
type Path struct {
	RobotID   int
	Waypoints []Waypoint
}

const (
	pathStepFrac = 1.0 / 30 // step length as a fraction of the field width
	pathMaxTurn  = 0.6      // max heading change per step, rad
)

// GeneratePath produces n waypoints by a random walk from start, keeping
// every waypoint inside b. The step length scales with the field width.
func GeneratePath(start Waypoint, n int, b field.Bounds, rng *rand.Rand) []Waypoint {
	if n <= 0 {
		return nil
	}
	step := (b.MaxX - b.MinX) * pathStepFrac

	x, y := b.Clamp(start.X, start.Y)
	heading := WrapAngle(start.Heading)
	out := make([]Waypoint, 0, n)
	out = append(out, Waypoint{X: x, Y: y, Heading: heading})

	for len(out) < n {
		heading = WrapAngle(heading + (rng.Float64()*2-1)*pathMaxTurn)
		nx := x + step*math.Cos(heading)
		ny := y + step*math.Sin(heading)
		cx, cy := b.Clamp(nx, ny)
		if cx != nx || cy != ny {
			// Hit the boundary: turn back into the field.
			heading = WrapAngle(heading + math.Pi)
		}
		x, y = cx, cy
		out = append(out, Waypoint{X: x, Y: y, Heading: heading})
	}
	return out
}
