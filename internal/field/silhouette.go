package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	arcStartDeg    = -150
	arcEndDeg      = 150
	arcStepDeg     = 5
	headingLenFrac = 0.8
)

// Silhouette is the pixel outline of one robot plus its heading indicator.
type Silhouette struct {
	Outline []r2.Vec // closed polygon, last point joins the first
	Heading Segment
}

// PixelRadius truncates a scaled robot radius to whole pixels.
func PixelRadius(radiusMM float64, vp Viewport) float64 {
	return float64(int(vp.Length(radiusMM)))
}

// RobotSilhouette builds the outline for a robot of the given shape centred
// at c (px), with radius r (px) and orientation theta (rad).
func RobotSilhouette(shape RobotShape, c r2.Vec, r, theta float64) Silhouette {
	if shape == ShapeSquare {
		return squareSilhouette(c, r, theta)
	}
	return circleSilhouette(c, r, theta)
}

// circleSilhouette sweeps an arc around the back of the robot so the missing
// wedge becomes a flat chord facing the direction of travel.
func circleSilhouette(c r2.Vec, r, theta float64) Silhouette {
	base := theta + math.Pi
	at := func(deg int) r2.Vec {
		a := float64(deg)*math.Pi/180 + base
		return r2.Add(c, r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)})
	}

	n := (arcEndDeg-arcStartDeg)/arcStepDeg + 1
	pts := make([]r2.Vec, 0, n+2)
	for deg := arcStartDeg; deg <= arcEndDeg; deg += arcStepDeg {
		pts = append(pts, at(deg))
	}
	// Flat front edge.
	pts = append(pts, at(arcEndDeg), at(arcStartDeg))

	tip := r2.Add(c, r2.Vec{
		X: r * headingLenFrac * math.Cos(theta),
		Y: r * headingLenFrac * math.Sin(theta),
	})
	return Silhouette{Outline: pts, Heading: Segment{A: c, B: tip}}
}

// squareSilhouette lays out a 2r square facing +x and turns it by theta. In
// screen space (y down) this is the counter-rotation of the upright shape.
func squareSilhouette(c r2.Vec, r, theta float64) Silhouette {
	rot := r2.NewRotation(theta, r2.Vec{})
	place := func(local r2.Vec) r2.Vec {
		return r2.Add(c, rot.Rotate(local))
	}
	pts := []r2.Vec{
		place(r2.Vec{X: -r, Y: -r}),
		place(r2.Vec{X: r, Y: -r}),
		place(r2.Vec{X: r, Y: r}),
		place(r2.Vec{X: -r, Y: r}),
	}
	return Silhouette{
		Outline: pts,
		Heading: Segment{A: place(r2.Vec{X: -r}), B: place(r2.Vec{X: r})},
	}
}
