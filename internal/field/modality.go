package field

import (
	"fmt"
	"strings"
)

// Modality selects one of the supported competition size classes.
type Modality int

const (
	ModalitySSL  Modality = iota // small size league: large field, round robots
	ModalityVSSS                 // very small size soccer: small field, square robots
)

func (m Modality) String() string {
	switch m {
	case ModalitySSL:
		return "SSL"
	case ModalityVSSS:
		return "VSSS"
	default:
		return "unknown"
	}
}

// ParseModality accepts the modality name in any case ("ssl", "VSSS").
func ParseModality(s string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ssl":
		return ModalitySSL, nil
	case "vsss":
		return ModalityVSSS, nil
	}
	return 0, fmt.Errorf("unknown modality %q (supported: ssl, vsss)", s)
}

// RobotShape is the silhouette used to draw robots of a modality.
type RobotShape int

const (
	ShapeCircle RobotShape = iota
	ShapeSquare
)

// Bounds is an axis-aligned box in field-centered millimetres.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Clamp returns (x, y) pulled into b.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return clamp(x, b.MinX, b.MaxX), clamp(y, b.MinY, b.MaxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Params holds the fixed dimensions of a modality. All lengths in mm.
type Params struct {
	Width, Height        float64
	RobotRadius          float64
	RobotShape           RobotShape
	BallRadius           float64
	GoalkeeperAreaWidth  float64 // depth into the field from the goal line
	GoalkeeperAreaHeight float64 // extent along the goal line
	CenterCircleDiameter float64
	GoalWidth            float64
	GoalDepth            float64
	GoalHeight           float64 // unused in 2D
}

// Bounds returns the field extent in field-centered coordinates.
func (p Params) Bounds() Bounds {
	return Bounds{
		MinX: -p.Width / 2, MaxX: p.Width / 2,
		MinY: -p.Height / 2, MaxY: p.Height / 2,
	}
}

var modalityParams = [...]Params{
	ModalitySSL: {
		Width: 4500, Height: 3000,
		RobotRadius:          90, // 180mm diameter
		RobotShape:           ShapeCircle,
		BallRadius:           21.5, // 43mm diameter
		GoalkeeperAreaWidth:  500,
		GoalkeeperAreaHeight: 1350,
		CenterCircleDiameter: 1000,
		GoalWidth:            800,
		GoalDepth:            200,
		GoalHeight:           200,
	},
	ModalityVSSS: {
		Width: 1500, Height: 1200,
		RobotRadius:          40, // half of the 80mm side
		RobotShape:           ShapeSquare,
		BallRadius:           21.5,
		GoalkeeperAreaWidth:  150,
		GoalkeeperAreaHeight: 700,
		CenterCircleDiameter: 400,
		GoalWidth:            400,
		GoalDepth:            100,
		GoalHeight:           100,
	},
}

// ParamsFor returns the constants of m. The table is returned by value so
// callers cannot mutate it.
func ParamsFor(m Modality) Params {
	if m < 0 || int(m) >= len(modalityParams) {
		return modalityParams[ModalitySSL]
	}
	return modalityParams[m]
}
