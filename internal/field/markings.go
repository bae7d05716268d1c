package field

import "gonum.org/v1/gonum/spatial/r2"

// Side identifies one of the two goals.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Sides lists both goals in drawing order.
var Sides = [2]Side{SideLeft, SideRight}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Segment is a straight pixel line.
type Segment struct {
	A, B r2.Vec
}

// Circle is a pixel circle outline.
type Circle struct {
	C r2.Vec
	R float64
}

// Markings is the pixel geometry of every static line on the field.
type Markings struct {
	Field           Rect
	CenterLine      Segment
	CenterCircle    Circle
	GoalkeeperAreas [2]Rect
	Crosses         []Segment // two segments per "+" mark
	Chamfers        []Segment
	Goals           [2][]r2.Vec // polygon per Side
}

const (
	crossHalfMM   = 20.0
	chamferLenMM  = 70.0
	vsssCrossRowK = 5.2 // y of the upper/lower marks is h/vsssCrossRowK from the edge
)

// GoalCenter returns the field-centered mm position of a goal's mouth.
func GoalCenter(m Modality, s Side) r2.Vec {
	p := ParamsFor(m)
	if s == SideLeft {
		return r2.Vec{X: -p.Width / 2}
	}
	return r2.Vec{X: p.Width / 2}
}

// LayoutMarkings computes the field lines of m in viewport pixels.
func LayoutMarkings(m Modality, vp Viewport) Markings {
	p := ParamsFor(m)
	fx, fy, fw, fh := vp.FieldRect()

	var mk Markings
	mk.Field = Rect{X: fx, Y: fy, W: fw, H: fh}
	mk.CenterLine = Segment{
		A: vp.ToPixel(r2.Vec{X: 0, Y: -p.Height / 2}),
		B: vp.ToPixel(r2.Vec{X: 0, Y: p.Height / 2}),
	}
	mk.CenterCircle = Circle{
		C: vp.ToPixel(r2.Vec{}),
		R: vp.Length(p.CenterCircleDiameter / 2),
	}

	gaW := vp.Length(p.GoalkeeperAreaWidth)
	gaH := vp.Length(p.GoalkeeperAreaHeight)
	midY := fy + fh/2
	mk.GoalkeeperAreas[SideLeft] = Rect{X: fx, Y: midY - gaH/2, W: gaW, H: gaH}
	mk.GoalkeeperAreas[SideRight] = Rect{X: fx + fw - gaW, Y: midY - gaH/2, W: gaW, H: gaH}

	if m == ModalityVSSS {
		mk.Crosses = vsssCrosses(p, vp)
		mk.Chamfers = vsssChamfers(p, vp)
	}

	for _, s := range Sides {
		mk.Goals[s] = goalPolygon(p, vp, s)
	}
	return mk
}

// cornerToCentered shifts a corner-origin mm position into field-centered mm.
func cornerToCentered(p Params, x, y float64) r2.Vec {
	return r2.Vec{X: x - p.Width/2, Y: y - p.Height/2}
}

func vsssCrosses(p Params, vp Viewport) []Segment {
	w, h := p.Width, p.Height
	centres := []r2.Vec{
		cornerToCentered(p, w/4, h/2),
		cornerToCentered(p, 3*w/4, h/2),
		cornerToCentered(p, w/4, h/vsssCrossRowK),
		cornerToCentered(p, 3*w/4, h/vsssCrossRowK),
		cornerToCentered(p, w/4, h-h/vsssCrossRowK),
		cornerToCentered(p, 3*w/4, h-h/vsssCrossRowK),
	}
	half := vp.Length(crossHalfMM)
	out := make([]Segment, 0, 2*len(centres))
	for _, c := range centres {
		px := vp.ToPixel(c)
		out = append(out,
			Segment{A: r2.Vec{X: px.X - half, Y: px.Y}, B: r2.Vec{X: px.X + half, Y: px.Y}},
			Segment{A: r2.Vec{X: px.X, Y: px.Y - half}, B: r2.Vec{X: px.X, Y: px.Y + half}},
		)
	}
	return out
}

func vsssChamfers(p Params, vp Viewport) []Segment {
	w, h := p.Width, p.Height
	corners := []struct {
		x, y, dx, dy float64
	}{
		{0, 70, 1, -1},         // top left
		{w - 5, 70, -1, -1},    // top right
		{0, h - 75, 1, 1},      // bottom left
		{w - 5, h - 75, -1, 1}, // bottom right
	}
	l := vp.Length(chamferLenMM)
	out := make([]Segment, 0, len(corners))
	for _, c := range corners {
		start := vp.ToPixel(cornerToCentered(p, c.x, c.y))
		end := r2.Add(start, r2.Vec{X: l * c.dx, Y: l * c.dy})
		out = append(out, Segment{A: start, B: end})
	}
	return out
}

// goalPolygon returns the goal box behind side s, starting and ending on the goal line.
func goalPolygon(p Params, vp Viewport, s Side) []r2.Vec {
	fx, fy, fw, fh := vp.FieldRect()
	gw := vp.Length(p.GoalWidth)
	gd := vp.Length(p.GoalDepth)
	top := fy + fh/2 - gw/2
	bot := fy + fh/2 + gw/2
	line, back := fx, fx-gd
	if s == SideRight {
		line, back = fx+fw, fx+fw+gd
	}
	return []r2.Vec{
		{X: line, Y: top},
		{X: back, Y: top},
		{X: back, Y: bot},
		{X: line, Y: bot},
	}
}
