package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport maps field-centered millimetres onto the pixel panel that holds
// the field. Scale is uniform across both axes so the field never distorts.
type Viewport struct {
	Scale   float64 // px per mm
	Margin  float64 // px between panel edge and field corner
	PanelW  float64
	PanelH  float64
	FieldW  float64 // mm
	FieldH  float64 // mm
	originX float64 // px of the field's top-left corner
	originY float64
}

// NewViewport fits a fieldW × fieldH mm field into a panelW × panelH px area,
// leaving margin px on every side.
func NewViewport(panelW, panelH, margin, fieldW, fieldH float64) Viewport {
	scaleW := (panelW - 2*margin) / fieldW
	scaleH := (panelH - 2*margin) / fieldH
	return Viewport{
		Scale:   math.Min(scaleW, scaleH),
		Margin:  margin,
		PanelW:  panelW,
		PanelH:  panelH,
		FieldW:  fieldW,
		FieldH:  fieldH,
		originX: margin,
		originY: margin,
	}
}

// ViewportFor is NewViewport for the dimensions of m.
func ViewportFor(m Modality, panelW, panelH, margin float64) Viewport {
	p := ParamsFor(m)
	return NewViewport(panelW, panelH, margin, p.Width, p.Height)
}

// ToPixel converts a field-centered mm coordinate to panel pixels.
// Screen y grows downward and field y is taken in the same direction.
func (v Viewport) ToPixel(mm r2.Vec) r2.Vec {
	corner := r2.Add(mm, r2.Vec{X: v.FieldW / 2, Y: v.FieldH / 2})
	return r2.Add(r2.Vec{X: v.originX, Y: v.originY}, r2.Scale(v.Scale, corner))
}

// ToPixelXY is ToPixel for bare coordinates.
func (v Viewport) ToPixelXY(x, y float64) (float64, float64) {
	p := v.ToPixel(r2.Vec{X: x, Y: y})
	return p.X, p.Y
}

// Length scales a millimetre length to pixels.
func (v Viewport) Length(mm float64) float64 {
	return mm * v.Scale
}

// FieldRect returns the pixel rectangle covered by the field.
func (v Viewport) FieldRect() (x, y, w, h float64) {
	return v.originX, v.originY, v.FieldW * v.Scale, v.FieldH * v.Scale
}
