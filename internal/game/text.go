package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontSizeTitle = 24
	fontSizeBody  = 16
	fontSizeSmall = 12
)

// faces holds the parsed font at the sizes the viewer uses.
type faces struct {
	title *text.GoTextFace
	body  *text.GoTextFace
	small *text.GoTextFace
}

func loadFaces() (*faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &faces{
		title: &text.GoTextFace{Source: src, Size: fontSizeTitle},
		body:  &text.GoTextFace{Source: src, Size: fontSizeBody},
		small: &text.GoTextFace{Source: src, Size: fontSizeSmall},
	}, nil
}

// draw renders s with its top-left corner at (x, y).
func (f *faces) draw(dst *ebiten.Image, face *text.GoTextFace, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawCentered renders s centred on (x, y) in both axes.
func (f *faces) drawCentered(dst *ebiten.Image, face *text.GoTextFace, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
