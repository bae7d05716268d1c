package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

const (
	panelPadX       = 20
	panelTitleY     = 20
	panelFirstY     = 60
	panelLineStep   = 30
	panelSectionGap = 10
	panelLegend     = "1: SSL   2: VSSS   C: copy   Esc: quit"
)

// drawInfoPanel renders the read-only state summary to the right of the field.
func (g *Game) drawInfoPanel(screen *ebiten.Image) {
	w := g.cfg.Window
	x := w.FieldPanelWidth
	vector.FillRect(screen, float32(x), 0, float32(w.InfoPanelWidth), float32(w.Height), colorPanelGrey, false)

	g.faces.draw(screen, g.faces.title, "Game Info", float64(x+panelPadX), panelTitleY, colorBlack)

	for _, row := range layoutPanel(g.scene.InfoLines()) {
		g.faces.draw(screen, g.faces.body, row.line.Text, float64(x+panelPadX), float64(row.y), lineColor(row.line))
	}

	legendY := w.Height - 24
	g.events.Draw(screen, g.faces, x, w.InfoPanelWidth, legendY-8)
	g.faces.draw(screen, g.faces.small, panelLegend, float64(x+panelPadX), float64(legendY), colorDarkGrey)
}

type panelRow struct {
	line scene.InfoLine
	y    int
}

// layoutPanel assigns a baseline to every info line, leaving a small gap
// above each section heading.
func layoutPanel(lines []scene.InfoLine) []panelRow {
	rows := make([]panelRow, 0, len(lines))
	y := panelFirstY
	for i, l := range lines {
		if i > 0 {
			y += panelLineStep
			if l.Kind == scene.LineSection {
				y += panelSectionGap
			}
		}
		rows = append(rows, panelRow{line: l, y: y})
	}
	return rows
}

func lineColor(l scene.InfoLine) color.Color {
	switch l.Kind {
	case scene.LineRobot:
		return teamColor(l.Team)
	case scene.LineBall:
		return colorOrange
	default:
		return colorBlack
	}
}
