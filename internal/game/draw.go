package game

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Garsondee/Pitch-Sense/internal/field"
	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

const (
	lineWidthBold = 2.0
	lineWidthThin = 1.0
)

// Draw paints back to front: field, paths, robots, ball, info panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)
	g.drawField(screen)
	g.drawPaths(screen)
	for _, r := range g.scene.Robots {
		g.drawRobot(screen, r)
	}
	g.drawBall(screen)
	g.drawInfoPanel(screen)
}

func (g *Game) drawField(screen *ebiten.Image) {
	mk := &g.markings
	f := mk.Field
	vector.FillRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), colorFieldGreen, false)
	vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), lineWidthBold, colorWhite, false)

	strokeSegment(screen, mk.CenterLine, lineWidthBold, colorWhite)
	c := mk.CenterCircle
	vector.StrokeCircle(screen, float32(c.C.X), float32(c.C.Y), float32(c.R), lineWidthThin, colorWhite, true)

	for _, ga := range mk.GoalkeeperAreas {
		vector.StrokeRect(screen, float32(ga.X), float32(ga.Y), float32(ga.W), float32(ga.H), lineWidthThin, colorWhite, false)
	}

	// VSSS only; both slices are empty for SSL.
	for _, s := range mk.Crosses {
		strokeSegment(screen, s, lineWidthBold, colorWhite)
	}
	for _, s := range mk.Chamfers {
		strokeSegment(screen, s, lineWidthBold, colorWhite)
	}

	for _, side := range field.Sides {
		border := colorWhite
		if team, ok := g.scene.GoalBorderTeam(side); ok {
			border = teamColor(team)
		}
		fillPolygon(screen, mk.Goals[side], colorFieldGreen)
		strokePolygon(screen, mk.Goals[side], lineWidthBold, border)
	}
}

// drawPaths renders each sample path as a faint team-coloured polyline with
// a dot on the final waypoint.
func (g *Game) drawPaths(screen *ebiten.Image) {
	teams := make(map[int]scene.Team, len(g.scene.Robots))
	for _, r := range g.scene.Robots {
		teams[r.ID] = r.Team
	}
	for _, p := range g.scene.Paths {
		team, ok := teams[p.RobotID]
		if !ok || len(p.Waypoints) < 2 {
			continue
		}
		base := teamColor(team)
		lineCol := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 128}

		prev := g.vp.ToPixel(r2.Vec{X: p.Waypoints[0].X, Y: p.Waypoints[0].Y})
		for _, wp := range p.Waypoints[1:] {
			cur := g.vp.ToPixel(r2.Vec{X: wp.X, Y: wp.Y})
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(cur.X), float32(cur.Y), lineWidthThin, lineCol, true)
			prev = cur
		}
		vector.FillCircle(screen, float32(prev.X), float32(prev.Y), 2.5, lineCol, true)
	}
}

func (g *Game) drawRobot(screen *ebiten.Image, r scene.Robot) {
	params := g.scene.Params()
	c := g.vp.ToPixel(r2.Vec{X: r.X, Y: r.Y})
	radius := field.PixelRadius(params.RobotRadius, g.vp)

	sil := field.RobotSilhouette(params.RobotShape, c, radius, r.Orientation)
	fillPolygon(screen, sil.Outline, teamColor(r.Team))
	strokeSegment(screen, sil.Heading, lineWidthBold, colorBlack)

	// Id last so it stays readable over the fill.
	g.faces.drawCentered(screen, g.faces.small, strconv.Itoa(r.ID), c.X, c.Y, colorBlack)
}

func (g *Game) drawBall(screen *ebiten.Image) {
	b := g.scene.Ball
	c := g.vp.ToPixel(r2.Vec{X: b.X, Y: b.Y})
	rad := g.vp.Length(g.scene.Params().BallRadius)
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(rad), colorOrange, true)
}

func strokeSegment(dst *ebiten.Image, s field.Segment, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), width, clr, true)
}

func polygonPath(pts []r2.Vec) *vector.Path {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

func fillPolygon(dst *ebiten.Image, pts []r2.Vec, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, polygonPath(pts), &vector.FillOptions{}, op)
}

func strokePolygon(dst *ebiten.Image, pts []r2.Vec, width float32, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, polygonPath(pts), &vector.StrokeOptions{Width: width}, op)
}
