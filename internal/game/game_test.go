package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Garsondee/Pitch-Sense/internal/config"
	"github.com/Garsondee/Pitch-Sense/internal/field"
	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	g, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func TestNew_StartsRunningInSSL(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.Stopped())
	assert.Equal(t, field.ModalitySSL, g.Scene().Modality())
	assert.InDelta(t, 650.0/4500.0, g.Viewport().Scale, 1e-12)

	w, h := g.Layout(0, 0)
	assert.Equal(t, 1050, w)
	assert.Equal(t, 750, h)
}

func TestApplyKey_SwitchesModality(t *testing.T) {
	g := newTestGame(t)
	g.Scene().ReplaceRobots([]scene.Pose{{ID: 1}})

	g.applyKey(ebiten.Key2)
	assert.Equal(t, field.ModalityVSSS, g.Scene().Modality())
	assert.Len(t, g.Scene().Robots, 6)
	assert.InDelta(t, 650.0/1500.0, g.Viewport().Scale, 1e-12)
	assert.Len(t, g.markings.Crosses, 12)

	g.applyKey(ebiten.Key1)
	assert.Equal(t, field.ModalitySSL, g.Scene().Modality())
	assert.Empty(t, g.markings.Crosses)

	recent := g.events.Recent()
	require.NotEmpty(t, recent)
	assert.Equal(t, "modality SSL", recent[len(recent)-1].Message)
}

func TestApplyKey_CopyInfo(t *testing.T) {
	g := newTestGame(t)
	var got string
	g.copyText = func(s string) error {
		got = s
		return nil
	}
	g.applyKey(ebiten.KeyC)
	assert.Equal(t, g.Scene().InfoText(), got)
	assert.Equal(t, "copied info", lastEvent(g))

	g.copyText = func(string) error { return errors.New("no clipboard utility") }
	g.applyKey(ebiten.KeyC)
	assert.Equal(t, "copy failed", lastEvent(g))
	assert.False(t, g.Stopped(), "clipboard errors must not stop the loop")
}

func TestEscape_StopsLoop(t *testing.T) {
	g := newTestGame(t)
	g.applyKey(ebiten.KeyEscape)
	assert.True(t, g.Stopped())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.ErrorIs(t, g.Update(), ebiten.Termination, "stopped is terminal")
}

func TestLayoutPanel_SectionGaps(t *testing.T) {
	lines := []scene.InfoLine{
		{Kind: scene.LinePlain},
		{Kind: scene.LineSection},
		{Kind: scene.LineRobot},
	}
	rows := layoutPanel(lines)
	require.Len(t, rows, 3)
	assert.Equal(t, panelFirstY, rows[0].y)
	assert.Equal(t, panelFirstY+panelLineStep+panelSectionGap, rows[1].y)
	assert.Equal(t, rows[1].y+panelLineStep, rows[2].y)
}

func TestLineColor(t *testing.T) {
	assert.Equal(t, colorYellow, lineColor(scene.InfoLine{Kind: scene.LineRobot, Team: scene.TeamYellow}))
	assert.Equal(t, colorBlue, lineColor(scene.InfoLine{Kind: scene.LineRobot, Team: scene.TeamBlue}))
	assert.Equal(t, colorOrange, lineColor(scene.InfoLine{Kind: scene.LineBall}))
	assert.Equal(t, colorBlack, lineColor(scene.InfoLine{Kind: scene.LinePlain}))
}

func lastEvent(g *Game) string {
	r := g.events.Recent()
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1].Message
}
