package game

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Pitch-Sense/internal/config"
	"github.com/Garsondee/Pitch-Sense/internal/field"
	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

var (
	colorFieldGreen = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorOrange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorBlue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorYellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorPanelGrey  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorDarkGrey   = color.RGBA{R: 70, G: 70, B: 70, A: 255}
)

func teamColor(t scene.Team) color.RGBA {
	if t == scene.TeamBlue {
		return colorBlue
	}
	return colorYellow
}

// loopState is the viewer's run state. Stopped is terminal.
type loopState int

const (
	stateRunning loopState = iota
	stateStopped
)

// Game is the ebiten.Game that owns the scene and everything needed to draw
// it: viewport, precomputed field lines, fonts and the event log.
type Game struct {
	cfg      config.Config
	log      *zap.Logger
	scene    *scene.Scene
	vp       field.Viewport
	markings field.Markings
	faces    *faces
	events   *EventLog
	state    loopState
	prevKeys map[ebiten.Key]bool

	// copyText receives the info panel text on the copy key.
	copyText func(string) error
}

// New builds the viewer from cfg. Font parsing is the only fallible step.
func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic paths only

	g := &Game{
		cfg:      cfg,
		log:      logger,
		scene:    scene.New(cfg.InitialModality(), cfg.SceneOptions(), rng),
		faces:    f,
		events:   NewEventLog(),
		prevKeys: make(map[ebiten.Key]bool),
		copyText: clipboard.WriteAll,
	}
	g.relayout()
	g.log.Info("viewer ready",
		zap.Stringer("modality", g.scene.Modality()),
		zap.Int64("seed", seed),
		zap.Float64("scale", g.vp.Scale))
	g.events.Add(0, "start "+g.scene.Modality().String())
	return g, nil
}

// relayout recomputes the viewport and field lines for the current modality.
func (g *Game) relayout() {
	w := g.cfg.Window
	g.vp = field.ViewportFor(g.scene.Modality(),
		float64(w.FieldPanelWidth), float64(w.Height), float64(w.Margin))
	g.markings = field.LayoutMarkings(g.scene.Modality(), g.vp)
}

// Scene exposes the owned scene, e.g. for feeding poses through ReplaceRobots.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Viewport returns the active mm→px transform.
func (g *Game) Viewport() field.Viewport { return g.vp }

// Stopped reports whether the loop has reached its terminal state.
func (g *Game) Stopped() bool { return g.state == stateStopped }

func (g *Game) Update() error {
	if g.state == stateStopped {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.stop("window closed")
		return ebiten.Termination
	}
	g.handleInput()
	if g.state == stateStopped {
		return ebiten.Termination
	}
	g.scene.Tick()
	return nil
}

// viewerKeys are the edge-triggered bindings polled every frame.
var viewerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.KeyC, ebiten.KeyEscape}

func (g *Game) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(viewerKeys))
	for _, k := range viewerKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			g.applyKey(k)
		}
	}
	g.prevKeys = currentKeys
}

// applyKey performs the action bound to a freshly pressed key.
func (g *Game) applyKey(k ebiten.Key) {
	switch k {
	case ebiten.Key1:
		g.setModality(field.ModalitySSL)
	case ebiten.Key2:
		g.setModality(field.ModalityVSSS)
	case ebiten.KeyC:
		g.copyInfo()
	case ebiten.KeyEscape:
		g.stop("escape")
	}
}

// setModality resets the scene for m: sample robots, paths and viewport.
func (g *Game) setModality(m field.Modality) {
	g.scene.SetModality(m)
	g.relayout()
	g.events.Add(g.scene.TickCount(), "modality "+m.String())
	g.log.Info("modality switched", zap.Stringer("modality", m), zap.Float64("scale", g.vp.Scale))
}

func (g *Game) copyInfo() {
	if err := g.copyText(g.scene.InfoText()); err != nil {
		g.events.Add(g.scene.TickCount(), "copy failed")
		g.log.Warn("clipboard copy failed", zap.Error(err))
		return
	}
	g.events.Add(g.scene.TickCount(), "copied info")
	g.log.Info("info panel copied to clipboard")
}

func (g *Game) stop(reason string) {
	if g.state == stateStopped {
		return
	}
	g.state = stateStopped
	g.log.Info("viewer stopping", zap.String("reason", reason), zap.Int("ticks", g.scene.TickCount()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width(), g.cfg.Window.Height
}
