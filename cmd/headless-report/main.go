package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/Garsondee/Pitch-Sense/internal/config"
	"github.com/Garsondee/Pitch-Sense/internal/field"
	"github.com/Garsondee/Pitch-Sense/internal/scene"
)

type runStats struct {
	modality field.Modality
	seed     int64
	ticks    int

	scale            float64
	originX, originY float64
	goalBorder       [2]string

	robots         []scene.Robot
	waypoints      int
	pathViolations int
	orientationOOR int // orientations outside [0, 2π) after the run
	infoText       string
}

func main() {
	var ticks int
	var seed int64
	var modality string
	var configPath string

	flag.IntVar(&ticks, "ticks", 600, "ticks per run")
	flag.Int64Var(&seed, "seed", 42, "path RNG seed")
	flag.StringVar(&modality, "modality", "all", "ssl, vsss or all")
	flag.StringVar(&configPath, "config", "", "optional YAML settings file")
	flag.Parse()

	if ticks < 0 {
		fmt.Println("error: -ticks must be >= 0")
		return
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	modalities, err := selectModalities(modality)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Field Report ===\n")
	fmt.Printf("ticks=%d seed=%d panel=%dx%d margin=%d\n\n",
		ticks, seed, cfg.Window.FieldPanelWidth, cfg.Window.Height, cfg.Window.Margin)

	for _, m := range modalities {
		printRun(runScene(cfg, m, seed, ticks))
	}
}

func selectModalities(s string) ([]field.Modality, error) {
	if strings.EqualFold(s, "all") {
		return []field.Modality{field.ModalitySSL, field.ModalityVSSS}, nil
	}
	m, err := field.ParseModality(s)
	if err != nil {
		return nil, err
	}
	return []field.Modality{m}, nil
}

func runScene(cfg config.Config, m field.Modality, seed int64, ticks int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- report only
	s := scene.New(m, cfg.SceneOptions(), rng)
	for i := 0; i < ticks; i++ {
		s.Tick()
	}

	w := cfg.Window
	vp := field.ViewportFor(m, float64(w.FieldPanelWidth), float64(w.Height), float64(w.Margin))
	ox, oy := vp.ToPixelXY(0, 0)

	rs := runStats{
		modality:       m,
		seed:           seed,
		ticks:          ticks,
		scale:          vp.Scale,
		originX:        ox,
		originY:        oy,
		robots:         append([]scene.Robot(nil), s.Robots...),
		waypoints:      countWaypoints(s.Paths),
		pathViolations: countPathViolations(s.Paths, s.Params().Bounds()),
		orientationOOR: countOrientationOutOfRange(s.Robots),
		infoText:       s.InfoText(),
	}
	for _, side := range field.Sides {
		team, ok := s.GoalBorderTeam(side)
		rs.goalBorder[side] = goalLabel(team, ok)
	}
	return rs
}

func goalLabel(t scene.Team, ok bool) string {
	if !ok {
		return "white"
	}
	return t.String()
}

func countWaypoints(paths []scene.Path) int {
	n := 0
	for _, p := range paths {
		n += len(p.Waypoints)
	}
	return n
}

func countPathViolations(paths []scene.Path, b field.Bounds) int {
	n := 0
	for _, p := range paths {
		for _, wp := range p.Waypoints {
			if !b.Contains(wp.X, wp.Y) {
				n++
			}
		}
	}
	return n
}

func countOrientationOutOfRange(robots []scene.Robot) int {
	n := 0
	for _, r := range robots {
		if r.Orientation < 0 || r.Orientation >= 2*math.Pi {
			n++
		}
	}
	return n
}

func printRun(rs runStats) {
	fmt.Printf("--- %s (seed=%d ticks=%d) ---\n", rs.modality, rs.seed, rs.ticks)
	fmt.Printf("viewport: scale=%.4f px/mm origin=(%.1f, %.1f)\n", rs.scale, rs.originX, rs.originY)
	fmt.Printf("goal_border: left=%s right=%s\n", rs.goalBorder[field.SideLeft], rs.goalBorder[field.SideRight])
	fmt.Printf("paths: waypoints=%d out_of_bounds=%d\n", rs.waypoints, rs.pathViolations)
	fmt.Printf("orientation_out_of_range=%d\n", rs.orientationOOR)
	fmt.Print(rs.infoText)
	fmt.Println()
}
