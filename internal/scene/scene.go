package scene

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Garsondee/Pitch-Sense/internal/field"
)

const (
	robotsPerTeam = 3

	// DefaultOrientationStep is the heading nudge applied to each robot per tick.
	DefaultOrientationStep = 0.02
	// DefaultPathWaypoints is the length of each generated sample path.
	DefaultPathWaypoints = 40
)

// Options tunes the synthetic motion of a Scene.
type Options struct {
	OrientationStep float64 // rad per tick
	PathWaypoints   int
}

// DefaultOptions returns the stock demo motion.
func DefaultOptions() Options {
	return Options{
		OrientationStep: DefaultOrientationStep,
		PathWaypoints:   DefaultPathWaypoints,
	}
}

// Scene owns everything that is drawn: modality, robots, ball and paths.
// It has no rendering dependency so it can be driven headlessly.
type Scene struct {
	modality field.Modality
	params   field.Params
	opts     Options
	rng      *rand.Rand
	tick     int

	Robots []Robot
	Ball   Ball
	Paths  []Path
}

// New builds a scene for m populated with the sample robots.
func New(m field.Modality, opts Options, rng *rand.Rand) *Scene {
	s := &Scene{opts: opts, rng: rng}
	s.SetModality(m)
	return s
}

// Modality returns the active modality.
func (s *Scene) Modality() field.Modality { return s.modality }

// Params returns the constants of the active modality.
func (s *Scene) Params() field.Params { return s.params }

// TickCount returns the number of Tick calls since construction.
func (s *Scene) TickCount() int { return s.tick }

// SetModality switches to m and regenerates robots, ball and paths.
func (s *Scene) SetModality(m field.Modality) {
	s.modality = m
	s.params = field.ParamsFor(m)
	s.addSampleRobots()
	s.generatePaths()
}

// addSampleRobots places three robots per team on the quarter lines,
// blue facing +x on the left and yellow facing -x on the right.
func (s *Scene) addSampleRobots() {
	w, h := s.params.Width, s.params.Height
	s.Robots = make([]Robot, 0, 2*robotsPerTeam)
	for i := 0; i < robotsPerTeam; i++ {
		s.Robots = append(s.Robots, Robot{
			ID:          i,
			X:           -w / 4,
			Y:           h * (-0.25 + float64(i)*0.25),
			Orientation: 0,
			Team:        TeamBlue,
		})
	}
	for i := 0; i < robotsPerTeam; i++ {
		s.Robots = append(s.Robots, Robot{
			ID:          i + robotsPerTeam,
			X:           w / 4,
			Y:           h * (-0.25 + float64(i)*0.25),
			Orientation: math.Pi,
			Team:        TeamYellow,
		})
	}
	s.Ball = Ball{X: 0, Y: 0}
}

func (s *Scene) generatePaths() {
	b := s.params.Bounds()
	s.Paths = make([]Path, 0, len(s.Robots))
	for _, r := range s.Robots {
		start := Waypoint{X: r.X, Y: r.Y, Heading: r.Orientation}
		s.Paths = append(s.Paths, Path{
			RobotID:   r.ID,
			Waypoints: GeneratePath(start, s.opts.PathWaypoints, b, s.rng),
		})
	}
}

// ReplaceRobots swaps the robot list wholesale for externally supplied
// poses. Paths are left untouched; they only decorate the sample robots.
func (s *Scene) ReplaceRobots(poses []Pose) {
	s.Robots = make([]Robot, 0, len(poses))
	for _, p := range poses {
		s.Robots = append(s.Robots, Robot{
			ID:          p.ID,
			X:           p.XMM,
			Y:           p.YMM,
			Orientation: p.OrientationRad,
			Team:        p.Team,
		})
	}
}

// Tick advances every robot's orientation by one step, kept in [0, 2π).
func (s *Scene) Tick() {
	s.tick++
	for i := range s.Robots {
		s.Robots[i].Orientation = WrapAngle(s.Robots[i].Orientation + s.opts.OrientationStep)
	}
}

// GoalBorderTeam returns the team of the robot closest to the goal on side.
// The first robot in list order wins exact ties. ok is false when the
// scene has no robots.
func (s *Scene) GoalBorderTeam(side field.Side) (team Team, ok bool) {
	goal := field.GoalCenter(s.modality, side)
	best := math.Inf(1)
	for _, r := range s.Robots {
		d := r2.Norm(r2.Sub(r2.Vec{X: r.X, Y: r.Y}, goal))
		if d < best {
			best = d
			team = r.Team
			ok = true
		}
	}
	return team, ok
}

// PathFor returns the sample path of robot id, if any.
func (s *Scene) PathFor(id int) (Path, bool) {
	for _, p := range s.Paths {
		if p.RobotID == id {
			return p, true
		}
	}
	return Path{}, false
}

// LineKind classifies an info panel line for styling.
type LineKind int

const (
	LinePlain LineKind = iota
	LineSection
	LineRobot
	LineBall
)

// InfoLine is one row of the info panel.
type InfoLine struct {
	Kind LineKind
	Team Team // LineRobot only
	Text string
}

// InfoLines projects the current state into info panel rows.
func (s *Scene) InfoLines() []InfoLine {
	p := s.params
	b := p.Bounds()
	lines := []InfoLine{
		{Kind: LinePlain, Text: fmt.Sprintf("Modality: %s", s.modality)},
		{Kind: LinePlain, Text: fmt.Sprintf("Field: %.0fx%.0f mm", p.Width, p.Height)},
		{Kind: LinePlain, Text: fmt.Sprintf("Bounds: x[%.0f, %.0f] y[%.0f, %.0f]", b.MinX, b.MaxX, b.MinY, b.MaxY)},
		{Kind: LineSection, Text: "Robots:"},
	}
	for _, r := range s.Robots {
		lines = append(lines, InfoLine{
			Kind: LineRobot,
			Team: r.Team,
			Text: fmt.Sprintf("ID %d: (%.0f, %.0f) mm, %.1f°", r.ID, r.X, r.Y, r.Orientation*180/math.Pi),
		})
	}
	lines = append(lines,
		InfoLine{Kind: LineSection, Text: "Ball:"},
		InfoLine{Kind: LineBall, Text: fmt.Sprintf("Position: (%.0f, %.0f) mm", s.Ball.X, s.Ball.Y)},
	)
	return lines
}

// InfoText joins InfoLines into plain text, one row per line.
func (s *Scene) InfoText() string {
	var sb strings.Builder
	for _, l := range s.InfoLines() {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
