package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Pitch-Sense/internal/field"
)

func newTestScene(m field.Modality) *Scene {
	return New(m, DefaultOptions(), rand.New(rand.NewSource(1))) // #nosec G404 -- test only
}

func TestSetModality_ResetsSampleRobots(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	s.ReplaceRobots([]Pose{{ID: 9, XMM: 1, YMM: 2, Team: TeamBlue}})
	s.Ball = Ball{X: 300, Y: -200}

	for _, m := range []field.Modality{field.ModalityVSSS, field.ModalitySSL} {
		s.SetModality(m)
		require.Len(t, s.Robots, 6)

		counts := map[Team]int{}
		for _, r := range s.Robots {
			counts[r.Team]++
		}
		assert.Equal(t, 3, counts[TeamBlue])
		assert.Equal(t, 3, counts[TeamYellow])
		assert.Equal(t, Ball{}, s.Ball)
		assert.Len(t, s.Paths, 6)
		assert.Equal(t, m, s.Modality())
	}
}

func TestSampleRobots_Layout(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	want := []Robot{
		{ID: 0, X: -1125, Y: -750, Orientation: 0, Team: TeamBlue},
		{ID: 1, X: -1125, Y: 0, Orientation: 0, Team: TeamBlue},
		{ID: 2, X: -1125, Y: 750, Orientation: 0, Team: TeamBlue},
		{ID: 3, X: 1125, Y: -750, Orientation: math.Pi, Team: TeamYellow},
		{ID: 4, X: 1125, Y: 0, Orientation: math.Pi, Team: TeamYellow},
		{ID: 5, X: 1125, Y: 750, Orientation: math.Pi, Team: TeamYellow},
	}
	if diff := cmp.Diff(want, s.Robots); diff != "" {
		t.Fatalf("sample robots mismatch (-want +got):\n%s", diff)
	}
}

func TestTick_OrientationStaysWrapped(t *testing.T) {
	s := New(field.ModalityVSSS, Options{OrientationStep: 0.37, PathWaypoints: 5}, rand.New(rand.NewSource(2))) // #nosec G404
	for i := 0; i < 5000; i++ {
		s.Tick()
		for _, r := range s.Robots {
			require.GreaterOrEqual(t, r.Orientation, 0.0)
			require.Less(t, r.Orientation, 2*math.Pi)
		}
	}
	assert.Equal(t, 5000, s.TickCount())
}

func TestTick_AdvancesByStep(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	s.Tick()
	assert.InDelta(t, DefaultOrientationStep, s.Robots[0].Orientation, 1e-12)
	assert.InDelta(t, math.Pi+DefaultOrientationStep, s.Robots[3].Orientation, 1e-12)
}

func TestWrapAngle(t *testing.T) {
	cases := map[float64]float64{
		0:               0,
		2 * math.Pi:     0,
		-0.5:            2*math.Pi - 0.5,
		7:               7 - 2*math.Pi,
		-4 * math.Pi:    0,
		math.Pi + 0.001: math.Pi + 0.001,
	}
	for in, want := range cases {
		got := WrapAngle(in)
		assert.InDelta(t, want, got, 1e-9, "WrapAngle(%v)", in)
		assert.Less(t, got, 2*math.Pi)
	}
}

func TestReplaceRobots(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	s.ReplaceRobots([]Pose{
		{ID: 7, XMM: 10, YMM: -20, OrientationRad: 1.5, Team: TeamYellow},
		{ID: 8, XMM: -30, YMM: 40, OrientationRad: 0.25, Team: TeamBlue},
	})
	want := []Robot{
		{ID: 7, X: 10, Y: -20, Orientation: 1.5, Team: TeamYellow},
		{ID: 8, X: -30, Y: 40, Orientation: 0.25, Team: TeamBlue},
	}
	if diff := cmp.Diff(want, s.Robots); diff != "" {
		t.Fatalf("replaced robots mismatch (-want +got):\n%s", diff)
	}

	s.ReplaceRobots(nil)
	assert.Empty(t, s.Robots)
}

func TestGoalBorderTeam_Nearest(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	s.ReplaceRobots([]Pose{
		{ID: 0, XMM: -2000, YMM: 100, Team: TeamYellow},
		{ID: 1, XMM: -1000, YMM: 0, Team: TeamBlue},
		{ID: 2, XMM: 2200, YMM: 0, Team: TeamBlue},
		{ID: 3, XMM: 1500, YMM: 900, Team: TeamYellow},
	})

	team, ok := s.GoalBorderTeam(field.SideLeft)
	require.True(t, ok)
	assert.Equal(t, TeamYellow, team)

	team, ok = s.GoalBorderTeam(field.SideRight)
	require.True(t, ok)
	assert.Equal(t, TeamBlue, team)
}

func TestGoalBorderTeam_TieKeepsFirst(t *testing.T) {
	s := newTestScene(field.ModalityVSSS)
	// Mirror images about y=0 are exactly equidistant from the goal mouth.
	s.ReplaceRobots([]Pose{
		{ID: 0, XMM: -500, YMM: 200, Team: TeamBlue},
		{ID: 1, XMM: -500, YMM: -200, Team: TeamYellow},
	})
	team, _ := s.GoalBorderTeam(field.SideLeft)
	assert.Equal(t, TeamBlue, team)

	s.ReplaceRobots([]Pose{
		{ID: 1, XMM: -500, YMM: -200, Team: TeamYellow},
		{ID: 0, XMM: -500, YMM: 200, Team: TeamBlue},
	})
	team, _ = s.GoalBorderTeam(field.SideLeft)
	assert.Equal(t, TeamYellow, team)
}

func TestGoalBorderTeam_NoRobots(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	s.ReplaceRobots(nil)
	_, ok := s.GoalBorderTeam(field.SideRight)
	assert.False(t, ok)
}

func TestInfoLines(t *testing.T) {
	s := newTestScene(field.ModalitySSL)
	lines := s.InfoLines()
	require.Len(t, lines, 4+6+2)

	assert.Equal(t, "Modality: SSL", lines[0].Text)
	assert.Equal(t, "Field: 4500x3000 mm", lines[1].Text)
	assert.Equal(t, "Bounds: x[-2250, 2250] y[-1500, 1500]", lines[2].Text)
	assert.Equal(t, LineSection, lines[3].Kind)
	assert.Equal(t, "ID 0: (-1125, -750) mm, 0.0°", lines[4].Text)
	assert.Equal(t, "ID 3: (1125, -750) mm, 180.0°", lines[7].Text)
	assert.Equal(t, TeamYellow, lines[7].Team)
	assert.Equal(t, "Position: (0, 0) mm", lines[len(lines)-1].Text)

	assert.Contains(t, s.InfoText(), "Modality: SSL\nField: 4500x3000 mm\n")
}

func TestPathFor(t *testing.T) {
	s := newTestScene(field.ModalityVSSS)
	p, ok := s.PathFor(4)
	require.True(t, ok)
	assert.Equal(t, 4, p.RobotID)
	assert.Len(t, p.Waypoints, DefaultPathWaypoints)

	_, ok = s.PathFor(99)
	assert.False(t, ok)
}
