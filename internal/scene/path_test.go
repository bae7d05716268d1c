package scene

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Pitch-Sense/internal/field"
)

func TestGeneratePath_StaysInBounds(t *testing.T) {
	for _, m := range []field.Modality{field.ModalitySSL, field.ModalityVSSS} {
		b := field.ParamsFor(m).Bounds()
		for seed := int64(0); seed < 200; seed++ {
			rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test only
			start := Waypoint{X: b.MaxX, Y: b.MinY, Heading: rng.Float64() * 7}
			wps := GeneratePath(start, 150, b, rng)
			require.Len(t, wps, 150)
			for i, wp := range wps {
				require.True(t, b.Contains(wp.X, wp.Y),
					"%s seed=%d waypoint %d out of bounds: (%f, %f)", m, seed, i, wp.X, wp.Y)
			}
		}
	}
}

func TestGeneratePath_ClampsOutOfBoundsStart(t *testing.T) {
	b := field.ParamsFor(field.ModalityVSSS).Bounds()
	rng := rand.New(rand.NewSource(3)) // #nosec G404
	wps := GeneratePath(Waypoint{X: 9999, Y: -9999}, 3, b, rng)
	require.NotEmpty(t, wps)
	assert.Equal(t, b.MaxX, wps[0].X)
	assert.Equal(t, b.MinY, wps[0].Y)
}

func TestGeneratePath_DeterministicPerSeed(t *testing.T) {
	b := field.ParamsFor(field.ModalitySSL).Bounds()
	a := GeneratePath(Waypoint{}, 20, b, rand.New(rand.NewSource(11))) // #nosec G404
	c := GeneratePath(Waypoint{}, 20, b, rand.New(rand.NewSource(11))) // #nosec G404
	assert.Equal(t, a, c)
}

func TestGeneratePath_Empty(t *testing.T) {
	b := field.ParamsFor(field.ModalitySSL).Bounds()
	assert.Nil(t, GeneratePath(Waypoint{}, 0, b, rand.New(rand.NewSource(1)))) // #nosec G404
}
