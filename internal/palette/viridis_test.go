package palette

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func near(t *testing.T, want color.NRGBA, got color.Color) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	assert.InDelta(t, want.R, uint8(r>>8), 2)
	assert.InDelta(t, want.G, uint8(g>>8), 2)
	assert.InDelta(t, want.B, uint8(b>>8), 2)
}

func TestViridis(t *testing.T) {
	pal, err := Viridis()
	require.NoError(t, err)

	colors := pal.Colors()
	require.Len(t, colors, Size)
	near(t, color.NRGBA{R: 68, G: 1, B: 84}, colors[0])
	near(t, color.NRGBA{R: 253, G: 231, B: 37}, colors[Size-1])

	again, err := Named("viridis")
	require.NoError(t, err)
	assert.Equal(t, colors, again.Colors())

	_, err = Named("jet")
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	pal := Colors{red, blue}

	assert.Equal(t, red, At(pal, 0, 0, 10))
	assert.Equal(t, red, At(pal, 4.9, 0, 10))
	assert.Equal(t, blue, At(pal, 5, 0, 10))
	assert.Equal(t, blue, At(pal, 10, 0, 10))
	assert.Equal(t, blue, At(pal, 100, 0, 10))
	assert.Equal(t, red, At(pal, -3, 0, 10))
	assert.Equal(t, red, At(pal, 7, 3, 3))
	assert.Equal(t, color.Transparent, At(pal, math.NaN(), 0, 10))
	assert.Equal(t, color.Transparent, At(Colors{}, 1, 0, 10))
}
