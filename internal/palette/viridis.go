// Package palette provides the colormaps used for 2D histograms.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"gocv.io/x/gocv"
	"gonum.org/v1/plot/palette"
)

// Size is the number of entries in every palette built here.
const Size = 256

// colormapViridis is cv::COLORMAP_VIRIDIS; gocv has no named constant for it.
const colormapViridis = gocv.ColormapTypes(16)

// Colors is a fixed list of colors.
type Colors []color.Color

func (c Colors) Colors() []color.Color { return c }

var (
	viridisOnce sync.Once
	viridis     Colors
	viridisErr  error
)

// Viridis returns the 256-entry viridis colormap.
func Viridis() (palette.Palette, error) {
	viridisOnce.Do(func() {
		viridis, viridisErr = fromColormap(colormapViridis)
	})
	return viridis, viridisErr
}

// Named resolves a palette by name.
func Named(name string) (palette.Palette, error) {
	switch name {
	case "", "viridis":
		return Viridis()
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}

// fromColormap runs a 0..255 gray ramp through an OpenCV colormap.
func fromColormap(kind gocv.ColormapTypes) (Colors, error) {
	ramp := gocv.NewMatWithSize(1, Size, gocv.MatTypeCV8UC1)
	defer ramp.Close()
	for i := 0; i < Size; i++ {
		ramp.SetUCharAt(0, i, uint8(i))
	}

	mapped := gocv.NewMat()
	defer mapped.Close()
	gocv.ApplyColorMap(ramp, &mapped, kind)

	if mapped.Empty() || mapped.Cols() != Size || mapped.Channels() != 3 {
		return nil, fmt.Errorf("colormap %d produced %dx%d with %d channels",
			kind, mapped.Rows(), mapped.Cols(), mapped.Channels())
	}

	out := make(Colors, Size)
	for i := 0; i < Size; i++ {
		bgr := mapped.GetVecbAt(0, i)
		out[i] = color.NRGBA{R: bgr[2], G: bgr[1], B: bgr[0], A: 255}
	}
	return out, nil
}

// At maps v from [lo, hi] onto pal. Values outside the range are clamped,
// NaN maps to transparent.
func At(pal palette.Palette, v, lo, hi float64) color.Color {
	colors := pal.Colors()
	if len(colors) == 0 || math.IsNaN(v) {
		return color.Transparent
	}
	if hi <= lo {
		return colors[0]
	}
	t := (v - lo) / (hi - lo)
	i := int(math.Floor(t * float64(len(colors))))
	if i < 0 {
		i = 0
	}
	if i >= len(colors) {
		i = len(colors) - 1
	}
	return colors[i]
}
