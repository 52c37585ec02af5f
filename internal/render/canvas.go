// Package render draws histograms and overlays onto a Canvas.
package render

import (
	"image/color"

	"histview/internal/hist"
)

// Canvas is a retained drawing surface. Mutations accumulate until Redraw,
// which repaints once.
type Canvas interface {
	// Reset drops the base content, overlays, title and labels.
	Reset()
	SetTitle(title string)
	SetYLabel(label string)
	SetLimits(x, y hist.Range)
	DrawStep(edges, counts []float64)
	DrawHeatmap(hm Heatmap)
	DrawCurve(xs, ys []float64, style Style)
	// DrawMarker adds a point drawn above every other layer.
	DrawMarker(x, y float64, style Style)
	Redraw()
}

// Restorer is implemented by canvases that can drop the mutations made since
// their last successful Redraw.
type Restorer interface {
	Restore()
}

func restore(c Canvas) {
	if r, ok := c.(Restorer); ok {
		r.Restore()
	}
}

// Origin places the first row of a heatmap.
type Origin int

const (
	OriginLowerLeft Origin = iota
	OriginUpperLeft
)

// PaletteViridis is the only palette the dispatcher asks for.
const PaletteViridis = "viridis"

// Heatmap is a grid of flat cells, Values[ix][iy], stretched to fill the
// data area. Cells are never interpolated.
type Heatmap struct {
	XEdges  []float64
	YEdges  []float64
	Values  [][]float64
	Origin  Origin
	Palette string
}

// Extent returns [x0, xN, y0, yM].
func (h Heatmap) Extent() [4]float64 {
	return [4]float64{
		h.XEdges[0], h.XEdges[len(h.XEdges)-1],
		h.YEdges[0], h.YEdges[len(h.YEdges)-1],
	}
}

// ValueRange returns the smallest and largest finite cell value.
func (h Heatmap) ValueRange() (lo, hi float64) {
	first := true
	for _, col := range h.Values {
		for _, v := range col {
			if v != v {
				continue
			}
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}

type Style struct {
	Color  color.Color
	Width  float64
	Radius float64
}

var (
	CurveStyle  = Style{Color: color.NRGBA{R: 214, G: 39, B: 40, A: 255}, Width: 1.5}
	MarkerStyle = Style{Color: color.NRGBA{R: 214, G: 39, B: 40, A: 255}, Radius: 4}
)
