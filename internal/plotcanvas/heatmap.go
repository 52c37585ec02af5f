package plotcanvas

import (
	"gonum.org/v1/plot"
	gpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"histview/internal/palette"
	"histview/internal/render"
)

// cells draws a heatmap as one filled rectangle per bin, clipped to the
// data area.
type cells struct {
	hm      render.Heatmap
	palette gpalette.Palette
}

var _ plot.Plotter = (*cells)(nil)

func (c *cells) Plot(dc draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&dc)
	lo, hi := c.hm.ValueRange()
	ny := len(c.hm.YEdges) - 1

	for ix, col := range c.hm.Values {
		x0, x1 := trX(c.hm.XEdges[ix]), trX(c.hm.XEdges[ix+1])
		for iy, v := range col {
			row := iy
			if c.hm.Origin == render.OriginUpperLeft {
				row = ny - 1 - iy
			}
			y0, y1 := trY(c.hm.YEdges[row]), trY(c.hm.YEdges[row+1])

			r, ok := clip(dc.Rectangle, x0, x1, y0, y1)
			if !ok {
				continue
			}
			dc.FillPolygon(palette.At(c.palette, v, lo, hi), []vg.Point{
				{X: r.Min.X, Y: r.Min.Y},
				{X: r.Max.X, Y: r.Min.Y},
				{X: r.Max.X, Y: r.Max.Y},
				{X: r.Min.X, Y: r.Max.Y},
			})
		}
	}
}

func clip(area vg.Rectangle, x0, x1, y0, y1 vg.Length) (vg.Rectangle, bool) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	r := vg.Rectangle{
		Min: vg.Point{X: max(x0, area.Min.X), Y: max(y0, area.Min.Y)},
		Max: vg.Point{X: min(x1, area.Max.X), Y: min(y1, area.Max.Y)},
	}
	return r, r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}
