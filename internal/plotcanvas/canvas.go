// Package plotcanvas renders histograms with hplot and rasterizes them for
// display.
package plotcanvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"histview/internal/hist"
	hpalette "histview/internal/palette"
	"histview/internal/render"
	"histview/internal/viewport"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	minSide       = 64
	pointsPerInch = 72
)

// PaletteFunc resolves a palette name from a render.Heatmap.
type PaletteFunc func(name string) (palette.Palette, error)

type Option func(*Canvas)

func WithPalette(fn PaletteFunc) Option {
	return func(c *Canvas) { c.palettes = fn }
}

// WithRedrawHook is called with the fresh image after every Redraw.
func WithRedrawHook(fn func(image.Image)) Option {
	return func(c *Canvas) { c.onRedraw = fn }
}

type step struct {
	edges  []float64
	counts []float64
}

type curve struct {
	xs, ys []float64
	style  render.Style
}

type marker struct {
	x, y  float64
	style render.Style
}

type scene struct {
	title  string
	ylabel string
	xr, yr hist.Range

	step    *step
	heatmap *render.Heatmap
	curves  []curve
	markers []marker
}

func (s scene) clone() scene {
	c := s
	c.curves = append([]curve(nil), s.curves...)
	c.markers = append([]marker(nil), s.markers...)
	return c
}

// Canvas keeps the scene of one plot and rasterizes it on Redraw. Image
// coordinates are pixels, origin top-left, one pixel per point.
type Canvas struct {
	width, height int
	palettes      PaletteFunc
	onRedraw      func(image.Image)

	scene
	// shown is the scene of the last successful Redraw.
	shown scene

	img     image.Image
	data    vg.Rectangle
	drawn   bool
	redraws int
}

var (
	_ render.Canvas    = (*Canvas)(nil)
	_ render.Restorer  = (*Canvas)(nil)
	_ viewport.Surface = (*Canvas)(nil)
)

func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{palettes: hpalette.Named}
	c.Resize(width, height)
	c.Reset()
	c.shown = c.scene.clone()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resize changes the raster size used by the next Redraw.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, minSide)
	c.height = max(height, minSide)
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

func (c *Canvas) Reset() {
	c.scene = scene{
		xr: hist.Range{Min: 0, Max: 1},
		yr: hist.Range{Min: 0, Max: 1},
	}
}

// Restore drops every mutation made since the last successful Redraw.
func (c *Canvas) Restore() {
	c.scene = c.shown.clone()
}

func (c *Canvas) SetTitle(title string)  { c.title = title }
func (c *Canvas) SetYLabel(label string) { c.ylabel = label }

func (c *Canvas) SetLimits(x, y hist.Range) {
	c.xr, c.yr = x, y
}

func (c *Canvas) Limits() (x, y hist.Range) {
	return c.xr, c.yr
}

func (c *Canvas) DrawStep(edges, counts []float64) {
	c.step = &step{edges: edges, counts: counts}
	c.heatmap = nil
}

func (c *Canvas) DrawHeatmap(hm render.Heatmap) {
	c.heatmap = &hm
	c.step = nil
}

func (c *Canvas) DrawCurve(xs, ys []float64, style render.Style) {
	c.curves = append(c.curves, curve{xs: xs, ys: ys, style: style})
}

func (c *Canvas) DrawMarker(x, y float64, style render.Style) {
	c.markers = append(c.markers, marker{x: x, y: y, style: style})
}

// Redraw rasterizes the scene. Plotting failures panic; callers recover and
// call Restore to get back to the last frame.
func (c *Canvas) Redraw() {
	p, err := c.plot()
	if err != nil {
		panic(err)
	}

	// At 72 DPI one vg point is one image pixel, so c.data is in pixels.
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.width), vg.Length(c.height)),
		vgimg.UseDPI(pointsPerInch),
	)
	dc := draw.New(img)
	p.Plot.Draw(dc)

	c.data = p.Plot.DataCanvas(dc).Rectangle
	c.img = img.Image()
	c.shown = c.scene.clone()
	c.drawn = true
	c.redraws++

	if c.onRedraw != nil {
		c.onRedraw(c.img)
	}
}

func (c *Canvas) plot() (*hplot.Plot, error) {
	p := hplot.New()
	p.Title.Text = c.title
	p.Y.Label.Text = c.ylabel

	switch {
	case c.step != nil:
		h := hbook.NewH1DFromEdges(c.step.edges)
		for i, n := range c.step.counts {
			if math.IsNaN(n) || math.IsInf(n, 0) {
				continue
			}
			h.Fill(0.5*(c.step.edges[i]+c.step.edges[i+1]), n)
		}
		hh := hplot.NewH1D(h)
		hh.LineStyle.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
		hh.LineStyle.Width = vg.Points(1.5)
		p.Add(hh)
	case c.heatmap != nil:
		pal, err := c.palettes(c.heatmap.Palette)
		if err != nil {
			return nil, err
		}
		p.Add(&cells{hm: *c.heatmap, palette: pal})
	}

	for _, cv := range c.curves {
		xys := make(plotter.XYs, len(cv.xs))
		for i := range cv.xs {
			xys[i].X, xys[i].Y = cv.xs[i], cv.ys[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("curve overlay: %w", err)
		}
		line.LineStyle.Color = cv.style.Color
		line.LineStyle.Width = vg.Points(cv.style.Width)
		p.Add(line)
	}

	if len(c.markers) > 0 {
		xys := make(plotter.XYs, len(c.markers))
		for i, m := range c.markers {
			xys[i].X, xys[i].Y = m.x, m.y
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("marker overlay: %w", err)
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			st := c.markers[i].style
			return draw.GlyphStyle{Color: st.Color, Radius: vg.Points(st.Radius), Shape: draw.CircleGlyph{}}
		}
		p.Add(sc)
	}

	// Add widens the axes to the plotters' data; the scene's limits win.
	p.X.Min, p.X.Max = c.xr.Min, c.xr.Max
	p.Y.Min, p.Y.Max = c.yr.Min, c.yr.Max
	return p, nil
}

// Image is the last rasterized frame, nil before the first Redraw.
func (c *Canvas) Image() image.Image {
	return c.img
}

func (c *Canvas) Redraws() int {
	return c.redraws
}

// DataAt maps an image pixel of the last frame to data coordinates.
func (c *Canvas) DataAt(p viewport.Point) (x, y float64, inside bool) {
	if !c.drawn {
		return 0, 0, false
	}
	r := c.data
	w, h := float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y)
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}

	// vg has y pointing up from the bottom edge.
	px := p.X - float64(r.Min.X)
	py := float64(c.height) - p.Y - float64(r.Min.Y)

	xr, yr := c.shown.xr, c.shown.yr
	x = xr.Min + px/w*xr.Span()
	y = yr.Min + py/h*yr.Span()
	inside = px >= 0 && px <= w && py >= 0 && py <= h
	return x, y, inside
}

// PixelAt is the inverse of DataAt.
func (c *Canvas) PixelAt(x, y float64) viewport.Point {
	r := c.data
	w, h := float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y)
	xr, yr := c.shown.xr, c.shown.yr
	px := float64(r.Min.X) + (x-xr.Min)/xr.Span()*w
	py := float64(r.Min.Y) + (y-yr.Min)/yr.Span()*h
	return viewport.Point{X: px, Y: float64(c.height) - py}
}
