// Package rendertest provides a Canvas that records what was drawn.
package rendertest

import (
	"histview/internal/hist"
	"histview/internal/render"
)

type Step struct {
	Edges  []float64
	Counts []float64
}

type Curve struct {
	X     []float64
	Y     []float64
	Style render.Style
}

type Marker struct {
	X     float64
	Y     float64
	Style render.Style
}

// Scene is the visible state of a Recorder.
type Scene struct {
	Title    string
	YLabel   string
	XLimits  hist.Range
	YLimits  hist.Range
	Steps    []Step
	Heatmaps []render.Heatmap
	Curves   []Curve
	Markers  []Marker
}

// Recorder implements render.Canvas. Scene is what the last Redraw showed;
// Pending accumulates mutations until then.
type Recorder struct {
	Pending  Scene
	Scene    Scene
	Redraws  int
	Resets   int
	Restores int
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Reset() {
	r.Resets++
	r.Pending = Scene{}
}

func (r *Recorder) SetTitle(title string)  { r.Pending.Title = title }
func (r *Recorder) SetYLabel(label string) { r.Pending.YLabel = label }

func (r *Recorder) SetLimits(x, y hist.Range) {
	r.Pending.XLimits = x
	r.Pending.YLimits = y
}

func (r *Recorder) DrawStep(edges, counts []float64) {
	r.Pending.Steps = append(r.Pending.Steps, Step{Edges: edges, Counts: counts})
}

func (r *Recorder) DrawHeatmap(hm render.Heatmap) {
	r.Pending.Heatmaps = append(r.Pending.Heatmaps, hm)
}

func (r *Recorder) DrawCurve(xs, ys []float64, style render.Style) {
	r.Pending.Curves = append(r.Pending.Curves, Curve{X: xs, Y: ys, Style: style})
}

func (r *Recorder) DrawMarker(x, y float64, style render.Style) {
	r.Pending.Markers = append(r.Pending.Markers, Marker{X: x, Y: y, Style: style})
}

func (r *Recorder) Redraw() {
	r.Redraws++
	r.Scene = r.Pending.clone()
}

// Restore puts Pending back to the last redrawn Scene.
func (r *Recorder) Restore() {
	r.Restores++
	r.Pending = r.Scene.clone()
}

func (s Scene) clone() Scene {
	c := s
	c.Steps = append([]Step(nil), s.Steps...)
	c.Heatmaps = append([]render.Heatmap(nil), s.Heatmaps...)
	c.Curves = append([]Curve(nil), s.Curves...)
	c.Markers = append([]Marker(nil), s.Markers...)
	return c
}
