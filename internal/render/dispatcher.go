package render

import (
	"context"
	"errors"
	"fmt"
	"math"

	"histview/internal/hist"
	"histview/internal/logger"
)

// CountsLabel is the y axis caption of every 1D plot.
const CountsLabel = "Counts"

// Result describes a successful render.
type Result struct {
	Kind  hist.Kind
	Title string
	// XHome and YHome are the limits set by the render, used by the
	// viewport to reset.
	XHome hist.Range
	YHome hist.Range
}

type Timer interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
}

type Dispatcher struct {
	canvas Canvas
	logger logger.Logger
	timer  Timer
}

func NewDispatcher(canvas Canvas, log logger.Logger, timer Timer) *Dispatcher {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Dispatcher{canvas: canvas, logger: log, timer: timer}
}

// Render replaces the canvas content with obj. Objects that cannot be drawn
// leave the canvas untouched; the error is logged and returned. A canvas that
// fails mid-render is restored when it implements Restorer.
func (d *Dispatcher) Render(obj hist.Node, title string) (res Result, err error) {
	if d.timer != nil {
		ctx := d.timer.StartTiming("render")
		defer d.timer.EndTiming(ctx)
	}

	defer func() {
		if r := recover(); r != nil {
			restore(d.canvas)
			err = fmt.Errorf("render %q: %v", title, r)
			d.logger.Error("RenderDispatcher", err, nil)
		}
	}()

	res, err = d.render(obj, title)
	if err != nil {
		var unsupported *UnsupportedTypeError
		if errors.As(err, &unsupported) {
			d.logger.Warning("RenderDispatcher", "unsupported object type", map[string]interface{}{
				"class": unsupported.Class,
				"title": title,
			})
		} else {
			d.logger.Error("RenderDispatcher", err, map[string]interface{}{"title": title})
		}
		return Result{}, err
	}

	d.logger.Debug("RenderDispatcher", "rendered", map[string]interface{}{
		"title": title,
		"kind":  res.Kind.String(),
	})
	return res, nil
}

func (d *Dispatcher) render(obj hist.Node, title string) (Result, error) {
	if obj == nil {
		return Result{}, &UnsupportedTypeError{Class: "<nil>"}
	}

	class := obj.ClassName()
	switch {
	case hist.Is2DClass(class):
		h, ok := obj.(*hist.Hist2D)
		if !ok {
			return Result{}, &UnsupportedTypeError{Class: class}
		}
		return d.render2D(h, title)
	case hist.Is1DClass(class):
		h, ok := obj.(*hist.Hist1D)
		if !ok {
			return Result{}, &UnsupportedTypeError{Class: class}
		}
		return d.render1D(h, title)
	default:
		return Result{}, &UnsupportedTypeError{Class: class}
	}
}

func (d *Dispatcher) render1D(h *hist.Hist1D, title string) (Result, error) {
	if err := h.Validate(); err != nil {
		return Result{}, &InvalidHistogramError{Name: h.Name, Err: err}
	}

	res := Result{
		Kind:  hist.KindHist1D,
		Title: title,
		XHome: hist.Range{Min: h.Edges[0], Max: h.Edges[len(h.Edges)-1]},
		YHome: countsRange(h.Counts),
	}

	d.canvas.Reset()
	d.canvas.DrawStep(h.Edges, h.Counts)
	d.canvas.SetYLabel(CountsLabel)
	d.canvas.SetTitle(title)
	d.canvas.SetLimits(res.XHome, res.YHome)
	d.canvas.Redraw()

	return res, nil
}

func (d *Dispatcher) render2D(h *hist.Hist2D, title string) (Result, error) {
	if err := h.Validate(); err != nil {
		return Result{}, &InvalidHistogramError{Name: h.Name, Err: err}
	}

	hm := Heatmap{
		XEdges:  h.XEdges,
		YEdges:  h.YEdges,
		Values:  h.Values,
		Origin:  OriginLowerLeft,
		Palette: PaletteViridis,
	}
	ext := hm.Extent()
	res := Result{
		Kind:  hist.KindHist2D,
		Title: title,
		XHome: hist.Range{Min: ext[0], Max: ext[1]},
		YHome: hist.Range{Min: ext[2], Max: ext[3]},
	}

	d.canvas.Reset()
	d.canvas.DrawHeatmap(hm)
	d.canvas.SetTitle(title)
	d.canvas.SetLimits(res.XHome, res.YHome)
	d.canvas.Redraw()

	return res, nil
}

// countsRange spans zero and the largest count with a little headroom.
func countsRange(counts []float64) hist.Range {
	lo, hi := 0.0, 0.0
	for _, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			continue
		}
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := 0.05 * (hi - lo)
	if lo < 0 {
		lo -= pad
	}
	return hist.Range{Min: lo, Max: hi + pad}
}
