package render

import (
	"fmt"
	"math"

	"histview/internal/logger"
)

// Handle identifies one overlay until the next base render or clear.
type Handle struct {
	generation uint64
	id         int
}

// Overlays layers curves and markers over the current base render.
type Overlays struct {
	canvas     Canvas
	rerender   func() error
	logger     logger.Logger
	generation uint64
	count      int
}

// NewOverlays returns a manager drawing on canvas. rerender must redraw the
// current selection from scratch; ClearOverlays relies on it.
func NewOverlays(canvas Canvas, rerender func() error, log logger.Logger) *Overlays {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Overlays{canvas: canvas, rerender: rerender, logger: log, generation: 1}
}

func (o *Overlays) AddCurve(xs, ys []float64, style Style) (Handle, error) {
	if len(xs) != len(ys) {
		return Handle{}, fmt.Errorf("curve has %d x values and %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Handle{}, fmt.Errorf("curve is empty")
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Handle{}, fmt.Errorf("curve point %d is not finite: (%v, %v)", i, xs[i], ys[i])
		}
	}

	if err := o.paint(func() { o.canvas.DrawCurve(xs, ys, style) }); err != nil {
		o.logger.Error("OverlayManager", err, map[string]interface{}{"points": len(xs)})
		return Handle{}, err
	}

	o.logger.Debug("OverlayManager", "curve added", map[string]interface{}{"points": len(xs)})
	return o.next(), nil
}

// AddMarker returns an invalid Handle when the point cannot be drawn.
func (o *Overlays) AddMarker(x, y float64, style Style) Handle {
	fields := map[string]interface{}{"x": x, "y": y}
	if !finite(x) || !finite(y) {
		o.logger.Warning("OverlayManager", "marker is not finite", fields)
		return Handle{}
	}
	if err := o.paint(func() { o.canvas.DrawMarker(x, y, style) }); err != nil {
		o.logger.Error("OverlayManager", err, fields)
		return Handle{}
	}

	o.logger.Debug("OverlayManager", "marker added", fields)
	return o.next()
}

// ClearOverlays redraws the current selection from scratch.
func (o *Overlays) ClearOverlays() error {
	o.Invalidate()
	if o.rerender == nil {
		return nil
	}
	return o.rerender()
}

// Invalidate forgets every handle handed out so far.
func (o *Overlays) Invalidate() {
	o.generation++
	o.count = 0
}

func (o *Overlays) Valid(h Handle) bool {
	return h.generation == o.generation && h.id > 0 && h.id <= o.count
}

// Len is the number of overlays added since the last invalidation.
func (o *Overlays) Len() int {
	return o.count
}

func (o *Overlays) next() Handle {
	o.count++
	return Handle{generation: o.generation, id: o.count}
}

// paint adds one layer and redraws. A canvas that fails to redraw is
// restored to its last frame.
func (o *Overlays) paint(layer func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			restore(o.canvas)
			err = fmt.Errorf("redraw overlay: %v", r)
		}
	}()
	layer()
	o.canvas.Redraw()
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
