// Package viewport maps pointer and scroll events onto axis limits.
package viewport

import (
	"fmt"

	"histview/internal/hist"
	"histview/internal/logger"
	"histview/internal/render"
)

// ZoomBase is the per-notch scroll zoom factor.
const ZoomBase = 1.2

// NoDataReadout is shown while the pointer is outside the data region.
const NoDataReadout = "x: –, y: –"

// Point is a position on the plot widget, in widget units.
type Point struct {
	X float64
	Y float64
}

// Surface is the plot as seen by the controller.
type Surface interface {
	// DataAt converts a widget position to data coordinates. inside is
	// false outside the data region; x and y are still extrapolated.
	DataAt(p Point) (x, y float64, inside bool)
	Limits() (x, y hist.Range)
	SetLimits(x, y hist.Range)
	Redraw()
}

// MarkerSink receives click-to-mark points.
type MarkerSink interface {
	AddMarker(x, y float64, style render.Style) render.Handle
}

type Tool int

const (
	ToolNone Tool = iota
	ToolPan
	ToolZoomBox
)

func (t Tool) String() string {
	switch t {
	case ToolPan:
		return "pan"
	case ToolZoomBox:
		return "zoom"
	default:
		return "none"
	}
}

type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

type Direction int

const (
	ScrollUp Direction = iota
	ScrollDown
)

// ZoomMode selects how scroll zoom treats the cursor.
type ZoomMode int

const (
	// ZoomAnchored keeps the data point under the cursor at the same place
	// in the view.
	ZoomAnchored ZoomMode = iota
	// ZoomCentered re-centers the view on the cursor.
	ZoomCentered
)

func (m ZoomMode) String() string {
	if m == ZoomCentered {
		return "center"
	}
	return "anchor"
}

func ParseZoomMode(s string) (ZoomMode, error) {
	switch s {
	case "", "anchor", "anchored":
		return ZoomAnchored, nil
	case "center", "centered":
		return ZoomCentered, nil
	default:
		return ZoomAnchored, fmt.Errorf("unknown zoom mode %q", s)
	}
}

type Controller struct {
	surface Surface
	markers MarkerSink
	readout func(string)
	logger  logger.Logger

	mode ZoomMode
	tool Tool

	xHome, yHome hist.Range
	hasHome      bool

	dragging  bool
	dragStart Point
	dragLast  Point
}

func NewController(surface Surface, markers MarkerSink, readout func(string), log logger.Logger) *Controller {
	if log == nil {
		log = logger.NoOp{}
	}
	if readout == nil {
		readout = func(string) {}
	}
	return &Controller{
		surface: surface,
		markers: markers,
		readout: readout,
		logger:  log,
	}
}

func (c *Controller) SetZoomMode(mode ZoomMode) {
	c.mode = mode
}

func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool activates t, or returns to ToolNone if t is already active.
func (c *Controller) SetTool(t Tool) Tool {
	if c.tool == t {
		c.tool = ToolNone
	} else {
		c.tool = t
	}
	c.dragging = false
	c.logger.Debug("Viewport", "tool changed", map[string]interface{}{"tool": c.tool.String()})
	return c.tool
}

// SetHome records the limits that Reset returns to.
func (c *Controller) SetHome(x, y hist.Range) {
	c.xHome, c.yHome = x, y
	c.hasHome = true
}

// OnPointerMove emits a readout for pos; nil means the pointer left.
func (c *Controller) OnPointerMove(pos *Point) {
	if pos == nil {
		c.readout(NoDataReadout)
		return
	}
	x, y, inside := c.surface.DataAt(*pos)
	if !inside {
		c.readout(NoDataReadout)
		return
	}
	c.readout(FormatReadout(x, y))
}

func FormatReadout(x, y float64) string {
	return fmt.Sprintf("x: %.2f, y: %.2f", x, y)
}

// OnScroll zooms by ZoomBase around the cursor.
func (c *Controller) OnScroll(dir Direction, pos Point) {
	x0, y0, inside := c.surface.DataAt(pos)
	if !inside {
		return
	}

	scale := ZoomBase
	if dir == ScrollUp {
		scale = 1 / ZoomBase
	}

	xr, yr := c.surface.Limits()
	nx, ny := c.zoom(xr, x0, scale), c.zoom(yr, y0, scale)
	if !c.apply(nx, ny) {
		return
	}

	c.logger.Debug("Viewport", "zoomed", map[string]interface{}{
		"scale": scale,
		"x_min": nx.Min, "x_max": nx.Max,
		"y_min": ny.Min, "y_max": ny.Max,
	})
}

func (c *Controller) zoom(r hist.Range, anchor, scale float64) hist.Range {
	if c.mode == ZoomCentered {
		half := r.Span() * scale / 2
		return hist.Range{Min: anchor - half, Max: anchor + half}
	}
	return hist.Range{
		Min: anchor - (anchor-r.Min)*scale,
		Max: anchor + (r.Max-anchor)*scale,
	}
}

// OnClick places a marker when no tool is active.
func (c *Controller) OnClick(pos Point, button Button, tool Tool) {
	if tool != ToolNone || button != ButtonPrimary || c.markers == nil {
		return
	}
	x, y, inside := c.surface.DataAt(pos)
	if !inside {
		return
	}
	c.markers.AddMarker(x, y, render.MarkerStyle)
}

// OnDrag feeds a drag step: pos is the current position, delta the move
// since the previous step.
func (c *Controller) OnDrag(pos, delta Point) {
	switch c.tool {
	case ToolPan:
		c.pan(pos, delta)
	case ToolZoomBox:
		if !c.dragging {
			c.dragging = true
			c.dragStart = Point{X: pos.X - delta.X, Y: pos.Y - delta.Y}
		}
		c.dragLast = pos
	}
}

// OnDragEnd completes a zoom box.
func (c *Controller) OnDragEnd() {
	if c.tool != ToolZoomBox || !c.dragging {
		c.dragging = false
		return
	}
	c.dragging = false

	x0, y0, _ := c.surface.DataAt(c.dragStart)
	x1, y1, _ := c.surface.DataAt(c.dragLast)
	xr, yr := hist.Ordered(x0, x1), hist.Ordered(y0, y1)
	if xr.Span() == 0 || yr.Span() == 0 {
		return
	}
	c.apply(xr, yr)
}

func (c *Controller) pan(pos, delta Point) {
	prev := Point{X: pos.X - delta.X, Y: pos.Y - delta.Y}
	x0, y0, _ := c.surface.DataAt(prev)
	x1, y1, _ := c.surface.DataAt(pos)

	xr, yr := c.surface.Limits()
	c.apply(xr.Shift(x0-x1), yr.Shift(y0-y1))
}

// Reset restores the limits of the last render.
func (c *Controller) Reset() {
	if !c.hasHome {
		return
	}
	c.apply(c.xHome, c.yHome)
}

// apply sets new limits and redraws. A failed redraw is logged and, when the
// surface supports it, rolled back to the previous frame.
func (c *Controller) apply(x, y hist.Range) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if rs, isRestorer := c.surface.(render.Restorer); isRestorer {
				rs.Restore()
			}
			c.logger.Error("Viewport", fmt.Errorf("redraw: %v", r), map[string]interface{}{
				"x_min": x.Min, "x_max": x.Max,
				"y_min": y.Min, "y_max": y.Max,
			})
			ok = false
		}
	}()
	c.surface.SetLimits(x, y)
	c.surface.Redraw()
	return true
}
