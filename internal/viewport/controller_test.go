package viewport

import (
	"testing"

	"histview/internal/hist"
	"histview/internal/logger"
	"histview/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface maps a 100x100 data area at (10,10) with y growing downwards.
type fakeSurface struct {
	xr, yr  hist.Range
	redraws int
}

func newSurface() *fakeSurface {
	return &fakeSurface{
		xr: hist.Range{Min: 0, Max: 10},
		yr: hist.Range{Min: 0, Max: 100},
	}
}

func (s *fakeSurface) DataAt(p Point) (float64, float64, bool) {
	fx := (p.X - 10) / 100
	fy := (110 - p.Y) / 100
	inside := fx >= 0 && fx <= 1 && fy >= 0 && fy <= 1
	return s.xr.Min + fx*s.xr.Span(), s.yr.Min + fy*s.yr.Span(), inside
}

func (s *fakeSurface) Limits() (hist.Range, hist.Range) { return s.xr, s.yr }
func (s *fakeSurface) SetLimits(x, y hist.Range)        { s.xr, s.yr = x, y }
func (s *fakeSurface) Redraw()                          { s.redraws++ }

type markerLog struct{ points [][2]float64 }

func (m *markerLog) AddMarker(x, y float64, style render.Style) render.Handle {
	m.points = append(m.points, [2]float64{x, y})
	return render.Handle{}
}

func newController() (*Controller, *fakeSurface, *markerLog, *[]string) {
	s := newSurface()
	m := &markerLog{}
	var readouts []string
	c := NewController(s, m, func(r string) { readouts = append(readouts, r) }, logger.NoOp{})
	return c, s, m, &readouts
}

func TestPointerReadout(t *testing.T) {
	c, s, _, readouts := newController()

	c.OnPointerMove(&Point{X: 30, Y: 90})
	c.OnPointerMove(&Point{X: 500, Y: 90})
	c.OnPointerMove(nil)

	assert.Equal(t, []string{"x: 2.00, y: 20.00", NoDataReadout, NoDataReadout}, *readouts)
	assert.Zero(t, s.redraws)
	assert.Equal(t, hist.Range{Min: 0, Max: 10}, s.xr)
}

func TestScrollZoomInIsAnchoredAtCursor(t *testing.T) {
	c, s, _, _ := newController()
	pos := Point{X: 30, Y: 90}

	x0, y0, _ := s.DataAt(pos)
	fx := (x0 - s.xr.Min) / s.xr.Span()
	fy := (y0 - s.yr.Min) / s.yr.Span()
	spanX, spanY := s.xr.Span(), s.yr.Span()

	c.OnScroll(ScrollUp, pos)

	assert.Equal(t, 1, s.redraws)
	assert.InDelta(t, spanX/ZoomBase, s.xr.Span(), 1e-9)
	assert.InDelta(t, spanY/ZoomBase, s.yr.Span(), 1e-9)
	assert.InDelta(t, fx, (x0-s.xr.Min)/s.xr.Span(), 1e-9)
	assert.InDelta(t, fy, (y0-s.yr.Min)/s.yr.Span(), 1e-9)

	x1, y1, inside := s.DataAt(pos)
	require.True(t, inside)
	assert.InDelta(t, x0, x1, 1e-9)
	assert.InDelta(t, y0, y1, 1e-9)
}

func TestScrollZoomOutGrowsRanges(t *testing.T) {
	c, s, _, _ := newController()

	c.OnScroll(ScrollDown, Point{X: 60, Y: 60})

	assert.InDelta(t, 10*ZoomBase, s.xr.Span(), 1e-9)
	assert.InDelta(t, 100*ZoomBase, s.yr.Span(), 1e-9)
}

func TestScrollOutsideDataRegionIsNoop(t *testing.T) {
	c, s, _, _ := newController()

	c.OnScroll(ScrollUp, Point{X: 0, Y: 0})

	assert.Zero(t, s.redraws)
	assert.Equal(t, hist.Range{Min: 0, Max: 10}, s.xr)
}

func TestScrollCenteredMode(t *testing.T) {
	c, s, _, _ := newController()
	c.SetZoomMode(ZoomCentered)

	c.OnScroll(ScrollUp, Point{X: 30, Y: 90})

	assert.InDelta(t, 2.0, (s.xr.Min+s.xr.Max)/2, 1e-9)
	assert.InDelta(t, 20.0, (s.yr.Min+s.yr.Max)/2, 1e-9)
	assert.InDelta(t, 10/ZoomBase, s.xr.Span(), 1e-9)
}

func TestClickAddsMarkerOnlyWhenIdle(t *testing.T) {
	c, _, m, _ := newController()
	pos := Point{X: 30, Y: 90}

	c.OnClick(pos, ButtonSecondary, ToolNone)
	c.OnClick(pos, ButtonPrimary, ToolPan)
	c.OnClick(pos, ButtonPrimary, ToolZoomBox)
	c.OnClick(Point{X: 0, Y: 0}, ButtonPrimary, ToolNone)
	assert.Empty(t, m.points)

	c.OnClick(pos, ButtonPrimary, ToolNone)
	require.Len(t, m.points, 1)
	assert.InDelta(t, 2.0, m.points[0][0], 1e-9)
	assert.InDelta(t, 20.0, m.points[0][1], 1e-9)
}

func TestSetToolToggles(t *testing.T) {
	c, _, _, _ := newController()

	assert.Equal(t, ToolNone, c.Tool())
	assert.Equal(t, ToolPan, c.SetTool(ToolPan))
	assert.Equal(t, ToolZoomBox, c.SetTool(ToolZoomBox))
	assert.Equal(t, ToolNone, c.SetTool(ToolZoomBox))
}

func TestPanTranslatesLimits(t *testing.T) {
	c, s, _, _ := newController()
	c.SetTool(ToolPan)

	// Drag 10 units right and 10 units down: the view moves left and up.
	c.OnDrag(Point{X: 40, Y: 70}, Point{X: 10, Y: 10})
	c.OnDragEnd()

	assert.InDelta(t, -1.0, s.xr.Min, 1e-9)
	assert.InDelta(t, 9.0, s.xr.Max, 1e-9)
	assert.InDelta(t, 10.0, s.yr.Min, 1e-9)
	assert.InDelta(t, 110.0, s.yr.Max, 1e-9)
	assert.Equal(t, 1, s.redraws)
}

func TestDragWithoutToolDoesNothing(t *testing.T) {
	c, s, _, _ := newController()

	c.OnDrag(Point{X: 40, Y: 70}, Point{X: 10, Y: 10})
	c.OnDragEnd()

	assert.Zero(t, s.redraws)
}

func TestZoomBoxSetsLimits(t *testing.T) {
	c, s, _, _ := newController()
	c.SetTool(ToolZoomBox)

	c.OnDrag(Point{X: 20, Y: 100}, Point{X: 0, Y: 0})
	c.OnDrag(Point{X: 60, Y: 60}, Point{X: 40, Y: -40})
	assert.Zero(t, s.redraws)
	c.OnDragEnd()

	assert.Equal(t, 1, s.redraws)
	assert.InDelta(t, 1.0, s.xr.Min, 1e-9)
	assert.InDelta(t, 5.0, s.xr.Max, 1e-9)
	assert.InDelta(t, 10.0, s.yr.Min, 1e-9)
	assert.InDelta(t, 50.0, s.yr.Max, 1e-9)
}

func TestZoomBoxIgnoresDegenerateBox(t *testing.T) {
	c, s, _, _ := newController()
	c.SetTool(ToolZoomBox)

	c.OnDrag(Point{X: 20, Y: 100}, Point{X: 0, Y: 0})
	c.OnDragEnd()

	assert.Zero(t, s.redraws)
}

func TestResetRestoresHome(t *testing.T) {
	c, s, _, _ := newController()

	c.Reset()
	assert.Zero(t, s.redraws)

	c.SetHome(hist.Range{Min: 0, Max: 10}, hist.Range{Min: 0, Max: 100})
	c.OnScroll(ScrollUp, Point{X: 30, Y: 90})
	c.Reset()

	assert.Equal(t, hist.Range{Min: 0, Max: 10}, s.xr)
	assert.Equal(t, hist.Range{Min: 0, Max: 100}, s.yr)
	assert.Equal(t, 2, s.redraws)
}

func TestParseZoomMode(t *testing.T) {
	m, err := ParseZoomMode("")
	require.NoError(t, err)
	assert.Equal(t, ZoomAnchored, m)

	m, err = ParseZoomMode("center")
	require.NoError(t, err)
	assert.Equal(t, ZoomCentered, m)

	_, err = ParseZoomMode("sideways")
	assert.Error(t, err)
}

// brokenSurface fails every redraw and rolls back to the limits it was
// created with.
type brokenSurface struct {
	*fakeSurface
	shownX, shownY hist.Range
	restores       int
}

func (s *brokenSurface) Redraw() { panic("raster failed") }

func (s *brokenSurface) Restore() {
	s.restores++
	s.xr, s.yr = s.shownX, s.shownY
}

func TestFailedRedrawRestoresLimits(t *testing.T) {
	s := &brokenSurface{fakeSurface: newSurface()}
	s.shownX, s.shownY = s.xr, s.yr
	c := NewController(s, nil, nil, logger.NoOp{})

	assert.NotPanics(t, func() { c.OnScroll(ScrollUp, Point{X: 60, Y: 60}) })
	assert.Equal(t, 1, s.restores)
	assert.Equal(t, hist.Range{Min: 0, Max: 10}, s.xr)
	assert.Equal(t, hist.Range{Min: 0, Max: 100}, s.yr)

	c.SetHome(hist.Range{Min: 2, Max: 3}, hist.Range{Min: 4, Max: 5})
	assert.NotPanics(t, c.Reset)
	assert.Equal(t, 2, s.restores)
}
