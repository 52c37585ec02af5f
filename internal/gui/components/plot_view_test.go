package components

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histview/internal/viewport"
)

func newSizedView(t *testing.T) *PlotView {
	t.Helper()
	test.NewTempApp(t)

	p := NewPlotView()
	p.Resize(fyne.NewSize(200, 100))
	p.SetImage(image.NewRGBA(image.Rect(0, 0, 400, 200)))
	return p
}

func TestPlotViewPointerInPixels(t *testing.T) {
	p := newSizedView(t)

	var got []*viewport.Point
	p.OnPointer = func(pos *viewport.Point) { got = append(got, pos) }

	p.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 20)}})
	p.MouseOut()

	require.Len(t, got, 2)
	require.NotNil(t, got[0])
	assert.Equal(t, viewport.Point{X: 20, Y: 40}, *got[0])
	assert.Nil(t, got[1])
}

func TestPlotViewScrollDirection(t *testing.T) {
	p := newSizedView(t)

	var dirs []viewport.Direction
	p.OnScroll = func(dir viewport.Direction, _ viewport.Point) { dirs = append(dirs, dir) }

	p.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 5)})
	p.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -5)})
	p.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(3, 0)})

	assert.Equal(t, []viewport.Direction{viewport.ScrollUp, viewport.ScrollDown}, dirs)
}

func TestPlotViewTapsAndDrags(t *testing.T) {
	p := newSizedView(t)

	var buttons []viewport.Button
	var drags [][2]viewport.Point
	ended := 0
	p.OnTap = func(_ viewport.Point, b viewport.Button) { buttons = append(buttons, b) }
	p.OnDrag = func(pos, delta viewport.Point) { drags = append(drags, [2]viewport.Point{pos, delta}) }
	p.OnDragEnd = func() { ended++ }

	p.Tapped(&fyne.PointEvent{Position: fyne.NewPos(1, 1)})
	p.TappedSecondary(&fyne.PointEvent{Position: fyne.NewPos(1, 1)})
	p.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 25)},
		Dragged:    fyne.NewDelta(5, -5),
	})
	p.DragEnd()

	assert.Equal(t, []viewport.Button{viewport.ButtonPrimary, viewport.ButtonSecondary}, buttons)
	require.Len(t, drags, 1)
	assert.Equal(t, viewport.Point{X: 100, Y: 50}, drags[0][0])
	assert.Equal(t, viewport.Point{X: 10, Y: -10}, drags[0][1])
	assert.Equal(t, 1, ended)
}

func TestPlotViewReportsPixelSize(t *testing.T) {
	test.NewTempApp(t)
	p := NewPlotView()

	var w, h int
	p.OnPixelSize = func(width, height int) { w, h = width, height }
	p.Resize(fyne.NewSize(300, 150))

	assert.Equal(t, 300, w)
	assert.Equal(t, 150, h)
}
