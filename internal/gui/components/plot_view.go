package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"histview/internal/viewport"
)

const (
	PlotMinWidth  = 640
	PlotMinHeight = 480
)

// PlotView shows the rasterized plot and reports pointer activity in image
// pixels.
type PlotView struct {
	widget.BaseWidget

	image *canvas.Image

	OnPointer   func(pos *viewport.Point)
	OnScroll    func(dir viewport.Direction, pos viewport.Point)
	OnTap       func(pos viewport.Point, button viewport.Button)
	OnDrag      func(pos, delta viewport.Point)
	OnDragEnd   func()
	OnPixelSize func(width, height int)
}

var (
	_ fyne.Widget            = (*PlotView)(nil)
	_ desktop.Hoverable      = (*PlotView)(nil)
	_ fyne.Scrollable        = (*PlotView)(nil)
	_ fyne.Tappable          = (*PlotView)(nil)
	_ fyne.SecondaryTappable = (*PlotView)(nil)
	_ fyne.Draggable         = (*PlotView)(nil)
)

func NewPlotView() *PlotView {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest

	p := &PlotView{image: img}
	p.ExtendBaseWidget(p)
	return p
}

func (p *PlotView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.image)
}

func (p *PlotView) MinSize() fyne.Size {
	return fyne.NewSize(PlotMinWidth, PlotMinHeight)
}

// SetImage replaces the displayed frame.
func (p *PlotView) SetImage(img image.Image) {
	p.image.Image = img
	p.image.Refresh()
}

func (p *PlotView) Image() image.Image {
	return p.image.Image
}

func (p *PlotView) Resize(size fyne.Size) {
	p.BaseWidget.Resize(size)
	if p.OnPixelSize != nil {
		w, h := p.PixelSize()
		p.OnPixelSize(w, h)
	}
}

// PixelSize is the widget size in device pixels.
func (p *PlotView) PixelSize() (width, height int) {
	s := p.Size()
	scale := p.canvasScale()
	return int(s.Width*scale + 0.5), int(s.Height*scale + 0.5)
}

func (p *PlotView) canvasScale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(p); c != nil && c.Scale() > 0 {
		return c.Scale()
	}
	return 1
}

// toPixels maps a widget position onto the displayed image.
func (p *PlotView) toPixels(pos fyne.Position) viewport.Point {
	sx, sy := p.canvasScale(), p.canvasScale()
	if img := p.image.Image; img != nil {
		size := p.Size()
		b := img.Bounds()
		if size.Width > 0 && size.Height > 0 {
			sx = float32(b.Dx()) / size.Width
			sy = float32(b.Dy()) / size.Height
		}
	}
	return viewport.Point{X: float64(pos.X * sx), Y: float64(pos.Y * sy)}
}

func (p *PlotView) MouseIn(e *desktop.MouseEvent) {
	p.MouseMoved(e)
}

func (p *PlotView) MouseMoved(e *desktop.MouseEvent) {
	if p.OnPointer != nil {
		pt := p.toPixels(e.Position)
		p.OnPointer(&pt)
	}
}

func (p *PlotView) MouseOut() {
	if p.OnPointer != nil {
		p.OnPointer(nil)
	}
}

func (p *PlotView) Scrolled(e *fyne.ScrollEvent) {
	if p.OnScroll == nil || e.Scrolled.DY == 0 {
		return
	}
	dir := viewport.ScrollDown
	if e.Scrolled.DY > 0 {
		dir = viewport.ScrollUp
	}
	p.OnScroll(dir, p.toPixels(e.Position))
}

func (p *PlotView) Tapped(e *fyne.PointEvent) {
	if p.OnTap != nil {
		p.OnTap(p.toPixels(e.Position), viewport.ButtonPrimary)
	}
}

func (p *PlotView) TappedSecondary(e *fyne.PointEvent) {
	if p.OnTap != nil {
		p.OnTap(p.toPixels(e.Position), viewport.ButtonSecondary)
	}
}

func (p *PlotView) Dragged(e *fyne.DragEvent) {
	if p.OnDrag == nil {
		return
	}
	pos := p.toPixels(e.Position)
	moved := p.toPixels(fyne.NewPos(e.Dragged.DX, e.Dragged.DY))
	p.OnDrag(pos, moved)
}

func (p *PlotView) DragEnd() {
	if p.OnDragEnd != nil {
		p.OnDragEnd()
	}
}
