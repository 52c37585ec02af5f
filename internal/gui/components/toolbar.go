package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"histview/internal/viewport"
)

type Toolbar struct {
	container    *fyne.Container
	LoadButton   *widget.Button
	ExportButton *widget.Button
	PanButton    *widget.Button
	ZoomButton   *widget.Button
	ResetButton  *widget.Button
	FitButton    *widget.Button
	ClearButton  *widget.Button

	loadHandler   func()
	exportHandler func()
	toolHandler   func(viewport.Tool)
	resetHandler  func()
	fitHandler    func()
	clearHandler  func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})

	t.LoadButton = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), t.onLoad)
	t.LoadButton.Importance = widget.HighImportance
	t.ExportButton = widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), t.onExport)

	t.PanButton = widget.NewButtonWithIcon("Pan", theme.ViewRestoreIcon(), func() { t.onTool(viewport.ToolPan) })
	t.ZoomButton = widget.NewButtonWithIcon("Zoom", theme.ZoomInIcon(), func() { t.onTool(viewport.ToolZoomBox) })
	t.ResetButton = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), t.onReset)

	t.FitButton = widget.NewButton("Fit Gaussian", t.onFit)
	t.ClearButton = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), t.onClear)

	content := container.NewHBox(
		t.LoadButton,
		t.ExportButton,
		widget.NewSeparator(),
		t.PanButton,
		t.ZoomButton,
		t.ResetButton,
		widget.NewSeparator(),
		t.FitButton,
		t.ClearButton,
	)

	t.container = container.NewStack(background, container.NewPadded(content))
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetLoadHandler(handler func()) { t.loadHandler = handler }
func (t *Toolbar) SetExportHandler(handler func()) { t.exportHandler = handler }
func (t *Toolbar) SetToolHandler(handler func(viewport.Tool)) { t.toolHandler = handler }
func (t *Toolbar) SetResetHandler(handler func()) { t.resetHandler = handler }
func (t *Toolbar) SetFitHandler(handler func()) { t.fitHandler = handler }
func (t *Toolbar) SetClearHandler(handler func()) { t.clearHandler = handler }

// ShowActiveTool highlights the button of the active tool.
func (t *Toolbar) ShowActiveTool(tool viewport.Tool) {
	t.PanButton.Importance = widget.MediumImportance
	t.ZoomButton.Importance = widget.MediumImportance
	switch tool {
	case viewport.ToolPan:
		t.PanButton.Importance = widget.HighImportance
	case viewport.ToolZoomBox:
		t.ZoomButton.Importance = widget.HighImportance
	}
	t.PanButton.Refresh()
	t.ZoomButton.Refresh()
}

func (t *Toolbar) onLoad() {
	if t.loadHandler != nil {
		t.loadHandler()
	}
}

func (t *Toolbar) onExport() {
	if t.exportHandler != nil {
		t.exportHandler()
	}
}

func (t *Toolbar) onTool(tool viewport.Tool) {
	if t.toolHandler != nil {
		t.toolHandler(tool)
	}
}

func (t *Toolbar) onReset() {
	if t.resetHandler != nil {
		t.resetHandler()
	}
}

func (t *Toolbar) onFit() {
	if t.fitHandler != nil {
		t.fitHandler()
	}
}

func (t *Toolbar) onClear() {
	if t.clearHandler != nil {
		t.clearHandler()
	}
}
