package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"histview/internal/browser"
	"histview/internal/export"
	"histview/internal/gui"
	"histview/internal/logger"
	"histview/internal/plotcanvas"
	"histview/internal/render"
	"histview/internal/rootio"
	"histview/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type Handlers struct {
	session    *browser.Session
	viewport   *viewport.Controller
	canvas     *plotcanvas.Canvas
	guiManager *gui.Manager
	saver      *export.Saver
	logger     logger.Logger
}

func NewHandlers(session *browser.Session, vp *viewport.Controller, canvas *plotcanvas.Canvas,
	gm *gui.Manager, saver *export.Saver, log logger.Logger) *Handlers {
	return &Handlers{
		session:    session,
		viewport:   vp,
		canvas:     canvas,
		guiManager: gm,
		saver:      saver,
		logger:     log,
	}
}

func (h *Handlers) HandleOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		h.OpenPath(path)
	}, h.guiManager.GetWindow())
	d.SetFilter(storage.NewExtensionFileFilter([]string{".root"}))
	d.Show()
}

// OpenPath opens a ROOT file. A file that cannot be opened leaves the
// current one on screen.
func (h *Handlers) OpenPath(path string) {
	if err := h.session.Open(path); err != nil {
		var openErr *rootio.OpenError
		if errors.As(err, &openErr) {
			h.guiManager.ShowError("Cannot open file", err)
		} else {
			h.guiManager.ShowError("Open failed", err)
		}
		h.guiManager.UpdateStatus("Open failed: " + filepath.Base(path))
		return
	}

	h.refreshNavigation()
	h.guiManager.UpdateStatus("Opened " + filepath.Base(path))
}

func (h *Handlers) HandleFolderSelected(folder string) {
	err := h.session.SelectFolder(folder)
	h.refreshNavigation()
	h.reportRender(err)
}

func (h *Handlers) HandleHistogramSelected(name string) {
	err := h.session.SelectHistogram(name)
	h.refreshNavigation()
	h.reportRender(err)
}

func (h *Handlers) reportRender(err error) {
	if err == nil {
		st := h.session.State()
		if st.Selection.Empty() {
			h.guiManager.UpdateStatus("Nothing to show in " + st.Selection.Folder)
		} else {
			h.guiManager.UpdateStatus(st.Selection.Path())
		}
		return
	}

	var unsupported *render.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		h.guiManager.UpdateStatus(fmt.Sprintf("Cannot draw %s objects", unsupported.Class))
		return
	}
	h.guiManager.UpdateStatus("Render failed: " + err.Error())
}

func (h *Handlers) refreshNavigation() {
	st := h.session.State()
	h.guiManager.ShowNavigation(st.Folders, st.Histograms, st.Selection.Folder, st.Selection.Histogram)
}

func (h *Handlers) HandleTool(tool viewport.Tool) {
	h.guiManager.ShowTool(h.viewport.SetTool(tool))
}

func (h *Handlers) HandleReset() {
	h.viewport.Reset()
}

func (h *Handlers) HandlePlotTap(pos viewport.Point, button viewport.Button) {
	h.viewport.OnClick(pos, button, h.viewport.Tool())
}

// HandlePlotResize re-rasterizes at the new pixel size.
func (h *Handlers) HandlePlotResize(width, height int) {
	h.canvas.Resize(width, height)
	if h.canvas.Redraws() == 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			h.canvas.Restore()
			h.logger.Error("Handlers", fmt.Errorf("redraw after resize: %v", r), nil)
		}
	}()
	h.canvas.Redraw()
}

// HandleFit fits a Gaussian to the visible x range.
func (h *Handlers) HandleFit() {
	xr, _ := h.canvas.Limits()
	g, err := h.session.FitGaussian(xr)
	if err != nil {
		h.guiManager.UpdateStatus("Fit failed: " + err.Error())
		return
	}
	h.guiManager.UpdateStatus("Gaussian fit: " + g.String())
}

func (h *Handlers) HandleClearOverlays() {
	if err := h.session.Overlays().ClearOverlays(); err != nil {
		h.guiManager.UpdateStatus("Clear failed: " + err.Error())
		return
	}
	h.guiManager.UpdateStatus("Overlays cleared")
}

func (h *Handlers) HandleExport() {
	img := h.canvas.Image()
	if img == nil {
		h.guiManager.ShowError("Export Error", fmt.Errorf("nothing has been plotted yet"))
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.guiManager.ShowError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := h.saver.SaveToWriter(writer, img, ""); err != nil {
			h.guiManager.ShowError("Export Error", err)
			return
		}
		h.guiManager.UpdateStatus("Saved " + writer.URI().Name())
	}, h.guiManager.GetWindow())
	d.SetFilter(storage.NewExtensionFileFilter(export.Formats))
	d.SetFileName("histogram.png")
	d.Show()
}
