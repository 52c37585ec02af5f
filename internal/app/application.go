// Package app wires the histogram browser into a fyne window.
package app

import (
	"sync/atomic"

	"histview/internal/browser"
	"histview/internal/debug"
	"histview/internal/export"
	"histview/internal/gui"
	"histview/internal/logger"
	"histview/internal/plotcanvas"
	"histview/internal/render"
	"histview/internal/rootio"
	"histview/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "Histogram Browser"
	AppID           = "io.histview.browser"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 900
	MinWindowHeight = 680
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	canvas     *plotcanvas.Canvas
	session    *browser.Session
	viewport   *viewport.Controller
	handlers   *Handlers
	debugCoord debug.Coordinator
	lifecycle  *Lifecycle
	// running is set while the fyne event loop is up.
	running    atomic.Bool
}

func NewApplication(cfg Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg Config, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	debugCoord := debug.NewCoordinator(cfg.Debug, log)
	log = debugCoord.Logger()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   AppVersion,
		"log_level": cfg.LogLevel.String(),
		"zoom_mode": cfg.ZoomMode.String(),
	})

	guiManager := gui.NewManager(window, debugCoord)

	canvas := plotcanvas.New(plotcanvas.DefaultWidth, plotcanvas.DefaultHeight,
		plotcanvas.WithRedrawHook(guiManager.SetPlotImage))

	var vp *viewport.Controller
	session := browser.NewSession(canvas, openROOT, browser.Options{
		Logger: log,
		Timer:  debugCoord.TimingTracker(),
		Files:  debugCoord.FileTracker(),
		OnRender: func(res render.Result) {
			vp.SetHome(res.XHome, res.YHome)
		},
	})
	vp = viewport.NewController(canvas, session.Overlays(), guiManager.UpdateReadout, log)
	vp.SetZoomMode(cfg.ZoomMode)

	handlers := NewHandlers(session, vp, canvas, guiManager,
		export.NewSaver(log, debugCoord.TimingTracker()), log)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		canvas:     canvas,
		session:    session,
		viewport:   vp,
		handlers:   handlers,
		debugCoord: debugCoord,
		lifecycle:  NewLifecycle(session, debugCoord, guiManager),
	}
	a.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

// openROOT adapts rootio.Open; a failed open must not yield a typed nil.
func openROOT(path string) (browser.Document, error) {
	f, err := rootio.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a *Application) setupHandlers() {
	h := a.handlers

	toolbar := a.guiManager.Toolbar()
	toolbar.SetLoadHandler(h.HandleOpen)
	toolbar.SetExportHandler(h.HandleExport)
	toolbar.SetToolHandler(h.HandleTool)
	toolbar.SetResetHandler(h.HandleReset)
	toolbar.SetFitHandler(h.HandleFit)
	toolbar.SetClearHandler(h.HandleClearOverlays)

	nav := a.guiManager.Navigator()
	nav.SetFolderHandler(h.HandleFolderSelected)
	nav.SetHistogramHandler(h.HandleHistogramSelected)

	pv := a.guiManager.PlotView()
	pv.OnPointer = a.viewport.OnPointerMove
	pv.OnScroll = a.viewport.OnScroll
	pv.OnTap = h.HandlePlotTap
	pv.OnDrag = a.viewport.OnDrag
	pv.OnDragEnd = a.viewport.OnDragEnd
	pv.OnPixelSize = h.HandlePlotResize
}

// Lifecycle is registered with the shutdown manager by main.
func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}

// OpenAtStartup opens path once the window exists.
func (a *Application) OpenAtStartup(path string) {
	if path == "" {
		return
	}
	a.handlers.OpenPath(path)
}

func (a *Application) Quit() {
	if a.running.Load() {
		fyne.Do(a.fyneApp.Quit)
	}
}

// Shutdown runs the lifecycle shutdown on the UI goroutine while the event
// loop is up, and directly once it has stopped. Safe from any goroutine.
func (a *Application) Shutdown() {
	if a.running.Load() {
		fyne.DoAndWait(a.lifecycle.Shutdown)
		return
	}
	a.lifecycle.Shutdown()
}

func (a *Application) Run() error {
	log := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	log.Info("Application", "GUI displayed", nil)
	a.running.Store(true)
	defer a.running.Store(false)
	a.fyneApp.Run()

	return nil
}
