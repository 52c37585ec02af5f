package gui

import (
	"image"

	"histview/internal/debug"
	"histview/internal/gui/components"
	"histview/internal/logger"
	"histview/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

type Manager struct {
	window     fyne.Window
	debugCoord debug.Coordinator
	logger     logger.Logger
	isShutdown bool

	plotView  *components.PlotView
	toolbar   *components.Toolbar
	navigator *components.Navigator
	statusBar *components.StatusBar
}

func NewManager(window fyne.Window, debugCoord debug.Coordinator) *Manager {
	log := debugCoord.Logger()

	m := &Manager{
		window:     window,
		debugCoord: debugCoord,
		logger:     log,
		plotView:   components.NewPlotView(),
		toolbar:    components.NewToolbar(),
		navigator:  components.NewNavigator(),
		statusBar:  components.NewStatusBar(),
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"plot_width":  components.PlotMinWidth,
		"plot_height": components.PlotMinHeight,
	})
	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	top := container.NewVBox(
		m.toolbar.GetContainer(),
		m.navigator.GetContainer(),
	)
	return container.NewBorder(top, m.statusBar.GetContainer(), nil, nil, m.plotView)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) PlotView() *components.PlotView {
	return m.plotView
}

func (m *Manager) Toolbar() *components.Toolbar {
	return m.toolbar
}

func (m *Manager) Navigator() *components.Navigator {
	return m.navigator
}

func (m *Manager) SetPlotImage(img image.Image) {
	m.plotView.SetImage(img)
}

// ShowNavigation refreshes the selectors without firing their handlers.
func (m *Manager) ShowNavigation(folders, histograms []string, folder, histogram string) {
	m.navigator.Show(folders, histograms, folder, histogram)
	m.logger.Debug("GUIManager", "navigation updated", map[string]interface{}{
		"folders":    len(folders),
		"histograms": len(histograms),
	})
}

func (m *Manager) ShowTool(tool viewport.Tool) {
	m.toolbar.ShowActiveTool(tool)
}

func (m *Manager) UpdateStatus(status string) {
	m.statusBar.SetStatus(status)
}

func (m *Manager) Status() string {
	return m.statusBar.Status()
}

func (m *Manager) UpdateReadout(text string) {
	m.statusBar.SetReadout(text)
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
