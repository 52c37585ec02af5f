package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Navigator holds the folder and histogram selectors. Programmatic updates
// do not fire the change handlers.
type Navigator struct {
	container *fyne.Container
	Folders   *widget.Select
	Histos    *widget.Select

	suppress bool

	folderHandler    func(string)
	histogramHandler func(string)
}

func NewNavigator() *Navigator {
	n := &Navigator{}
	n.Folders = widget.NewSelect(nil, n.onFolder)
	n.Folders.PlaceHolder = "(no file)"
	n.Histos = widget.NewSelect(nil, n.onHistogram)
	n.Histos.PlaceHolder = "(none)"

	n.container = container.NewHBox(
		widget.NewLabel("Folder:"),
		n.Folders,
		widget.NewLabel("Histogram:"),
		n.Histos,
	)
	return n
}

func (n *Navigator) GetContainer() *fyne.Container {
	return n.container
}

func (n *Navigator) SetFolderHandler(handler func(string)) { n.folderHandler = handler }
func (n *Navigator) SetHistogramHandler(handler func(string)) { n.histogramHandler = handler }

// Show replaces both option lists and their selections.
func (n *Navigator) Show(folders, histograms []string, folder, histogram string) {
	n.suppress = true
	defer func() { n.suppress = false }()

	n.Folders.SetOptions(folders)
	n.Histos.SetOptions(histograms)
	if folder == "" {
		n.Folders.ClearSelected()
	} else {
		n.Folders.SetSelected(folder)
	}
	if histogram == "" {
		n.Histos.ClearSelected()
	} else {
		n.Histos.SetSelected(histogram)
	}
}

func (n *Navigator) onFolder(folder string) {
	if n.suppress || n.folderHandler == nil {
		return
	}
	n.folderHandler(folder)
}

func (n *Navigator) onHistogram(name string) {
	if n.suppress || n.histogramHandler == nil {
		return
	}
	n.histogramHandler(name)
}
