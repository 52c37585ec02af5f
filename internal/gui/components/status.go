package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"histview/internal/viewport"
)

type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	readoutLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	readoutLabel := widget.NewLabel(viewport.NoDataReadout)
	readoutLabel.TextStyle = fyne.TextStyle{Monospace: true}

	return &StatusBar{
		container:    container.NewBorder(nil, nil, statusLabel, readoutLabel),
		statusLabel:  statusLabel,
		readoutLabel: readoutLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetReadout(text string) {
	sb.readoutLabel.SetText(text)
}

func (sb *StatusBar) Status() string  { return sb.statusLabel.Text }
func (sb *StatusBar) Readout() string { return sb.readoutLabel.Text }
