package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and session information.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	scoreLabel  *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		scoreLabel:  widget.NewLabel("Score: 0/0"),
	}
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.scoreLabel,
	)
	return sb
}

// GetContainer returns the status bar's root container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus updates the main status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetScore updates the session score display.
func (sb *StatusBar) SetScore(correct, attempts int) {
	fyne.Do(func() {
		sb.scoreLabel.SetText(fmt.Sprintf("Score: %d/%d", correct, attempts))
	})
}
