package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShapeSelector presents the catalog's shapes as a radio group.
type ShapeSelector struct {
	container *fyne.Container
	radio     *widget.RadioGroup

	changeHandler func(string)
}

// NewShapeSelector creates an empty selector; shapes are injected
// once the catalog has loaded.
func NewShapeSelector() *ShapeSelector {
	selector := &ShapeSelector{}

	selector.radio = widget.NewRadioGroup(nil, func(selected string) {
		if selector.changeHandler != nil && selected != "" {
			selector.changeHandler(selected)
		}
	})
	selector.radio.Horizontal = true

	selector.container = container.NewVBox(
		widget.NewLabelWithStyle("Select a Shape", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		selector.radio,
	)
	return selector
}

// GetContainer returns the selector's root container.
func (s *ShapeSelector) GetContainer() *fyne.Container {
	return s.container
}

// SetShapes replaces the shape list, selecting the first entry.
func (s *ShapeSelector) SetShapes(names []string) {
	fyne.Do(func() {
		s.radio.Options = names
		if len(names) > 0 {
			s.radio.SetSelected(names[0])
		}
		s.radio.Refresh()
	})
}

// Selected returns the currently chosen shape name.
func (s *ShapeSelector) Selected() string {
	return s.radio.Selected
}

// SetChangeHandler registers the selection-change callback.
func (s *ShapeSelector) SetChangeHandler(handler func(string)) {
	s.changeHandler = handler
}
