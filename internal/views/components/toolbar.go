package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the main tutoring actions.
type Toolbar struct {
	container      *fyne.Container
	newButton      *widget.Button
	formulaButton  *widget.Button
	progressButton *widget.Button
	ontologyButton *widget.Button

	// Event handlers
	newProblemHandler func()
	formulaHandler    func()
	progressHandler   func()
	ontologyHandler   func()
}

// NewToolbar creates the toolbar component.
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.newButton = widget.NewButton("New Problem", func() {
		if t.newProblemHandler != nil {
			t.newProblemHandler()
		}
	})
	t.newButton.Importance = widget.HighImportance

	t.formulaButton = widget.NewButton("Show Formula", func() {
		if t.formulaHandler != nil {
			t.formulaHandler()
		}
	})

	t.progressButton = widget.NewButton("View Progress", func() {
		if t.progressHandler != nil {
			t.progressHandler()
		}
	})

	t.ontologyButton = widget.NewButton("Ontology Info", func() {
		if t.ontologyHandler != nil {
			t.ontologyHandler()
		}
	})
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.newButton,
		widget.NewSeparator(),
		t.formulaButton,
		t.progressButton,
		t.ontologyButton,
	)
}

// GetContainer returns the toolbar's root container.
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// SetNewProblemHandler registers the New Problem action.
func (t *Toolbar) SetNewProblemHandler(handler func()) {
	t.newProblemHandler = handler
}

// SetFormulaHandler registers the Show Formula action.
func (t *Toolbar) SetFormulaHandler(handler func()) {
	t.formulaHandler = handler
}

// SetProgressHandler registers the View Progress action.
func (t *Toolbar) SetProgressHandler(handler func()) {
	t.progressHandler = handler
}

// SetOntologyHandler registers the Ontology Info action.
func (t *Toolbar) SetOntologyHandler(handler func()) {
	t.ontologyHandler = handler
}
