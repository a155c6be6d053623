package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"geomtutor/internal/views/components"
)

// MainView assembles the tutoring window from its components and
// forwards user actions to whatever controller is wired in.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	shapeSelector *components.ShapeSelector
	problemPanel  *components.ProblemPanel
	statusBar     *components.StatusBar

	// Event handlers, connected to the controller
	newProblemHandler   func()
	submitAnswerHandler func(string)
	shapeChangeHandler  func(string)
	showFormulaHandler  func()
	showProgressHandler func()
	showOntologyHandler func()
}

// NewMainView creates the main view inside the given window.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.shapeSelector = components.NewShapeSelector()
	mv.problemPanel = components.NewProblemPanel()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	contentArea := container.NewVBox(
		mv.shapeSelector.GetContainer(),
		mv.problemPanel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		contentArea,                 // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetNewProblemHandler(func() {
		if mv.newProblemHandler != nil {
			mv.newProblemHandler()
		}
	})
	mv.toolbar.SetFormulaHandler(func() {
		if mv.showFormulaHandler != nil {
			mv.showFormulaHandler()
		}
	})
	mv.toolbar.SetProgressHandler(func() {
		if mv.showProgressHandler != nil {
			mv.showProgressHandler()
		}
	})
	mv.toolbar.SetOntologyHandler(func() {
		if mv.showOntologyHandler != nil {
			mv.showOntologyHandler()
		}
	})
	mv.shapeSelector.SetChangeHandler(func(name string) {
		if mv.shapeChangeHandler != nil {
			mv.shapeChangeHandler(name)
		}
	})
	mv.problemPanel.SetSubmitHandler(func(text string) {
		if mv.submitAnswerHandler != nil {
			mv.submitAnswerHandler(text)
		}
	})
}

// Show displays the main window.
func (mv *MainView) Show() {
	mv.window.Show()
}

// SetShapes populates the shape selector.
func (mv *MainView) SetShapes(names []string) {
	mv.shapeSelector.SetShapes(names)
}

// SelectedShape returns the currently chosen shape name.
func (mv *MainView) SelectedShape() string {
	return mv.shapeSelector.Selected()
}

// SetProblemText replaces the problem statement.
func (mv *MainView) SetProblemText(text string) {
	mv.problemPanel.SetProblemText(text)
}

// SetFeedback replaces the feedback line.
func (mv *MainView) SetFeedback(text string) {
	mv.problemPanel.SetFeedback(text)
}

// ClearAnswer empties the answer entry.
func (mv *MainView) ClearAnswer() {
	mv.problemPanel.ClearAnswer()
}

// SetStatus updates the status bar message.
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetScore updates the status bar score display.
func (mv *MainView) SetScore(correct, attempts int) {
	mv.statusBar.SetScore(correct, attempts)
}

// ShowInfo presents an informational dialog.
func (mv *MainView) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mv.window)
	})
}

// ShowConfirm presents a confirmation dialog.
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// SetNewProblemHandler registers the New Problem action.
func (mv *MainView) SetNewProblemHandler(handler func()) {
	mv.newProblemHandler = handler
}

// SetSubmitAnswerHandler registers the answer submission action.
func (mv *MainView) SetSubmitAnswerHandler(handler func(string)) {
	mv.submitAnswerHandler = handler
}

// SetShapeChangeHandler registers the shape selection action.
func (mv *MainView) SetShapeChangeHandler(handler func(string)) {
	mv.shapeChangeHandler = handler
}

// SetShowFormulaHandler registers the Show Formula action.
func (mv *MainView) SetShowFormulaHandler(handler func()) {
	mv.showFormulaHandler = handler
}

// SetShowProgressHandler registers the View Progress action.
func (mv *MainView) SetShowProgressHandler(handler func()) {
	mv.showProgressHandler = handler
}

// SetShowOntologyHandler registers the Ontology Info action.
func (mv *MainView) SetShowOntologyHandler(handler func()) {
	mv.showOntologyHandler = handler
}
