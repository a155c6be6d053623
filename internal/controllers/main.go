package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"

	"geomtutor/internal/logger"
	"geomtutor/internal/models"
	"geomtutor/internal/ontology"
	"geomtutor/internal/services"
	"geomtutor/internal/views"
)

const component = "controller"

// MainController bridges view events to the tutoring core. Every
// error surfaces as guidance text in the view; nothing aborts the
// application.
type MainController struct {
	session *services.Session
	catalog *models.ShapeCatalog
	log     logger.Logger

	mainView *views.MainView

	mu            sync.RWMutex
	currentWindow fyne.Window
	currentShape  string
}

// NewMainController creates a controller over one session and catalog.
func NewMainController(session *services.Session, catalog *models.ShapeCatalog, log logger.Logger) *MainController {
	return &MainController{
		session: session,
		catalog: catalog,
		log:     log,
	}
}

// SetMainView associates the main view and wires its event handlers.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetNewProblemHandler(mc.NewProblem)
	view.SetSubmitAnswerHandler(mc.SubmitAnswer)
	view.SetShapeChangeHandler(mc.SelectShape)
	view.SetShowFormulaHandler(mc.ShowFormula)
	view.SetShowProgressHandler(mc.ShowProgress)
	view.SetShowOntologyHandler(mc.ShowOntologyInfo)
}

// SetWindow sets the main application window.
func (mc *MainController) SetWindow(window fyne.Window) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.currentWindow = window
}

// Initialize populates the view from the catalog. The selector
// callback fires for the initial selection, so currentShape is set
// through SelectShape.
func (mc *MainController) Initialize() {
	names := mc.catalog.Names()
	mc.mainView.SetShapes(names)

	if len(names) > 0 {
		mc.SelectShape(names[0])
	}
	mc.mainView.SetStatus("Ready")
}

// SelectShape records the learner's shape choice.
func (mc *MainController) SelectShape(name string) {
	mc.mu.Lock()
	mc.currentShape = name
	mc.mu.Unlock()

	mc.log.Debug(component, "shape selected", map[string]interface{}{
		"shape": name,
	})
}

// NewProblem generates a fresh problem for the selected shape and
// renders it.
func (mc *MainController) NewProblem() {
	mc.mu.RLock()
	shape := mc.currentShape
	mc.mu.RUnlock()

	instance, err := mc.session.Problems.NewProblem(shape)
	if err != nil {
		mc.handleError("Could not generate a problem", err)
		return
	}

	mc.mainView.SetProblemText(ProblemText(instance))
	mc.mainView.SetFeedback("")
	mc.mainView.ClearAnswer()
	mc.mainView.SetStatus(fmt.Sprintf("Problem ready: %s", instance.Shape.Name))
}

// SubmitAnswer parses the entry text and classifies the answer.
// Non-numeric input and missing problems both render as guidance,
// never as failures.
func (mc *MainController) SubmitAnswer(text string) {
	answer, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		mc.mainView.SetFeedback("Please enter a valid number.")
		return
	}

	result, err := mc.session.Submit(answer)
	if err != nil {
		mc.handleError("Answer not checked", err)
		return
	}

	mc.mainView.SetFeedback(result.Hint)
	if result.Category == models.FeedbackCorrect {
		mc.mainView.ClearAnswer()
	}

	overall := mc.session.Progress.OverallSummary()
	mc.mainView.SetScore(overall.Correct, overall.Attempts)
	mc.mainView.SetStatus(fmt.Sprintf("Last answer: %s", result.Category))
}

// ShowFormula presents the formula reference for the selected shape.
func (mc *MainController) ShowFormula() {
	mc.mu.RLock()
	shape := mc.currentShape
	mc.mu.RUnlock()

	def, err := mc.catalog.Get(shape)
	if err != nil {
		mc.handleError("Formula unavailable", err)
		return
	}
	mc.mainView.ShowInfo("Formula Reference", FormulaText(def))
}

// ShowProgress presents the session's progress report.
func (mc *MainController) ShowProgress() {
	mc.mainView.ShowInfo("Learning Progress", mc.session.Progress.Report())
}

// ShowOntologyInfo presents the loaded ontology summary.
func (mc *MainController) ShowOntologyInfo() {
	mc.mainView.ShowInfo("Ontology Information", OntologyText(mc.catalog))
}

// Shutdown logs the end-of-session state.
func (mc *MainController) Shutdown() {
	overall := mc.session.Progress.OverallSummary()
	mc.log.Info(component, "session finished", map[string]interface{}{
		"session_id": mc.session.ID.String(),
		"attempts":   overall.Attempts,
		"correct":    overall.Correct,
		"accuracy":   overall.Accuracy,
	})
}

func (mc *MainController) handleError(message string, err error) {
	mc.log.Warning(component, message, map[string]interface{}{
		"error": err.Error(),
	})
	mc.mainView.SetStatus(fmt.Sprintf("%s: %s", message, err))
}

// ProblemText renders one problem instance as the display statement,
// listing the drawn dimensions in parameter spec order.
func ProblemText(instance models.ProblemInstance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape: %s\n\n", strings.ToUpper(instance.Shape.Name))
	fmt.Fprintf(&b, "Description: %s\n\n", instance.Shape.Description)
	b.WriteString("Given:\n")
	for _, p := range instance.Shape.Params {
		fmt.Fprintf(&b, "  - %s: %g units\n", p.Name, instance.Parameters[p.Name])
	}
	fmt.Fprintf(&b, "\nCalculate the area of this %s.", strings.ToLower(instance.Shape.Name))
	return b.String()
}

// FormulaText renders the formula reference for one shape.
func FormulaText(def models.ShapeDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shape: %s\n\n", strings.ToUpper(def.Name))
	fmt.Fprintf(&b, "Area Formula: %s\n\n", def.FormulaTemplate)
	fmt.Fprintf(&b, "Description: %s\n\n", def.Description)
	fmt.Fprintf(&b, "Parent Class: %s\n", def.Parent)
	fmt.Fprintf(&b, "Difficulty: %s", def.Difficulty)
	return b.String()
}

// OntologyText renders the catalog summary plus the concept glossary.
func OntologyText(catalog *models.ShapeCatalog) string {
	var b strings.Builder
	b.WriteString(catalog.Summary())

	concepts := ontology.Concepts()
	fmt.Fprintf(&b, "\nConcepts (%d):\n", len(concepts))
	for _, name := range []string{"area", "perimeter", "base", "height", "radius"} {
		if desc, ok := concepts[name]; ok {
			fmt.Fprintf(&b, "  - %s: %s\n", name, desc)
		}
	}
	return b.String()
}
