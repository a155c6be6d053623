package services

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"geomtutor/internal/config"
	"geomtutor/internal/logger"
	"geomtutor/internal/models"
)

const problemComponent = "problem-engine"

// ProblemService generates practice problems and evaluates submitted
// answers against the configured tolerance bands. One instance holds
// at most one active problem; generating a new problem replaces it.
type ProblemService struct {
	mu      sync.RWMutex
	catalog *models.ShapeCatalog
	tol     config.Tolerance
	rng     *rand.Rand
	log     logger.Logger
	current *models.ProblemInstance
}

// NewProblemService creates a problem engine over the given catalog.
// A nil rng gets a time-seeded source; tests inject a fixed seed.
func NewProblemService(catalog *models.ShapeCatalog, tol config.Tolerance, rng *rand.Rand, log logger.Logger) *ProblemService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ProblemService{
		catalog: catalog,
		tol:     tol,
		rng:     rng,
		log:     log,
	}
}

// NewProblem draws random dimensions for the named shape and computes
// the expected area from its parameter spec. The returned instance
// replaces any previously active problem.
func (ps *ProblemService) NewProblem(shapeName string) (models.ProblemInstance, error) {
	def, err := ps.catalog.Get(shapeName)
	if err != nil {
		return models.ProblemInstance{}, err
	}
	if len(def.Params) == 0 {
		return models.ProblemInstance{}, models.NewNoParameterSpecError(def.Name)
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	params := make(map[string]float64, len(def.Params))
	for _, p := range def.Params {
		params[p.Name] = float64(ps.drawValue(p.Range))
	}

	instance := models.ProblemInstance{
		Shape:        def,
		Parameters:   params,
		ExpectedArea: def.Kind.Area(params),
	}
	ps.current = &instance

	ps.log.Debug(problemComponent, "problem generated", map[string]interface{}{
		"shape":         def.Name,
		"parameters":    params,
		"expected_area": instance.ExpectedArea,
	})
	return copyInstance(instance), nil
}

// Check classifies a submitted answer against the active problem.
// Returns ErrNoActiveProblem when no problem has been generated yet.
func (ps *ProblemService) Check(submitted float64) (models.FeedbackResult, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.current == nil {
		return models.FeedbackResult{}, models.ErrNoActiveProblem
	}

	instance := *ps.current
	category, relErr := ps.classify(instance.ExpectedArea, submitted)

	result := models.FeedbackResult{
		Category:        category,
		ExpectedArea:    instance.ExpectedArea,
		SubmittedAnswer: submitted,
		RelativeError:   relErr,
		Hint:            ps.hintFor(instance, category),
	}

	ps.log.Debug(problemComponent, "answer checked", map[string]interface{}{
		"shape":          instance.Shape.Name,
		"submitted":      submitted,
		"expected":       instance.ExpectedArea,
		"relative_error": relErr,
		"category":       string(category),
	})
	return result, nil
}

// Current returns a copy of the active problem, if any.
func (ps *ProblemService) Current() (models.ProblemInstance, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.current == nil {
		return models.ProblemInstance{}, false
	}
	return copyInstance(*ps.current), true
}

// classify maps the relative error between expected and submitted to
// a feedback category. The epsilon floor keeps the division defined
// for near-zero expected areas.
func (ps *ProblemService) classify(expected, submitted float64) (models.FeedbackCategory, float64) {
	relErr := math.Abs(submitted-expected) / math.Max(expected, ps.tol.Epsilon)
	switch {
	case relErr <= ps.tol.Correct:
		return models.FeedbackCorrect, relErr
	case relErr <= ps.tol.Close:
		return models.FeedbackClose, relErr
	default:
		return models.FeedbackIncorrect, relErr
	}
}

// hintFor builds the feedback text: praise for correct answers, the
// formula for near misses, formula plus the expected value otherwise.
func (ps *ProblemService) hintFor(instance models.ProblemInstance, category models.FeedbackCategory) string {
	switch category {
	case models.FeedbackCorrect:
		return "Excellent! Your answer is correct!"
	case models.FeedbackClose:
		return fmt.Sprintf("Close! Review the formula: Area = %s.", instance.Shape.FormulaTemplate)
	default:
		return fmt.Sprintf("Not quite. %s\nCorrect answer: %.2f",
			workedFormula(instance), instance.ExpectedArea)
	}
}

// workedFormula substitutes the drawn values into the shape's formula.
func workedFormula(instance models.ProblemInstance) string {
	p := instance.Parameters
	template := instance.Shape.FormulaTemplate

	switch instance.Shape.Kind {
	case models.KindSquare:
		return fmt.Sprintf("For a square: Area = %s = %g × %g", template, p["side"], p["side"])
	case models.KindRectangle:
		return fmt.Sprintf("For a rectangle: Area = %s = %g × %g", template, p["length"], p["width"])
	case models.KindTriangle:
		return fmt.Sprintf("For a triangle: Area = %s = ½ × %g × %g", template, p["base"], p["height"])
	case models.KindCircle:
		return fmt.Sprintf("For a circle: Area = %s ≈ 3.14159 × %g²", template, p["radius"])
	case models.KindTrapezoid:
		return fmt.Sprintf("For a trapezoid: Area = %s = ½ × (%g + %g) × %g", template, p["base1"], p["base2"], p["height"])
	case models.KindParallelogram:
		return fmt.Sprintf("For a parallelogram: Area = %s = %g × %g", template, p["base"], p["height"])
	}
	return "Check the formula and try again."
}

// drawValue draws an integer uniformly in [min,max], inclusive.
func (ps *ProblemService) drawValue(r models.ParameterRange) int {
	return r.Min + ps.rng.Intn(r.Max-r.Min+1)
}

func copyInstance(instance models.ProblemInstance) models.ProblemInstance {
	params := make(map[string]float64, len(instance.Parameters))
	for k, v := range instance.Parameters {
		params[k] = v
	}
	instance.Parameters = params
	return instance
}
