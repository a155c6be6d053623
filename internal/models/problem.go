package models

// FeedbackCategory classifies a submitted answer.
type FeedbackCategory string

const (
	FeedbackCorrect   FeedbackCategory = "correct"
	FeedbackClose     FeedbackCategory = "close"
	FeedbackIncorrect FeedbackCategory = "incorrect"
)

// ProblemInstance is one concrete, randomly parameterized exercise.
// The parameter keys always match the shape's parameter spec and
// ExpectedArea is always recomputed from Parameters, never cached
// independently of them.
type ProblemInstance struct {
	Shape        ShapeDefinition
	Parameters   map[string]float64
	ExpectedArea float64
}

// FeedbackResult is the outcome of checking one submitted answer.
type FeedbackResult struct {
	Category        FeedbackCategory
	ExpectedArea    float64
	SubmittedAnswer float64
	RelativeError   float64
	Hint            string
}
