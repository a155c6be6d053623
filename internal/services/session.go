package services

import (
	"math/rand"

	"github.com/google/uuid"

	"geomtutor/internal/config"
	"geomtutor/internal/logger"
	"geomtutor/internal/models"
)

const sessionComponent = "session"

// Session owns the per-learner state: one problem engine and one
// progress tracker. Sessions are explicit instances constructed at
// startup, so a multi-session variant only needs more constructors.
type Session struct {
	ID       uuid.UUID
	Problems *ProblemService
	Progress *models.ProgressTracker

	log logger.Logger
}

// NewSession creates a fresh session over the given catalog.
func NewSession(catalog *models.ShapeCatalog, tol config.Tolerance, rng *rand.Rand, log logger.Logger) *Session {
	session := &Session{
		ID:       uuid.New(),
		Problems: NewProblemService(catalog, tol, rng, log),
		Progress: models.NewProgressTracker(),
		log:      log,
	}

	log.Info(sessionComponent, "session started", map[string]interface{}{
		"session_id": session.ID.String(),
	})
	return session
}

// Submit checks an answer against the active problem and records the
// outcome in the progress tracker. Errors (no active problem) are
// returned without touching the counters.
func (s *Session) Submit(answer float64) (models.FeedbackResult, error) {
	current, ok := s.Problems.Current()
	if !ok {
		return models.FeedbackResult{}, models.ErrNoActiveProblem
	}

	result, err := s.Problems.Check(answer)
	if err != nil {
		return models.FeedbackResult{}, err
	}

	s.Progress.Record(current.Shape.Name, result.Category == models.FeedbackCorrect)
	return result, nil
}
