package services

import (
	"io"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomtutor/internal/config"
	"geomtutor/internal/logger"
	"geomtutor/internal/models"
)

func testSession(t *testing.T, seed int64) *Session {
	t.Helper()
	log := logger.NewZerolog(io.Discard, zerolog.Disabled)
	return NewSession(testCatalog(t), config.Default().Tolerance, rand.New(rand.NewSource(seed)), log)
}

func TestSession_SubmitRecordsProgress(t *testing.T) {
	session := testSession(t, 1)

	instance, err := session.Problems.NewProblem("Square")
	require.NoError(t, err)

	result, err := session.Submit(instance.ExpectedArea)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackCorrect, result.Category)

	_, err = session.Problems.NewProblem("Square")
	require.NoError(t, err)
	result, err = session.Submit(-1)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackIncorrect, result.Category)

	summary := session.Progress.SummaryFor("Square")
	assert.Equal(t, 2, summary.Attempts)
	assert.Equal(t, 1, summary.Correct)
	assert.InDelta(t, 0.5, summary.Accuracy, 1e-12)
}

func TestSession_SubmitWithoutProblem(t *testing.T) {
	session := testSession(t, 2)

	_, err := session.Submit(42)
	assert.ErrorIs(t, err, models.ErrNoActiveProblem)
	assert.Equal(t, 0, session.Progress.OverallSummary().Attempts)
}

func TestSession_Independent(t *testing.T) {
	first := testSession(t, 3)
	second := testSession(t, 4)

	assert.NotEqual(t, first.ID, second.ID)

	instance, err := first.Problems.NewProblem("Circle")
	require.NoError(t, err)
	_, err = first.Submit(instance.ExpectedArea)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Progress.OverallSummary().Attempts)
	assert.Equal(t, 0, second.Progress.OverallSummary().Attempts)

	_, ok := second.Problems.Current()
	assert.False(t, ok)
}
