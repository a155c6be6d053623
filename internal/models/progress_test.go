package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Record(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Record("Square", true)
	tracker.Record("Square", false)
	tracker.Record("Square", true)

	summary := tracker.SummaryFor("Square")
	assert.Equal(t, 3, summary.Attempts)
	assert.Equal(t, 2, summary.Correct)
	assert.InDelta(t, 2.0/3.0, summary.Accuracy, 1e-12)
}

func TestProgressTracker_NoAttempts(t *testing.T) {
	tracker := NewProgressTracker()

	summary := tracker.SummaryFor("Circle")
	assert.Equal(t, 0, summary.Attempts)
	assert.Equal(t, 0, summary.Correct)
	assert.Equal(t, 0.0, summary.Accuracy)
}

func TestProgressTracker_OverallSummary(t *testing.T) {
	tracker := NewProgressTracker()
	tracker.Record("Square", true)
	tracker.Record("Circle", false)
	tracker.Record("Circle", true)

	overall := tracker.OverallSummary()
	assert.Equal(t, 3, overall.Attempts)
	assert.Equal(t, 2, overall.Correct)
	assert.InDelta(t, 2.0/3.0, overall.Accuracy, 1e-12)
}

func TestProgressTracker_OverallEmpty(t *testing.T) {
	tracker := NewProgressTracker()

	overall := tracker.OverallSummary()
	assert.Equal(t, 0, overall.Attempts)
	assert.Equal(t, 0.0, overall.Accuracy)
}

func TestProgressTracker_Report(t *testing.T) {
	t.Run("empty state", func(t *testing.T) {
		tracker := NewProgressTracker()
		assert.Contains(t, tracker.Report(), "No attempts yet")
	})

	t.Run("per shape and overall lines", func(t *testing.T) {
		tracker := NewProgressTracker()
		tracker.Record("Square", true)
		tracker.Record("Square", false)
		tracker.Record("Triangle", true)

		report := tracker.Report()
		assert.Contains(t, report, "Square: 1/2 correct (50.0%)")
		assert.Contains(t, report, "Triangle: 1/1 correct (100.0%)")
		assert.Contains(t, report, "Overall: 2/3 correct (66.7%)")
	})
}
