package models

import (
	"fmt"
	"strings"
	"sync"
)

// ProgressSummary aggregates attempt counters for one shape or for
// the whole session. Accuracy is 0 when there are no attempts.
type ProgressSummary struct {
	Attempts int
	Correct  int
	Accuracy float64
}

type progressRecord struct {
	attempts int
	correct  int
}

// ProgressTracker keeps in-memory per-shape attempt counters for the
// process lifetime. Counters only ever increase; state resets on
// restart by design.
type ProgressTracker struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*progressRecord
}

// NewProgressTracker creates an empty tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		records: make(map[string]*progressRecord),
	}
}

// Record registers one attempt on a shape.
func (pt *ProgressTracker) Record(shapeName string, wasCorrect bool) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	rec, exists := pt.records[shapeName]
	if !exists {
		rec = &progressRecord{}
		pt.records[shapeName] = rec
		pt.order = append(pt.order, shapeName)
	}

	rec.attempts++
	if wasCorrect {
		rec.correct++
	}
}

// SummaryFor returns the counters for one shape. A shape with no
// attempts reports zeros, not an error.
func (pt *ProgressTracker) SummaryFor(shapeName string) ProgressSummary {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	rec, exists := pt.records[shapeName]
	if !exists {
		return ProgressSummary{}
	}
	return summarize(rec.attempts, rec.correct)
}

// OverallSummary aggregates counters across all shapes.
func (pt *ProgressTracker) OverallSummary() ProgressSummary {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	var attempts, correct int
	for _, rec := range pt.records {
		attempts += rec.attempts
		correct += rec.correct
	}
	return summarize(attempts, correct)
}

// Report renders the progress counters as display text, one line per
// attempted shape plus an overall line.
func (pt *ProgressTracker) Report() string {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	if len(pt.order) == 0 {
		return "No attempts yet. Start solving problems!"
	}

	var b strings.Builder
	b.WriteString("Your Learning Progress\n\n")
	for _, name := range pt.order {
		rec := pt.records[name]
		s := summarize(rec.attempts, rec.correct)
		fmt.Fprintf(&b, "%s: %d/%d correct (%.1f%%)\n", name, s.Correct, s.Attempts, s.Accuracy*100)
	}

	var attempts, correct int
	for _, rec := range pt.records {
		attempts += rec.attempts
		correct += rec.correct
	}
	overall := summarize(attempts, correct)
	fmt.Fprintf(&b, "\nOverall: %d/%d correct (%.1f%%)", overall.Correct, overall.Attempts, overall.Accuracy*100)
	return b.String()
}

func summarize(attempts, correct int) ProgressSummary {
	s := ProgressSummary{Attempts: attempts, Correct: correct}
	if attempts > 0 {
		s.Accuracy = float64(correct) / float64(attempts)
	}
	return s
}
