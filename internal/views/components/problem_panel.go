package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProblemPanel shows the current problem, takes the learner's answer
// and renders feedback. Pressing Enter in the answer entry submits.
type ProblemPanel struct {
	container     *fyne.Container
	problemLabel  *widget.Label
	answerEntry   *widget.Entry
	submitButton  *widget.Button
	feedbackLabel *widget.Label

	submitHandler func(string)
}

// NewProblemPanel creates the problem panel component.
func NewProblemPanel() *ProblemPanel {
	panel := &ProblemPanel{}
	panel.createComponents()
	panel.buildLayout()
	return panel
}

func (p *ProblemPanel) createComponents() {
	p.problemLabel = widget.NewLabel("Click 'New Problem' to start")
	p.problemLabel.Wrapping = fyne.TextWrapWord

	p.answerEntry = widget.NewEntry()
	p.answerEntry.SetPlaceHolder("Your answer")
	p.answerEntry.OnSubmitted = func(text string) {
		if p.submitHandler != nil {
			p.submitHandler(text)
		}
	}

	p.submitButton = widget.NewButton("Submit Answer", func() {
		if p.submitHandler != nil {
			p.submitHandler(p.answerEntry.Text)
		}
	})
	p.submitButton.Importance = widget.HighImportance

	p.feedbackLabel = widget.NewLabel("")
	p.feedbackLabel.Wrapping = fyne.TextWrapWord
}

func (p *ProblemPanel) buildLayout() {
	answerRow := container.NewBorder(nil, nil,
		widget.NewLabel("Your Answer:"), p.submitButton, p.answerEntry)

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Current Problem", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.problemLabel,
		widget.NewSeparator(),
		answerRow,
		p.feedbackLabel,
	)
}

// GetContainer returns the panel's root container.
func (p *ProblemPanel) GetContainer() *fyne.Container {
	return p.container
}

// SetProblemText replaces the displayed problem statement.
func (p *ProblemPanel) SetProblemText(text string) {
	fyne.Do(func() {
		p.problemLabel.SetText(text)
	})
}

// SetFeedback replaces the feedback line.
func (p *ProblemPanel) SetFeedback(text string) {
	fyne.Do(func() {
		p.feedbackLabel.SetText(text)
	})
}

// ClearAnswer empties the answer entry and refocuses it.
func (p *ProblemPanel) ClearAnswer() {
	fyne.Do(func() {
		p.answerEntry.SetText("")
	})
}

// AnswerText returns the raw answer entry content.
func (p *ProblemPanel) AnswerText() string {
	return p.answerEntry.Text
}

// SetSubmitHandler registers the answer submission callback. The
// handler receives the raw entry text; parsing happens upstream.
func (p *ProblemPanel) SetSubmitHandler(handler func(string)) {
	p.submitHandler = handler
}
