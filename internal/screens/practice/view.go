package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	st := s.machine.State()
	q := s.currentQuestion()

	var b strings.Builder

	// Position line: question number, deck progress, review flag.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.index+1, len(s.deck.Questions)))

	if s.session.MarkedForReview(q.ID) {
		infoLeft += theme.ReviewMark.Render("  ⚑ review")
	}

	progress := components.NewProgressBar("", float64(s.session.AnsweredCount())/float64(len(s.deck.Questions)), false, 24)
	infoRight := progress.View() + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d answered", s.session.AnsweredCount()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Stem.
	stem := s.renderer.Render(q.Stem).String()
	stemStyle := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stemStyle.Render(stem)))
	b.WriteString("\n\n")

	// Options.
	list := s.answers
	list.SelectedID = st.SelectedAnswerID
	list.Locked = !s.machine.CanSelectAnswer()
	list.Revealed = s.machine.ShowExplanation()
	list.CheckedID = st.CheckedAnswerID
	if st.Result != nil {
		list.CorrectID = st.Result.CorrectAnswerID
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View()))
	b.WriteString("\n")

	// Status area.
	b.WriteString(s.renderStatus(st, width))

	if s.gotoActive {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"Go to question: "+s.gotoInput.View()))
	}

	return b.String()
}

func (s *Screen) renderStatus(st quiz.State, width int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case st.Status == quiz.StatusLoading:
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			spinFrames[s.spinFrame%len(spinFrames)]+" Checking...")

	case st.Status == quiz.StatusError:
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), st.ErrMsg)
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Press Enter to retry.")

	case s.machine.ShowExplanation():
		if st.Result.IsCorrect {
			center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Correct!")
		} else {
			center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
			center(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("Correct answer: %s", st.Result.CorrectAnswerID))
		}
		b.WriteString("\n")
		b.WriteString(s.renderExplanation(st, width))
	}

	return b.String()
}

func (s *Screen) renderExplanation(st quiz.State, width int) string {
	if s.machine.DemoRestricted() {
		notice := theme.Warning.Render("Explanations are available to subscribers.") + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Upgrade to see why this answer is correct.")
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, notice)
	}

	var b strings.Builder
	expStyle := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text)

	if st.Result.Explanation != "" {
		exp := s.renderer.Render(st.Result.Explanation).String()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(exp)))
		b.WriteString("\n")
	}

	switch {
	case s.explainLoading:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(spinFrames[s.spinFrame%len(spinFrames)] + " Asking for a deeper explanation..."))
	case s.explainErr != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.explainErr))
	case s.explainText != "":
		b.WriteString("\n")
		deep := s.renderer.Render(s.explainText).String()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Width(min(width-8, 72)).Render(deep)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
