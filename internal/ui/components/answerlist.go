package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// AnswerList renders a question's options with a movable cursor. It is a
// pure view over state owned by the caller: selection, check outcome and
// input locking all come in from outside.
type AnswerList struct {
	Options []exam.AnswerOption

	// Cursor is the highlighted row index.
	Cursor int

	// SelectedID is the option currently selected, if any.
	SelectedID string

	// Locked disables cursor movement (e.g. while a check is in flight
	// or after a strict-mode confirm).
	Locked bool

	// Revealed switches rendering to the post-check result view.
	Revealed bool

	// CorrectID and CheckedID drive the result view coloring.
	CorrectID string
	CheckedID string
}

// NewAnswerList creates an answer list with the cursor on the first option.
func NewAnswerList(options []exam.AnswerOption) AnswerList {
	return AnswerList{Options: options}
}

// Init returns nil.
func (a AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Selection itself is the caller's call.
func (a AnswerList) Update(msg tea.Msg) (AnswerList, tea.Cmd) {
	if a.Locked {
		return a, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.Cursor > 0 {
			a.Cursor--
		}
	case "down", "j":
		if a.Cursor < len(a.Options)-1 {
			a.Cursor++
		}
	}

	return a, nil
}

// CursorOption returns the option under the cursor, or nil when empty.
func (a AnswerList) CursorOption() *exam.AnswerOption {
	if a.Cursor < 0 || a.Cursor >= len(a.Options) {
		return nil
	}
	return &a.Options[a.Cursor]
}

// MoveCursorTo places the cursor on the option with the given ID.
func (a *AnswerList) MoveCursorTo(optionID string) {
	for i, opt := range a.Options {
		if opt.ID == optionID {
			a.Cursor = i
			return
		}
	}
}

// View renders the option rows.
func (a AnswerList) View() string {
	var s string
	for i, opt := range a.Options {
		prefix := "  "
		if i == a.Cursor && !a.Revealed && !a.Locked {
			prefix = "▸ "
		}

		marker := " "
		if opt.ID == a.SelectedID {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, opt.ID, opt.Text)

		switch {
		case a.Revealed && opt.ID == a.CorrectID:
			s += theme.Correct.Render(line) + "\n"
		case a.Revealed && opt.ID == a.CheckedID:
			s += theme.Incorrect.Render(line) + "\n"
		case a.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == a.Cursor && !a.Locked:
			s += theme.Selected.Render(line) + "\n"
		case opt.ID == a.SelectedID:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
