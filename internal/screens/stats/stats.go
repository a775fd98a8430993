package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

type statsLoadedMsg struct {
	Correct  int
	Total    int
	Sessions []store.SessionSummary
	Checks   store.CheckStats
	Err      error
}

// StatsScreen displays lifetime practice statistics and recent sessions.
type StatsScreen struct {
	eventRepo store.EventRepo

	correct  int
	total    int
	sessions []store.SessionSummary
	checks   store.CheckStats
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		correct, total, err := s.eventRepo.AnswerTotals(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		sessions, err := s.eventRepo.SessionSummaries(ctx, 50)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		checks, err := s.eventRepo.CheckRequestStats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		return statsLoadedMsg{Correct: correct, Total: total, Sessions: sessions, Checks: checks}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.correct = msg.Correct
			s.total = msg.Total
			s.sessions = msg.Sessions
			s.checks = msg.Checks
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading statistics...")
	}
	if s.total == 0 && len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	var accuracy float64
	if s.total > 0 {
		accuracy = float64(s.correct) / float64(s.total) * 100
	}
	totals := fmt.Sprintf("Answers checked: %d        Correct: %d        Accuracy: %.0f%%",
		s.total, s.correct, accuracy)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(totals)))
	b.WriteString("\n")

	if s.checks.Total > 0 {
		checkLine := fmt.Sprintf("Check requests: %d  (%d failed, avg %dms)",
			s.checks.Total, s.checks.Failed, s.checks.AvgMs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(checkLine)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent sessions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No completed sessions yet")))
		b.WriteString("\n")
		return b.String()
	}

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60

		var sessAcc float64
		if sess.QuestionsChecked > 0 {
			sessAcc = float64(sess.CorrectAnswers) / float64(sess.QuestionsChecked) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %s  %d checked  %.0f%% accuracy",
			prefix, dateStr, mins, secs, sess.DeckID, sess.QuestionsChecked, sessAcc)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
