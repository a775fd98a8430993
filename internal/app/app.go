package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/explain"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/home"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

// Options carries everything the TUI needs, wired by the command layer.
type Options struct {
	Deck      *exam.Deck
	Config    quiz.Config
	Session   *quiz.Store
	Checker   check.Service
	Explainer explain.Explainer // nil when not configured

	Events    store.EventRepo    // nil when running without a database
	Snapshots store.SnapshotRepo // nil when running without a database

	Log zerolog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newModel(opts Options) Model {
	return Model{
		router: router.New(home.New(home.Options{
			Deck:      opts.Deck,
			Config:    opts.Config,
			Session:   opts.Session,
			Checker:   opts.Checker,
			Explainer: opts.Explainer,
			Events:    opts.Events,
			Snapshots: opts.Snapshots,
			Log:       opts.Log,
		})),
		opts: opts,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscHandler); ok && eh.HandlesEsc() {
				break // the screen owns Esc
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Config.Mode.String(), string(m.opts.Config.Role), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// NewLogger returns a zerolog logger. When QUIZDECK_DEBUG is set it writes
// to the named file; otherwise it discards everything so log calls are
// safe from inside the TUI.
func NewLogger() zerolog.Logger {
	path := os.Getenv("QUIZDECK_DEBUG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: cannot open debug log:", err)
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	opts.Log.Info().
		Str("deck", opts.Deck.ID).
		Str("mode", opts.Config.Mode.String()).
		Str("role", string(opts.Config.Role)).
		Msg("starting TUI")

	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
