package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/explain"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/placeholder"
	"github.com/quizdeck/quizdeck/internal/screens/practice"
	"github.com/quizdeck/quizdeck/internal/screens/stats"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Options carries the home screen's dependencies, passed through to the
// screens it launches.
type Options struct {
	Deck      *exam.Deck
	Config    quiz.Config
	Session   *quiz.Store
	Checker   check.Service
	Explainer explain.Explainer
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Log       zerolog.Logger
}

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}

	items := []components.MenuItem{
		{Label: "Practice", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(practice.Options{
						Deck:      opts.Deck,
						Config:    opts.Config,
						Session:   opts.Session,
						Checker:   opts.Checker,
						Explainer: opts.Explainer,
						Events:    opts.Events,
						Snapshots: opts.Snapshots,
						Log:       opts.Log,
					}),
				}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			if opts.Events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Statistics")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(opts.Events)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Q U I Z D E C K"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("exam practice, one question at a time"))
	b.WriteString("\n\n")

	deckLine := fmt.Sprintf("%s — %d questions", h.opts.Deck.Title, len(h.opts.Deck.Questions))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(deckLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
