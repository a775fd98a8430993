package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/content"
	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/explain"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	summaryscreen "github.com/quizdeck/quizdeck/internal/screens/summary"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
)

const (
	checkTimeout   = 10 * time.Second
	explainTimeout = 30 * time.Second
)

// Options carries the practice screen's dependencies.
type Options struct {
	Deck      *exam.Deck
	Config    quiz.Config
	Session   *quiz.Store
	Checker   check.Service
	Explainer explain.Explainer  // nil disables the deep-explain key
	Events    store.EventRepo    // nil disables persistence
	Snapshots store.SnapshotRepo // nil disables aggregate snapshots
	Log       zerolog.Logger
}

// Screen runs a practice session over a deck, one question at a time.
// All answer/check semantics live in the quiz.Machine; this screen turns
// key presses into machine calls and check dispatches into commands.
type Screen struct {
	deck      *exam.Deck
	cfg       quiz.Config
	session   *quiz.Store
	machine   *quiz.Machine
	checker   check.Service
	explainer explain.Explainer
	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       zerolog.Logger
	renderer  *content.Renderer

	index   int
	answers components.AnswerList

	sessionID     string
	startTime     time.Time
	questionStart time.Time

	// Per-question outcome of the latest confirmed check, used for the
	// session summary. Learning mode can overwrite an entry.
	graded map[string]bool

	spinFrame int

	gotoActive bool
	gotoInput  components.TextInput

	explainText    string
	explainErr     string
	explainLoading bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates a practice screen. The machine is seeded with the session
// store so remembered answers survive navigation.
func New(opts Options) *Screen {
	return &Screen{
		deck:      opts.Deck,
		cfg:       opts.Config,
		session:   opts.Session,
		machine:   quiz.NewMachine(opts.Config, opts.Session),
		checker:   opts.Checker,
		explainer: opts.Explainer,
		events:    opts.Events,
		snapshots: opts.Snapshots,
		log:       opts.Log,
		renderer:  content.NewRenderer(),
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		graded:    make(map[string]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	s.loadQuestion(0)
	return s.appendSessionStart()
}

func (s *Screen) Title() string {
	return "Practice"
}

// HandlesEsc keeps Esc out of the app's pop-screen default: it cancels the
// goto prompt when open, and otherwise ends the session through the summary.
func (s *Screen) HandlesEsc() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.gotoActive {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Select"},
	}
	if s.machine.CanCheck() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"})
	}
	if s.machine.ShowExplanation() && !s.machine.DemoRestricted() && s.explainer != nil {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "←→", Description: "Question"},
		layout.KeyHint{Key: "R", Description: "Review"},
		layout.KeyHint{Key: "G", Description: "Go to"},
		layout.KeyHint{Key: "Esc", Description: "End"},
	)
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkResultMsg:
		return s.handleCheckResult(msg)

	case explainReadyMsg:
		return s.handleExplainReady(msg)

	case spinTickMsg:
		if s.machine.State().Status == quiz.StatusLoading || s.explainLoading {
			s.spinFrame++
			return s, spinTick()
		}
		return s, nil

	case endMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.gotoActive {
		switch key {
		case "enter":
			s.gotoActive = false
			if n, err := s.gotoInput.NumericValue(); err == nil && n >= 1 && n <= len(s.deck.Questions) {
				s.loadQuestion(n - 1)
			}
			return s, nil
		case "esc":
			s.gotoActive = false
			return s, nil
		}
		var cmd tea.Cmd
		s.gotoInput, cmd = s.gotoInput.Update(msg)
		return s, cmd
	}

	switch key {
	case "up", "k", "down", "j":
		if s.machine.CanSelectAnswer() {
			var cmd tea.Cmd
			s.answers, cmd = s.answers.Update(msg)
			return s, cmd
		}
		return s, nil

	case " ", "space":
		if opt := s.answers.CursorOption(); opt != nil {
			if s.machine.SelectAnswer(opt.ID) {
				s.answers.SelectedID = opt.ID
				s.clearExplain()
			}
		}
		return s, nil

	case "enter":
		if d, ok := s.machine.BeginCheck(); ok {
			s.questionStart = time.Now()
			s.log.Debug().
				Uint64("token", d.Token).
				Str("question", d.QuestionID).
				Str("answer", d.AnswerID).
				Msg("check dispatched")
			return s, tea.Batch(s.checkCmd(d), spinTick())
		}
		return s, nil

	case "right", "l", "n":
		if s.index+1 >= len(s.deck.Questions) {
			return s, func() tea.Msg { return endMsg{} }
		}
		s.loadQuestion(s.index + 1)
		return s, nil

	case "left", "h", "p":
		if s.index > 0 {
			s.loadQuestion(s.index - 1)
		}
		return s, nil

	case "r":
		s.session.ToggleReview(s.currentQuestion().ID)
		return s, nil

	case "esc":
		return s, func() tea.Msg { return endMsg{} }

	case "g":
		s.gotoActive = true
		s.gotoInput = components.NewTextInput("question #", true, 4)
		return s, s.gotoInput.Init()

	case "e":
		if s.machine.ShowExplanation() && !s.machine.DemoRestricted() &&
			s.explainer != nil && !s.explainLoading && s.explainText == "" {
			s.explainLoading = true
			s.explainErr = ""
			return s, tea.Batch(s.explainCmd(), spinTick())
		}
		return s, nil
	}

	return s, nil
}

// loadQuestion switches the screen (and the machine) to the question at i.
func (s *Screen) loadQuestion(i int) {
	s.index = i
	q := &s.deck.Questions[i]
	s.machine.SetQuestion(q)

	s.answers = components.NewAnswerList(q.Options)
	if sel := s.machine.State().SelectedAnswerID; sel != "" {
		s.answers.SelectedID = sel
		s.answers.MoveCursorTo(sel)
	}

	s.questionStart = time.Now()
	s.clearExplain()
}

func (s *Screen) currentQuestion() *exam.Question {
	return &s.deck.Questions[s.index]
}

func (s *Screen) clearExplain() {
	s.explainText = ""
	s.explainErr = ""
	s.explainLoading = false
}

// checkCmd executes one dispatched check asynchronously.
func (s *Screen) checkCmd(d quiz.Dispatch) tea.Cmd {
	checker := s.checker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()

		res, err := checker.CheckAnswer(ctx, d.QuestionID, d.AnswerID)
		return checkResultMsg{Token: d.Token, QuestionID: d.QuestionID, Result: res, Err: err}
	}
}

func (s *Screen) handleCheckResult(msg checkResultMsg) (screen.Screen, tea.Cmd) {
	var accepted bool
	if msg.Err != nil {
		accepted = s.machine.Resolve(msg.Token, false, "", "", msg.Err)
		if accepted {
			s.log.Warn().Err(msg.Err).Str("question", msg.QuestionID).Msg("check failed")
		}
	} else {
		accepted = s.machine.Resolve(msg.Token,
			msg.Result.IsCorrect, msg.Result.CorrectAnswerID, msg.Result.Explanation, nil)
	}

	if !accepted {
		s.log.Debug().
			Uint64("token", msg.Token).
			Str("question", msg.QuestionID).
			Msg("stale check response discarded")
		return s, nil
	}

	st := s.machine.State()
	if st.Status == quiz.StatusSuccess && st.Result != nil {
		s.graded[st.QuestionID] = st.Result.IsCorrect
		if s.events != nil {
			timeMs := int(time.Since(s.questionStart).Milliseconds())
			_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
				SessionID:       s.sessionID,
				DeckID:          s.deck.ID,
				QuestionID:      st.QuestionID,
				AnswerID:        st.CheckedAnswerID,
				Correct:         st.Result.IsCorrect,
				CorrectAnswerID: st.Result.CorrectAnswerID,
				TimeMs:          timeMs,
			})
		}
	}

	return s, nil
}

// explainCmd asks the configured explainer for a deeper explanation of the
// committed result.
func (s *Screen) explainCmd() tea.Cmd {
	q := s.machine.Question()
	st := s.machine.State()
	req := explain.Request{
		Question:   q,
		SelectedID: st.CheckedAnswerID,
	}
	if st.Result != nil {
		req.CorrectID = st.Result.CorrectAnswerID
	}
	explainer := s.explainer

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()

		text, err := explainer.Explain(ctx, req)
		return explainReadyMsg{QuestionID: q.ID, Text: text, Err: err}
	}
}

func (s *Screen) handleExplainReady(msg explainReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.QuestionID != s.currentQuestion().ID {
		return s, nil
	}
	s.explainLoading = false
	if msg.Err != nil {
		s.explainErr = "Could not fetch a deeper explanation."
		s.log.Warn().Err(msg.Err).Msg("explain failed")
		return s, nil
	}
	s.explainText = msg.Text
	return s, nil
}

func (s *Screen) handleEnd() (screen.Screen, tea.Cmd) {
	duration := time.Since(s.startTime)
	checked := len(s.graded)
	correct := 0
	for _, ok := range s.graded {
		if ok {
			correct++
		}
	}

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:        s.sessionID,
			Action:           "end",
			DeckID:           s.deck.ID,
			Mode:             s.cfg.Mode.String(),
			Role:             string(s.cfg.Role),
			QuestionsTotal:   len(s.deck.Questions),
			QuestionsChecked: checked,
			CorrectAnswers:   correct,
			DurationSecs:     int(duration.Seconds()),
		})
	}
	s.rollSnapshot(checked, correct)

	sum := summaryscreen.Summary{
		DeckTitle: s.deck.Title,
		Total:     len(s.deck.Questions),
		Checked:   checked,
		Correct:   correct,
		Reviewed:  s.session.ReviewCount(),
		Duration:  duration,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryscreen.New(sum)}
	}
}

// rollSnapshot folds this session's confirmed outcomes into the latest
// aggregate snapshot, best effort.
func (s *Screen) rollSnapshot(checked, correct int) {
	if s.snapshots == nil || checked == 0 {
		return
	}
	ctx := context.Background()

	data := store.SnapshotData{Version: 1, Decks: make(map[string]store.DeckStats)}
	var seq int64
	if prev, err := s.snapshots.Latest(ctx); err == nil && prev != nil {
		seq = prev.Sequence
		data = prev.Data
		if data.Decks == nil {
			data.Decks = make(map[string]store.DeckStats)
		}
	}

	ds := data.Decks[s.deck.ID]
	ds.Attempts += checked
	ds.Correct += correct
	data.Decks[s.deck.ID] = ds

	err := s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq + 1,
		Timestamp: time.Now(),
		Data:      data,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("snapshot save failed")
		return
	}
	_ = s.snapshots.Prune(ctx, 20)
}

// appendSessionStart records the start event, best effort.
func (s *Screen) appendSessionStart() tea.Cmd {
	if s.events == nil {
		return nil
	}
	events := s.events
	data := store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         "start",
		DeckID:         s.deck.ID,
		Mode:           s.cfg.Mode.String(),
		Role:           string(s.cfg.Role),
		QuestionsTotal: len(s.deck.Questions),
	}
	return func() tea.Msg {
		_ = events.AppendSessionEvent(context.Background(), data)
		return nil
	}
}

// spinTick drives the loading animation.
func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinTickMsg{}
	})
}

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
