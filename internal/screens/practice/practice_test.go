package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/quizdeck/quizdeck/internal/check"
	"github.com/quizdeck/quizdeck/internal/exam"
	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents  []store.AnswerEventData
	checkEvents   []store.CheckEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendCheckEvent(_ context.Context, data store.CheckEventData) error {
	m.checkEvents = append(m.checkEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AnswerTotals(_ context.Context) (int, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) QuestionAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}
func (m *mockEventRepo) SessionSummaries(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) CheckRequestStats(_ context.Context) (store.CheckStats, error) {
	return store.CheckStats{}, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeck() *exam.Deck {
	return &exam.Deck{
		ID:    "test-deck",
		Title: "Test Deck",
		Questions: []exam.Question{
			{
				ID:   "q1",
				Stem: "What is $2 + 2$?",
				Options: []exam.AnswerOption{
					{ID: "a", Text: "3"},
					{ID: "b", Text: "4"},
				},
				Explanation: "Count it out.",
				AnswerID:    "b",
			},
			{
				ID:   "q2",
				Stem: "What is $3 \\times 3$?",
				Options: []exam.AnswerOption{
					{ID: "a", Text: "6"},
					{ID: "b", Text: "9"},
				},
				AnswerID: "b",
			},
		},
	}
}

func testScreen(cfg quiz.Config) (*Screen, *mockEventRepo) {
	events := &mockEventRepo{}
	s := New(Options{
		Deck:    testDeck(),
		Config:  cfg,
		Session: quiz.NewStore(cfg.Role),
		Checker: check.NewMockService(),
		Events:  events,
		Log:     zerolog.Nop(),
	})
	return s, events
}

// selectAndDispatch moves the selection to answerID and dispatches a check,
// returning the active token.
func selectAndDispatch(t *testing.T, s *Screen, answerID string) uint64 {
	t.Helper()
	s.answers.MoveCursorTo(answerID)
	s.Update(keyPress(' '))
	if got := s.machine.State().SelectedAnswerID; got != answerID {
		t.Fatalf("SelectedAnswerID = %q, want %q", got, answerID)
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a dispatch command on Enter")
	}
	if s.machine.State().Status != quiz.StatusLoading {
		t.Fatalf("Status = %v, want loading", s.machine.State().Status)
	}
	return s.machine.Token()
}

func TestPracticeScreen_Title(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestPracticeScreen_InitLoadsFirstQuestion(t *testing.T) {
	s, events := testScreen(quiz.DefaultConfig())
	cmd := s.Init()

	if got := s.machine.State().QuestionID; got != "q1" {
		t.Errorf("QuestionID = %q, want %q", got, "q1")
	}
	if cmd == nil {
		t.Fatal("expected session start command")
	}
	cmd()
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "start" {
		t.Errorf("sessionEvents = %+v, want one start event", events.sessionEvents)
	}
}

func TestPracticeScreen_CheckSuccess(t *testing.T) {
	s, events := testScreen(quiz.DefaultConfig())
	s.Init()

	token := selectAndDispatch(t, s, "b")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})

	st := s.machine.State()
	if st.Status != quiz.StatusSuccess {
		t.Fatalf("Status = %v, want success", st.Status)
	}
	if !s.machine.ShowExplanation() {
		t.Error("expected explanation to be visible")
	}
	if st.Result.Explanation != "Count it out." {
		t.Errorf("Explanation = %q, want the bundled text", st.Result.Explanation)
	}
	if len(events.answerEvents) != 1 {
		t.Fatalf("answerEvents = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if ev.QuestionID != "q1" || ev.AnswerID != "b" || !ev.Correct {
		t.Errorf("answer event = %+v", ev)
	}
}

func TestPracticeScreen_StaleResponseDiscarded(t *testing.T) {
	s, events := testScreen(quiz.DefaultConfig())
	s.Init()

	token := selectAndDispatch(t, s, "b")

	// Navigating away orphans the in-flight check.
	s.Update(specialKey(tea.KeyRight))
	if got := s.machine.State().QuestionID; got != "q2" {
		t.Fatalf("QuestionID = %q, want %q", got, "q2")
	}

	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})

	st := s.machine.State()
	if st.Status != quiz.StatusIdle || st.Result != nil {
		t.Errorf("stale response mutated state: %+v", st)
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("stale response recorded an answer event")
	}
}

func TestPracticeScreen_CheckErrorAllowsRetry(t *testing.T) {
	s, events := testScreen(quiz.DefaultConfig())
	s.Init()

	token := selectAndDispatch(t, s, "a")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Err:        context.DeadlineExceeded,
	})

	st := s.machine.State()
	if st.Status != quiz.StatusError {
		t.Fatalf("Status = %v, want error", st.Status)
	}
	if st.ErrMsg == "" {
		t.Error("expected a retry message")
	}
	if !s.machine.CanCheck() {
		t.Error("expected the question to be checkable again after a failure")
	}
	if len(events.answerEvents) != 0 {
		t.Error("failed check must not record an answer event")
	}

	// Retry succeeds.
	token = selectAndDispatch(t, s, "a")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: false, CorrectAnswerID: "b"},
	})
	if s.machine.State().Status != quiz.StatusSuccess {
		t.Error("expected retry to succeed")
	}
	if len(events.answerEvents) != 1 {
		t.Errorf("answerEvents = %d, want 1", len(events.answerEvents))
	}
}

func TestPracticeScreen_StrictModeLocksAfterCheck(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	token := selectAndDispatch(t, s, "a")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: false, CorrectAnswerID: "b"},
	})

	if s.machine.CanSelectAnswer() {
		t.Error("strict mode must lock the selection after a confirmed check")
	}
	s.answers.MoveCursorTo("b")
	s.Update(keyPress(' '))
	if got := s.machine.State().SelectedAnswerID; got != "a" {
		t.Errorf("SelectedAnswerID = %q, want unchanged %q", got, "a")
	}
}

func TestPracticeScreen_LearningModeRecheck(t *testing.T) {
	cfg := quiz.DefaultConfig()
	cfg.Mode = quiz.ModeLearning
	s, _ := testScreen(cfg)
	s.Init()

	token := selectAndDispatch(t, s, "a")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: false, CorrectAnswerID: "b"},
	})

	// Re-select un-commits the result.
	s.answers.MoveCursorTo("b")
	s.Update(keyPress(' '))
	st := s.machine.State()
	if st.SelectedAnswerID != "b" {
		t.Fatalf("SelectedAnswerID = %q, want %q", st.SelectedAnswerID, "b")
	}
	if st.Result != nil || st.Checked {
		t.Error("re-selection should clear the committed result")
	}
	if !s.machine.CanCheck() {
		t.Error("expected the new selection to be checkable")
	}
}

func TestPracticeScreen_ReviewToggle(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	s.Update(keyPress('r'))
	if !s.session.MarkedForReview("q1") {
		t.Error("expected q1 marked for review")
	}
	s.Update(keyPress('r'))
	if s.session.MarkedForReview("q1") {
		t.Error("expected review mark cleared")
	}
}

func TestPracticeScreen_AnswerMemoryAcrossNavigation(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	s.answers.MoveCursorTo("a")
	s.Update(keyPress(' '))

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))

	if got := s.machine.State().SelectedAnswerID; got != "a" {
		t.Errorf("SelectedAnswerID after round trip = %q, want %q", got, "a")
	}
}

func TestPracticeScreen_EndProducesSummary(t *testing.T) {
	s, events := testScreen(quiz.DefaultConfig())
	s.Init()

	token := selectAndDispatch(t, s, "b")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})

	// Advance past the last question to end the session.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyRight)) // -> q2
	_, cmd := scr.Update(specialKey(tea.KeyRight))
	if cmd == nil {
		t.Fatal("expected an end command past the last question")
	}
	msg := cmd()
	if _, ok := msg.(endMsg); !ok {
		t.Fatalf("msg = %T, want endMsg", msg)
	}

	_, cmd = scr.Update(msg)
	if cmd == nil {
		t.Fatal("expected a replace command on end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg carrying the summary screen")
	}

	if len(events.sessionEvents) != 1 {
		t.Fatalf("sessionEvents = %d, want 1 end event", len(events.sessionEvents))
	}
	end := events.sessionEvents[0]
	if end.Action != "end" || end.QuestionsChecked != 1 || end.CorrectAnswers != 1 {
		t.Errorf("end event = %+v", end)
	}
}

func TestPracticeScreen_EndRollsSnapshot(t *testing.T) {
	snaps := &mockSnapshotRepo{}
	s := New(Options{
		Deck:      testDeck(),
		Config:    quiz.DefaultConfig(),
		Session:   quiz.NewStore(quiz.RoleGuest),
		Checker:   check.NewMockService(),
		Events:    &mockEventRepo{},
		Snapshots: snaps,
		Log:       zerolog.Nop(),
	})
	s.Init()

	token := selectAndDispatch(t, s, "b")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})
	s.Update(endMsg{})

	if len(snaps.snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snaps.snapshots))
	}
	snap := snaps.snapshots[0]
	if snap.Sequence != 1 {
		t.Errorf("Sequence = %d, want 1", snap.Sequence)
	}
	ds := snap.Data.Decks["test-deck"]
	if ds.Attempts != 1 || ds.Correct != 1 {
		t.Errorf("deck stats = %+v, want 1 attempt, 1 correct", ds)
	}
}

func TestPracticeScreen_DemoRoleRestrictsExplanation(t *testing.T) {
	cfg := quiz.DefaultConfig()
	cfg.Role = quiz.RoleDemo
	s, _ := testScreen(cfg)
	s.Init()

	token := selectAndDispatch(t, s, "b")
	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})

	if !s.machine.ShowExplanation() {
		t.Fatal("explanation panel should be visible")
	}
	if !s.machine.DemoRestricted() {
		t.Error("demo role should see the upgrade notice instead of the text")
	}
}

func TestPracticeScreen_View(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view")
	}

	token := selectAndDispatch(t, s, "b")
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty loading view")
	}

	s.Update(checkResultMsg{
		Token:      token,
		QuestionID: "q1",
		Result:     &check.Result{IsCorrect: true, CorrectAnswerID: "b"},
	})
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty result view")
	}
}

func TestPracticeScreen_EscEndsSession(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	if !s.HandlesEsc() {
		t.Fatal("practice screen must own the Esc key")
	}
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected an end command on Esc")
	}
	if _, ok := cmd().(endMsg); !ok {
		t.Error("Esc should end the session")
	}
}

func TestPracticeScreen_GotoCancel(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	s.Update(keyPress('g'))
	if !s.gotoActive {
		t.Fatal("expected goto prompt active")
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.gotoActive {
		t.Error("expected Esc to cancel the goto prompt")
	}
}

func TestPracticeScreen_SpinnerStopsWhenIdle(t *testing.T) {
	s, _ := testScreen(quiz.DefaultConfig())
	s.Init()

	_, cmd := s.Update(spinTickMsg{})
	if cmd != nil {
		t.Error("spinner should not re-arm while idle")
	}

	selectAndDispatch(t, s, "b")
	_, cmd = s.Update(spinTickMsg{})
	if cmd == nil {
		t.Error("spinner should re-arm while a check is loading")
	}
}
