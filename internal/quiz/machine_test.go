package quiz

import (
	"errors"
	"testing"

	"github.com/quizdeck/quizdeck/internal/exam"
)

func twoOptionQuestion(id string) *exam.Question {
	return &exam.Question{
		ID:   id,
		Stem: "Pick one",
		Options: []exam.AnswerOption{
			{ID: "a", Text: "first"},
			{ID: "b", Text: "second"},
		},
		AnswerID:    "a",
		Explanation: "bundled explanation",
	}
}

func threeOptionQuestion(id string) *exam.Question {
	q := twoOptionQuestion(id)
	q.Options = append(q.Options, exam.AnswerOption{ID: "c", Text: "third"})
	return q
}

func newTestMachine(mode Mode) *Machine {
	cfg := DefaultConfig()
	cfg.Mode = mode
	m := NewMachine(cfg, NewStore(RoleGuest))
	m.SetQuestion(twoOptionQuestion("q1"))
	return m
}

func TestSelectAnswer(t *testing.T) {
	m := newTestMachine(ModeStrict)

	if !m.SelectAnswer("a") {
		t.Fatal("expected selection to be accepted")
	}
	if got := m.State().SelectedAnswerID; got != "a" {
		t.Errorf("SelectedAnswerID = %q, want %q", got, "a")
	}

	// Selection is persisted to the session store.
	if ans, ok := m.store.Answer("q1"); !ok || ans != "a" {
		t.Errorf("store answer = %q, %v; want %q, true", ans, ok, "a")
	}
}

func TestSelectAnswer_UnknownOption(t *testing.T) {
	m := newTestMachine(ModeStrict)
	if m.SelectAnswer("zz") {
		t.Error("expected unknown option to be rejected")
	}
	if m.State().SelectedAnswerID != "" {
		t.Error("expected no selection after rejected select")
	}
}

func TestCanCheck_RequiresSelection(t *testing.T) {
	m := newTestMachine(ModeStrict)
	if m.CanCheck() {
		t.Error("CanCheck true with no selection")
	}
	if _, ok := m.BeginCheck(); ok {
		t.Error("BeginCheck dispatched with no selection")
	}

	m.SelectAnswer("a")
	if !m.CanCheck() {
		t.Error("CanCheck false with a selection")
	}
}

func TestCheckSuccess(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")

	d, ok := m.BeginCheck()
	if !ok {
		t.Fatal("expected dispatch")
	}
	if d.QuestionID != "q1" || d.AnswerID != "a" {
		t.Errorf("dispatch = %+v, want q1/a", d)
	}

	st := m.State()
	if !st.Checked || st.Status != StatusLoading {
		t.Errorf("after dispatch: Checked=%v Status=%v, want true/loading", st.Checked, st.Status)
	}

	if !m.Resolve(d.Token, true, "a", "server explanation", nil) {
		t.Fatal("expected response to be accepted")
	}

	st = m.State()
	if st.Status != StatusSuccess {
		t.Errorf("Status = %v, want success", st.Status)
	}
	if st.Result == nil || !st.Result.IsCorrect || st.Result.CorrectAnswerID != "a" {
		t.Errorf("Result = %+v, want correct/a", st.Result)
	}
	if st.Result.Explanation != "server explanation" {
		t.Errorf("Explanation = %q, want server text to win", st.Result.Explanation)
	}
	if !m.ShowExplanation() {
		t.Error("ShowExplanation false after confirmed check")
	}
}

func TestCheckSuccess_ExplanationFallsBackToQuestion(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("b")
	d, _ := m.BeginCheck()

	m.Resolve(d.Token, false, "a", "", nil)

	if got := m.State().Result.Explanation; got != "bundled explanation" {
		t.Errorf("Explanation = %q, want the question's bundled text", got)
	}
}

// Scenario C: a failed check re-enables checking without a new selection.
func TestCheckFailure_Retryable(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()

	if !m.Resolve(d.Token, false, "", "", errors.New("boom")) {
		t.Fatal("expected error response to be accepted")
	}

	st := m.State()
	if st.Checked {
		t.Error("Checked still true after error")
	}
	if st.Status != StatusError {
		t.Errorf("Status = %v, want error", st.Status)
	}
	if st.Result != nil {
		t.Error("Result non-nil after error")
	}
	if st.ErrMsg == "" {
		t.Error("expected a retry-inviting message")
	}
	if !m.CanCheck() {
		t.Error("CanCheck false after error; retry must be possible immediately")
	}
	if !m.CanSelectAnswer() {
		t.Error("CanSelectAnswer false after error")
	}

	// Retrying clears the error state.
	d2, ok := m.BeginCheck()
	if !ok {
		t.Fatal("expected retry dispatch")
	}
	if m.State().ErrMsg != "" {
		t.Error("ErrMsg not cleared on retry dispatch")
	}
	m.Resolve(d2.Token, true, "a", "", nil)
	if m.State().Status != StatusSuccess {
		t.Error("retry response not accepted")
	}
}

// Token monotonicity: every dispatch and question change advances the token,
// and an older token never mutates state.
func TestTokenMonotonicity(t *testing.T) {
	m := newTestMachine(ModeLearning)
	before := m.Token()

	m.SelectAnswer("a")
	d1, _ := m.BeginCheck()
	if d1.Token <= before {
		t.Errorf("token %d not above %d after dispatch", d1.Token, before)
	}

	m.SetQuestion(twoOptionQuestion("q1"))
	if m.Token() <= d1.Token {
		t.Errorf("token %d not advanced by question change", m.Token())
	}

	// The orphaned response must be discarded.
	if m.Resolve(d1.Token, true, "a", "", nil) {
		t.Error("stale response accepted after question change")
	}
	if st := m.State(); st.Status != StatusIdle || st.Result != nil {
		t.Errorf("stale response mutated state: %+v", st)
	}
}

// Scenario B: a second dispatch supersedes the first; only the second
// response lands, attributed to the second snapshot. Re-dispatch is only
// reachable after the first completes (the loading guard refuses re-entry),
// but its response may still be delivered twice or late.
func TestSupersededCheck_AfterFirstResolves(t *testing.T) {
	m := newTestMachine(ModeLearning)
	m.SetQuestion(threeOptionQuestion("q1"))

	m.SelectAnswer("b")
	d1, _ := m.BeginCheck()
	m.Resolve(d1.Token, false, "a", "", nil)

	// New selection un-commits the confirmed result, then a second check
	// goes out while the first's duplicate delivery is still possible.
	m.SelectAnswer("c")
	d2, ok := m.BeginCheck()
	if !ok {
		t.Fatal("second dispatch refused")
	}
	if d2.AnswerID != "c" {
		t.Errorf("second dispatch answer = %q, want c", d2.AnswerID)
	}

	// Response for the first token arrives late: discarded.
	if m.Resolve(d1.Token, true, "b", "", nil) {
		t.Error("superseded response accepted")
	}
	if got := m.State().CheckedAnswerID; got != "c" {
		t.Errorf("CheckedAnswerID = %q, want c", got)
	}

	// The live response lands normally.
	if !m.Resolve(d2.Token, false, "a", "", nil) {
		t.Error("live response rejected")
	}
	if got := m.State().CheckedAnswerID; got != "c" {
		t.Errorf("CheckedAnswerID = %q after accept, want c", got)
	}
}

// Snapshot isolation: the dispatch carries the answer as of dispatch time,
// regardless of later selection changes.
func TestSnapshotIsolation(t *testing.T) {
	m := newTestMachine(ModeLearning)
	m.SetQuestion(threeOptionQuestion("q1"))

	m.SelectAnswer("b")
	d, _ := m.BeginCheck()
	if d.AnswerID != "b" {
		t.Fatalf("dispatch answer = %q, want b", d.AnswerID)
	}

	// While loading, selection is refused in both modes, so the snapshot
	// cannot drift. The stored snapshot still reads b.
	m.SelectAnswer("c")
	if got := m.State().CheckedAnswerID; got != "b" {
		t.Errorf("CheckedAnswerID = %q, want b", got)
	}

	m.Resolve(d.Token, false, "a", "", nil)
	if got := m.State().CheckedAnswerID; got != "b" {
		t.Errorf("CheckedAnswerID after resolve = %q, want b", got)
	}
	if got := m.State().SelectedAnswerID; got != "b" {
		t.Errorf("SelectedAnswerID = %q, want b (loading selection refused)", got)
	}
}

// Scenario A: a response for the previous question never touches the new one.
func TestQuestionChangeOrphansInFlightCheck(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()

	m.SetQuestion(twoOptionQuestion("q2"))

	st := m.State()
	if st.QuestionID != "q2" {
		t.Fatalf("QuestionID = %q, want q2", st.QuestionID)
	}
	if st.Checked || st.Status != StatusIdle || st.SelectedAnswerID != "" || st.CheckedAnswerID != "" {
		t.Errorf("state not reset on question change: %+v", st)
	}

	if m.Resolve(d.Token, true, "a", "", nil) {
		t.Error("delayed q1 response accepted after navigating to q2")
	}
	if st := m.State(); st.Status != StatusIdle || st.Result != nil || st.Checked {
		t.Errorf("q2 state mutated by q1 response: %+v", st)
	}
}

// Idempotent reset: changing to the same question twice equals doing it once.
func TestQuestionChangeIdempotent(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()
	m.Resolve(d.Token, true, "a", "", nil)

	q2 := twoOptionQuestion("q2")
	m.SetQuestion(q2)
	once := m.State()
	m.SetQuestion(q2)
	twice := m.State()

	if once != twice {
		t.Errorf("double reset diverged: %+v vs %+v", once, twice)
	}
}

func TestAnswerMemorySeedsSelection(t *testing.T) {
	store := NewStore(RoleGuest)
	store.SetAnswer("q1", "b")

	m := NewMachine(DefaultConfig(), store)
	m.SetQuestion(twoOptionQuestion("q1"))

	if got := m.State().SelectedAnswerID; got != "b" {
		t.Errorf("seeded selection = %q, want b", got)
	}
	if !m.CanCheck() {
		t.Error("seeded selection should be checkable")
	}
	if m.State().Checked {
		t.Error("seeded selection must not arrive pre-checked")
	}
}

func TestAnswerMemoryDisabled(t *testing.T) {
	store := NewStore(RoleGuest)
	store.SetAnswer("q1", "b")

	cfg := DefaultConfig()
	cfg.AnswerMemory = false
	m := NewMachine(cfg, store)
	m.SetQuestion(twoOptionQuestion("q1"))

	if got := m.State().SelectedAnswerID; got != "" {
		t.Errorf("selection = %q, want none with memory disabled", got)
	}
}

func TestAnswerMemoryIgnoresUnknownOption(t *testing.T) {
	store := NewStore(RoleGuest)
	store.SetAnswer("q1", "gone")

	m := NewMachine(DefaultConfig(), store)
	m.SetQuestion(twoOptionQuestion("q1"))

	if got := m.State().SelectedAnswerID; got != "" {
		t.Errorf("selection = %q, want none for a stale option ID", got)
	}
}

// Scenario D: strict mode locks the selection after a confirmed check.
func TestStrictModeLocksAfterConfirm(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()
	m.Resolve(d.Token, true, "a", "", nil)

	before := m.State()
	if m.SelectAnswer("b") {
		t.Error("strict mode accepted a post-confirm selection")
	}
	if after := m.State(); after != before {
		t.Errorf("state changed by refused selection: %+v vs %+v", before, after)
	}
	if m.CanCheck() {
		t.Error("CanCheck true after confirmed check in strict mode")
	}
}

// Scenario E: learning mode un-commits on re-selection.
func TestLearningModeUncommitsOnReselect(t *testing.T) {
	m := newTestMachine(ModeLearning)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()
	m.Resolve(d.Token, false, "b", "", nil)

	if !m.SelectAnswer("b") {
		t.Fatal("learning mode refused a post-confirm selection")
	}

	st := m.State()
	if st.Checked {
		t.Error("Checked still true after un-commit")
	}
	if st.Status != StatusIdle || st.Result != nil || st.ErrMsg != "" {
		t.Errorf("result not cleared on un-commit: %+v", st)
	}
	if st.SelectedAnswerID != "b" {
		t.Errorf("SelectedAnswerID = %q, want b", st.SelectedAnswerID)
	}
	if !m.CanCheck() {
		t.Error("CanCheck false after un-commit")
	}
	if m.ShowExplanation() {
		t.Error("explanation still visible after un-commit")
	}
}

// Mutual exclusivity: Result and ErrMsg are never both set, across a
// success, failure, retry sequence.
func TestResultErrorMutuallyExclusive(t *testing.T) {
	m := newTestMachine(ModeLearning)
	m.SelectAnswer("a")

	assertExclusive := func(step string) {
		t.Helper()
		st := m.State()
		if st.Result != nil && st.ErrMsg != "" {
			t.Errorf("%s: Result and ErrMsg both set", step)
		}
		if (st.Result != nil) != (st.Status == StatusSuccess) {
			t.Errorf("%s: Result presence disagrees with Status %v", step, st.Status)
		}
		if (st.ErrMsg != "") != (st.Status == StatusError) {
			t.Errorf("%s: ErrMsg presence disagrees with Status %v", step, st.Status)
		}
	}

	assertExclusive("initial")
	d, _ := m.BeginCheck()
	assertExclusive("loading")
	m.Resolve(d.Token, false, "", "", errors.New("down"))
	assertExclusive("error")
	d, _ = m.BeginCheck()
	assertExclusive("retry loading")
	m.Resolve(d.Token, true, "a", "", nil)
	assertExclusive("success")
	m.SelectAnswer("b")
	assertExclusive("un-commit")
}

// A duplicate delivery of an already-accepted response is a no-op.
func TestDuplicateResponseIgnored(t *testing.T) {
	m := newTestMachine(ModeStrict)
	m.SelectAnswer("a")
	d, _ := m.BeginCheck()

	if !m.Resolve(d.Token, true, "a", "one", nil) {
		t.Fatal("first delivery rejected")
	}
	if m.Resolve(d.Token, false, "b", "two", nil) {
		t.Error("duplicate delivery accepted")
	}
	if got := m.State().Result.Explanation; got != "one" {
		t.Errorf("Result overwritten by duplicate: %q", got)
	}
}

func TestSelectionRefusedWhileLoading(t *testing.T) {
	for _, mode := range []Mode{ModeStrict, ModeLearning} {
		m := newTestMachine(mode)
		m.SelectAnswer("a")
		m.BeginCheck()

		if m.CanSelectAnswer() {
			t.Errorf("mode %v: CanSelectAnswer true while loading", mode)
		}
		if m.SelectAnswer("b") {
			t.Errorf("mode %v: selection accepted while loading", mode)
		}
		if _, ok := m.BeginCheck(); ok {
			t.Errorf("mode %v: re-entrant dispatch while loading", mode)
		}
	}
}

func TestDemoRestricted(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleGuest, false},
		{RoleDemo, true},
		{RoleSubscriber, false},
		{RoleAdmin, false},
	}

	for _, tt := range tests {
		m := NewMachine(DefaultConfig(), NewStore(tt.role))
		m.SetQuestion(twoOptionQuestion("q1"))
		m.SelectAnswer("a")
		d, _ := m.BeginCheck()
		m.Resolve(d.Token, true, "a", "", nil)

		if got := m.DemoRestricted(); got != tt.want {
			t.Errorf("role %s: DemoRestricted = %v, want %v", tt.role, got, tt.want)
		}
	}
}
