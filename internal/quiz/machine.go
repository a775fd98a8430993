package quiz

import "github.com/quizdeck/quizdeck/internal/exam"

// Machine owns the selection and check state for the currently displayed
// question and runs the check protocol with staleness protection.
//
// The machine itself never blocks and never talks to the network. A check
// runs in three steps: SelectAnswer picks an option, BeginCheck snapshots
// the selection and hands the caller a Dispatch to execute asynchronously,
// and Resolve applies the outcome — but only if the dispatch token is still
// the active one. Everything that arrives late, after a re-dispatch or a
// question change, is discarded without touching state. No transport
// cancellation is required for correctness; callers may cancel the
// in-flight request as an optimization.
//
// All methods must be called from the same goroutine; in the TUI that is
// the Bubble Tea update loop.
type Machine struct {
	cfg      Config
	store    *Store
	question *exam.Question
	state    State
	token    uint64
}

// NewMachine creates a Machine bound to a session store.
func NewMachine(cfg Config, store *Store) *Machine {
	return &Machine{cfg: cfg, store: store}
}

// State returns a copy of the current per-question state.
func (m *Machine) State() State {
	return m.state
}

// Question returns the currently displayed question, or nil before the
// first SetQuestion.
func (m *Machine) Question() *exam.Question {
	return m.question
}

// Token returns the active request token. It strictly increases on every
// dispatch and every question change.
func (m *Machine) Token() uint64 {
	return m.token
}

// SetQuestion switches the machine to a new question and fully resets the
// per-question state. It is idempotent in effect: calling it twice with the
// same question yields the same state as calling it once, though each call
// still advances the token so that any in-flight check is orphaned.
//
// After this returns, no response belonging to a previous question or a
// previous instance of the same question can mutate state.
func (m *Machine) SetQuestion(q *exam.Question) {
	m.token++ // orphan any in-flight check
	m.question = q
	m.state = State{}
	if q == nil {
		return
	}

	m.state.QuestionID = q.ID
	if m.cfg.AnswerMemory {
		if remembered, ok := m.store.Answer(q.ID); ok && q.HasOption(remembered) {
			m.state.SelectedAnswerID = remembered
		}
	}
}

// CanSelectAnswer reports whether a selection is currently accepted. A
// selection is refused while a check is in flight, and in strict mode also
// once a check has been committed.
func (m *Machine) CanSelectAnswer() bool {
	if m.question == nil || m.state.Status == StatusLoading {
		return false
	}
	if m.state.Checked {
		return m.cfg.Mode == ModeLearning
	}
	return true
}

// CanCheck reports whether a check may be dispatched now.
func (m *Machine) CanCheck() bool {
	return m.question != nil &&
		m.state.SelectedAnswerID != "" &&
		m.state.Status != StatusLoading &&
		!m.state.Checked
}

// ShowExplanation reports whether the explanation panel should be visible.
func (m *Machine) ShowExplanation() bool {
	return m.state.Checked && m.state.Status == StatusSuccess
}

// DemoRestricted reports whether the visible explanation must be replaced
// by an upgrade notice for the demo role.
func (m *Machine) DemoRestricted() bool {
	return m.ShowExplanation() && m.store.Role() == RoleDemo
}

// SelectAnswer records a selection and persists it to the session store.
// Returns false (a no-op) when selection is disallowed or the ID does not
// name an option of the current question. In learning mode, selecting
// while a result is committed un-commits it: the previous check outcome is
// cleared and the question becomes checkable again.
func (m *Machine) SelectAnswer(answerID string) bool {
	if !m.CanSelectAnswer() || !m.question.HasOption(answerID) {
		return false
	}

	if m.state.Checked {
		// Learning mode only: a new selection invalidates the committed
		// result but not the snapshot of what was last checked.
		m.state.Checked = false
		m.state.Status = StatusIdle
		m.state.Result = nil
		m.state.ErrMsg = ""
	}

	m.state.SelectedAnswerID = answerID
	m.store.SetAnswer(m.question.ID, answerID)
	return true
}

// BeginCheck commits the current selection and returns the Dispatch the
// caller must execute. Returns ok=false (a no-op) when checking is
// disallowed — no selection, already committed, or a check in flight.
// Rapid repeated calls therefore produce at most one live dispatch.
func (m *Machine) BeginCheck() (Dispatch, bool) {
	if !m.CanCheck() {
		return Dispatch{}, false
	}

	m.state.CheckedAnswerID = m.state.SelectedAnswerID
	m.state.Checked = true
	m.state.Status = StatusLoading
	m.state.ErrMsg = ""
	m.token++

	return Dispatch{
		Token:      m.token,
		QuestionID: m.question.ID,
		AnswerID:   m.state.CheckedAnswerID,
	}, true
}

// Resolve applies the outcome of a dispatched check. The response is
// accepted only when its token equals the active token and a check is
// still pending; otherwise it is discarded with no state change — a stale
// response is normal operation, not an error.
//
// On success the result is committed and the explanation resolved with
// server text taking precedence over the question's bundled explanation.
// On failure the check is rolled back: Checked returns to false and a
// retry-inviting message is set, so the user can immediately try again.
func (m *Machine) Resolve(token uint64, isCorrect bool, correctAnswerID, explanation string, checkErr error) bool {
	if token != m.token || m.state.Status != StatusLoading {
		return false
	}

	if checkErr != nil {
		m.state.Checked = false
		m.state.Status = StatusError
		m.state.Result = nil
		m.state.ErrMsg = "Could not check your answer. Please try again."
		return true
	}

	if explanation == "" && m.question != nil {
		explanation = m.question.Explanation
	}

	m.state.Status = StatusSuccess
	m.state.ErrMsg = ""
	m.state.Result = &CheckResult{
		IsCorrect:       isCorrect,
		CorrectAnswerID: correctAnswerID,
		Explanation:     explanation,
	}
	return true
}
