package quiz

// CheckStatus is the lifecycle status of the current check request.
type CheckStatus int

const (
	StatusIdle CheckStatus = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s CheckStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// CheckResult is the server-confirmed outcome of a check. Explanation has
// already had precedence applied: the server's text when present, otherwise
// the one bundled with the question, otherwise empty.
type CheckResult struct {
	IsCorrect       bool
	CorrectAnswerID string
	Explanation     string
}

// State is the per-question transient state owned by a Machine. It is reset
// wholesale whenever the displayed question changes; nothing survives except
// what is re-derived from the session store.
//
// Invariants (enforced by Machine, verified in tests):
//   - Result != nil iff Status == StatusSuccess
//   - ErrMsg != "" iff Status == StatusError
//   - Checked implies Status is loading or success; an accepted error
//     forces Checked back to false
//   - CheckedAnswerID is set at dispatch and untouched until the next
//     dispatch or question change, even by stale or error responses
type State struct {
	// QuestionID identifies the question this state belongs to.
	QuestionID string

	// SelectedAnswerID is the current selection; empty means none.
	SelectedAnswerID string

	// Checked is true once a check has been committed (pending or
	// confirmed) for the current selection.
	Checked bool

	// Status is the check request lifecycle status.
	Status CheckStatus

	// Result is the accepted server outcome; non-nil only on success.
	Result *CheckResult

	// ErrMsg is the retryable failure text; non-empty only on error.
	ErrMsg string

	// CheckedAnswerID is the answer snapshotted when the active check was
	// dispatched. The selection may drift afterwards; this does not.
	CheckedAnswerID string
}

// Dispatch describes a check request the caller must now issue. The token
// ties the eventual response back to this dispatch; a response whose token
// no longer matches the machine's active token is discarded.
type Dispatch struct {
	Token      uint64
	QuestionID string
	AnswerID   string
}
