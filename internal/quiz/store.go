package quiz

// Store is the session-wide state container: per-question selections, the
// user role, and review marks. It outlives any single question view and is
// torn down only when the session ends.
//
// It is explicitly injected into each Machine rather than accessed through
// a package-level variable. Only the machine's select operation writes
// answers, and only at question-load time are they read, so the store needs
// no locking: one question view is active at a time.
type Store struct {
	role    Role
	answers map[string]string
	review  map[string]bool
}

// NewStore creates an empty session store for the given role.
func NewStore(role Role) *Store {
	return &Store{
		role:    role,
		answers: make(map[string]string),
		review:  make(map[string]bool),
	}
}

// Role returns the user role for this session.
func (s *Store) Role() Role {
	return s.role
}

// Answer returns the remembered selection for a question, if any.
func (s *Store) Answer(questionID string) (string, bool) {
	id, ok := s.answers[questionID]
	return id, ok
}

// SetAnswer records the selection for a question. Last write wins.
func (s *Store) SetAnswer(questionID, answerID string) {
	s.answers[questionID] = answerID
}

// AnsweredCount returns how many questions have a remembered selection.
func (s *Store) AnsweredCount() int {
	return len(s.answers)
}

// ToggleReview flips the review mark on a question and returns the new state.
func (s *Store) ToggleReview(questionID string) bool {
	if s.review[questionID] {
		delete(s.review, questionID)
		return false
	}
	s.review[questionID] = true
	return true
}

// MarkedForReview reports whether a question carries a review mark.
func (s *Store) MarkedForReview(questionID string) bool {
	return s.review[questionID]
}

// ReviewCount returns the number of questions marked for review.
func (s *Store) ReviewCount() int {
	return len(s.review)
}

// Clear wipes all per-question state. Called at session end; the role is
// kept since it is a property of the user, not the attempt.
func (s *Store) Clear() {
	s.answers = make(map[string]string)
	s.review = make(map[string]bool)
}
