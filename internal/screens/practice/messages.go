package practice

import (
	"github.com/quizdeck/quizdeck/internal/check"
)

// checkResultMsg carries the outcome of a dispatched check back into the
// update loop. Token ties it to the dispatch that produced it; the machine
// discards it when a newer dispatch or question change has superseded it.
type checkResultMsg struct {
	Token      uint64
	QuestionID string
	Result     *check.Result
	Err        error
}

// explainReadyMsg carries a generated deep explanation. QuestionID guards
// against late arrivals after the user has moved on.
type explainReadyMsg struct {
	QuestionID string
	Text       string
	Err        error
}

// endMsg triggers the end-of-session flow.
type endMsg struct{}

// spinTickMsg animates the loading indicator.
type spinTickMsg struct{}
