// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quizdeck/quizdeck/ent/answerevent"
	"github.com/quizdeck/quizdeck/ent/checkevent"
	"github.com/quizdeck/quizdeck/ent/schema"
	"github.com/quizdeck/quizdeck/ent/sessionevent"
	"github.com/quizdeck/quizdeck/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescDeckID is the schema descriptor for deck_id field.
	answereventDescDeckID := answereventFields[1].Descriptor()
	// answerevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	answerevent.DeckIDValidator = answereventDescDeckID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescAnswerID is the schema descriptor for answer_id field.
	answereventDescAnswerID := answereventFields[3].Descriptor()
	// answerevent.AnswerIDValidator is a validator for the "answer_id" field. It is called by the builders before save.
	answerevent.AnswerIDValidator = answereventDescAnswerID.Validators[0].(func(string) error)
	// answereventDescCorrectAnswerID is the schema descriptor for correct_answer_id field.
	answereventDescCorrectAnswerID := answereventFields[5].Descriptor()
	// answerevent.DefaultCorrectAnswerID holds the default value on creation for the correct_answer_id field.
	answerevent.DefaultCorrectAnswerID = answereventDescCorrectAnswerID.Default.(string)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	checkeventMixin := schema.CheckEvent{}.Mixin()
	checkeventMixinFields0 := checkeventMixin[0].Fields()
	_ = checkeventMixinFields0
	checkeventFields := schema.CheckEvent{}.Fields()
	_ = checkeventFields
	// checkeventDescTimestamp is the schema descriptor for timestamp field.
	checkeventDescTimestamp := checkeventMixinFields0[1].Descriptor()
	// checkevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkevent.DefaultTimestamp = checkeventDescTimestamp.Default.(func() time.Time)
	// checkeventDescQuestionID is the schema descriptor for question_id field.
	checkeventDescQuestionID := checkeventFields[0].Descriptor()
	// checkevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	checkevent.QuestionIDValidator = checkeventDescQuestionID.Validators[0].(func(string) error)
	// checkeventDescAnswerID is the schema descriptor for answer_id field.
	checkeventDescAnswerID := checkeventFields[1].Descriptor()
	// checkevent.AnswerIDValidator is a validator for the "answer_id" field. It is called by the builders before save.
	checkevent.AnswerIDValidator = checkeventDescAnswerID.Validators[0].(func(string) error)
	// checkeventDescService is the schema descriptor for service field.
	checkeventDescService := checkeventFields[2].Descriptor()
	// checkevent.ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	checkevent.ServiceValidator = checkeventDescService.Validators[0].(func(string) error)
	// checkeventDescIsCorrect is the schema descriptor for is_correct field.
	checkeventDescIsCorrect := checkeventFields[4].Descriptor()
	// checkevent.DefaultIsCorrect holds the default value on creation for the is_correct field.
	checkevent.DefaultIsCorrect = checkeventDescIsCorrect.Default.(bool)
	// checkeventDescLatencyMs is the schema descriptor for latency_ms field.
	checkeventDescLatencyMs := checkeventFields[5].Descriptor()
	// checkevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	checkevent.DefaultLatencyMs = checkeventDescLatencyMs.Default.(int64)
	// checkeventDescErrorMessage is the schema descriptor for error_message field.
	checkeventDescErrorMessage := checkeventFields[6].Descriptor()
	// checkevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	checkevent.DefaultErrorMessage = checkeventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDeckID is the schema descriptor for deck_id field.
	sessioneventDescDeckID := sessioneventFields[2].Descriptor()
	// sessionevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	sessionevent.DeckIDValidator = sessioneventDescDeckID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultMode holds the default value on creation for the mode field.
	sessionevent.DefaultMode = sessioneventDescMode.Default.(string)
	// sessioneventDescRole is the schema descriptor for role field.
	sessioneventDescRole := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultRole holds the default value on creation for the role field.
	sessionevent.DefaultRole = sessioneventDescRole.Default.(string)
	// sessioneventDescQuestionsTotal is the schema descriptor for questions_total field.
	sessioneventDescQuestionsTotal := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	sessionevent.DefaultQuestionsTotal = sessioneventDescQuestionsTotal.Default.(int)
	// sessioneventDescQuestionsChecked is the schema descriptor for questions_checked field.
	sessioneventDescQuestionsChecked := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestionsChecked holds the default value on creation for the questions_checked field.
	sessionevent.DefaultQuestionsChecked = sessioneventDescQuestionsChecked.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
