// Code generated by ent, DO NOT EDIT.

package checkevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/quizdeck/quizdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldQuestionID, v))
}

// AnswerID applies equality check predicate on the "answer_id" field. It's identical to AnswerIDEQ.
func AnswerID(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldAnswerID, v))
}

// Service applies equality check predicate on the "service" field. It's identical to ServiceEQ.
func Service(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldService, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSuccess, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// AnswerIDEQ applies the EQ predicate on the "answer_id" field.
func AnswerIDEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldAnswerID, v))
}

// AnswerIDNEQ applies the NEQ predicate on the "answer_id" field.
func AnswerIDNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldAnswerID, v))
}

// AnswerIDIn applies the In predicate on the "answer_id" field.
func AnswerIDIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldAnswerID, vs...))
}

// AnswerIDNotIn applies the NotIn predicate on the "answer_id" field.
func AnswerIDNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldAnswerID, vs...))
}

// AnswerIDGT applies the GT predicate on the "answer_id" field.
func AnswerIDGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldAnswerID, v))
}

// AnswerIDGTE applies the GTE predicate on the "answer_id" field.
func AnswerIDGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldAnswerID, v))
}

// AnswerIDLT applies the LT predicate on the "answer_id" field.
func AnswerIDLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldAnswerID, v))
}

// AnswerIDLTE applies the LTE predicate on the "answer_id" field.
func AnswerIDLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldAnswerID, v))
}

// AnswerIDContains applies the Contains predicate on the "answer_id" field.
func AnswerIDContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldAnswerID, v))
}

// AnswerIDHasPrefix applies the HasPrefix predicate on the "answer_id" field.
func AnswerIDHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldAnswerID, v))
}

// AnswerIDHasSuffix applies the HasSuffix predicate on the "answer_id" field.
func AnswerIDHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldAnswerID, v))
}

// AnswerIDEqualFold applies the EqualFold predicate on the "answer_id" field.
func AnswerIDEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldAnswerID, v))
}

// AnswerIDContainsFold applies the ContainsFold predicate on the "answer_id" field.
func AnswerIDContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldAnswerID, v))
}

// ServiceEQ applies the EQ predicate on the "service" field.
func ServiceEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldService, v))
}

// ServiceNEQ applies the NEQ predicate on the "service" field.
func ServiceNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldService, v))
}

// ServiceIn applies the In predicate on the "service" field.
func ServiceIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldService, vs...))
}

// ServiceNotIn applies the NotIn predicate on the "service" field.
func ServiceNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldService, vs...))
}

// ServiceGT applies the GT predicate on the "service" field.
func ServiceGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldService, v))
}

// ServiceGTE applies the GTE predicate on the "service" field.
func ServiceGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldService, v))
}

// ServiceLT applies the LT predicate on the "service" field.
func ServiceLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldService, v))
}

// ServiceLTE applies the LTE predicate on the "service" field.
func ServiceLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldService, v))
}

// ServiceContains applies the Contains predicate on the "service" field.
func ServiceContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldService, v))
}

// ServiceHasPrefix applies the HasPrefix predicate on the "service" field.
func ServiceHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldService, v))
}

// ServiceHasSuffix applies the HasSuffix predicate on the "service" field.
func ServiceHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldService, v))
}

// ServiceEqualFold applies the EqualFold predicate on the "service" field.
func ServiceEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldService, v))
}

// ServiceContainsFold applies the ContainsFold predicate on the "service" field.
func ServiceContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldService, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldSuccess, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldIsCorrect, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.NotPredicates(p))
}
