// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizdeck/quizdeck/ent/checkevent"
	"github.com/quizdeck/quizdeck/ent/predicate"
)

// CheckEventUpdate is the builder for updating CheckEvent entities.
type CheckEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckEventMutation
}

// Where appends a list predicates to the CheckEventUpdate builder.
func (_u *CheckEventUpdate) Where(ps ...predicate.CheckEvent) *CheckEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *CheckEventUpdate) SetQuestionID(v string) *CheckEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableQuestionID(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAnswerID sets the "answer_id" field.
func (_u *CheckEventUpdate) SetAnswerID(v string) *CheckEventUpdate {
	_u.mutation.SetAnswerID(v)
	return _u
}

// SetNillableAnswerID sets the "answer_id" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableAnswerID(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetAnswerID(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *CheckEventUpdate) SetService(v string) *CheckEventUpdate {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableService(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CheckEventUpdate) SetSuccess(v bool) *CheckEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableSuccess(v *bool) *CheckEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *CheckEventUpdate) SetIsCorrect(v bool) *CheckEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableIsCorrect(v *bool) *CheckEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CheckEventUpdate) SetLatencyMs(v int64) *CheckEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableLatencyMs(v *int64) *CheckEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CheckEventUpdate) AddLatencyMs(v int64) *CheckEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CheckEventUpdate) SetErrorMessage(v string) *CheckEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableErrorMessage(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CheckEventMutation object of the builder.
func (_u *CheckEventUpdate) Mutation() *CheckEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := checkevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerID(); ok {
		if err := checkevent.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.answer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := checkevent.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.service": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkevent.Table, checkevent.Columns, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(checkevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerID(); ok {
		_spec.SetField(checkevent.FieldAnswerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(checkevent.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(checkevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(checkevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(checkevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(checkevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(checkevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckEventUpdateOne is the builder for updating a single CheckEvent entity.
type CheckEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *CheckEventUpdateOne) SetQuestionID(v string) *CheckEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableQuestionID(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAnswerID sets the "answer_id" field.
func (_u *CheckEventUpdateOne) SetAnswerID(v string) *CheckEventUpdateOne {
	_u.mutation.SetAnswerID(v)
	return _u
}

// SetNillableAnswerID sets the "answer_id" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableAnswerID(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetAnswerID(*v)
	}
	return _u
}

// SetService sets the "service" field.
func (_u *CheckEventUpdateOne) SetService(v string) *CheckEventUpdateOne {
	_u.mutation.SetService(v)
	return _u
}

// SetNillableService sets the "service" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableService(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetService(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *CheckEventUpdateOne) SetSuccess(v bool) *CheckEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableSuccess(v *bool) *CheckEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *CheckEventUpdateOne) SetIsCorrect(v bool) *CheckEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableIsCorrect(v *bool) *CheckEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *CheckEventUpdateOne) SetLatencyMs(v int64) *CheckEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableLatencyMs(v *int64) *CheckEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *CheckEventUpdateOne) AddLatencyMs(v int64) *CheckEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CheckEventUpdateOne) SetErrorMessage(v string) *CheckEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableErrorMessage(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the CheckEventMutation object of the builder.
func (_u *CheckEventUpdateOne) Mutation() *CheckEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckEventUpdate builder.
func (_u *CheckEventUpdateOne) Where(ps ...predicate.CheckEvent) *CheckEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckEventUpdateOne) Select(field string, fields ...string) *CheckEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckEvent entity.
func (_u *CheckEventUpdateOne) Save(ctx context.Context) (*CheckEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckEventUpdateOne) SaveX(ctx context.Context) *CheckEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := checkevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerID(); ok {
		if err := checkevent.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.answer_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Service(); ok {
		if err := checkevent.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.service": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkevent.Table, checkevent.Columns, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkevent.FieldID)
		for _, f := range fields {
			if !checkevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(checkevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerID(); ok {
		_spec.SetField(checkevent.FieldAnswerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Service(); ok {
		_spec.SetField(checkevent.FieldService, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(checkevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(checkevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(checkevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(checkevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(checkevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &CheckEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
