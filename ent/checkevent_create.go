// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quizdeck/quizdeck/ent/checkevent"
)

// CheckEventCreate is the builder for creating a CheckEvent entity.
type CheckEventCreate struct {
	config
	mutation *CheckEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckEventCreate) SetSequence(v int64) *CheckEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckEventCreate) SetTimestamp(v time.Time) *CheckEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableTimestamp(v *time.Time) *CheckEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *CheckEventCreate) SetQuestionID(v string) *CheckEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAnswerID sets the "answer_id" field.
func (_c *CheckEventCreate) SetAnswerID(v string) *CheckEventCreate {
	_c.mutation.SetAnswerID(v)
	return _c
}

// SetService sets the "service" field.
func (_c *CheckEventCreate) SetService(v string) *CheckEventCreate {
	_c.mutation.SetService(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *CheckEventCreate) SetSuccess(v bool) *CheckEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *CheckEventCreate) SetIsCorrect(v bool) *CheckEventCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableIsCorrect(v *bool) *CheckEventCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *CheckEventCreate) SetLatencyMs(v int64) *CheckEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableLatencyMs(v *int64) *CheckEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CheckEventCreate) SetErrorMessage(v string) *CheckEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableErrorMessage(v *string) *CheckEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the CheckEventMutation object of the builder.
func (_c *CheckEventCreate) Mutation() *CheckEventMutation {
	return _c.mutation
}

// Save creates the CheckEvent in the database.
func (_c *CheckEventCreate) Save(ctx context.Context) (*CheckEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckEventCreate) SaveX(ctx context.Context) *CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := checkevent.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := checkevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := checkevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "CheckEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := checkevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerID(); !ok {
		return &ValidationError{Name: "answer_id", err: errors.New(`ent: missing required field "CheckEvent.answer_id"`)}
	}
	if v, ok := _c.mutation.AnswerID(); ok {
		if err := checkevent.AnswerIDValidator(v); err != nil {
			return &ValidationError{Name: "answer_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.answer_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Service(); !ok {
		return &ValidationError{Name: "service", err: errors.New(`ent: missing required field "CheckEvent.service"`)}
	}
	if v, ok := _c.mutation.Service(); ok {
		if err := checkevent.ServiceValidator(v); err != nil {
			return &ValidationError{Name: "service", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.service": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "CheckEvent.success"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "CheckEvent.is_correct"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "CheckEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "CheckEvent.error_message"`)}
	}
	return nil
}

func (_c *CheckEventCreate) sqlSave(ctx context.Context) (*CheckEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CheckEventCreate) createSpec() (*CheckEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkevent.Table, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(checkevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.AnswerID(); ok {
		_spec.SetField(checkevent.FieldAnswerID, field.TypeString, value)
		_node.AnswerID = value
	}
	if value, ok := _c.mutation.Service(); ok {
		_spec.SetField(checkevent.FieldService, field.TypeString, value)
		_node.Service = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(checkevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(checkevent.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(checkevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(checkevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// CheckEventCreateBulk is the builder for creating many CheckEvent entities in bulk.
type CheckEventCreateBulk struct {
	config
	err      error
	builders []*CheckEventCreate
}

// Save creates the CheckEvent entities in the database.
func (_c *CheckEventCreateBulk) Save(ctx context.Context) ([]*CheckEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CheckEventCreateBulk) SaveX(ctx context.Context) []*CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
