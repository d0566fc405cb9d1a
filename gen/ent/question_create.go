// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/google/uuid"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetYear sets the "year" field.
func (_c *QuestionCreate) SetYear(v int) *QuestionCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableYear(v *int) *QuestionCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuestionCreate) SetSubject(v string) *QuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubject(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *QuestionCreate) SetSubtopic(v string) *QuestionCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubtopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *QuestionCreate) SetQuestionText(v string) *QuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v map[string]string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCorrectAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetTaggingMethod sets the "tagging_method" field.
func (_c *QuestionCreate) SetTaggingMethod(v string) *QuestionCreate {
	_c.mutation.SetTaggingMethod(v)
	return _c
}

// SetNillableTaggingMethod sets the "tagging_method" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTaggingMethod(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTaggingMethod(*v)
	}
	return _c
}

// SetTagConfidence sets the "tag_confidence" field.
func (_c *QuestionCreate) SetTagConfidence(v int) *QuestionCreate {
	_c.mutation.SetTagConfidence(v)
	return _c
}

// SetNillableTagConfidence sets the "tag_confidence" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTagConfidence(v *int) *QuestionCreate {
	if v != nil {
		_c.SetTagConfidence(*v)
	}
	return _c
}

// SetSourcePdf sets the "source_pdf" field.
func (_c *QuestionCreate) SetSourcePdf(v string) *QuestionCreate {
	_c.mutation.SetSourcePdf(v)
	return _c
}

// SetNillableSourcePdf sets the "source_pdf" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSourcePdf(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSourcePdf(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *QuestionCreate) SetRunID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRunID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *QuestionCreate) SetFingerprint(v string) *QuestionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the IngestRun entity.
func (_c *QuestionCreate) SetRun(v *IngestRun) *QuestionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Year(); !ok {
		v := question.DefaultYear
		_c.mutation.SetYear(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := question.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := question.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.TaggingMethod(); !ok {
		v := question.DefaultTaggingMethod
		_c.mutation.SetTaggingMethod(v)
	}
	if _, ok := _c.mutation.TagConfidence(); !ok {
		v := question.DefaultTagConfidence
		_c.mutation.SetTagConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := question.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "Question.year"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Question.subject"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Question.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Question.options"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaggingMethod(); !ok {
		return &ValidationError{Name: "tagging_method", err: errors.New(`ent: missing required field "Question.tagging_method"`)}
	}
	if _, ok := _c.mutation.TagConfidence(); !ok {
		return &ValidationError{Name: "tag_confidence", err: errors.New(`ent: missing required field "Question.tag_confidence"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "Question.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := question.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(question.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(question.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.TaggingMethod(); ok {
		_spec.SetField(question.FieldTaggingMethod, field.TypeString, value)
		_node.TaggingMethod = value
	}
	if value, ok := _c.mutation.TagConfidence(); ok {
		_spec.SetField(question.FieldTagConfidence, field.TypeInt, value)
		_node.TagConfidence = value
	}
	if value, ok := _c.mutation.SourcePdf(); ok {
		_spec.SetField(question.FieldSourcePdf, field.TypeString, value)
		_node.SourcePdf = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(question.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.RunTable,
			Columns: []string{question.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
