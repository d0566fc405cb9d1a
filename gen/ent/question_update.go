// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/examtools/questionbank/gen/ent/predicate"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/google/uuid"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetYear sets the "year" field.
func (_u *QuestionUpdate) SetYear(v int) *QuestionUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableYear(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *QuestionUpdate) AddYear(v int) *QuestionUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdate) SetTopic(v string) *QuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopic(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *QuestionUpdate) SetSubtopic(v string) *QuestionUpdate {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubtopic(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *QuestionUpdate) ClearSubtopic() *QuestionUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdate) SetQuestionText(v string) *QuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v map[string]string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdate) SetCorrectAnswer(v string) *QuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuestionUpdate) ClearCorrectAnswer() *QuestionUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdate) ClearExplanation() *QuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetTaggingMethod sets the "tagging_method" field.
func (_u *QuestionUpdate) SetTaggingMethod(v string) *QuestionUpdate {
	_u.mutation.SetTaggingMethod(v)
	return _u
}

// SetNillableTaggingMethod sets the "tagging_method" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTaggingMethod(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetTaggingMethod(*v)
	}
	return _u
}

// SetTagConfidence sets the "tag_confidence" field.
func (_u *QuestionUpdate) SetTagConfidence(v int) *QuestionUpdate {
	_u.mutation.ResetTagConfidence()
	_u.mutation.SetTagConfidence(v)
	return _u
}

// SetNillableTagConfidence sets the "tag_confidence" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTagConfidence(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetTagConfidence(*v)
	}
	return _u
}

// AddTagConfidence adds value to the "tag_confidence" field.
func (_u *QuestionUpdate) AddTagConfidence(v int) *QuestionUpdate {
	_u.mutation.AddTagConfidence(v)
	return _u
}

// SetSourcePdf sets the "source_pdf" field.
func (_u *QuestionUpdate) SetSourcePdf(v string) *QuestionUpdate {
	_u.mutation.SetSourcePdf(v)
	return _u
}

// SetNillableSourcePdf sets the "source_pdf" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSourcePdf(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSourcePdf(*v)
	}
	return _u
}

// ClearSourcePdf clears the value of the "source_pdf" field.
func (_u *QuestionUpdate) ClearSourcePdf() *QuestionUpdate {
	_u.mutation.ClearSourcePdf()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QuestionUpdate) SetRunID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRunID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *QuestionUpdate) ClearRunID() *QuestionUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *QuestionUpdate) SetFingerprint(v string) *QuestionUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableFingerprint(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the IngestRun entity.
func (_u *QuestionUpdate) SetRun(v *IngestRun) *QuestionUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the IngestRun entity.
func (_u *QuestionUpdate) ClearRun() *QuestionUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := question.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(question.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(question.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(question.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(question.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(question.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.TaggingMethod(); ok {
		_spec.SetField(question.FieldTaggingMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.TagConfidence(); ok {
		_spec.SetField(question.FieldTagConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagConfidence(); ok {
		_spec.AddField(question.FieldTagConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcePdf(); ok {
		_spec.SetField(question.FieldSourcePdf, field.TypeString, value)
	}
	if _u.mutation.SourcePdfCleared() {
		_spec.ClearField(question.FieldSourcePdf, field.TypeString)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(question.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetYear sets the "year" field.
func (_u *QuestionUpdateOne) SetYear(v int) *QuestionUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableYear(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *QuestionUpdateOne) AddYear(v int) *QuestionUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuestionUpdateOne) SetTopic(v string) *QuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopic(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *QuestionUpdateOne) SetSubtopic(v string) *QuestionUpdateOne {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubtopic(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *QuestionUpdateOne) ClearSubtopic() *QuestionUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuestionUpdateOne) SetQuestionText(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v map[string]string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdateOne) SetCorrectAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuestionUpdateOne) ClearCorrectAnswer() *QuestionUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdateOne) ClearExplanation() *QuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetTaggingMethod sets the "tagging_method" field.
func (_u *QuestionUpdateOne) SetTaggingMethod(v string) *QuestionUpdateOne {
	_u.mutation.SetTaggingMethod(v)
	return _u
}

// SetNillableTaggingMethod sets the "tagging_method" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTaggingMethod(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetTaggingMethod(*v)
	}
	return _u
}

// SetTagConfidence sets the "tag_confidence" field.
func (_u *QuestionUpdateOne) SetTagConfidence(v int) *QuestionUpdateOne {
	_u.mutation.ResetTagConfidence()
	_u.mutation.SetTagConfidence(v)
	return _u
}

// SetNillableTagConfidence sets the "tag_confidence" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTagConfidence(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetTagConfidence(*v)
	}
	return _u
}

// AddTagConfidence adds value to the "tag_confidence" field.
func (_u *QuestionUpdateOne) AddTagConfidence(v int) *QuestionUpdateOne {
	_u.mutation.AddTagConfidence(v)
	return _u
}

// SetSourcePdf sets the "source_pdf" field.
func (_u *QuestionUpdateOne) SetSourcePdf(v string) *QuestionUpdateOne {
	_u.mutation.SetSourcePdf(v)
	return _u
}

// SetNillableSourcePdf sets the "source_pdf" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSourcePdf(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSourcePdf(*v)
	}
	return _u
}

// ClearSourcePdf clears the value of the "source_pdf" field.
func (_u *QuestionUpdateOne) ClearSourcePdf() *QuestionUpdateOne {
	_u.mutation.ClearSourcePdf()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QuestionUpdateOne) SetRunID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRunID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *QuestionUpdateOne) ClearRunID() *QuestionUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *QuestionUpdateOne) SetFingerprint(v string) *QuestionUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableFingerprint(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the IngestRun entity.
func (_u *QuestionUpdateOne) SetRun(v *IngestRun) *QuestionUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the IngestRun entity.
func (_u *QuestionUpdateOne) ClearRun() *QuestionUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := question.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Question.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := question.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(question.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(question.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(question.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(question.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(question.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(question.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.TaggingMethod(); ok {
		_spec.SetField(question.FieldTaggingMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.TagConfidence(); ok {
		_spec.SetField(question.FieldTagConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTagConfidence(); ok {
		_spec.AddField(question.FieldTagConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcePdf(); ok {
		_spec.SetField(question.FieldSourcePdf, field.TypeString, value)
	}
	if _u.mutation.SourcePdfCleared() {
		_spec.ClearField(question.FieldSourcePdf, field.TypeString)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(question.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
