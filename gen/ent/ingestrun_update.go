// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/examtools/questionbank/gen/ent/predicate"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/google/uuid"
)

// IngestRunUpdate is the builder for updating IngestRun entities.
type IngestRunUpdate struct {
	config
	hooks    []Hook
	mutation *IngestRunMutation
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdate) Where(ps ...predicate.IngestRun) *IngestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdate) SetStatus(v string) *IngestRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableStatus(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *IngestRunUpdate) SetTotalQuestions(v int) *IngestRunUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableTotalQuestions(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *IngestRunUpdate) AddTotalQuestions(v int) *IngestRunUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDuplicatesRemoved sets the "duplicates_removed" field.
func (_u *IngestRunUpdate) SetDuplicatesRemoved(v int) *IngestRunUpdate {
	_u.mutation.ResetDuplicatesRemoved()
	_u.mutation.SetDuplicatesRemoved(v)
	return _u
}

// SetNillableDuplicatesRemoved sets the "duplicates_removed" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableDuplicatesRemoved(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetDuplicatesRemoved(*v)
	}
	return _u
}

// AddDuplicatesRemoved adds value to the "duplicates_removed" field.
func (_u *IngestRunUpdate) AddDuplicatesRemoved(v int) *IngestRunUpdate {
	_u.mutation.AddDuplicatesRemoved(v)
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *IngestRunUpdate) SetProblemCount(v int) *IngestRunUpdate {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableProblemCount(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *IngestRunUpdate) AddProblemCount(v int) *IngestRunUpdate {
	_u.mutation.AddProblemCount(v)
	return _u
}

// SetYearCounts sets the "year_counts" field.
func (_u *IngestRunUpdate) SetYearCounts(v map[string]int) *IngestRunUpdate {
	_u.mutation.SetYearCounts(v)
	return _u
}

// ClearYearCounts clears the value of the "year_counts" field.
func (_u *IngestRunUpdate) ClearYearCounts() *IngestRunUpdate {
	_u.mutation.ClearYearCounts()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestRunUpdate) SetFinishedAt(v time.Time) *IngestRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableFinishedAt(v *time.Time) *IngestRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestRunUpdate) ClearFinishedAt() *IngestRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *IngestRunUpdate) AddQuestionIDs(ids ...uuid.UUID) *IngestRunUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *IngestRunUpdate) AddQuestions(v ...*Question) *IngestRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdate) Mutation() *IngestRunMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *IngestRunUpdate) ClearQuestions() *IngestRunUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *IngestRunUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *IngestRunUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *IngestRunUpdate) RemoveQuestions(v ...*Question) *IngestRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(ingestrun.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(ingestrun.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicatesRemoved(); ok {
		_spec.SetField(ingestrun.FieldDuplicatesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicatesRemoved(); ok {
		_spec.AddField(ingestrun.FieldDuplicatesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(ingestrun.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(ingestrun.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearCounts(); ok {
		_spec.SetField(ingestrun.FieldYearCounts, field.TypeJSON, value)
	}
	if _u.mutation.YearCountsCleared() {
		_spec.ClearField(ingestrun.FieldYearCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestRunUpdateOne is the builder for updating a single IngestRun entity.
type IngestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestRunMutation
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdateOne) SetStatus(v string) *IngestRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableStatus(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *IngestRunUpdateOne) SetTotalQuestions(v int) *IngestRunUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableTotalQuestions(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *IngestRunUpdateOne) AddTotalQuestions(v int) *IngestRunUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDuplicatesRemoved sets the "duplicates_removed" field.
func (_u *IngestRunUpdateOne) SetDuplicatesRemoved(v int) *IngestRunUpdateOne {
	_u.mutation.ResetDuplicatesRemoved()
	_u.mutation.SetDuplicatesRemoved(v)
	return _u
}

// SetNillableDuplicatesRemoved sets the "duplicates_removed" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableDuplicatesRemoved(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetDuplicatesRemoved(*v)
	}
	return _u
}

// AddDuplicatesRemoved adds value to the "duplicates_removed" field.
func (_u *IngestRunUpdateOne) AddDuplicatesRemoved(v int) *IngestRunUpdateOne {
	_u.mutation.AddDuplicatesRemoved(v)
	return _u
}

// SetProblemCount sets the "problem_count" field.
func (_u *IngestRunUpdateOne) SetProblemCount(v int) *IngestRunUpdateOne {
	_u.mutation.ResetProblemCount()
	_u.mutation.SetProblemCount(v)
	return _u
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableProblemCount(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetProblemCount(*v)
	}
	return _u
}

// AddProblemCount adds value to the "problem_count" field.
func (_u *IngestRunUpdateOne) AddProblemCount(v int) *IngestRunUpdateOne {
	_u.mutation.AddProblemCount(v)
	return _u
}

// SetYearCounts sets the "year_counts" field.
func (_u *IngestRunUpdateOne) SetYearCounts(v map[string]int) *IngestRunUpdateOne {
	_u.mutation.SetYearCounts(v)
	return _u
}

// ClearYearCounts clears the value of the "year_counts" field.
func (_u *IngestRunUpdateOne) ClearYearCounts() *IngestRunUpdateOne {
	_u.mutation.ClearYearCounts()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestRunUpdateOne) SetFinishedAt(v time.Time) *IngestRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestRunUpdateOne) ClearFinishedAt() *IngestRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *IngestRunUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *IngestRunUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *IngestRunUpdateOne) AddQuestions(v ...*Question) *IngestRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdateOne) Mutation() *IngestRunMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *IngestRunUpdateOne) ClearQuestions() *IngestRunUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *IngestRunUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *IngestRunUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *IngestRunUpdateOne) RemoveQuestions(v ...*Question) *IngestRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdateOne) Where(ps ...predicate.IngestRun) *IngestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestRunUpdateOne) Select(field string, fields ...string) *IngestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestRun entity.
func (_u *IngestRunUpdateOne) Save(ctx context.Context) (*IngestRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdateOne) SaveX(ctx context.Context) *IngestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IngestRunUpdateOne) sqlSave(ctx context.Context) (_node *IngestRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestrun.FieldID)
		for _, f := range fields {
			if !ingestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(ingestrun.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(ingestrun.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DuplicatesRemoved(); ok {
		_spec.SetField(ingestrun.FieldDuplicatesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicatesRemoved(); ok {
		_spec.AddField(ingestrun.FieldDuplicatesRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemCount(); ok {
		_spec.SetField(ingestrun.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemCount(); ok {
		_spec.AddField(ingestrun.FieldProblemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearCounts(); ok {
		_spec.SetField(ingestrun.FieldYearCounts, field.TypeJSON, value)
	}
	if _u.mutation.YearCountsCleared() {
		_spec.ClearField(ingestrun.FieldYearCounts, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestrun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestrun.QuestionsTable,
			Columns: []string{ingestrun.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IngestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
