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

// IngestRunCreate is the builder for creating a IngestRun entity.
type IngestRunCreate struct {
	config
	mutation *IngestRunMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *IngestRunCreate) SetStatus(v string) *IngestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableStatus(v *string) *IngestRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *IngestRunCreate) SetTotalQuestions(v int) *IngestRunCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableTotalQuestions(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetDuplicatesRemoved sets the "duplicates_removed" field.
func (_c *IngestRunCreate) SetDuplicatesRemoved(v int) *IngestRunCreate {
	_c.mutation.SetDuplicatesRemoved(v)
	return _c
}

// SetNillableDuplicatesRemoved sets the "duplicates_removed" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableDuplicatesRemoved(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetDuplicatesRemoved(*v)
	}
	return _c
}

// SetProblemCount sets the "problem_count" field.
func (_c *IngestRunCreate) SetProblemCount(v int) *IngestRunCreate {
	_c.mutation.SetProblemCount(v)
	return _c
}

// SetNillableProblemCount sets the "problem_count" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableProblemCount(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetProblemCount(*v)
	}
	return _c
}

// SetYearCounts sets the "year_counts" field.
func (_c *IngestRunCreate) SetYearCounts(v map[string]int) *IngestRunCreate {
	_c.mutation.SetYearCounts(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestRunCreate) SetStartedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableStartedAt(v *time.Time) *IngestRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestRunCreate) SetFinishedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableFinishedAt(v *time.Time) *IngestRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestRunCreate) SetID(v uuid.UUID) *IngestRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableID(v *uuid.UUID) *IngestRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *IngestRunCreate) AddQuestionIDs(ids ...uuid.UUID) *IngestRunCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *IngestRunCreate) AddQuestions(v ...*Question) *IngestRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the IngestRunMutation object of the builder.
func (_c *IngestRunCreate) Mutation() *IngestRunMutation {
	return _c.mutation
}

// Save creates the IngestRun in the database.
func (_c *IngestRunCreate) Save(ctx context.Context) (*IngestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestRunCreate) SaveX(ctx context.Context) *IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ingestrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := ingestrun.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.DuplicatesRemoved(); !ok {
		v := ingestrun.DefaultDuplicatesRemoved
		_c.mutation.SetDuplicatesRemoved(v)
	}
	if _, ok := _c.mutation.ProblemCount(); !ok {
		v := ingestrun.DefaultProblemCount
		_c.mutation.SetProblemCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := ingestrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestrun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestRun.status"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "IngestRun.total_questions"`)}
	}
	if _, ok := _c.mutation.DuplicatesRemoved(); !ok {
		return &ValidationError{Name: "duplicates_removed", err: errors.New(`ent: missing required field "IngestRun.duplicates_removed"`)}
	}
	if _, ok := _c.mutation.ProblemCount(); !ok {
		return &ValidationError{Name: "problem_count", err: errors.New(`ent: missing required field "IngestRun.problem_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestRun.started_at"`)}
	}
	return nil
}

func (_c *IngestRunCreate) sqlSave(ctx context.Context) (*IngestRun, error) {
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

func (_c *IngestRunCreate) createSpec() (*IngestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestrun.Table, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(ingestrun.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.DuplicatesRemoved(); ok {
		_spec.SetField(ingestrun.FieldDuplicatesRemoved, field.TypeInt, value)
		_node.DuplicatesRemoved = value
	}
	if value, ok := _c.mutation.ProblemCount(); ok {
		_spec.SetField(ingestrun.FieldProblemCount, field.TypeInt, value)
		_node.ProblemCount = value
	}
	if value, ok := _c.mutation.YearCounts(); ok {
		_spec.SetField(ingestrun.FieldYearCounts, field.TypeJSON, value)
		_node.YearCounts = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IngestRunCreateBulk is the builder for creating many IngestRun entities in bulk.
type IngestRunCreateBulk struct {
	config
	err      error
	builders []*IngestRunCreate
}

// Save creates the IngestRun entities in the database.
func (_c *IngestRunCreateBulk) Save(ctx context.Context) ([]*IngestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestRunMutation)
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
func (_c *IngestRunCreateBulk) SaveX(ctx context.Context) []*IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
