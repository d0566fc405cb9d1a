// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/examtools/questionbank/gen/ent/predicate"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIngestRun = "IngestRun"
	TypeQuestion  = "Question"
)

// IngestRunMutation represents an operation that mutates the IngestRun nodes in the graph.
type IngestRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	status                *string
	total_questions       *int
	addtotal_questions    *int
	duplicates_removed    *int
	addduplicates_removed *int
	problem_count         *int
	addproblem_count      *int
	year_counts           *map[string]int
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	questions             map[uuid.UUID]struct{}
	removedquestions      map[uuid.UUID]struct{}
	clearedquestions      bool
	done                  bool
	oldValue              func(context.Context) (*IngestRun, error)
	predicates            []predicate.IngestRun
}

var _ ent.Mutation = (*IngestRunMutation)(nil)

// ingestrunOption allows management of the mutation configuration using functional options.
type ingestrunOption func(*IngestRunMutation)

// newIngestRunMutation creates new mutation for the IngestRun entity.
func newIngestRunMutation(c config, op Op, opts ...ingestrunOption) *IngestRunMutation {
	m := &IngestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestRunID sets the ID field of the mutation.
func withIngestRunID(id uuid.UUID) ingestrunOption {
	return func(m *IngestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestRun
		)
		m.oldValue = func(ctx context.Context) (*IngestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestRun sets the old IngestRun of the mutation.
func withIngestRun(node *IngestRun) ingestrunOption {
	return func(m *IngestRunMutation) {
		m.oldValue = func(context.Context) (*IngestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestRun entities.
func (m *IngestRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *IngestRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestRunMutation) ResetStatus() {
	m.status = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *IngestRunMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *IngestRunMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *IngestRunMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *IngestRunMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *IngestRunMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetDuplicatesRemoved sets the "duplicates_removed" field.
func (m *IngestRunMutation) SetDuplicatesRemoved(i int) {
	m.duplicates_removed = &i
	m.addduplicates_removed = nil
}

// DuplicatesRemoved returns the value of the "duplicates_removed" field in the mutation.
func (m *IngestRunMutation) DuplicatesRemoved() (r int, exists bool) {
	v := m.duplicates_removed
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicatesRemoved returns the old "duplicates_removed" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldDuplicatesRemoved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicatesRemoved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicatesRemoved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicatesRemoved: %w", err)
	}
	return oldValue.DuplicatesRemoved, nil
}

// AddDuplicatesRemoved adds i to the "duplicates_removed" field.
func (m *IngestRunMutation) AddDuplicatesRemoved(i int) {
	if m.addduplicates_removed != nil {
		*m.addduplicates_removed += i
	} else {
		m.addduplicates_removed = &i
	}
}

// AddedDuplicatesRemoved returns the value that was added to the "duplicates_removed" field in this mutation.
func (m *IngestRunMutation) AddedDuplicatesRemoved() (r int, exists bool) {
	v := m.addduplicates_removed
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuplicatesRemoved resets all changes to the "duplicates_removed" field.
func (m *IngestRunMutation) ResetDuplicatesRemoved() {
	m.duplicates_removed = nil
	m.addduplicates_removed = nil
}

// SetProblemCount sets the "problem_count" field.
func (m *IngestRunMutation) SetProblemCount(i int) {
	m.problem_count = &i
	m.addproblem_count = nil
}

// ProblemCount returns the value of the "problem_count" field in the mutation.
func (m *IngestRunMutation) ProblemCount() (r int, exists bool) {
	v := m.problem_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProblemCount returns the old "problem_count" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldProblemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProblemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProblemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProblemCount: %w", err)
	}
	return oldValue.ProblemCount, nil
}

// AddProblemCount adds i to the "problem_count" field.
func (m *IngestRunMutation) AddProblemCount(i int) {
	if m.addproblem_count != nil {
		*m.addproblem_count += i
	} else {
		m.addproblem_count = &i
	}
}

// AddedProblemCount returns the value that was added to the "problem_count" field in this mutation.
func (m *IngestRunMutation) AddedProblemCount() (r int, exists bool) {
	v := m.addproblem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProblemCount resets all changes to the "problem_count" field.
func (m *IngestRunMutation) ResetProblemCount() {
	m.problem_count = nil
	m.addproblem_count = nil
}

// SetYearCounts sets the "year_counts" field.
func (m *IngestRunMutation) SetYearCounts(value map[string]int) {
	m.year_counts = &value
}

// YearCounts returns the value of the "year_counts" field in the mutation.
func (m *IngestRunMutation) YearCounts() (r map[string]int, exists bool) {
	v := m.year_counts
	if v == nil {
		return
	}
	return *v, true
}

// OldYearCounts returns the old "year_counts" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldYearCounts(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearCounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearCounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearCounts: %w", err)
	}
	return oldValue.YearCounts, nil
}

// ClearYearCounts clears the value of the "year_counts" field.
func (m *IngestRunMutation) ClearYearCounts() {
	m.year_counts = nil
	m.clearedFields[ingestrun.FieldYearCounts] = struct{}{}
}

// YearCountsCleared returns if the "year_counts" field was cleared in this mutation.
func (m *IngestRunMutation) YearCountsCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldYearCounts]
	return ok
}

// ResetYearCounts resets all changes to the "year_counts" field.
func (m *IngestRunMutation) ResetYearCounts() {
	m.year_counts = nil
	delete(m.clearedFields, ingestrun.FieldYearCounts)
}

// SetStartedAt sets the "started_at" field.
func (m *IngestRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IngestRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IngestRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *IngestRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IngestRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IngestRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ingestrun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IngestRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IngestRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ingestrun.FieldFinishedAt)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *IngestRunMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *IngestRunMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *IngestRunMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *IngestRunMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *IngestRunMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *IngestRunMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *IngestRunMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the IngestRunMutation builder.
func (m *IngestRunMutation) Where(ps ...predicate.IngestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestRun).
func (m *IngestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.status != nil {
		fields = append(fields, ingestrun.FieldStatus)
	}
	if m.total_questions != nil {
		fields = append(fields, ingestrun.FieldTotalQuestions)
	}
	if m.duplicates_removed != nil {
		fields = append(fields, ingestrun.FieldDuplicatesRemoved)
	}
	if m.problem_count != nil {
		fields = append(fields, ingestrun.FieldProblemCount)
	}
	if m.year_counts != nil {
		fields = append(fields, ingestrun.FieldYearCounts)
	}
	if m.started_at != nil {
		fields = append(fields, ingestrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ingestrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldStatus:
		return m.Status()
	case ingestrun.FieldTotalQuestions:
		return m.TotalQuestions()
	case ingestrun.FieldDuplicatesRemoved:
		return m.DuplicatesRemoved()
	case ingestrun.FieldProblemCount:
		return m.ProblemCount()
	case ingestrun.FieldYearCounts:
		return m.YearCounts()
	case ingestrun.FieldStartedAt:
		return m.StartedAt()
	case ingestrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestrun.FieldStatus:
		return m.OldStatus(ctx)
	case ingestrun.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case ingestrun.FieldDuplicatesRemoved:
		return m.OldDuplicatesRemoved(ctx)
	case ingestrun.FieldProblemCount:
		return m.OldProblemCount(ctx)
	case ingestrun.FieldYearCounts:
		return m.OldYearCounts(ctx)
	case ingestrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ingestrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestrun.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case ingestrun.FieldDuplicatesRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicatesRemoved(v)
		return nil
	case ingestrun.FieldProblemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProblemCount(v)
		return nil
	case ingestrun.FieldYearCounts:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearCounts(v)
		return nil
	case ingestrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ingestrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_questions != nil {
		fields = append(fields, ingestrun.FieldTotalQuestions)
	}
	if m.addduplicates_removed != nil {
		fields = append(fields, ingestrun.FieldDuplicatesRemoved)
	}
	if m.addproblem_count != nil {
		fields = append(fields, ingestrun.FieldProblemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case ingestrun.FieldDuplicatesRemoved:
		return m.AddedDuplicatesRemoved()
	case ingestrun.FieldProblemCount:
		return m.AddedProblemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case ingestrun.FieldDuplicatesRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicatesRemoved(v)
		return nil
	case ingestrun.FieldProblemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProblemCount(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestrun.FieldYearCounts) {
		fields = append(fields, ingestrun.FieldYearCounts)
	}
	if m.FieldCleared(ingestrun.FieldFinishedAt) {
		fields = append(fields, ingestrun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestRunMutation) ClearField(name string) error {
	switch name {
	case ingestrun.FieldYearCounts:
		m.ClearYearCounts()
		return nil
	case ingestrun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestRunMutation) ResetField(name string) error {
	switch name {
	case ingestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestrun.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case ingestrun.FieldDuplicatesRemoved:
		m.ResetDuplicatesRemoved()
		return nil
	case ingestrun.FieldProblemCount:
		m.ResetProblemCount()
		return nil
	case ingestrun.FieldYearCounts:
		m.ResetYearCounts()
		return nil
	case ingestrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ingestrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.questions != nil {
		edges = append(edges, ingestrun.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ingestrun.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedquestions != nil {
		edges = append(edges, ingestrun.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ingestrun.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestions {
		edges = append(edges, ingestrun.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestRunMutation) EdgeCleared(name string) bool {
	switch name {
	case ingestrun.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown IngestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestRunMutation) ResetEdge(name string) error {
	switch name {
	case ingestrun.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown IngestRun edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	year              *int
	addyear           *int
	subject           *string
	topic             *string
	subtopic          *string
	question_text     *string
	options           *map[string]string
	correct_answer    *string
	explanation       *string
	tagging_method    *string
	tag_confidence    *int
	addtag_confidence *int
	source_pdf        *string
	fingerprint       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	run               *uuid.UUID
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*Question, error)
	predicates        []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetYear sets the "year" field.
func (m *QuestionMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *QuestionMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *QuestionMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *QuestionMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *QuestionMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetSubject sets the "subject" field.
func (m *QuestionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *QuestionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *QuestionMutation) ResetSubject() {
	m.subject = nil
}

// SetTopic sets the "topic" field.
func (m *QuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *QuestionMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *QuestionMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ClearSubtopic clears the value of the "subtopic" field.
func (m *QuestionMutation) ClearSubtopic() {
	m.subtopic = nil
	m.clearedFields[question.FieldSubtopic] = struct{}{}
}

// SubtopicCleared returns if the "subtopic" field was cleared in this mutation.
func (m *QuestionMutation) SubtopicCleared() bool {
	_, ok := m.clearedFields[question.FieldSubtopic]
	return ok
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *QuestionMutation) ResetSubtopic() {
	m.subtopic = nil
	delete(m.clearedFields, question.FieldSubtopic)
}

// SetQuestionText sets the "question_text" field.
func (m *QuestionMutation) SetQuestionText(s string) {
	m.question_text = &s
}

// QuestionText returns the value of the "question_text" field in the mutation.
func (m *QuestionMutation) QuestionText() (r string, exists bool) {
	v := m.question_text
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionText returns the old "question_text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionText: %w", err)
	}
	return oldValue.QuestionText, nil
}

// ResetQuestionText resets all changes to the "question_text" field.
func (m *QuestionMutation) ResetQuestionText() {
	m.question_text = nil
}

// SetOptions sets the "options" field.
func (m *QuestionMutation) SetOptions(value map[string]string) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *QuestionMutation) Options() (r map[string]string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOptions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ResetOptions resets all changes to the "options" field.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *QuestionMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[question.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *QuestionMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, question.FieldCorrectAnswer)
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[question.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[question.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, question.FieldExplanation)
}

// SetTaggingMethod sets the "tagging_method" field.
func (m *QuestionMutation) SetTaggingMethod(s string) {
	m.tagging_method = &s
}

// TaggingMethod returns the value of the "tagging_method" field in the mutation.
func (m *QuestionMutation) TaggingMethod() (r string, exists bool) {
	v := m.tagging_method
	if v == nil {
		return
	}
	return *v, true
}

// OldTaggingMethod returns the old "tagging_method" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTaggingMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaggingMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaggingMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaggingMethod: %w", err)
	}
	return oldValue.TaggingMethod, nil
}

// ResetTaggingMethod resets all changes to the "tagging_method" field.
func (m *QuestionMutation) ResetTaggingMethod() {
	m.tagging_method = nil
}

// SetTagConfidence sets the "tag_confidence" field.
func (m *QuestionMutation) SetTagConfidence(i int) {
	m.tag_confidence = &i
	m.addtag_confidence = nil
}

// TagConfidence returns the value of the "tag_confidence" field in the mutation.
func (m *QuestionMutation) TagConfidence() (r int, exists bool) {
	v := m.tag_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldTagConfidence returns the old "tag_confidence" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTagConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagConfidence: %w", err)
	}
	return oldValue.TagConfidence, nil
}

// AddTagConfidence adds i to the "tag_confidence" field.
func (m *QuestionMutation) AddTagConfidence(i int) {
	if m.addtag_confidence != nil {
		*m.addtag_confidence += i
	} else {
		m.addtag_confidence = &i
	}
}

// AddedTagConfidence returns the value that was added to the "tag_confidence" field in this mutation.
func (m *QuestionMutation) AddedTagConfidence() (r int, exists bool) {
	v := m.addtag_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetTagConfidence resets all changes to the "tag_confidence" field.
func (m *QuestionMutation) ResetTagConfidence() {
	m.tag_confidence = nil
	m.addtag_confidence = nil
}

// SetSourcePdf sets the "source_pdf" field.
func (m *QuestionMutation) SetSourcePdf(s string) {
	m.source_pdf = &s
}

// SourcePdf returns the value of the "source_pdf" field in the mutation.
func (m *QuestionMutation) SourcePdf() (r string, exists bool) {
	v := m.source_pdf
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePdf returns the old "source_pdf" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSourcePdf(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePdf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePdf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePdf: %w", err)
	}
	return oldValue.SourcePdf, nil
}

// ClearSourcePdf clears the value of the "source_pdf" field.
func (m *QuestionMutation) ClearSourcePdf() {
	m.source_pdf = nil
	m.clearedFields[question.FieldSourcePdf] = struct{}{}
}

// SourcePdfCleared returns if the "source_pdf" field was cleared in this mutation.
func (m *QuestionMutation) SourcePdfCleared() bool {
	_, ok := m.clearedFields[question.FieldSourcePdf]
	return ok
}

// ResetSourcePdf resets all changes to the "source_pdf" field.
func (m *QuestionMutation) ResetSourcePdf() {
	m.source_pdf = nil
	delete(m.clearedFields, question.FieldSourcePdf)
}

// SetRunID sets the "run_id" field.
func (m *QuestionMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *QuestionMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *QuestionMutation) ClearRunID() {
	m.run = nil
	m.clearedFields[question.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *QuestionMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[question.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *QuestionMutation) ResetRunID() {
	m.run = nil
	delete(m.clearedFields, question.FieldRunID)
}

// SetFingerprint sets the "fingerprint" field.
func (m *QuestionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *QuestionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *QuestionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the IngestRun entity.
func (m *QuestionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[question.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the IngestRun entity was cleared.
func (m *QuestionMutation) RunCleared() bool {
	return m.RunIDCleared() || m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *QuestionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.year != nil {
		fields = append(fields, question.FieldYear)
	}
	if m.subject != nil {
		fields = append(fields, question.FieldSubject)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopic)
	}
	if m.subtopic != nil {
		fields = append(fields, question.FieldSubtopic)
	}
	if m.question_text != nil {
		fields = append(fields, question.FieldQuestionText)
	}
	if m.options != nil {
		fields = append(fields, question.FieldOptions)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.tagging_method != nil {
		fields = append(fields, question.FieldTaggingMethod)
	}
	if m.tag_confidence != nil {
		fields = append(fields, question.FieldTagConfidence)
	}
	if m.source_pdf != nil {
		fields = append(fields, question.FieldSourcePdf)
	}
	if m.run != nil {
		fields = append(fields, question.FieldRunID)
	}
	if m.fingerprint != nil {
		fields = append(fields, question.FieldFingerprint)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldYear:
		return m.Year()
	case question.FieldSubject:
		return m.Subject()
	case question.FieldTopic:
		return m.Topic()
	case question.FieldSubtopic:
		return m.Subtopic()
	case question.FieldQuestionText:
		return m.QuestionText()
	case question.FieldOptions:
		return m.Options()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldTaggingMethod:
		return m.TaggingMethod()
	case question.FieldTagConfidence:
		return m.TagConfidence()
	case question.FieldSourcePdf:
		return m.SourcePdf()
	case question.FieldRunID:
		return m.RunID()
	case question.FieldFingerprint:
		return m.Fingerprint()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldYear:
		return m.OldYear(ctx)
	case question.FieldSubject:
		return m.OldSubject(ctx)
	case question.FieldTopic:
		return m.OldTopic(ctx)
	case question.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case question.FieldQuestionText:
		return m.OldQuestionText(ctx)
	case question.FieldOptions:
		return m.OldOptions(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldTaggingMethod:
		return m.OldTaggingMethod(ctx)
	case question.FieldTagConfidence:
		return m.OldTagConfidence(ctx)
	case question.FieldSourcePdf:
		return m.OldSourcePdf(ctx)
	case question.FieldRunID:
		return m.OldRunID(ctx)
	case question.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case question.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case question.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case question.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case question.FieldQuestionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionText(v)
		return nil
	case question.FieldOptions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldTaggingMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaggingMethod(v)
		return nil
	case question.FieldTagConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagConfidence(v)
		return nil
	case question.FieldSourcePdf:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePdf(v)
		return nil
	case question.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case question.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, question.FieldYear)
	}
	if m.addtag_confidence != nil {
		fields = append(fields, question.FieldTagConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldYear:
		return m.AddedYear()
	case question.FieldTagConfidence:
		return m.AddedTagConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case question.FieldTagConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTagConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldSubtopic) {
		fields = append(fields, question.FieldSubtopic)
	}
	if m.FieldCleared(question.FieldCorrectAnswer) {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.FieldCleared(question.FieldExplanation) {
		fields = append(fields, question.FieldExplanation)
	}
	if m.FieldCleared(question.FieldSourcePdf) {
		fields = append(fields, question.FieldSourcePdf)
	}
	if m.FieldCleared(question.FieldRunID) {
		fields = append(fields, question.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldSubtopic:
		m.ClearSubtopic()
		return nil
	case question.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case question.FieldExplanation:
		m.ClearExplanation()
		return nil
	case question.FieldSourcePdf:
		m.ClearSourcePdf()
		return nil
	case question.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldYear:
		m.ResetYear()
		return nil
	case question.FieldSubject:
		m.ResetSubject()
		return nil
	case question.FieldTopic:
		m.ResetTopic()
		return nil
	case question.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case question.FieldQuestionText:
		m.ResetQuestionText()
		return nil
	case question.FieldOptions:
		m.ResetOptions()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldTaggingMethod:
		m.ResetTaggingMethod()
		return nil
	case question.FieldTagConfidence:
		m.ResetTagConfidence()
		return nil
	case question.FieldSourcePdf:
		m.ResetSourcePdf()
		return nil
	case question.FieldRunID:
		m.ResetRunID()
		return nil
	case question.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, question.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, question.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}
