// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/google/uuid"
)

// IngestRun is the model entity for the IngestRun schema.
type IngestRun struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// DuplicatesRemoved holds the value of the "duplicates_removed" field.
	DuplicatesRemoved int `json:"duplicates_removed,omitempty"`
	// ProblemCount holds the value of the "problem_count" field.
	ProblemCount int `json:"problem_count,omitempty"`
	// YearCounts holds the value of the "year_counts" field.
	YearCounts map[string]int `json:"year_counts,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IngestRunQuery when eager-loading is set.
	Edges        IngestRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IngestRunEdges holds the relations/edges for other nodes in the graph.
type IngestRunEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e IngestRunEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestrun.FieldYearCounts:
			values[i] = new([]byte)
		case ingestrun.FieldTotalQuestions, ingestrun.FieldDuplicatesRemoved, ingestrun.FieldProblemCount:
			values[i] = new(sql.NullInt64)
		case ingestrun.FieldStatus:
			values[i] = new(sql.NullString)
		case ingestrun.FieldStartedAt, ingestrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case ingestrun.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestRun fields.
func (_m *IngestRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestrun.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ingestrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ingestrun.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case ingestrun.FieldDuplicatesRemoved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicates_removed", values[i])
			} else if value.Valid {
				_m.DuplicatesRemoved = int(value.Int64)
			}
		case ingestrun.FieldProblemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_count", values[i])
			} else if value.Valid {
				_m.ProblemCount = int(value.Int64)
			}
		case ingestrun.FieldYearCounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field year_counts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.YearCounts); err != nil {
					return fmt.Errorf("unmarshal field year_counts: %w", err)
				}
			}
		case ingestrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case ingestrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestRun.
// This includes values selected through modifiers, order, etc.
func (_m *IngestRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the IngestRun entity.
func (_m *IngestRun) QueryQuestions() *QuestionQuery {
	return NewIngestRunClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this IngestRun.
// Note that you need to call IngestRun.Unwrap() before calling this method if this IngestRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestRun) Update() *IngestRunUpdateOne {
	return NewIngestRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestRun) Unwrap() *IngestRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestRun) String() string {
	var builder strings.Builder
	builder.WriteString("IngestRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("duplicates_removed=")
	builder.WriteString(fmt.Sprintf("%v", _m.DuplicatesRemoved))
	builder.WriteString(", ")
	builder.WriteString("problem_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemCount))
	builder.WriteString(", ")
	builder.WriteString("year_counts=")
	builder.WriteString(fmt.Sprintf("%v", _m.YearCounts))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// IngestRuns is a parsable slice of IngestRun.
type IngestRuns []*IngestRun
