// Code generated by ent, DO NOT EDIT.

package ingestrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examtools/questionbank/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStatus, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldTotalQuestions, v))
}

// DuplicatesRemoved applies equality check predicate on the "duplicates_removed" field. It's identical to DuplicatesRemovedEQ.
func DuplicatesRemoved(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldDuplicatesRemoved, v))
}

// ProblemCount applies equality check predicate on the "problem_count" field. It's identical to ProblemCountEQ.
func ProblemCount(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldProblemCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldFinishedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContainsFold(FieldStatus, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldTotalQuestions, v))
}

// DuplicatesRemovedEQ applies the EQ predicate on the "duplicates_removed" field.
func DuplicatesRemovedEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldDuplicatesRemoved, v))
}

// DuplicatesRemovedNEQ applies the NEQ predicate on the "duplicates_removed" field.
func DuplicatesRemovedNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldDuplicatesRemoved, v))
}

// DuplicatesRemovedIn applies the In predicate on the "duplicates_removed" field.
func DuplicatesRemovedIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldDuplicatesRemoved, vs...))
}

// DuplicatesRemovedNotIn applies the NotIn predicate on the "duplicates_removed" field.
func DuplicatesRemovedNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldDuplicatesRemoved, vs...))
}

// DuplicatesRemovedGT applies the GT predicate on the "duplicates_removed" field.
func DuplicatesRemovedGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldDuplicatesRemoved, v))
}

// DuplicatesRemovedGTE applies the GTE predicate on the "duplicates_removed" field.
func DuplicatesRemovedGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldDuplicatesRemoved, v))
}

// DuplicatesRemovedLT applies the LT predicate on the "duplicates_removed" field.
func DuplicatesRemovedLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldDuplicatesRemoved, v))
}

// DuplicatesRemovedLTE applies the LTE predicate on the "duplicates_removed" field.
func DuplicatesRemovedLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldDuplicatesRemoved, v))
}

// ProblemCountEQ applies the EQ predicate on the "problem_count" field.
func ProblemCountEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldProblemCount, v))
}

// ProblemCountNEQ applies the NEQ predicate on the "problem_count" field.
func ProblemCountNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldProblemCount, v))
}

// ProblemCountIn applies the In predicate on the "problem_count" field.
func ProblemCountIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldProblemCount, vs...))
}

// ProblemCountNotIn applies the NotIn predicate on the "problem_count" field.
func ProblemCountNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldProblemCount, vs...))
}

// ProblemCountGT applies the GT predicate on the "problem_count" field.
func ProblemCountGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldProblemCount, v))
}

// ProblemCountGTE applies the GTE predicate on the "problem_count" field.
func ProblemCountGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldProblemCount, v))
}

// ProblemCountLT applies the LT predicate on the "problem_count" field.
func ProblemCountLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldProblemCount, v))
}

// ProblemCountLTE applies the LTE predicate on the "problem_count" field.
func ProblemCountLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldProblemCount, v))
}

// YearCountsIsNil applies the IsNil predicate on the "year_counts" field.
func YearCountsIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldYearCounts))
}

// YearCountsNotNil applies the NotNil predicate on the "year_counts" field.
func YearCountsNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldYearCounts))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldFinishedAt))
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.IngestRun {
	return predicate.IngestRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.IngestRun {
	return predicate.IngestRun(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.NotPredicates(p))
}
