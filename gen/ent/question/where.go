// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/examtools/questionbank/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldYear, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// Subtopic applies equality check predicate on the "subtopic" field. It's identical to SubtopicEQ.
func Subtopic(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopic, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// TaggingMethod applies equality check predicate on the "tagging_method" field. It's identical to TaggingMethodEQ.
func TaggingMethod(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTaggingMethod, v))
}

// TagConfidence applies equality check predicate on the "tag_confidence" field. It's identical to TagConfidenceEQ.
func TagConfidence(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTagConfidence, v))
}

// SourcePdf applies equality check predicate on the "source_pdf" field. It's identical to SourcePdfEQ.
func SourcePdf(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSourcePdf, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRunID, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFingerprint, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldYear, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTopic, v))
}

// SubtopicEQ applies the EQ predicate on the "subtopic" field.
func SubtopicEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopic, v))
}

// SubtopicNEQ applies the NEQ predicate on the "subtopic" field.
func SubtopicNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubtopic, v))
}

// SubtopicIn applies the In predicate on the "subtopic" field.
func SubtopicIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubtopic, vs...))
}

// SubtopicNotIn applies the NotIn predicate on the "subtopic" field.
func SubtopicNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubtopic, vs...))
}

// SubtopicGT applies the GT predicate on the "subtopic" field.
func SubtopicGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubtopic, v))
}

// SubtopicGTE applies the GTE predicate on the "subtopic" field.
func SubtopicGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubtopic, v))
}

// SubtopicLT applies the LT predicate on the "subtopic" field.
func SubtopicLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubtopic, v))
}

// SubtopicLTE applies the LTE predicate on the "subtopic" field.
func SubtopicLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubtopic, v))
}

// SubtopicContains applies the Contains predicate on the "subtopic" field.
func SubtopicContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubtopic, v))
}

// SubtopicHasPrefix applies the HasPrefix predicate on the "subtopic" field.
func SubtopicHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubtopic, v))
}

// SubtopicHasSuffix applies the HasSuffix predicate on the "subtopic" field.
func SubtopicHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubtopic, v))
}

// SubtopicIsNil applies the IsNil predicate on the "subtopic" field.
func SubtopicIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubtopic))
}

// SubtopicNotNil applies the NotNil predicate on the "subtopic" field.
func SubtopicNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubtopic))
}

// SubtopicEqualFold applies the EqualFold predicate on the "subtopic" field.
func SubtopicEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubtopic, v))
}

// SubtopicContainsFold applies the ContainsFold predicate on the "subtopic" field.
func SubtopicContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubtopic, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// TaggingMethodEQ applies the EQ predicate on the "tagging_method" field.
func TaggingMethodEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTaggingMethod, v))
}

// TaggingMethodNEQ applies the NEQ predicate on the "tagging_method" field.
func TaggingMethodNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTaggingMethod, v))
}

// TaggingMethodIn applies the In predicate on the "tagging_method" field.
func TaggingMethodIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTaggingMethod, vs...))
}

// TaggingMethodNotIn applies the NotIn predicate on the "tagging_method" field.
func TaggingMethodNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTaggingMethod, vs...))
}

// TaggingMethodGT applies the GT predicate on the "tagging_method" field.
func TaggingMethodGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTaggingMethod, v))
}

// TaggingMethodGTE applies the GTE predicate on the "tagging_method" field.
func TaggingMethodGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTaggingMethod, v))
}

// TaggingMethodLT applies the LT predicate on the "tagging_method" field.
func TaggingMethodLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTaggingMethod, v))
}

// TaggingMethodLTE applies the LTE predicate on the "tagging_method" field.
func TaggingMethodLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTaggingMethod, v))
}

// TaggingMethodContains applies the Contains predicate on the "tagging_method" field.
func TaggingMethodContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTaggingMethod, v))
}

// TaggingMethodHasPrefix applies the HasPrefix predicate on the "tagging_method" field.
func TaggingMethodHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTaggingMethod, v))
}

// TaggingMethodHasSuffix applies the HasSuffix predicate on the "tagging_method" field.
func TaggingMethodHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTaggingMethod, v))
}

// TaggingMethodEqualFold applies the EqualFold predicate on the "tagging_method" field.
func TaggingMethodEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTaggingMethod, v))
}

// TaggingMethodContainsFold applies the ContainsFold predicate on the "tagging_method" field.
func TaggingMethodContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTaggingMethod, v))
}

// TagConfidenceEQ applies the EQ predicate on the "tag_confidence" field.
func TagConfidenceEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTagConfidence, v))
}

// TagConfidenceNEQ applies the NEQ predicate on the "tag_confidence" field.
func TagConfidenceNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTagConfidence, v))
}

// TagConfidenceIn applies the In predicate on the "tag_confidence" field.
func TagConfidenceIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTagConfidence, vs...))
}

// TagConfidenceNotIn applies the NotIn predicate on the "tag_confidence" field.
func TagConfidenceNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTagConfidence, vs...))
}

// TagConfidenceGT applies the GT predicate on the "tag_confidence" field.
func TagConfidenceGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTagConfidence, v))
}

// TagConfidenceGTE applies the GTE predicate on the "tag_confidence" field.
func TagConfidenceGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTagConfidence, v))
}

// TagConfidenceLT applies the LT predicate on the "tag_confidence" field.
func TagConfidenceLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTagConfidence, v))
}

// TagConfidenceLTE applies the LTE predicate on the "tag_confidence" field.
func TagConfidenceLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTagConfidence, v))
}

// SourcePdfEQ applies the EQ predicate on the "source_pdf" field.
func SourcePdfEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSourcePdf, v))
}

// SourcePdfNEQ applies the NEQ predicate on the "source_pdf" field.
func SourcePdfNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSourcePdf, v))
}

// SourcePdfIn applies the In predicate on the "source_pdf" field.
func SourcePdfIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSourcePdf, vs...))
}

// SourcePdfNotIn applies the NotIn predicate on the "source_pdf" field.
func SourcePdfNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSourcePdf, vs...))
}

// SourcePdfGT applies the GT predicate on the "source_pdf" field.
func SourcePdfGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSourcePdf, v))
}

// SourcePdfGTE applies the GTE predicate on the "source_pdf" field.
func SourcePdfGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSourcePdf, v))
}

// SourcePdfLT applies the LT predicate on the "source_pdf" field.
func SourcePdfLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSourcePdf, v))
}

// SourcePdfLTE applies the LTE predicate on the "source_pdf" field.
func SourcePdfLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSourcePdf, v))
}

// SourcePdfContains applies the Contains predicate on the "source_pdf" field.
func SourcePdfContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSourcePdf, v))
}

// SourcePdfHasPrefix applies the HasPrefix predicate on the "source_pdf" field.
func SourcePdfHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSourcePdf, v))
}

// SourcePdfHasSuffix applies the HasSuffix predicate on the "source_pdf" field.
func SourcePdfHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSourcePdf, v))
}

// SourcePdfIsNil applies the IsNil predicate on the "source_pdf" field.
func SourcePdfIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSourcePdf))
}

// SourcePdfNotNil applies the NotNil predicate on the "source_pdf" field.
func SourcePdfNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSourcePdf))
}

// SourcePdfEqualFold applies the EqualFold predicate on the "source_pdf" field.
func SourcePdfEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSourcePdf, v))
}

// SourcePdfContainsFold applies the ContainsFold predicate on the "source_pdf" field.
func SourcePdfContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSourcePdf, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldRunID))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldFingerprint, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.IngestRun) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
