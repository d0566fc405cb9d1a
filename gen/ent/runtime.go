// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/examtools/questionbank/db/ent/schema"
	"github.com/examtools/questionbank/gen/ent/ingestrun"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingestrunFields := schema.IngestRun{}.Fields()
	_ = ingestrunFields
	// ingestrunDescStatus is the schema descriptor for status field.
	ingestrunDescStatus := ingestrunFields[1].Descriptor()
	// ingestrun.DefaultStatus holds the default value on creation for the status field.
	ingestrun.DefaultStatus = ingestrunDescStatus.Default.(string)
	// ingestrunDescTotalQuestions is the schema descriptor for total_questions field.
	ingestrunDescTotalQuestions := ingestrunFields[2].Descriptor()
	// ingestrun.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	ingestrun.DefaultTotalQuestions = ingestrunDescTotalQuestions.Default.(int)
	// ingestrunDescDuplicatesRemoved is the schema descriptor for duplicates_removed field.
	ingestrunDescDuplicatesRemoved := ingestrunFields[3].Descriptor()
	// ingestrun.DefaultDuplicatesRemoved holds the default value on creation for the duplicates_removed field.
	ingestrun.DefaultDuplicatesRemoved = ingestrunDescDuplicatesRemoved.Default.(int)
	// ingestrunDescProblemCount is the schema descriptor for problem_count field.
	ingestrunDescProblemCount := ingestrunFields[4].Descriptor()
	// ingestrun.DefaultProblemCount holds the default value on creation for the problem_count field.
	ingestrun.DefaultProblemCount = ingestrunDescProblemCount.Default.(int)
	// ingestrunDescStartedAt is the schema descriptor for started_at field.
	ingestrunDescStartedAt := ingestrunFields[6].Descriptor()
	// ingestrun.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestrun.DefaultStartedAt = ingestrunDescStartedAt.Default.(func() time.Time)
	// ingestrunDescID is the schema descriptor for id field.
	ingestrunDescID := ingestrunFields[0].Descriptor()
	// ingestrun.DefaultID holds the default value on creation for the id field.
	ingestrun.DefaultID = ingestrunDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescYear is the schema descriptor for year field.
	questionDescYear := questionFields[1].Descriptor()
	// question.DefaultYear holds the default value on creation for the year field.
	question.DefaultYear = questionDescYear.Default.(int)
	// questionDescSubject is the schema descriptor for subject field.
	questionDescSubject := questionFields[2].Descriptor()
	// question.DefaultSubject holds the default value on creation for the subject field.
	question.DefaultSubject = questionDescSubject.Default.(string)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[3].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[5].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[7].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescTaggingMethod is the schema descriptor for tagging_method field.
	questionDescTaggingMethod := questionFields[9].Descriptor()
	// question.DefaultTaggingMethod holds the default value on creation for the tagging_method field.
	question.DefaultTaggingMethod = questionDescTaggingMethod.Default.(string)
	// questionDescTagConfidence is the schema descriptor for tag_confidence field.
	questionDescTagConfidence := questionFields[10].Descriptor()
	// question.DefaultTagConfidence holds the default value on creation for the tag_confidence field.
	question.DefaultTagConfidence = questionDescTagConfidence.Default.(int)
	// questionDescFingerprint is the schema descriptor for fingerprint field.
	questionDescFingerprint := questionFields[13].Descriptor()
	// question.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	question.FingerprintValidator = func() func(string) error {
		validators := questionDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[14].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
}
