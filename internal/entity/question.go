package entity

import (
	"strings"

	"github.com/examtools/questionbank/constants"
)

// YearUnknown marks a question whose exam year could not be determined.
const YearUnknown = 0

// Question represents a single extracted MCQ for data transfer between layers.
//
// Options only ever hold the keys A-D; encoding/json emits map keys sorted,
// so the serialized form is always in canonical A,B,C,D order.
type Question struct {
	QuestionID    string                  `json:"question_id"`
	Year          int                     `json:"year,omitempty"`
	Subject       string                  `json:"subject"`
	Topic         string                  `json:"topic"`
	Subtopic      string                  `json:"subtopic"`
	QuestionText  string                  `json:"question_text"`
	Options       map[string]string       `json:"options"`
	CorrectAnswer string                  `json:"correct_answer"`
	Explanation   string                  `json:"explanation"`
	TaggingMethod constants.TaggingMethod `json:"tagging_method"`
	TagConfidence int                     `json:"tag_confidence"`
	SourcePDF     string                  `json:"source_pdf"`
}

// OptionKeys returns the option keys present on q, in canonical order.
func (q *Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for _, k := range constants.OptionKeys {
		if _, ok := q.Options[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// ClassificationText is the text the tagger scores: question text, all
// option values in canonical order, then the explanation.
func (q *Question) ClassificationText() string {
	parts := make([]string, 0, 6)
	parts = append(parts, q.QuestionText)
	for _, k := range constants.OptionKeys {
		if v, ok := q.Options[k]; ok {
			parts = append(parts, v)
		}
	}
	if q.Explanation != "" {
		parts = append(parts, q.Explanation)
	}
	return strings.Join(parts, " ")
}
