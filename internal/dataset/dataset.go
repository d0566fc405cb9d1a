// Package dataset assembles the final question bank payload: normalized,
// deduplicated records plus the year-wise report.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/examtools/questionbank/internal/dedupe"
	"github.com/examtools/questionbank/internal/entity"
)

// Payload is the serialized output shape: the record list with its summary
// counters at the top.
type Payload struct {
	Count             int                `json:"count"`
	DuplicatesRemoved int                `json:"duplicates_removed"`
	Questions         []*entity.Question `json:"questions"`
}

// Report is the year-wise count summary written alongside the payload.
type Report struct {
	TotalQuestions int            `json:"total_questions"`
	YearCounts     map[string]int `json:"year_counts"`
}

// Build normalizes every record, drops the unsalvageable ones, removes
// exact duplicates (first occurrence wins, in input order) and produces
// the payload plus its year report.
func Build(questions []*entity.Question) (Payload, Report) {
	normalized := make([]*entity.Question, 0, len(questions))
	for _, q := range questions {
		if entity.Normalize(q) {
			normalized = append(normalized, q)
		}
	}
	kept, duplicates := dedupe.Dedupe(normalized)

	yearCounts := make(map[string]int)
	for _, q := range kept {
		if q.Year != entity.YearUnknown {
			yearCounts[strconv.Itoa(q.Year)]++
		}
	}

	payload := Payload{
		Count:             len(kept),
		DuplicatesRemoved: duplicates,
		Questions:         kept,
	}
	report := Report{
		TotalQuestions: len(kept),
		YearCounts:     yearCounts,
	}
	return payload, report
}

// rawQuestion tolerates the option/year shapes of foreign payloads.
type rawQuestion struct {
	QuestionID    string          `json:"question_id"`
	Year          *int            `json:"year"`
	Subject       string          `json:"subject"`
	Topic         string          `json:"topic"`
	Subtopic      string          `json:"subtopic"`
	QuestionText  string          `json:"question_text"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
	SourcePDF     string          `json:"source_pdf"`
}

type rawPayload struct {
	Questions []rawQuestion `json:"questions"`
	Records   []rawQuestion `json:"records"`
}

// LoadPayload reads a previously parsed JSON payload, accepting either a
// "questions" or legacy "records" list and both option shapes (object or
// positional array).
func LoadPayload(path string) ([]*entity.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode payload %s: %w", path, err)
	}
	rows := raw.Questions
	if len(rows) == 0 {
		rows = raw.Records
	}

	out := make([]*entity.Question, 0, len(rows))
	for i, r := range rows {
		opts, err := entity.OptionsFromJSON(r.Options)
		if err != nil {
			return nil, fmt.Errorf("%s question %d: %w", path, i+1, err)
		}
		year := entity.YearUnknown
		if r.Year != nil {
			year = *r.Year
		}
		out = append(out, &entity.Question{
			QuestionID:    r.QuestionID,
			Year:          year,
			Subject:       r.Subject,
			Topic:         r.Topic,
			Subtopic:      r.Subtopic,
			QuestionText:  r.QuestionText,
			Options:       opts,
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   r.Explanation,
			SourcePDF:     r.SourcePDF,
		})
	}
	return out, nil
}

// Merge loads several payload files and concatenates their questions in
// argument order, so a later Build keeps the first copy of any duplicate.
func Merge(paths []string) ([]*entity.Question, error) {
	var out []*entity.Question
	for _, path := range paths {
		qs, err := LoadPayload(path)
		if err != nil {
			return nil, err
		}
		out = append(out, qs...)
	}
	return out, nil
}

// WriteJSON writes v as indented JSON, trailing newline included.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// SortedYears returns the report's years in ascending order, for stable
// console output.
func (r Report) SortedYears() []string {
	years := make([]string, 0, len(r.YearCounts))
	for y := range r.YearCounts {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}
