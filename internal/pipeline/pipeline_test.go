package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/entity"
	"github.com/examtools/questionbank/internal/ingest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const samplePaper = `### FILE: mock_2022.pdf
Page 1
NOT FOR SALE
Q1) A patient in hypovolemic shock needs what first?
(A) Fluids
(B) Antibiotics
(C) Insulin
(D) Oxygen
Ans: A
Q2. What is the monitoring device for fetal heart rate?
1) Doppler
2) Stethoscope
3) Otoscope
4) Thermometer
Answer: 1
Q3) Incomplete question
(A) only one option
`

func TestRunEndToEnd(t *testing.T) {
	p := New(discardLogger(), nil, Config{})
	docs := []ingest.Document{{Year: 2022, Text: samplePaper}}

	res, err := p.Run(context.Background(), docs)
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload.Count != 2 {
		t.Fatalf("count = %d, want 2", res.Payload.Count)
	}
	if res.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", res.Dropped)
	}

	q1 := res.Payload.Questions[0]
	if q1.CorrectAnswer != "A" {
		t.Errorf("q1 answer = %q", q1.CorrectAnswer)
	}
	if q1.Year != 2022 {
		t.Errorf("q1 year = %d", q1.Year)
	}
	if q1.SourcePDF != "mock_2022.pdf" {
		t.Errorf("q1 source = %q", q1.SourcePDF)
	}

	q2 := res.Payload.Questions[1]
	if q2.Options["A"] != "Doppler" {
		t.Errorf("numeric options not remapped: %v", q2.Options)
	}
	if q2.CorrectAnswer != "A" {
		t.Errorf("q2 answer = %q", q2.CorrectAnswer)
	}

	if res.Status() != constants.RunStatusSucceeded {
		t.Errorf("status = %s, problems = %v", res.Status(), res.Problems)
	}
}

func TestRunDeduplicatesAcrossSections(t *testing.T) {
	text := `### FILE: a.pdf
Q1) Same stem here?
(A) one
(B) two
Ans: A
### FILE: b.pdf
Q7) Same stem here?
(A) one
(B) two
Ans: A
`
	p := New(discardLogger(), nil, Config{})
	res, err := p.Run(context.Background(), []ingest.Document{{Year: 2021, Text: text}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload.Count != 1 {
		t.Fatalf("count = %d, want 1", res.Payload.Count)
	}
	if res.Payload.DuplicatesRemoved != 1 {
		t.Errorf("duplicates_removed = %d, want 1", res.Payload.DuplicatesRemoved)
	}
}

func TestRunRequireFullOptions(t *testing.T) {
	text := `Q1) Two options only?
(A) yes
(B) no
Ans: B
`
	p := New(discardLogger(), nil, Config{RequireFullOptions: true})
	res, err := p.Run(context.Background(), []ingest.Document{{Text: text}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload.Count != 0 {
		t.Fatalf("count = %d, want 0", res.Payload.Count)
	}
	if res.Dropped != 1 {
		t.Errorf("dropped = %d, want 1", res.Dropped)
	}
}

func TestRunMetadataOverrideSkipsTagging(t *testing.T) {
	text := `Subject: Pharmacology
Q1) A patient in septic shock with hypovolemic collapse shows anaphylactic signs?
(A) one
(B) two
(C) three
(D) four
Ans: C
`
	p := New(discardLogger(), nil, Config{})
	res, err := p.Run(context.Background(), []ingest.Document{{Year: 2020, Text: text}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload.Count != 1 {
		t.Fatalf("count = %d", res.Payload.Count)
	}
	q := res.Payload.Questions[0]
	if q.Subject != "Pharmacology" {
		t.Errorf("subject = %q, want declared override", q.Subject)
	}
	if q.TaggingMethod != constants.TagNone {
		t.Errorf("tagging method = %q, want untouched", q.TaggingMethod)
	}
}

func TestRunQuestionsMergedBatch(t *testing.T) {
	qs := []*entity.Question{
		{
			QuestionText:  "A patient in hypovolemic shock needs what first?",
			Options:       map[string]string{"A": "Fluids", "B": "Antibiotics", "C": "Insulin", "D": "Oxygen"},
			CorrectAnswer: "A",
			Year:          2022,
		},
		{
			QuestionText:  "A patient in hypovolemic shock needs what first?",
			Options:       map[string]string{"A": "Fluids", "B": "Antibiotics", "C": "Insulin", "D": "Oxygen"},
			CorrectAnswer: "A",
			Year:          2022,
		},
	}
	p := New(discardLogger(), nil, Config{})
	res, err := p.RunQuestions(context.Background(), qs)
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload.Count != 1 || res.Payload.DuplicatesRemoved != 1 {
		t.Fatalf("count = %d, duplicates = %d", res.Payload.Count, res.Payload.DuplicatesRemoved)
	}
	q := res.Payload.Questions[0]
	if q.TaggingMethod != constants.TagRuleBased {
		t.Errorf("tagging method = %q, want rule_based", q.TaggingMethod)
	}
}

func TestRunValidationProblemsSetStatus(t *testing.T) {
	// All four options present but no recognizable answer marker.
	text := `Q1) Which way is up?
(A) north
(B) south
(C) east
(D) west
`
	p := New(discardLogger(), nil, Config{})
	res, err := p.Run(context.Background(), []ingest.Document{{Text: text}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Problems) == 0 {
		t.Fatal("expected validation problems for missing answer")
	}
	if res.Status() != constants.RunStatusValidationFailed {
		t.Errorf("status = %s", res.Status())
	}
}
