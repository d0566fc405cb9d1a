package parser

import (
	"reflect"
	"testing"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/segment"
)

func mkBlock(lines ...string) segment.Block {
	return segment.Block{Lines: lines}
}

var testProv = Provenance{
	Year:      2023,
	SourcePDF: "paper.pdf",
	Subject:   constants.SubjectUnknown,
	Topic:     constants.TopicUncategorized,
	Subtopic:  constants.TopicUncategorized,
}

func TestParseBlockInlineSingleLine(t *testing.T) {
	q, ok := ParseBlock(mkBlock("Q1) What is 2+2? (A) 3 (B) 4 (C) 5 Ans: B"), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	if q.QuestionText != "What is 2+2?" {
		t.Errorf("question text = %q", q.QuestionText)
	}
	want := map[string]string{"A": "3", "B": "4", "C": "5"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("options = %#v, want %#v", q.Options, want)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("answer = %q, want B", q.CorrectAnswer)
	}
	if q.QuestionID == "" {
		t.Error("question id must be assigned at parse time")
	}
	if q.TaggingMethod != constants.TagNone {
		t.Errorf("tagging method = %q, want none", q.TaggingMethod)
	}
}

func TestParseBlockMultiLine(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q7. Which position is used for a patient",
		"in hypovolemic shock?",
		"(A) Trendelenburg",
		"(B) Prone",
		"(C) High Fowler's",
		"(D) Sims",
		"Answer: A",
		"Explanation: Legs are elevated",
		"to improve venous return.",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	if q.QuestionText != "Which position is used for a patient in hypovolemic shock?" {
		t.Errorf("question text = %q", q.QuestionText)
	}
	if len(q.Options) != 4 || q.Options["C"] != "High Fowler's" {
		t.Errorf("options = %#v", q.Options)
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("answer = %q", q.CorrectAnswer)
	}
	if q.Explanation != "Legs are elevated to improve venous return." {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestParseBlockNumericOptionsAndAnswer(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"12. The normal GCS score is:",
		"1) 3",
		"2) 15",
		"3) 12",
		"4) 10",
		"Ans: 2",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	want := map[string]string{"A": "3", "B": "15", "C": "12", "D": "10"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("options = %#v, want %#v", q.Options, want)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("digit answer must map 2 -> B, got %q", q.CorrectAnswer)
	}
}

func TestParseBlockOptionContinuation(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q3. Pick the definition of phlebitis:",
		"(A) Inflammation of a vein, usually",
		"at an IV cannula site",
		"(B) Inflammation of an artery",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	if q.Options["A"] != "Inflammation of a vein, usually at an IV cannula site" {
		t.Errorf("continuation not joined: %q", q.Options["A"])
	}
}

func TestParseBlockAnswerEndsOptionContinuation(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q4. Something?",
		"(A) first",
		"(B) second",
		"Ans: A",
		"stray trailing line",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	if q.Options["B"] != "second" {
		t.Errorf("answer marker must end option continuation, B = %q", q.Options["B"])
	}
	if q.QuestionText != "Something? stray trailing line" {
		t.Errorf("trailing line must fall back to question text: %q", q.QuestionText)
	}
}

func TestParseBlockExplanationSwallowsOptionLikeLines(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q5. Something?",
		"(A) first",
		"(B) second",
		"Explanation: because",
		"(C) looks like an option but is explanation prose",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	if _, hasC := q.Options["C"]; hasC {
		t.Error("explanation accumulation must take priority over option markers")
	}
	if q.Explanation != "because (C) looks like an option but is explanation prose" {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestParseBlockRejectsSparseBlocks(t *testing.T) {
	if _, ok := ParseBlock(mkBlock("17. A bare list item mistaken for a question"), testProv); ok {
		t.Error("block without options must be rejected")
	}
	if _, ok := ParseBlock(mkBlock("Q2. Only one option", "(A) lonely"), testProv); ok {
		t.Error("block with a single option must be rejected")
	}
}

func TestParseBlockInlineBodyLine(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q6. Choose:",
		"Options are (A) alpha (B) beta (C) gamma (D) delta",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	want := map[string]string{"A": "alpha", "B": "beta", "C": "gamma", "D": "delta"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("options = %#v, want %#v", q.Options, want)
	}
}

func TestDetectMetadata(t *testing.T) {
	lines := []string{
		"Subject: Pharmacology",
		"Q1. Something",
		"Topic - Drug Safety",
	}
	s, tp, st := DetectMetadata(lines, "Unknown", "Unknown", "Unknown")
	if s != "Pharmacology" || tp != "Drug Safety" || st != "Unknown" {
		t.Errorf("metadata = (%q, %q, %q)", s, tp, st)
	}
}

func TestParseBlockCanonicalKeysOnly(t *testing.T) {
	q, ok := ParseBlock(mkBlock(
		"Q8. Keys stay within A-D?",
		"(a) lower one",
		"(b) lower two",
	), testProv)
	if !ok {
		t.Fatal("expected a record")
	}
	for k := range q.Options {
		if !constants.IsOptionKey(k) {
			t.Errorf("unexpected option key %q", k)
		}
	}
	if q.Options["A"] != "lower one" {
		t.Errorf("lowercase marker must map to uppercase key: %#v", q.Options)
	}
}
