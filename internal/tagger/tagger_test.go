package tagger

import (
	"context"
	"errors"
	"testing"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/classify"
	"github.com/examtools/questionbank/internal/entity"
)

type stubClassifier struct {
	result classify.Result
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) classify.Result {
	s.calls++
	return s.result
}

func mkShockQuestion() *entity.Question {
	return &entity.Question{
		QuestionID:   "q1",
		QuestionText: "A patient in shock presents with low blood pressure",
		Options:      map[string]string{"A": "monitor", "B": "elevate legs"},
	}
}

func TestRuleMatchSingleKeyword(t *testing.T) {
	tg := New(nil, 2, nil, nil)
	m := tg.RuleMatch("the patient went into shock")
	if m.Subject != "Medical-Surgical Nursing" || m.Score != 1 {
		t.Errorf("match = %+v", m)
	}
}

func TestRuleMatchUnmatched(t *testing.T) {
	tg := New(nil, 2, nil, nil)
	m := tg.RuleMatch("completely unrelated text about sailing")
	if m.Subject != constants.SubjectUnknown || m.Score != 0 {
		t.Errorf("unmatched text must yield Unknown at score 0, got %+v", m)
	}
}

func TestRuleMatchTieBreakTraversalOrder(t *testing.T) {
	tax, err := DecodeString(`{
		"First Subject": {"T": {"S": ["alpha"]}},
		"Second Subject": {"T": {"S": ["alpha"]}}
	}`)
	if err != nil {
		t.Fatal(err)
	}
	tg := New(tax, 1, nil, nil)
	m := tg.RuleMatch("alpha")
	if m.Subject != "First Subject" {
		t.Errorf("tie must resolve to the first leaf in traversal order, got %q", m.Subject)
	}
}

func TestRuleMatchDeterministic(t *testing.T) {
	tg := New(nil, 2, nil, nil)
	text := "iv cannula caused phlebitis after infusion of the drug dose"
	first := tg.RuleMatch(text)
	for i := 0; i < 50; i++ {
		if got := tg.RuleMatch(text); got != first {
			t.Fatalf("tagging is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestTagRuleBasedAboveThreshold(t *testing.T) {
	q := &entity.Question{
		QuestionText: "hypovolemic shock management",
		Options:      map[string]string{"A": "x", "B": "y"},
	}
	stub := &stubClassifier{result: classify.Result{Outcome: classify.Matched, Subject: "LLM Subject"}}
	tg := New(nil, 2, stub, nil)
	tg.Tag(context.Background(), q)
	if q.TaggingMethod != constants.TagRuleBased {
		t.Errorf("method = %q, want rule_based", q.TaggingMethod)
	}
	if q.Subject != "Medical-Surgical Nursing" || q.TagConfidence != 2 {
		t.Errorf("got subject=%q confidence=%d", q.Subject, q.TagConfidence)
	}
	if stub.calls != 0 {
		t.Error("fallback must not be consulted above threshold")
	}
}

func TestTagFallbackBelowThreshold(t *testing.T) {
	// "shock" alone scores 1, below minScore 2, so the fallback runs.
	q := mkShockQuestion()
	stub := &stubClassifier{result: classify.Result{
		Outcome:  classify.Matched,
		Subject:  "Critical Care",
		Topic:    "Hemodynamics",
		Subtopic: "Hypotension",
	}}
	tg := New(nil, 2, stub, nil)
	tg.Tag(context.Background(), q)
	if stub.calls != 1 {
		t.Fatalf("fallback calls = %d, want 1", stub.calls)
	}
	if q.TaggingMethod != constants.TagLLM || q.Subject != "Critical Care" || q.TagConfidence != 1 {
		t.Errorf("got method=%q subject=%q confidence=%d", q.TaggingMethod, q.Subject, q.TagConfidence)
	}
}

func TestTagFallbackTransportErrorDegrades(t *testing.T) {
	q := mkShockQuestion()
	stub := &stubClassifier{result: classify.Result{
		Outcome: classify.TransportError,
		Err:     errors.New("connection refused"),
	}}
	tg := New(nil, 2, stub, nil)
	tg.Tag(context.Background(), q)
	if q.TaggingMethod != constants.TagRuleBased {
		t.Errorf("method = %q, want rule_based after transport error", q.TaggingMethod)
	}
	if q.Subject != "Medical-Surgical Nursing" || q.TagConfidence != 1 {
		t.Errorf("below-threshold rule result must still be used: subject=%q confidence=%d", q.Subject, q.TagConfidence)
	}
}

func TestTagFallbackNotFoundDegrades(t *testing.T) {
	q := &entity.Question{
		QuestionText: "nothing recognizable here",
		Options:      map[string]string{"A": "x", "B": "y"},
	}
	stub := &stubClassifier{result: classify.Result{Outcome: classify.NotFound}}
	tg := New(nil, 2, stub, nil)
	tg.Tag(context.Background(), q)
	if q.TaggingMethod != constants.TagRuleBased || q.TagConfidence != 0 {
		t.Errorf("total failure must keep rule_based at confidence 0, got %q/%d", q.TaggingMethod, q.TagConfidence)
	}
	if q.Subject != constants.SubjectUnknown {
		t.Errorf("unmatched question must stay Unknown, got %q", q.Subject)
	}
}

func TestTagWithoutFallback(t *testing.T) {
	q := mkShockQuestion()
	tg := New(nil, 2, nil, nil)
	tg.Tag(context.Background(), q)
	if q.TaggingMethod != constants.TagRuleBased || q.TagConfidence != 1 {
		t.Errorf("got method=%q confidence=%d", q.TaggingMethod, q.TagConfidence)
	}
}
