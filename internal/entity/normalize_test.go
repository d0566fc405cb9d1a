package entity

import (
	"encoding/json"
	"testing"
)

func TestNormalizeOptionsMapVariant(t *testing.T) {
	got, err := NormalizeOptions(OptionsInput{Map: map[string]string{
		"A": "  first   choice ",
		"B": "second",
		"E": "out of range",
		"C": "   ",
	}})
	if err != nil {
		t.Fatalf("NormalizeOptions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %v", got)
	}
	if got["A"] != "first choice" {
		t.Errorf("A = %q, want %q", got["A"], "first choice")
	}
	if _, ok := got["E"]; ok {
		t.Error("key E must never survive normalization")
	}
}

func TestNormalizeOptionsListVariant(t *testing.T) {
	got, err := NormalizeOptions(OptionsInput{List: []string{"one", "two", "three", "four", "five"}})
	if err != nil {
		t.Fatalf("NormalizeOptions: %v", err)
	}
	want := map[string]string{"A": "one", "B": "two", "C": "three", "D": "four"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected the fifth entry to be dropped, got %v", got)
	}
}

func TestNormalizeOptionsRejectsStructuralErrors(t *testing.T) {
	if _, err := NormalizeOptions(OptionsInput{}); err == nil {
		t.Error("empty variant must be rejected")
	}
	if _, err := NormalizeOptions(OptionsInput{Map: map[string]string{}, List: []string{}}); err == nil {
		t.Error("double-tagged variant must be rejected")
	}
}

func TestOptionsFromJSON(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"object", `{"A":"x","B":"y"}`, 2, false},
		{"array", `["x","y","z"]`, 3, false},
		{"null", `null`, 0, false},
		{"scalar", `"x"`, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OptionsFromJSON(json.RawMessage(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("OptionsFromJSON(%q): %v", tc.raw, err)
			}
			if len(got) != tc.wantLen {
				t.Errorf("len = %d, want %d (%v)", len(got), tc.wantLen, got)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	opts := map[string]string{"A": "3", "B": "4", "C": "5"}
	if got := NormalizeAnswer("B", opts); got != "B" {
		t.Errorf("letter answer: got %q", got)
	}
	if got := NormalizeAnswer("  4 ", opts); got != "B" {
		t.Errorf("full-text answer: got %q, want B", got)
	}
	if got := NormalizeAnswer("7", opts); got != "" {
		t.Errorf("unresolvable answer: got %q, want empty", got)
	}
}

func TestNormalizeDropsSparseQuestions(t *testing.T) {
	q := &Question{QuestionText: "only one option", Options: map[string]string{"A": "x"}}
	if Normalize(q) {
		t.Error("question with one option must be rejected")
	}
	q = &Question{
		QuestionText:  "  what   is 2+2 ",
		Options:       map[string]string{"A": "3", "B": " 4 "},
		CorrectAnswer: "4",
	}
	if !Normalize(q) {
		t.Fatal("two-option question must be accepted")
	}
	if q.QuestionText != "what is 2+2" {
		t.Errorf("question text = %q", q.QuestionText)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("answer = %q, want B", q.CorrectAnswer)
	}
}
