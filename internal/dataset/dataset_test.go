package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/examtools/questionbank/internal/entity"
)

func TestBuildNormalizesAndDedupes(t *testing.T) {
	qs := []*entity.Question{
		{
			Year:          2023,
			QuestionText:  "What  is 2+2?",
			Options:       map[string]string{"A": "3", "B": "4"},
			CorrectAnswer: "4", // full-text answer resolved to B
		},
		{
			Year:          2023,
			QuestionText:  "What is 2+2?",
			Options:       map[string]string{"A": "3", "B": "4"},
			CorrectAnswer: "B",
		},
		{
			Year:         2023,
			QuestionText: "Too sparse",
			Options:      map[string]string{"A": "only"},
		},
	}
	payload, report := Build(qs)
	if payload.Count != 1 || payload.DuplicatesRemoved != 1 {
		t.Errorf("count=%d duplicates=%d", payload.Count, payload.DuplicatesRemoved)
	}
	if payload.Questions[0].CorrectAnswer != "B" {
		t.Errorf("answer = %q", payload.Questions[0].CorrectAnswer)
	}
	if report.YearCounts["2023"] != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestBuildSkipsUnknownYearInReport(t *testing.T) {
	qs := []*entity.Question{
		{QuestionText: "no year?", Options: map[string]string{"A": "x", "B": "y"}},
	}
	payload, report := Build(qs)
	if payload.Count != 1 {
		t.Fatalf("count = %d", payload.Count)
	}
	if len(report.YearCounts) != 0 {
		t.Errorf("unknown years must not appear in the report: %v", report.YearCounts)
	}
}

func TestLoadPayloadShapes(t *testing.T) {
	dir := t.TempDir()

	objPath := filepath.Join(dir, "obj.json")
	if err := os.WriteFile(objPath, []byte(`{
		"count": 1,
		"questions": [{
			"question_id": "x",
			"year": 2021,
			"question_text": "obj options?",
			"options": {"A": "one", "B": "two"},
			"correct_answer": "A"
		}]
	}`), 0o644); err != nil {
		t.Fatal(err)
	}
	qs, err := LoadPayload(objPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].Year != 2021 || qs[0].Options["B"] != "two" {
		t.Errorf("object payload: %+v", qs)
	}

	arrPath := filepath.Join(dir, "arr.json")
	if err := os.WriteFile(arrPath, []byte(`{
		"records": [{
			"question_text": "array options?",
			"options": ["one", "two", "three", "four"]
		}]
	}`), 0o644); err != nil {
		t.Fatal(err)
	}
	qs, err = LoadPayload(arrPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 1 || qs[0].Options["D"] != "four" || qs[0].Year != entity.YearUnknown {
		t.Errorf("array payload: %+v", qs[0])
	}

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`{"questions": [{"options": 42}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPayload(badPath); err == nil {
		t.Error("scalar options must be a structural error, not an empty map")
	}
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a.json", `{"questions": [{
		"question_text": "first batch?",
		"options": {"A": "x", "B": "y"},
		"year": 2020
	}]}`)
	b := write("b.json", `{"questions": [{
		"question_text": "second batch?",
		"options": {"A": "x", "B": "y"},
		"year": 2021
	}]}`)

	qs, err := Merge([]string{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions", len(qs))
	}
	if qs[0].Year != 2020 || qs[1].Year != 2021 {
		t.Errorf("merge order lost: %d, %d", qs[0].Year, qs[1].Year)
	}

	if _, err := Merge([]string{a, filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("expected error for unreadable payload")
	}
}
