package dedupe

import (
	"testing"

	"github.com/examtools/questionbank/internal/entity"
)

func mkQuestion(id string, year int, text string, options map[string]string) *entity.Question {
	return &entity.Question{
		QuestionID:   id,
		Year:         year,
		QuestionText: text,
		Options:      options,
	}
}

func TestDedupeDropsExactRepeats(t *testing.T) {
	opts := map[string]string{"A": "3", "B": "4"}
	qs := []*entity.Question{
		mkQuestion("first", 2023, "What is 2+2?", opts),
		mkQuestion("second", 2023, "What is 2+2?", map[string]string{"A": "3", "B": "4"}),
		mkQuestion("third", 2023, "What is 3+3?", opts),
	}
	kept, dups := Dedupe(qs)
	if dups != 1 {
		t.Errorf("duplicates = %d, want 1", dups)
	}
	if len(kept) != 2 {
		t.Fatalf("kept = %d, want 2", len(kept))
	}
	// First occurrence wins by input order.
	if kept[0].QuestionID != "first" {
		t.Errorf("kept[0] = %q, want the earliest record", kept[0].QuestionID)
	}
}

func TestDedupeYearSensitive(t *testing.T) {
	opts := map[string]string{"A": "x", "B": "y"}
	qs := []*entity.Question{
		mkQuestion("a", entity.YearUnknown, "Same wording?", opts),
		mkQuestion("b", 2022, "Same wording?", opts),
	}
	kept, dups := Dedupe(qs)
	if dups != 0 || len(kept) != 2 {
		t.Errorf("records differing only in year must both be kept (kept=%d dups=%d)", len(kept), dups)
	}
}

func TestDedupeCaseSensitive(t *testing.T) {
	opts := map[string]string{"A": "x", "B": "y"}
	qs := []*entity.Question{
		mkQuestion("a", 2023, "What is shock?", opts),
		mkQuestion("b", 2023, "WHAT IS SHOCK?", opts),
	}
	kept, _ := Dedupe(qs)
	if len(kept) != 2 {
		t.Error("fingerprint must be case-sensitive")
	}
}

func TestDedupeWhitespaceInsensitive(t *testing.T) {
	qs := []*entity.Question{
		mkQuestion("a", 2023, "What  is   shock?", map[string]string{"A": "x ", "B": " y"}),
		mkQuestion("b", 2023, "What is shock?", map[string]string{"A": "x", "B": "y"}),
	}
	_, dups := Dedupe(qs)
	if dups != 1 {
		t.Errorf("whitespace variants must collapse to one record, dups = %d", dups)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	opts := map[string]string{"A": "1", "B": "2"}
	qs := []*entity.Question{
		mkQuestion("a", 2021, "one?", opts),
		mkQuestion("b", 2021, "one?", opts),
		mkQuestion("c", 2022, "two?", opts),
	}
	kept, _ := Dedupe(qs)
	again, dups := Dedupe(kept)
	if dups != 0 || len(again) != len(kept) {
		t.Errorf("dedupe must be idempotent (second pass removed %d)", dups)
	}
}
