package export

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/entity"
)

func TestQuestionsXLSX(t *testing.T) {
	qs := []*entity.Question{
		{
			QuestionID:    "q-1",
			Year:          2022,
			Subject:       "Fundamentals of Nursing",
			Topic:         "Emergency Care",
			QuestionText:  "First step in CPR?",
			Options:       map[string]string{"A": "Check response", "B": "Chest compressions", "C": "Call for help", "D": "Open airway"},
			CorrectAnswer: "A",
			TaggingMethod: constants.TagRuleBased,
		},
		{
			QuestionID:   "q-2",
			Year:         entity.YearUnknown,
			Subject:      "Unknown",
			QuestionText: "Undated question?",
			Options:      map[string]string{"A": "x", "B": "y"},
		},
	}

	svc := NewService(slog.New(slog.DiscardHandler))
	out, err := svc.QuestionsXLSX(qs)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Questions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Year" || rows[0][4] != "Question" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][4] != "First step in CPR?" {
		t.Errorf("question cell = %q", rows[1][4])
	}
	if rows[1][9] != "A" {
		t.Errorf("answer cell = %q", rows[1][9])
	}
	// Unknown year renders as a blank cell.
	if len(rows[2]) > 0 && rows[2][0] != "" {
		t.Errorf("year cell = %q, want empty", rows[2][0])
	}
}
