package validate

import (
	"strings"
	"testing"

	"github.com/examtools/questionbank/internal/entity"
)

func fullOptions() map[string]string {
	return map[string]string{"A": "one", "B": "two", "C": "three", "D": "four"}
}

func validQuestion(year int, text string) *entity.Question {
	return &entity.Question{
		Year:          year,
		QuestionText:  text,
		Options:       fullOptions(),
		CorrectAnswer: "A",
	}
}

func TestValidateCleanSet(t *testing.T) {
	qs := []*entity.Question{
		validQuestion(2022, "first?"),
		validQuestion(2022, "second?"),
		validQuestion(2023, "third?"),
	}
	problems, years := Validate(qs)
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
	if years[2022] != 2 || years[2023] != 1 {
		t.Errorf("year counts = %v", years)
	}
}

func TestValidateMissingOption(t *testing.T) {
	q := validQuestion(2023, "sparse?")
	delete(q.Options, "D")
	problems, _ := Validate([]*entity.Question{q})
	if len(problems) != 1 || !strings.Contains(problems[0].Message, "missing option D") {
		t.Errorf("problems = %v", problems)
	}
}

func TestValidateBadAnswer(t *testing.T) {
	q := validQuestion(2023, "bad answer?")
	q.CorrectAnswer = "E"
	problems, _ := Validate([]*entity.Question{q})
	if len(problems) != 1 || !strings.Contains(problems[0].Message, "invalid correct_answer") {
		t.Errorf("problems = %v", problems)
	}

	q.CorrectAnswer = ""
	problems, _ = Validate([]*entity.Question{q})
	if len(problems) != 1 {
		t.Errorf("empty answer must be a problem: %v", problems)
	}
}

func TestValidateDuplicateSignature(t *testing.T) {
	problems, _ := Validate([]*entity.Question{
		validQuestion(2023, "same?"),
		validQuestion(2023, "same?"),
		validQuestion(2024, "same?"), // different year, not a duplicate
	})
	if len(problems) != 1 || problems[0].Index != 2 {
		t.Errorf("problems = %v", problems)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	bad := &entity.Question{
		Year:          2023,
		QuestionText:  "very broken?",
		Options:       map[string]string{"A": "only"},
		CorrectAnswer: "Z",
	}
	problems, _ := Validate([]*entity.Question{bad, bad})
	// 3 missing options + bad answer per record, plus one duplicate.
	if len(problems) != 9 {
		t.Errorf("expected batch collection of 9 problems, got %d: %v", len(problems), problems)
	}
}
