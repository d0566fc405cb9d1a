// Package validate asserts structural invariants over the final record set.
// It is a quality gate: all problems are collected rather than failing
// fast, and callers decide whether problems abort the run.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/entity"
)

// Problem is one validation failure, tied to the record's position in the
// validated set (1-based, mirroring question numbering).
type Problem struct {
	Index   int
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("Q%d: %s", p.Index, p.Message)
}

// Validate checks every record and aggregates per-year counts. Records are
// never mutated. The duplicate-signature check intentionally repeats what
// the deduplicator already guarantees, catching anything merged in from a
// path that bypassed it.
func Validate(questions []*entity.Question) ([]Problem, map[int]int) {
	var problems []Problem
	signatures := make(map[string]struct{}, len(questions))
	yearCounts := make(map[int]int)

	for i, q := range questions {
		idx := i + 1
		yearCounts[q.Year]++

		for _, key := range constants.OptionKeys {
			if strings.TrimSpace(q.Options[key]) == "" {
				problems = append(problems, Problem{idx, fmt.Sprintf("missing option %s", key)})
			}
		}

		if _, ok := q.Options[q.CorrectAnswer]; !ok || !constants.IsOptionKey(q.CorrectAnswer) {
			problems = append(problems, Problem{idx, fmt.Sprintf("invalid correct_answer %q", q.CorrectAnswer)})
		}

		sig := signature(q)
		if _, seen := signatures[sig]; seen {
			problems = append(problems, Problem{idx, "duplicate question detected"})
		}
		signatures[sig] = struct{}{}
	}
	return problems, yearCounts
}

func signature(q *entity.Question) string {
	opts, _ := json.Marshal(q.Options) // map keys come out sorted
	return fmt.Sprintf("%d\x00%s\x00%s", q.Year, strings.TrimSpace(q.QuestionText), opts)
}
