// Package dedupe drops exact repeats of a question across documents and
// years.
package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/entity"
)

// fingerprintPayload is the canonical identity of a record: year, normalized
// question text and normalized options. Case is preserved on purpose; only
// identical wording counts as a duplicate. encoding/json sorts map keys, so
// the serialization is deterministic.
type fingerprintPayload struct {
	Year         int               `json:"year"`
	QuestionText string            `json:"question_text"`
	Options      map[string]string `json:"options"`
}

// Fingerprint returns an opaque stable digest of a question's canonical key.
func Fingerprint(q *entity.Question) string {
	opts := make(map[string]string, len(q.Options))
	for _, k := range constants.OptionKeys {
		if v, ok := q.Options[k]; ok {
			opts[k] = entity.CollapseWhitespace(v)
		}
	}
	payload := fingerprintPayload{
		Year:         q.Year,
		QuestionText: entity.CollapseWhitespace(q.QuestionText),
		Options:      opts,
	}
	body, _ := json.Marshal(payload)
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Dedupe keeps the first occurrence of every fingerprint, in input order,
// and reports how many later repeats were dropped. Records are discarded
// wholesale, never merged.
func Dedupe(questions []*entity.Question) ([]*entity.Question, int) {
	seen := make(map[string]struct{}, len(questions))
	kept := make([]*entity.Question, 0, len(questions))
	duplicates := 0
	for _, q := range questions {
		fp := Fingerprint(q)
		if _, ok := seen[fp]; ok {
			duplicates++
			continue
		}
		seen[fp] = struct{}{}
		kept = append(kept, q)
	}
	return kept, duplicates
}
