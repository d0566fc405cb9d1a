// Package tagger assigns subject/topic/subtopic labels to questions via
// keyword scoring, with an optional external fallback classifier for
// low-confidence matches.
package tagger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/classify"
	"github.com/examtools/questionbank/internal/entity"
)

// Match is the best-scoring taxonomy leaf for a piece of text.
type Match struct {
	Subject  string
	Topic    string
	Subtopic string
	Score    int
}

// Tagger labels questions against an immutable taxonomy. fallback may be
// nil, in which case only rule-based tagging runs.
type Tagger struct {
	taxonomy *Taxonomy
	minScore int
	fallback classify.Classifier
	logger   *slog.Logger
}

func New(taxonomy *Taxonomy, minScore int, fallback classify.Classifier, logger *slog.Logger) *Tagger {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if minScore <= 0 {
		minScore = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tagger{taxonomy: taxonomy, minScore: minScore, fallback: fallback, logger: logger}
}

// RuleMatch scores text against every taxonomy leaf: one point per keyword
// occurring as a substring of the lower-cased text. Ties resolve to the
// first leaf in traversal order; later equal scores never overwrite.
func (t *Tagger) RuleMatch(text string) Match {
	best := Match{
		Subject:  constants.SubjectUnknown,
		Topic:    constants.SubjectUnknown,
		Subtopic: constants.SubjectUnknown,
	}
	normalized := entity.CollapseWhitespace(strings.ToLower(text))

	for _, leaf := range t.taxonomy.Leaves() {
		score := 0
		for _, kw := range leaf.Keywords {
			if strings.Contains(normalized, strings.ToLower(kw)) {
				score++
			}
		}
		if score > best.Score {
			best = Match{
				Subject:  leaf.Subject,
				Topic:    leaf.Topic,
				Subtopic: leaf.Subtopic,
				Score:    score,
			}
		}
	}
	return best
}

// Tag labels q in place. The rule-based result is used when its score
// reaches the threshold; otherwise the fallback classifier is consulted,
// and any non-Matched outcome degrades back to the rule-based result.
func (t *Tagger) Tag(ctx context.Context, q *entity.Question) {
	text := q.ClassificationText()
	rule := t.RuleMatch(text)

	if rule.Score < t.minScore && t.fallback != nil {
		res := t.fallback.Classify(ctx, text)
		switch res.Outcome {
		case classify.Matched:
			q.Subject = res.Subject
			q.Topic = res.Topic
			q.Subtopic = res.Subtopic
			q.TaggingMethod = constants.TagLLM
			q.TagConfidence = 1
			return
		case classify.NotFound:
			t.logger.Debug("tag.fallback.not_found", "question_id", q.QuestionID)
		case classify.TransportError:
			t.logger.Warn("tag.fallback.unavailable", "question_id", q.QuestionID, "error", res.Err)
		}
	}

	q.Subject = rule.Subject
	q.Topic = rule.Topic
	q.Subtopic = rule.Subtopic
	q.TaggingMethod = constants.TagRuleBased
	q.TagConfidence = rule.Score
}
