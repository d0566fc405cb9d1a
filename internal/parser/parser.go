// Package parser turns segmented question blocks into structured records.
//
// Each block is consumed by a small state machine. For every body line the
// states are checked in fixed priority order: answer marker, explanation
// marker, explanation accumulation, alphabetic option, numeric option,
// inline multi-option, then continuation of the active option or of the
// question text.
package parser

import (
	"strings"

	"github.com/google/uuid"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/internal/entity"
	"github.com/examtools/questionbank/internal/segment"
)

// Provenance carries per-section defaults into a parsed record.
type Provenance struct {
	Year      int
	SourcePDF string
	Subject   string
	Topic     string
	Subtopic  string
}

type state int

const (
	stateText          state = iota // accumulating question text
	stateInOption                   // continuing the active option's text
	stateInExplanation              // everything except answers extends the explanation
)

// ParseBlock parses one block into a question record. It reports false for
// malformed blocks (fewer than two options recognized); that is expected
// noise, not an error.
func ParseBlock(block segment.Block, prov Provenance) (*entity.Question, bool) {
	if len(block.Lines) == 0 {
		return nil, false
	}
	_, rest, ok := segment.Head(block.Lines[0])
	if !ok {
		return nil, false
	}

	var (
		questionBits []string
		options      = make(map[string]string, 4)
		explanation  []string
		answer       string
		active       string
		st           = stateText
	)

	// The head line's trailing text seeds the question text. Papers often
	// pack the options and even the answer onto the same physical line, so
	// the head fragment gets the inline treatment before anything else.
	if rest = strings.TrimSpace(rest); rest != "" {
		if m := answerRE.FindStringSubmatchIndex(rest); m != nil {
			answer = normalizeKey(rest[m[2]:m[3]])
			rest = strings.TrimSpace(rest[:m[0]] + rest[m[1]:])
		}
		if prefix, inline := splitInlineOptions(rest); len(inline) >= 2 {
			for _, o := range inline {
				options[o.key] = o.text
			}
			if prefix = strings.TrimSpace(prefix); prefix != "" {
				questionBits = append(questionBits, prefix)
			}
		} else if rest != "" {
			questionBits = append(questionBits, rest)
		}
	}

	for _, raw := range block.Lines[1:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := answerRE.FindStringSubmatch(line); m != nil {
			answer = normalizeKey(m[1])
			if st == stateInOption {
				st, active = stateText, ""
			}
			continue
		}

		if m := explanationRE.FindStringSubmatch(line); m != nil {
			if t := strings.TrimSpace(m[1]); t != "" {
				explanation = append(explanation, t)
			}
			st, active = stateInExplanation, ""
			continue
		}

		if st == stateInExplanation {
			explanation = append(explanation, line)
			continue
		}

		if m := optionAlphaRE.FindStringSubmatch(line); m != nil {
			key := normalizeKey(m[1])
			options[key] = strings.TrimSpace(m[2])
			st, active = stateInOption, key
			continue
		}

		if m := optionNumRE.FindStringSubmatch(line); m != nil {
			key := constants.DigitToOptionKey[m[1]]
			options[key] = strings.TrimSpace(m[2])
			st, active = stateInOption, key
			continue
		}

		if _, inline := splitInlineOptions(line); len(inline) >= 2 {
			// A line setting multiple options is assumed complete.
			for _, o := range inline {
				options[o.key] = o.text
			}
			st, active = stateText, ""
			continue
		}

		if st == stateInOption && len(options) <= len(constants.OptionKeys) {
			options[active] = strings.TrimSpace(options[active] + " " + line)
			continue
		}
		questionBits = append(questionBits, line)
	}

	if len(options) < 2 {
		return nil, false
	}

	q := &entity.Question{
		QuestionID:    uuid.NewString(),
		Year:          prov.Year,
		Subject:       prov.Subject,
		Topic:         prov.Topic,
		Subtopic:      prov.Subtopic,
		QuestionText:  entity.CollapseWhitespace(strings.Join(questionBits, " ")),
		Options:       options,
		CorrectAnswer: answer,
		Explanation:   entity.CollapseWhitespace(strings.Join(explanation, " ")),
		TaggingMethod: constants.TagNone,
		SourcePDF:     prov.SourcePDF,
	}
	return q, true
}

// DetectMetadata scans a section's lines for explicit subject/topic/subtopic
// override markers, falling back to the given defaults.
func DetectMetadata(lines []string, subject, topic, subtopic string) (string, string, string) {
	for _, line := range lines {
		if m := subjectRE.FindStringSubmatch(line); m != nil {
			subject = strings.TrimSpace(m[1])
		} else if m := topicRE.FindStringSubmatch(line); m != nil {
			topic = strings.TrimSpace(m[1])
		} else if m := subtopicRE.FindStringSubmatch(line); m != nil {
			subtopic = strings.TrimSpace(m[1])
		}
	}
	return subject, topic, subtopic
}

// normalizeKey uppercases an option letter and maps digit labels 1-4 to A-D.
func normalizeKey(s string) string {
	s = strings.ToUpper(s)
	if k, ok := constants.DigitToOptionKey[s]; ok {
		return k
	}
	return s
}
