package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/examtools/questionbank/constants"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CollapseWhitespace collapses all whitespace runs to single spaces and trims.
// Case is preserved.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// OptionsInput is a tagged variant for option sets arriving from foreign
// payloads: exactly one of Map or List may be set. A Map carries explicit
// A-D keys; a List is positional (index 0 -> A, ... index 3 -> D).
type OptionsInput struct {
	Map  map[string]string
	List []string
}

// NormalizeOptions converts an OptionsInput into the canonical option map.
// Values are whitespace-collapsed; empty values and keys outside A-D are
// dropped. Setting both or neither variant is a structural error.
func NormalizeOptions(in OptionsInput) (map[string]string, error) {
	if in.Map != nil && in.List != nil {
		return nil, fmt.Errorf("options: both map and list variants set")
	}
	out := make(map[string]string, 4)
	switch {
	case in.Map != nil:
		for k, v := range in.Map {
			v = CollapseWhitespace(v)
			if v == "" || !constants.IsOptionKey(k) {
				continue
			}
			out[k] = v
		}
	case in.List != nil:
		for i, k := range constants.OptionKeys {
			if i >= len(in.List) {
				break
			}
			if v := CollapseWhitespace(in.List[i]); v != "" {
				out[k] = v
			}
		}
	default:
		return nil, fmt.Errorf("options: neither map nor list variant set")
	}
	return out, nil
}

// OptionsFromJSON decodes a raw JSON options value, accepting either an
// object of key -> text or an array of texts. Anything else is rejected.
func OptionsFromJSON(raw json.RawMessage) (map[string]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "" || trimmed == "null":
		return map[string]string{}, nil
	case strings.HasPrefix(trimmed, "{"):
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("options object: %w", err)
		}
		return NormalizeOptions(OptionsInput{Map: m})
	case strings.HasPrefix(trimmed, "["):
		var l []string
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("options array: %w", err)
		}
		return NormalizeOptions(OptionsInput{List: l})
	default:
		return nil, fmt.Errorf("options: unsupported JSON shape %q", trimmed)
	}
}

// NormalizeAnswer resolves a raw answer value against the option map. A bare
// key passes through; a full answer text is matched case-insensitively
// against option values. Anything unresolvable becomes the empty string.
func NormalizeAnswer(raw string, options map[string]string) string {
	raw = CollapseWhitespace(raw)
	if constants.IsOptionKey(raw) {
		return raw
	}
	if raw == "" {
		return ""
	}
	for _, k := range constants.OptionKeys {
		if v, ok := options[k]; ok && strings.EqualFold(raw, v) {
			return k
		}
	}
	return ""
}

// Normalize rewrites q in place into canonical form: collapsed question
// text, canonical options, resolved answer. It reports false when fewer
// than two options survive, in which case q must be discarded.
func Normalize(q *Question) bool {
	opts, err := NormalizeOptions(OptionsInput{Map: q.Options})
	if err != nil || len(opts) < 2 {
		return false
	}
	q.Options = opts
	q.QuestionText = CollapseWhitespace(q.QuestionText)
	q.CorrectAnswer = NormalizeAnswer(q.CorrectAnswer, opts)
	q.Explanation = CollapseWhitespace(q.Explanation)
	return true
}
