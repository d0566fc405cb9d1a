package parser

import (
	"regexp"
	"strings"
)

// Line grammars for per-block field parsing. The option and answer forms
// accept both alphabetic (A-D) and numeric (1-4) labels; digits map to
// letters via constants.DigitToOptionKey.
var (
	optionAlphaRE = regexp.MustCompile(`(?i)^\s*[(\[]?([A-D])[)\].:\-]\s*(.*)$`)
	optionNumRE   = regexp.MustCompile(`^\s*([1-4])[).:\-]\s*(.*)$`)

	// Inline option markers: the closing bracket is required so plain
	// sentence capitals don't match.
	inlineOptionRE = regexp.MustCompile(`(?i)[(\[]?([A-D])[)\]]`)

	answerRE = regexp.MustCompile(`(?i)(?:^|\b)(?:ans(?:wer)?|correct\s*answer|key)\s*[:\-]?\s*(?:option\s*)?[(\[]?([A-D1-4])[)\]]?\b`)

	explanationRE = regexp.MustCompile(`(?i)^\s*(?:explanation|rationale)\s*[:\-]\s*(.*)$`)

	subjectRE  = regexp.MustCompile(`(?i)^\s*subject\s*[:\-]\s*(.+)$`)
	topicRE    = regexp.MustCompile(`(?i)^\s*topic\s*[:\-]\s*(.+)$`)
	subtopicRE = regexp.MustCompile(`(?i)^\s*subtopic\s*[:\-]\s*(.+)$`)
)

// inlineOption is one option split out of a multi-option line.
type inlineOption struct {
	key  string
	text string
}

// splitInlineOptions extracts every "(A) text" style fragment from a line,
// along with the text preceding the first marker. Each option's text runs
// from its marker to the next marker (or the line end). Callers treat the
// result as inline options only when two or more markers were found.
func splitInlineOptions(line string) (prefix string, opts []inlineOption) {
	matches := inlineOptionRE.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, nil
	}
	prefix = line[:matches[0][0]]
	opts = make([]inlineOption, 0, len(matches))
	for i, m := range matches {
		end := len(line)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		opts = append(opts, inlineOption{
			key:  normalizeKey(line[m[2]:m[3]]),
			text: trimInlineText(line[m[1]:end]),
		})
	}
	return prefix, opts
}

// trimInlineText drops a leading separator left over after the option
// marker and trailing list punctuation.
func trimInlineText(s string) string {
	s = strings.TrimLeft(s, " \t")
	s = strings.TrimLeft(s, ":.-")
	s = strings.TrimLeft(s, " \t")
	return strings.TrimRight(s, " ;")
}
