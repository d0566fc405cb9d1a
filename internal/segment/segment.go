// Package segment groups cleaned lines into per-question blocks using
// numbering markers.
package segment

import (
	"regexp"
	"strconv"
)

var (
	// Explicit "Q"/"Question" prefix followed by digits and a separator.
	questionQRE = regexp.MustCompile(`(?i)^\s*q(?:uestion)?\s*(\d{1,3})\s*[).:\-]\s*(.*)$`)

	// Bare leading integer followed by a separator. `)` is deliberately
	// absent: `1) text` is a numeric option line, not a question start, and
	// must stay inside the current block.
	questionNumRE = regexp.MustCompile(`^\s*(\d{1,3})\s*[.:\-]\s*(.*)$`)
)

// Block is a contiguous run of lines belonging to one candidate question.
// Its first line always matches a numbering marker.
type Block struct {
	Lines []string
}

// IsQuestionStart reports whether line begins a new question block.
func IsQuestionStart(line string) bool {
	return questionQRE.MatchString(line) || questionNumRE.MatchString(line)
}

// Head splits a marker line into its question number and any trailing
// inline text. ok is false when line is not a marker.
func Head(line string) (num int, rest string, ok bool) {
	m := questionQRE.FindStringSubmatch(line)
	if m == nil {
		m = questionNumRE.FindStringSubmatch(line)
	}
	if m == nil {
		return 0, "", false
	}
	num, _ = strconv.Atoi(m[1])
	return num, m[2], true
}

// Segment splits lines into question blocks. Lines before the first marker
// cannot belong to a question and are discarded; the final open block is
// flushed unconditionally at end of input.
func Segment(lines []string) []Block {
	var blocks []Block
	var current []string
	for _, line := range lines {
		switch {
		case IsQuestionStart(line):
			if current != nil {
				blocks = append(blocks, Block{Lines: current})
			}
			current = []string{line}
		case current != nil:
			current = append(current, line)
		}
	}
	if current != nil {
		blocks = append(blocks, Block{Lines: current})
	}
	return blocks
}
