// Package textclean strips extraction noise from raw exam-paper text:
// page numbers, watermarks, promotional lines, decorative separators and
// running headers/footers repeated across pages.
package textclean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Bare or labeled page numbers ("12", "Page 12/40").
	pageNumberRE = regexp.MustCompile(`(?i)^(?:page\s*)?\d{1,4}(?:\s*/\s*\d{1,4})?$`)

	// Decorative separator lines.
	separatorRE = regexp.MustCompile(`^[-_=~.•·\s]{3,}$`)

	// Fixed promotional/watermark vocabulary.
	noiseREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://`),
		regexp.MustCompile(`(?i)\bwww\.`),
		regexp.MustCompile(`(?i)\b(?:telegram|whatsapp|instagram|facebook|youtube)\b`),
		regexp.MustCompile(`(?i)\b(?:subscribe|follow us|join (?:our )?channel|download app)\b`),
		regexp.MustCompile(`(?i)\b(?:copyright|all rights reserved|not for sale|memory based)\b`),
	}
)

// NormalizeLine collapses whitespace runs (including NBSP) to single spaces
// and trims the result.
func NormalizeLine(line string) string {
	line = strings.ReplaceAll(line, " ", " ")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(line, " "))
}

// IsNoiseLine reports whether a normalized line is extraction noise.
func IsNoiseLine(line string) bool {
	if line == "" {
		return true
	}
	if pageNumberRE.MatchString(line) {
		return true
	}
	if separatorRE.MatchString(line) {
		return true
	}
	for _, re := range noiseREs {
		if re.MatchString(line) {
			return true
		}
	}
	return isSpacedWatermark(line)
}

// isSpacedWatermark catches artifacts like "W W W E X A M P O R T A L":
// a short line whose letters are almost entirely uppercase, spread out by
// many internal spaces.
func isSpacedWatermark(line string) bool {
	if len(line) > 60 || strings.Count(line, " ") <= 4 {
		return false
	}
	var letters, upper int
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	return float64(upper)/float64(letters) > 0.9
}

// CleanText normalizes a raw text blob into retained lines. The result is
// stable under re-cleaning.
func CleanText(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := NormalizeLine(raw)
		if IsNoiseLine(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
