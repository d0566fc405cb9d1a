package textclean

import "strings"

// marginDepth is how many lines at the top and bottom of a page are
// considered header/footer candidates.
const marginDepth = 3

// CleanPages cleans per-page text blobs and removes running headers and
// footers: any margin line recurring on at least max(2, 0.5*pageCount)
// pages is blacklisted and dropped wherever it appears, not just in the
// margin position. Returns the retained lines of all pages, flattened in
// page order.
func CleanPages(pages []string) []string {
	pageLines := make([][]string, 0, len(pages))
	for _, page := range pages {
		var lines []string
		for _, raw := range strings.Split(page, "\n") {
			if line := NormalizeLine(raw); line != "" {
				lines = append(lines, line)
			}
		}
		pageLines = append(pageLines, lines)
	}

	repeated := repeatedMarginLines(pageLines)

	var out []string
	for _, lines := range pageLines {
		for _, line := range lines {
			if _, ok := repeated[strings.ToLower(line)]; ok {
				continue
			}
			if IsNoiseLine(line) {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}

// repeatedMarginLines counts normalized-lowercased occurrences of the first
// and last marginDepth lines of every page and returns those seen often
// enough to be running headers or footers.
func repeatedMarginLines(pageLines [][]string) map[string]struct{} {
	counts := make(map[string]int)
	for _, lines := range pageLines {
		if len(lines) == 0 {
			continue
		}
		top := lines
		if len(top) > marginDepth {
			top = top[:marginDepth]
		}
		var bottom []string
		if len(lines) > marginDepth {
			bottom = lines[len(lines)-marginDepth:]
		}
		for _, line := range top {
			counts[strings.ToLower(line)]++
		}
		for _, line := range bottom {
			counts[strings.ToLower(line)]++
		}
	}

	minOccurrences := len(pageLines) / 2
	if minOccurrences < 2 {
		minOccurrences = 2
	}

	repeated := make(map[string]struct{})
	for line, n := range counts {
		if n >= minOccurrences {
			repeated[line] = struct{}{}
		}
	}
	return repeated
}
