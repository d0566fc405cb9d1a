// Package ingest supplies the pipeline with raw text: year-wise text files,
// per-document section splitting and PDF text extraction.
package ingest

import (
	"regexp"
	"strings"
)

// UnknownSource labels text that carries no per-document marker.
const UnknownSource = "unknown_source.pdf"

var fileMarkerRE = regexp.MustCompile(`(?m)^### FILE:\s*(.+)$`)

// Section is one provenance unit of a year's text blob.
type Section struct {
	Source string
	Body   string
}

// SplitSections partitions raw text at "### FILE: <name>" marker lines.
// Text before the first marker (or the whole blob when no marker exists)
// becomes a section with an unknown source; empty sections are dropped.
func SplitSections(raw string) []Section {
	matches := fileMarkerRE.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		return []Section{{Source: UnknownSource, Body: strings.TrimSpace(raw)}}
	}

	var sections []Section
	if head := strings.TrimSpace(raw[:matches[0][0]]); head != "" {
		sections = append(sections, Section{Source: UnknownSource, Body: head})
	}
	for i, m := range matches {
		source := strings.TrimSpace(raw[m[2]:m[3]])
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(raw[m[1]:end])
		if body == "" {
			continue
		}
		sections = append(sections, Section{Source: source, Body: body})
	}
	return sections
}
