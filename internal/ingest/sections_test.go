package ingest

import "testing"

func TestSplitSectionsNoMarker(t *testing.T) {
	secs := SplitSections("Q1) text\n(A) a (B) b\n")
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Source != UnknownSource {
		t.Errorf("source = %q, want %q", secs[0].Source, UnknownSource)
	}
}

func TestSplitSectionsMarkers(t *testing.T) {
	blob := "### FILE: paper_a.pdf\nalpha body\n\n### FILE: paper_b.pdf\nbeta body\n"
	secs := SplitSections(blob)
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].Source != "paper_a.pdf" || secs[1].Source != "paper_b.pdf" {
		t.Errorf("sources = %q, %q", secs[0].Source, secs[1].Source)
	}
	if secs[0].Body != "alpha body" {
		t.Errorf("body = %q", secs[0].Body)
	}
}

func TestSplitSectionsPreamble(t *testing.T) {
	blob := "stray preamble line\n### FILE: paper.pdf\nbody\n"
	secs := SplitSections(blob)
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	if secs[0].Source != UnknownSource {
		t.Errorf("preamble source = %q", secs[0].Source)
	}
	if secs[1].Source != "paper.pdf" {
		t.Errorf("second source = %q", secs[1].Source)
	}
}

func TestSplitSectionsDropsEmpty(t *testing.T) {
	blob := "### FILE: empty.pdf\n\n\n### FILE: real.pdf\ncontent\n"
	secs := SplitSections(blob)
	if len(secs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(secs))
	}
	if secs[0].Source != "real.pdf" {
		t.Errorf("source = %q", secs[0].Source)
	}
}
