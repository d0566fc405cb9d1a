package textclean

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsNoiseLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"", true},
		{"12", true},
		{"Page 12/40", true},
		{"page 3", true},
		{strings.Repeat("=", 40), true},
		{"- - - - -", true},
		{"WWW EXAMPORTAL COM IS THE BEST", true}, // spaced all-caps watermark
		{"join our channel for updates", true},
		{"Follow us on Telegram", true},
		{"Copyright 2023, all rights reserved", true},
		{"https://example.com/papers", true},
		{"visit www.example.com today", true},
		{"Q1. Which organ produces insulin?", false},
		{"The patient presented with shock", false},
		// long enough / few enough spaces to escape the watermark heuristic
		{"CPR", false},
		{"GCS SCORE", false},
	}
	for _, tc := range cases {
		if got := IsNoiseLine(NormalizeLine(tc.line)); got != tc.want {
			t.Errorf("IsNoiseLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestCleanTextNormalizesAndDrops(t *testing.T) {
	text := "  Q1.   What   is 2+2?  \n\n====================\nPage 3/10\n(A) 3\n(B) 4\n"
	got := CleanText(text)
	want := []string{"Q1. What is 2+2?", "(A) 3", "(B) 4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanText = %#v, want %#v", got, want)
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	text := "Q1. First?\n(A) one\n===\nSUBSCRIBE NOW\n(B) two\n17\n"
	once := CleanText(text)
	twice := CleanText(strings.Join(once, "\n"))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("cleaning is not idempotent: %#v vs %#v", once, twice)
	}
}

func TestCleanPagesRemovesRepeatedMargins(t *testing.T) {
	header := "National Exam Cell - Mock Paper"
	footer := "Office of Examinations"
	mkPage := func(body ...string) string {
		lines := append([]string{header}, body...)
		lines = append(lines, footer)
		return strings.Join(lines, "\n")
	}
	pages := []string{
		mkPage("Q1. First question?", "(A) one", "(B) two", "(C) three", "(D) four"),
		mkPage("Q2. Second question?", "(A) red", "(B) blue", "(C) green", "(D) white"),
		mkPage("Q3. Third question?", "(A) yes", "(B) no", "(C) maybe", "(D) unsure", header), // header mid-page too
	}
	got := CleanPages(pages)
	for _, line := range got {
		if line == header || line == footer {
			t.Errorf("margin line %q survived cleaning", line)
		}
	}
	if len(got) != 15 {
		t.Errorf("expected 15 content lines, got %d: %#v", len(got), got)
	}
}

func TestCleanPagesKeepsRareMarginLines(t *testing.T) {
	pages := []string{
		"Unique opening line\nQ1. First?\n(A) one\n(B) two",
		"Q2. Second?\n(A) three\n(B) four",
		"Q3. Third?\n(A) five\n(B) six",
		"Q4. Fourth?\n(A) seven\n(B) eight",
	}
	got := CleanPages(pages)
	found := false
	for _, line := range got {
		if line == "Unique opening line" {
			found = true
		}
	}
	if !found {
		t.Error("a line appearing on a single page must not be treated as a margin")
	}
}
