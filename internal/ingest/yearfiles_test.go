package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/examtools/questionbank/internal/entity"
)

func TestReadYearFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("2023.txt", "year content")
	write("2021.txt", "older content")
	write("misc.txt", "no year")
	write("notes.md", "ignored")

	docs, err := ReadYearFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	// Lexical order: 2021, 2023, misc.
	if docs[0].Year != 2021 || docs[1].Year != 2023 {
		t.Errorf("years = %d, %d", docs[0].Year, docs[1].Year)
	}
	if docs[2].Year != entity.YearUnknown {
		t.Errorf("non-numeric name should carry unknown year, got %d", docs[2].Year)
	}
	if docs[1].Text != "year content" {
		t.Errorf("text = %q", docs[1].Text)
	}
}

func TestReadYearFilesMissingDir(t *testing.T) {
	if _, err := ReadYearFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
