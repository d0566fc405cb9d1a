package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/examtools/questionbank/internal/entity"
)

// Document is one year's worth of extracted text.
type Document struct {
	Year int
	Text string
}

// ReadYearFiles loads every *.txt under dir as a Document, taking the year
// from the file name ("2023.txt"). Non-numeric names load with an unknown
// year. Files are processed in lexical order, which fixes which copy of a
// duplicate wins downstream.
func ReadYearFiles(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read text dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		year := entity.YearUnknown
		if y, err := strconv.Atoi(strings.TrimSuffix(name, ".txt")); err == nil {
			year = y
		}
		docs = append(docs, Document{Year: year, Text: string(data)})
	}
	return docs, nil
}
