package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/examtools/questionbank/internal/async"
	"github.com/examtools/questionbank/internal/textclean"
)

// ExtractPages returns the plain text of every page in the PDF at path, one
// entry per page. Pages whose content cannot be decoded come back empty
// rather than aborting the whole file.
func ExtractPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// ExtractCleanText extracts a PDF and strips repeated margin lines and
// boilerplate before joining the pages.
func ExtractCleanText(path string) (string, error) {
	pages, err := ExtractPages(path)
	if err != nil {
		return "", err
	}
	cleaned := textclean.CleanPages(pages)
	return strings.Join(cleaned, "\n"), nil
}

// BuildYearTexts walks rawDir for year subdirectories (raw_pdfs/2023/*.pdf)
// and writes one combined text file per year under outDir (2023.txt). Each
// source file's text is preceded by a "### FILE:" marker so provenance
// survives the merge. Extraction fans out across a worker pool but the
// merged output keeps lexical file order. Returns the number of PDFs
// extracted.
func BuildYearTexts(ctx context.Context, rawDir, outDir string, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(rawDir)
	if err != nil {
		return 0, fmt.Errorf("read raw dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create out dir: %w", err)
	}

	var years []string
	for _, e := range entries {
		if e.IsDir() {
			years = append(years, e.Name())
		}
	}
	sort.Strings(years)

	pool := async.NewPool(func(_ context.Context, path string) (string, error) {
		return ExtractCleanText(path)
	}, logger)

	extracted := 0
	for _, year := range years {
		if _, err := strconv.Atoi(year); err != nil {
			logger.Warn("extract.skip_dir", "dir", year, "reason", "non-numeric name")
			continue
		}
		yearDir := filepath.Join(rawDir, year)
		pdfs, err := filepath.Glob(filepath.Join(yearDir, "*.pdf"))
		if err != nil {
			return extracted, fmt.Errorf("glob %s: %w", yearDir, err)
		}
		sort.Strings(pdfs)
		if len(pdfs) == 0 {
			logger.Warn("extract.empty_year", "year", year)
			continue
		}

		var sb strings.Builder
		for _, res := range pool.Map(ctx, pdfs) {
			name := filepath.Base(res.Path)
			if res.Err != nil {
				logger.Error("extract.failed", "file", name, "error", res.Err)
				continue
			}
			sb.WriteString("### FILE: ")
			sb.WriteString(name)
			sb.WriteString("\n")
			sb.WriteString(res.Text)
			sb.WriteString("\n\n")
			extracted++
			logger.Info("extract.ok", "year", year, "file", name, "chars", len(res.Text))
		}

		outPath := filepath.Join(outDir, year+".txt")
		if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
			return extracted, fmt.Errorf("write %s: %w", outPath, err)
		}
	}
	return extracted, nil
}
