package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/examtools/questionbank/internal/entity"
)

// Service produces XLSX bytes for question exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// QuestionsXLSX returns an XLSX workbook (as bytes) with one row per
// question, option columns A through D, and the tagging provenance.
func (s *Service) QuestionsXLSX(questions []*entity.Question) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Year",
		"Subject",
		"Topic",
		"Subtopic",
		"Question",
		"Option A",
		"Option B",
		"Option C",
		"Option D",
		"Answer",
		"Explanation",
		"Tagging Method",
		"Source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, q := range questions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if q.Year != entity.YearUnknown {
			write(1, q.Year)
		} else {
			write(1, "")
		}
		write(2, q.Subject)
		write(3, q.Topic)
		write(4, q.Subtopic)
		write(5, q.QuestionText)
		write(6, q.Options["A"])
		write(7, q.Options["B"])
		write(8, q.Options["C"])
		write(9, q.Options["D"])
		write(10, q.CorrectAnswer)
		write(11, truncate(q.Explanation, 500))
		write(12, string(q.TaggingMethod))
		write(13, q.SourcePDF)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)  // year
	_ = f.SetColWidth(sheet, "B", "D", 24) // taxonomy
	_ = f.SetColWidth(sheet, "E", "E", 64) // question
	_ = f.SetColWidth(sheet, "F", "I", 28) // options
	_ = f.SetColWidth(sheet, "J", "J", 8)  // answer
	_ = f.SetColWidth(sheet, "K", "K", 64) // explanation
	_ = f.SetColWidth(sheet, "M", "M", 32) // source

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(questions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
