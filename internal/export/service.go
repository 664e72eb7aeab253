package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/takuya-okamoto/zumenkan/internal/repository"
)

// Service produces XLSX bytes for the drawing register.
type Service struct {
	repo   repository.DrawingRepository
	logger *slog.Logger
}

func NewService(repo repository.DrawingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportRegisterXLSX returns a drawing-register workbook for the drawings
// matching filter. Field values are looked up per row so the register shows
// the extracted drawing number and author next to each file.
func (s *Service) ExportRegisterXLSX(ctx context.Context, filter repository.ListFilter, drawingNumberField, authorField string) ([]byte, error) {
	start := time.Now()

	drawings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query drawings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Drawings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"Filename",
		"Page",
		"Drawing Number",
		"Classification",
		"Author",
		"Status",
		"Revisions",
		"Summary",
		"File Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range drawings {
		var number, author string
		fields, err := s.repo.ListFields(ctx, d.ID)
		if err != nil {
			s.logger.Warn("failed to load fields for export", "drawing_id", d.ID, "error", err)
		} else {
			for _, fld := range fields {
				switch fld.Name {
				case drawingNumberField:
					if number == "" {
						number = fld.Value
					}
				case authorField:
					if author == "" {
						author = fld.Value
					}
				}
			}
		}

		classification := ""
		if d.Classification != nil {
			classification = string(*d.Classification)
		}

		revisionCount := 0
		if revs, err := s.repo.ListRevisions(ctx, d.ID); err != nil {
			s.logger.Warn("failed to load revisions for export", "drawing_id", d.ID, "error", err)
		} else {
			revisionCount = len(revs)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.UploadedAt.Format("2006-01-02 15:04"))
		write(2, d.PDFFilename)
		write(3, d.PageNumber+1)
		write(4, number)
		write(5, classification)
		write(6, author)
		write(7, string(d.Status))
		write(8, revisionCount)
		write(9, truncate(d.Summary, 140))
		write(10, d.StoragePath)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 17)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 6)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "F", 14)
	_ = f.SetColWidth(sheet, "G", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 9)
	_ = f.SetColWidth(sheet, "I", "I", 48)
	_ = f.SetColWidth(sheet, "J", "J", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(drawings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
