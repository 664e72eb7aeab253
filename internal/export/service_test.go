package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
	"github.com/takuya-okamoto/zumenkan/internal/export"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
)

type fakeRepo struct {
	repository.DrawingRepository

	drawings  []*entity.Drawing
	fields    map[uuid.UUID][]*entity.ExtractedField
	revisions map[uuid.UUID][]*entity.Revision
}

func (f *fakeRepo) List(context.Context, repository.ListFilter) ([]*entity.Drawing, error) {
	return f.drawings, nil
}

func (f *fakeRepo) ListFields(_ context.Context, id uuid.UUID) ([]*entity.ExtractedField, error) {
	return f.fields[id], nil
}

func (f *fakeRepo) ListRevisions(_ context.Context, id uuid.UUID) ([]*entity.Revision, error) {
	return f.revisions[id], nil
}

func TestExportRegisterXLSX(t *testing.T) {
	cls := constants.PartDrawing
	id := uuid.New()
	repo := &fakeRepo{
		drawings: []*entity.Drawing{{
			ID:             id,
			PDFFilename:    "20260201120000_PartDrawing_NAXT3722D_山田.pdf",
			StoragePath:    "/data/drawings/x.pdf",
			PageNumber:     0,
			Status:         constants.StatusUnapproved,
			Classification: &cls,
			Summary:        "L字型のブラケット",
			UploadedAt:     time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		}},
		fields: map[uuid.UUID][]*entity.ExtractedField{
			id: {
				{Name: "図番", Value: "NAXT3722D"},
				{Name: "作成者", Value: "山田"},
			},
		},
		revisions: map[uuid.UUID][]*entity.Revision{
			id: {
				{RevisionNumber: "A", Description: "初版"},
				{RevisionNumber: "B", Description: "穴径変更"},
			},
		},
	}

	svc := export.NewService(repo, nil)
	data, err := svc.ExportRegisterXLSX(context.Background(), repository.ListFilter{}, "図番", "作成者")
	if err != nil {
		t.Fatalf("ExportRegisterXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Drawings")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "Uploaded" || rows[0][3] != "Drawing Number" {
		t.Errorf("unexpected headers: %v", rows[0])
	}
	got := rows[1]
	if got[3] != "NAXT3722D" {
		t.Errorf("expected drawing number in column D, got %q", got[3])
	}
	if got[4] != "PartDrawing" {
		t.Errorf("expected classification, got %q", got[4])
	}
	if got[5] != "山田" {
		t.Errorf("expected author, got %q", got[5])
	}
	if got[2] != "1" {
		t.Errorf("page numbers are reported 1-based, got %q", got[2])
	}
	if got[7] != "2" {
		t.Errorf("expected revision count 2, got %q", got[7])
	}
}

func TestExportRegisterXLSXEmpty(t *testing.T) {
	svc := export.NewService(&fakeRepo{}, nil)
	data, err := svc.ExportRegisterXLSX(context.Background(), repository.ListFilter{}, "図番", "作成者")
	if err != nil {
		t.Fatalf("ExportRegisterXLSX: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows("Drawings")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d", len(rows))
	}
}
