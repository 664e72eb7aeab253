package analysis_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/analysis"
	"github.com/takuya-okamoto/zumenkan/internal/common"
	"github.com/takuya-okamoto/zumenkan/internal/entity"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
	"github.com/takuya-okamoto/zumenkan/internal/rotation"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

// memRepo keeps one drawing in memory and records what the pipeline saves.
type memRepo struct {
	drawing   entity.Drawing
	statuses  []constants.DrawingStatus
	failedMsg string
	fields    []repository.FieldInput
	balloons  []repository.BalloonInput
	revisions []repository.RevisionInput
	cls       *repository.ClassificationInput
	summary   string
	features  json.RawMessage
	cleared   int
}

func (m *memRepo) Create(context.Context, *repository.CreateDrawingRequest) (*entity.Drawing, error) {
	panic("not used")
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Drawing, error) {
	if id != m.drawing.ID {
		return nil, fmt.Errorf("drawing %s not found", id)
	}
	d := m.drawing
	return &d, nil
}

func (m *memRepo) List(context.Context, repository.ListFilter) ([]*entity.Drawing, error) {
	d := m.drawing
	return []*entity.Drawing{&d}, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, _ uuid.UUID, next constants.DrawingStatus) (*entity.Drawing, error) {
	m.drawing.Status = next
	m.statuses = append(m.statuses, next)
	d := m.drawing
	return &d, nil
}

func (m *memRepo) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	m.drawing.Status = constants.StatusFailed
	m.statuses = append(m.statuses, constants.StatusFailed)
	m.failedMsg = message
	return nil
}

func (m *memRepo) SetRotation(_ context.Context, _ uuid.UUID, rot int) error {
	m.drawing.Rotation = rot
	return nil
}

func (m *memRepo) SetStoragePath(_ context.Context, _ uuid.UUID, storagePath, pdfFilename string) error {
	m.drawing.StoragePath = storagePath
	m.drawing.PDFFilename = pdfFilename
	return nil
}

func (m *memRepo) SetThumbnailPath(_ context.Context, _ uuid.UUID, thumbnailPath string) error {
	m.drawing.ThumbnailPath = thumbnailPath
	return nil
}

func (m *memRepo) SaveFields(_ context.Context, _ uuid.UUID, fields []repository.FieldInput) error {
	m.fields = fields
	return nil
}

func (m *memRepo) SetClassification(_ context.Context, _ uuid.UUID, in repository.ClassificationInput) error {
	m.cls = &in
	return nil
}

func (m *memRepo) SaveBalloons(_ context.Context, _ uuid.UUID, balloons []repository.BalloonInput) error {
	m.balloons = balloons
	return nil
}

func (m *memRepo) SaveRevisions(_ context.Context, _ uuid.UUID, revisions []repository.RevisionInput) error {
	m.revisions = revisions
	return nil
}

func (m *memRepo) SetSummary(_ context.Context, _ uuid.UUID, summary string, features json.RawMessage) error {
	m.summary = summary
	m.features = features
	return nil
}

func (m *memRepo) ClearChildren(context.Context, uuid.UUID) error {
	m.cleared++
	return nil
}

func (m *memRepo) ListFields(context.Context, uuid.UUID) ([]*entity.ExtractedField, error) {
	return nil, nil
}
func (m *memRepo) ListBalloons(context.Context, uuid.UUID) ([]*entity.Balloon, error) {
	return nil, nil
}
func (m *memRepo) ListRevisions(context.Context, uuid.UUID) ([]*entity.Revision, error) {
	return nil, nil
}

// scriptedAI answers every stage from canned values, with per-stage error
// overrides.
type scriptedAI struct {
	rotationErr  error
	fieldsErr    error
	classifyErr  error
	balloonsErr  error
	revisionsErr error
	summaryErr   error
}

func (s *scriptedAI) DetectRotation(context.Context, []byte) (ai.RotationJudgment, error) {
	if s.rotationErr != nil {
		return ai.RotationJudgment{}, s.rotationErr
	}
	return ai.RotationJudgment{Angle: 0, Confidence: 95, Reason: "upright"}, nil
}

func (s *scriptedAI) ExtractFields(context.Context, []byte, []string) ([]ai.FieldResult, error) {
	if s.fieldsErr != nil {
		return nil, s.fieldsErr
	}
	return []ai.FieldResult{
		{Name: "図番", Value: "NAX13722D", Confidence: 92},
		{Name: "品名", Value: "ブラケット", Confidence: 88},
		{Name: "作成者", Value: "山田", Confidence: 75},
	}, nil
}

func (s *scriptedAI) Classify(context.Context, []byte) (ai.ClassificationResult, error) {
	if s.classifyErr != nil {
		return ai.ClassificationResult{}, s.classifyErr
	}
	return ai.ClassificationResult{Classification: "部品図", Confidence: 90, Reason: "single part"}, nil
}

func (s *scriptedAI) ExtractBalloons(context.Context, []byte) ([]ai.BalloonResult, error) {
	if s.balloonsErr != nil {
		return nil, s.balloonsErr
	}
	return []ai.BalloonResult{{BalloonNumber: 1, PartName: "bolt", Quantity: 0, Confidence: 70}}, nil
}

func (s *scriptedAI) ExtractRevisions(context.Context, []byte) ([]ai.RevisionResult, error) {
	if s.revisionsErr != nil {
		return nil, s.revisionsErr
	}
	return []ai.RevisionResult{{RevisionNumber: "A", Date: "2026-01-15", Confidence: 60}}, nil
}

func (s *scriptedAI) Summarize(context.Context, []byte, ai.SummaryContext) (ai.SummaryResult, error) {
	if s.summaryErr != nil {
		return ai.SummaryResult{}, s.summaryErr
	}
	return ai.SummaryResult{
		Summary:       "L字型のブラケット",
		ShapeFeatures: json.RawMessage(`{"holes": 4}`),
	}, nil
}

// popplerStub fakes pdfinfo/pdftoppm for the engine.
type popplerStub struct{}

func (popplerStub) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch filepath.Base(name) {
	case "pdfinfo":
		return []byte("Page rot:       0\n"), nil, nil
	case "pdftoppm":
		prefix := args[len(args)-1]
		img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
		img.Set(0, 0, color.NRGBA{R: 255, A: 255})
		f, err := os.Create(prefix + ".png")
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return nil, nil, png.Encode(f, img)
	default:
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

func pipelineConfig() common.PipelineConfig {
	return common.PipelineConfig{
		RequiredFields:     []string{"図番", "品名"},
		OptionalFields:     []string{"作成者"},
		DrawingNumberField: "図番",
		AuthorField:        "作成者",
	}
}

func newOrchestrator(t *testing.T, repo *memRepo, client ai.Client) *analysis.Orchestrator {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	engine := pdfops.NewEngine(pdfops.Config{DPI: 72}, nil).WithRunner(popplerStub{})

	artifact := filepath.Join(store.DrawingsDir(), "page.pdf")
	if err := os.WriteFile(artifact, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	repo.drawing.StoragePath = artifact

	norm := rotation.NewNormalizer(engine, client, store, 70, nil)
	return analysis.NewOrchestrator(repo, client, engine, store, norm, nil, pipelineConfig(), nil)
}

func seedRepo() *memRepo {
	return &memRepo{drawing: entity.Drawing{
		ID:          uuid.New(),
		PDFFilename: "scan.pdf",
		PageNumber:  1,
		Status:      constants.StatusPending,
		UploadedAt:  time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestAnalyzeHappyPath(t *testing.T) {
	repo := seedRepo()
	o := newOrchestrator(t, repo, &scriptedAI{})

	if err := o.Analyze(context.Background(), repo.drawing.ID); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if repo.drawing.Status != constants.StatusUnapproved {
		t.Errorf("expected unapproved, got %s", repo.drawing.Status)
	}
	if repo.cleared != 1 {
		t.Errorf("expected children cleared once, got %d", repo.cleared)
	}
	if len(repo.fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(repo.fields))
	}
	// the OCR fix must have run on the drawing-number field
	if repo.fields[0].Value != "NAXT3722D" {
		t.Errorf("drawing number not corrected: %q", repo.fields[0].Value)
	}
	if repo.cls == nil || repo.cls.Classification != constants.PartDrawing {
		t.Errorf("unexpected classification %+v", repo.cls)
	}
	if len(repo.balloons) != 1 || repo.balloons[0].Quantity != 1 {
		t.Errorf("zero quantity must be floored to 1: %+v", repo.balloons)
	}
	if len(repo.revisions) != 1 {
		t.Errorf("expected 1 revision, got %d", len(repo.revisions))
	}
	if repo.summary == "" || repo.features == nil {
		t.Error("summary stage results missing")
	}
	// canonical rename with timestamp, category, corrected number, author
	wantName := "20260201120000_PartDrawing_NAXT3722D_山田.pdf"
	if repo.drawing.PDFFilename != wantName {
		t.Errorf("expected canonical name %q, got %q", wantName, repo.drawing.PDFFilename)
	}
	if filepath.Base(repo.drawing.StoragePath) != wantName {
		t.Errorf("storage path not renamed: %q", repo.drawing.StoragePath)
	}
}

func TestAnalyzeFieldStageFailureIsFatal(t *testing.T) {
	repo := seedRepo()
	o := newOrchestrator(t, repo, &scriptedAI{
		fieldsErr: &ai.MalformedResponseError{Detail: "not json"},
	})

	if err := o.Analyze(context.Background(), repo.drawing.ID); err == nil {
		t.Fatal("expected error")
	}
	if repo.drawing.Status != constants.StatusFailed {
		t.Errorf("expected failed, got %s", repo.drawing.Status)
	}
	if repo.failedMsg == "" {
		t.Error("failure message not recorded")
	}
}

func TestAnalyzeMalformedBalloonsIsNotFatal(t *testing.T) {
	repo := seedRepo()
	o := newOrchestrator(t, repo, &scriptedAI{
		balloonsErr:  &ai.MalformedResponseError{Detail: "bad payload"},
		revisionsErr: &ai.MalformedResponseError{Detail: "bad payload"},
		summaryErr:   &ai.MalformedResponseError{Detail: "bad payload"},
	})

	if err := o.Analyze(context.Background(), repo.drawing.ID); err != nil {
		t.Fatalf("malformed optional stages must not fail the run: %v", err)
	}
	if repo.drawing.Status != constants.StatusUnapproved {
		t.Errorf("expected unapproved, got %s", repo.drawing.Status)
	}
	if len(repo.balloons) != 0 || len(repo.revisions) != 0 || repo.summary != "" {
		t.Error("skipped stages must contribute nothing")
	}
}

func TestAnalyzeTransientBalloonFailureIsFatal(t *testing.T) {
	repo := seedRepo()
	o := newOrchestrator(t, repo, &scriptedAI{
		balloonsErr: &ai.TransientError{Cause: errors.New("provider down")},
	})

	if err := o.Analyze(context.Background(), repo.drawing.ID); err == nil {
		t.Fatal("expected error")
	}
	if repo.drawing.Status != constants.StatusFailed {
		t.Errorf("expected failed, got %s", repo.drawing.Status)
	}
	// fields and classification from before the failure must survive
	if len(repo.fields) == 0 || repo.cls == nil {
		t.Error("earlier stage results should have been committed")
	}
}

func TestAnalyzeAuthExpiredAborts(t *testing.T) {
	repo := seedRepo()
	o := newOrchestrator(t, repo, &scriptedAI{
		rotationErr: &ai.AuthExpiredError{Status: 403},
	})

	err := o.Analyze(context.Background(), repo.drawing.ID)
	if !ai.IsAuthExpired(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if repo.drawing.Status != constants.StatusFailed {
		t.Errorf("expected failed, got %s", repo.drawing.Status)
	}
}
