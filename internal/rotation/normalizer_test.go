package rotation_test

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/rotation"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

// popplerStub stands in for the pdfinfo/pdftoppm binaries. pdfinfo answers
// with a fixed rotation; pdftoppm writes a tiny PNG where the real tool
// would.
type popplerStub struct {
	pageRot int
}

func (p *popplerStub) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch filepath.Base(name) {
	case "pdfinfo":
		return []byte(fmt.Sprintf("Pages:          1\nPage rot:       %d\n", p.pageRot)), nil, nil
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

// stubAI answers DetectRotation from canned values; the other stages are
// never reached by the normalizer.
type stubAI struct {
	judgment ai.RotationJudgment
	err      error
	calls    int
}

func (s *stubAI) DetectRotation(context.Context, []byte) (ai.RotationJudgment, error) {
	s.calls++
	return s.judgment, s.err
}
func (s *stubAI) ExtractFields(context.Context, []byte, []string) ([]ai.FieldResult, error) {
	panic("not used")
}
func (s *stubAI) Classify(context.Context, []byte) (ai.ClassificationResult, error) {
	panic("not used")
}
func (s *stubAI) ExtractBalloons(context.Context, []byte) ([]ai.BalloonResult, error) {
	panic("not used")
}
func (s *stubAI) ExtractRevisions(context.Context, []byte) ([]ai.RevisionResult, error) {
	panic("not used")
}
func (s *stubAI) Summarize(context.Context, []byte, ai.SummaryContext) (ai.SummaryResult, error) {
	panic("not used")
}

func newFixture(t *testing.T, pageRot int, client ai.Client) (*rotation.Normalizer, string) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	engine := pdfops.NewEngine(pdfops.Config{DPI: 72}, nil).WithRunner(&popplerStub{pageRot: pageRot})

	artifact := filepath.Join(store.DrawingsDir(), "page.pdf")
	if err := os.WriteFile(artifact, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return rotation.NewNormalizer(engine, client, store, 70, nil), artifact
}

func TestNormalizeAlreadyUprightIsNoop(t *testing.T) {
	client := &stubAI{judgment: ai.RotationJudgment{Angle: 0, Confidence: 95}}
	n, artifact := newFixture(t, 0, client)

	before, _ := os.ReadFile(artifact)
	res, err := n.Normalize(context.Background(), artifact)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rewritten {
		t.Error("upright page must not be rewritten")
	}
	if res.AdoptedAngle != 0 || res.MetadataAngle != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	after, _ := os.ReadFile(artifact)
	if string(before) != string(after) {
		t.Error("file content changed on a no-op")
	}
}

func TestNormalizeAdoptsConfidentJudgment(t *testing.T) {
	client := &stubAI{judgment: ai.RotationJudgment{Angle: 180, Confidence: 88}}
	n, artifact := newFixture(t, 0, client)

	res, err := n.Normalize(context.Background(), artifact)
	if err != nil {
		t.Fatal(err)
	}
	if res.AdoptedAngle != 180 {
		t.Errorf("expected adopted angle 180, got %d", res.AdoptedAngle)
	}
	if !res.Rewritten {
		t.Error("expected the page to be rewritten")
	}
	// rebuilt artifact must be a real PDF now
	data, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Errorf("replacement is not a PDF (starts with %q)", data[:min(len(data), 4)])
	}
}

func TestNormalizeBelowThresholdKeepsMetadata(t *testing.T) {
	client := &stubAI{judgment: ai.RotationJudgment{Angle: 90, Confidence: 40}}
	n, artifact := newFixture(t, 0, client)

	res, err := n.Normalize(context.Background(), artifact)
	if err != nil {
		t.Fatal(err)
	}
	if res.AdoptedAngle != 0 {
		t.Errorf("low-confidence judgment must not be adopted, got %d", res.AdoptedAngle)
	}
	if res.Rewritten {
		t.Error("nothing to do when metadata and adopted angle are both zero")
	}
}

func TestNormalizeFallsBackToMetadataOnAIFailure(t *testing.T) {
	client := &stubAI{err: &ai.TransientError{Cause: errors.New("model down")}}
	n, artifact := newFixture(t, 90, client)

	res, err := n.Normalize(context.Background(), artifact)
	if err != nil {
		t.Fatalf("AI failure must not be fatal: %v", err)
	}
	if res.AdoptedAngle != 90 {
		t.Errorf("expected metadata angle 90 adopted, got %d", res.AdoptedAngle)
	}
	if !res.Rewritten {
		t.Error("page with nonzero metadata must be flattened")
	}
}

func TestNormalizePropagatesAuthExpired(t *testing.T) {
	client := &stubAI{err: &ai.AuthExpiredError{Status: 401}}
	n, artifact := newFixture(t, 90, client)

	_, err := n.Normalize(context.Background(), artifact)
	if !ai.IsAuthExpired(err) {
		t.Fatalf("expected auth error to propagate, got %v", err)
	}
}
