package pdfops_test

import (
	"context"
	"errors"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
)

// fakeRunner answers every command invocation from canned output.
type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	return f.stdout, f.stderr, f.err
}

func TestMetadataRotation(t *testing.T) {
	cases := []struct {
		rot  string
		want int
	}{
		{"0", 0},
		{"90", 90},
		{"180", 180},
		{"270", 270},
		{"-90", 270},
		{"360", 0},
	}
	for _, tc := range cases {
		runner := &fakeRunner{stdout: []byte(pdfinfoSample(tc.rot))}
		engine := pdfops.NewEngine(pdfops.Config{}, nil).WithRunner(runner)

		got, err := engine.MetadataRotation(context.Background(), "/tmp/a.pdf")
		if err != nil {
			t.Fatalf("rot %s: %v", tc.rot, err)
		}
		if got != tc.want {
			t.Errorf("rot %s: got %d, expected %d", tc.rot, got, tc.want)
		}
		if runner.name != "pdfinfo" {
			t.Errorf("expected pdfinfo call, got %q", runner.name)
		}
	}
}

func pdfinfoSample(rot string) string {
	return "Pages:          1\nPage rot:       " + rot + "\nFile size:      1 bytes\n"
}

func TestMetadataRotationMissingEntryIsZero(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("Pages:          1\n")}
	engine := pdfops.NewEngine(pdfops.Config{}, nil).WithRunner(runner)

	got, err := engine.MetadataRotation(context.Background(), "/tmp/a.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("expected 0 without a Page rot entry, got %d", got)
	}
}

func TestMetadataRotationBadValue(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("Page rot:       sideways\n")}
	engine := pdfops.NewEngine(pdfops.Config{}, nil).WithRunner(runner)

	if _, err := engine.MetadataRotation(context.Background(), "/tmp/a.pdf"); err == nil {
		t.Error("expected error for unparseable rotation")
	}
}

func TestMetadataRotationCommandFailure(t *testing.T) {
	runner := &fakeRunner{stderr: []byte("no such file"), err: errors.New("exit status 1")}
	engine := pdfops.NewEngine(pdfops.Config{}, nil).WithRunner(runner)

	if _, err := engine.MetadataRotation(context.Background(), "/tmp/a.pdf"); err == nil {
		t.Error("expected error when pdfinfo fails")
	}
}
