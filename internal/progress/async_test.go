package progress_test

import (
	"context"
	"sync"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/progress"
)

type recordsink struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recordsink) Publish(_ context.Context, ev progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordsink) got() []progress.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]progress.Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestAsyncSinkDeliversAndFlushesOnClose(t *testing.T) {
	rec := &recordsink{}
	sink := progress.NewAsyncSink(rec, 16, nil)

	for i := 0; i < 5; i++ {
		sink.Publish(context.Background(), progress.Event{Stage: "upload", Message: "ok", Level: progress.LevelInfo})
	}
	sink.Close()

	events := rec.got()
	if len(events) != 5 {
		t.Fatalf("expected 5 events after close, got %d", len(events))
	}
	for _, ev := range events {
		if ev.At.IsZero() {
			t.Error("Publish must stamp events missing a timestamp")
		}
	}
}

func TestAsyncSinkCloseIsIdempotent(t *testing.T) {
	sink := progress.NewAsyncSink(&recordsink{}, 4, nil)
	sink.Close()
	sink.Close()
}

func TestAsyncSinkNeverBlocksWhenFull(t *testing.T) {
	// downstream that blocks forever until released
	release := make(chan struct{})
	blocked := &blockingSink{release: release}
	sink := progress.NewAsyncSink(blocked, 1, nil)

	// far more events than the buffer holds; Publish must return anyway
	for i := 0; i < 100; i++ {
		sink.Publish(context.Background(), progress.Event{Stage: "analysis"})
	}
	close(release)
	sink.Close()
}

type blockingSink struct {
	release chan struct{}
}

func (b *blockingSink) Publish(context.Context, progress.Event) {
	<-b.release
}
