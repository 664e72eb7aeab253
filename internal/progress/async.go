package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// AsyncSink decouples publishers from a slow downstream sink through a
// bounded buffer. When the buffer is full the event is dropped rather than
// stalling the pipeline.
type AsyncSink struct {
	next   Sink
	ch     chan Event
	logger *slog.Logger

	once sync.Once
	done chan struct{}
	wg   sync.WaitGroup
}

func NewAsyncSink(next Sink, bufferSize int, logger *slog.Logger) *AsyncSink {
	if bufferSize <= 0 {
		bufferSize = 512
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &AsyncSink{
		next:   next,
		ch:     make(chan Event, bufferSize),
		logger: logger,
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.drain()
	return s
}

func (s *AsyncSink) Publish(_ context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case s.ch <- ev:
	default:
		s.logger.Warn("progress buffer full, dropping event",
			"stage", ev.Stage, "drawing_id", ev.DrawingID)
	}
}

func (s *AsyncSink) drain() {
	defer s.wg.Done()
	ctx := context.Background()
	for {
		select {
		case ev := <-s.ch:
			s.next.Publish(ctx, ev)
		case <-s.done:
			// flush what is buffered, then stop
			for {
				select {
				case ev := <-s.ch:
					s.next.Publish(ctx, ev)
				default:
					return
				}
			}
		}
	}
}

// Close flushes buffered events and stops the worker.
func (s *AsyncSink) Close() {
	s.once.Do(func() { close(s.done) })
	s.wg.Wait()
}
