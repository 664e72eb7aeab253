package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Level grades a progress message the way the UI renders it.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is one progress update emitted while a file moves through the
// pipeline.
type Event struct {
	DrawingID uuid.UUID `json:"drawing_id,omitempty"`
	Filename  string    `json:"filename,omitempty"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	At        time.Time `json:"at"`
}

// Sink receives progress events. Implementations must be safe for
// concurrent use and must never block the pipeline.
type Sink interface {
	Publish(ctx context.Context, ev Event)
}

type noopSink struct{}

func (noopSink) Publish(context.Context, Event) {}

// NewNoopSink returns a sink that drops every event.
func NewNoopSink() Sink { return noopSink{} }

type logSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink that mirrors events into the structured log.
func NewLogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &logSink{logger: logger}
}

func (s *logSink) Publish(_ context.Context, ev Event) {
	s.logger.Info("progress",
		"drawing_id", ev.DrawingID,
		"filename", ev.Filename,
		"stage", ev.Stage,
		"message", ev.Message,
		"level", ev.Level,
	)
}
