package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/takuya-okamoto/zumenkan/internal/analysis"
	"github.com/takuya-okamoto/zumenkan/internal/common"
)

// Job is one drawing waiting for analysis.
type Job struct {
	DrawingID   uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// AnalysisQueue fans drawings out to a fixed pool of workers. Each page's
// pipeline runs sequentially inside one worker; pages from the same upload
// run concurrently across workers.
type AnalysisQueue struct {
	orch    *analysis.Orchestrator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*AnalysisQueue)

func WithWorkers(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *AnalysisQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAnalysisQueue(orch *analysis.Orchestrator, logger *slog.Logger, opts ...Option) *AnalysisQueue {
	q := &AnalysisQueue{
		orch:    orch,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AnalysisQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithDrawingID(ctx, job.DrawingID.String())
					err := q.orch.Analyze(ctx, job.DrawingID)
					cancel()

					if err != nil {
						q.logger.Error("analysis failed", "worker_id", workerID, "drawing_id", job.DrawingID, "error", err)
					} else {
						q.logger.Info("analysis completed", "worker_id", workerID, "drawing_id", job.DrawingID,
							"queued_for", time.Since(job.SubmittedAt))
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *AnalysisQueue) Enqueue(_ context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "drawing_id", job.DrawingID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued drawing for analysis", "drawing_id", job.DrawingID)
	default:
		q.logger.Warn("queue full, applying backpressure", "drawing_id", job.DrawingID)
		q.ch <- job
	}
	return nil
}

func (q *AnalysisQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
