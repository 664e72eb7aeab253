package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSink publishes events as JSON on a pub/sub channel for the UI
// gateway to fan out.
type RedisSink struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisSink(addr, channel string, logger *slog.Logger) *RedisSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSink{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
		logger:  logger,
	}
}

func (s *RedisSink) Publish(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("failed to encode progress event", "error", err)
		return
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.logger.Warn("failed to publish progress event", "error", err)
	}
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
