package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/ai/anthropic"
	"github.com/takuya-okamoto/zumenkan/internal/analysis"
	"github.com/takuya-okamoto/zumenkan/internal/async"
	"github.com/takuya-okamoto/zumenkan/internal/common"
	"github.com/takuya-okamoto/zumenkan/internal/ingest"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/progress"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
	"github.com/takuya-okamoto/zumenkan/internal/rotation"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	_ = godotenv.Load()

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Intake.WatchRoot == "" {
		log.Fatal("INTAKE_WATCH_ROOT env var is required")
	}

	// Components log through slog
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, slogger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(entc, pool, slogger)

	if pool != nil {
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, slogger); err != nil {
			log.Fatalf("DB health failed: %v", err)
		}
		log.Infow("DB health OK")
	}
	if err := entc.Schema.Create(ctx); err != nil {
		log.Fatalf("schema migration: %v", err)
	}

	repo := repository.NewDrawingRepository(entc, slogger)

	store, err := storage.NewStore(cfg.Storage.Root, slogger)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	engine := pdfops.NewEngine(pdfops.Config{
		Pdftoppm: cfg.Render.Pdftoppm,
		Pdfinfo:  cfg.Render.Pdfinfo,
		DPI:      cfg.Render.DPI,
	}, slogger)

	aiClient := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
		Retry:       ai.DefaultRetryConfig(),
	}, slogger)

	// Progress events go to redis when configured, otherwise to the log
	var inner progress.Sink = progress.NewLogSink(slogger)
	var redisSink *progress.RedisSink
	if cfg.Progress.RedisAddr != "" {
		redisSink = progress.NewRedisSink(cfg.Progress.RedisAddr, cfg.Progress.RedisChannel, slogger)
		inner = redisSink
	}
	sink := progress.NewAsyncSink(inner, cfg.Progress.BufferSize, slogger)

	normalizer := rotation.NewNormalizer(engine, aiClient, store, cfg.AI.RotationConfidenceThreshold, slogger)
	orch := analysis.NewOrchestrator(repo, aiClient, engine, store, normalizer, sink, cfg.Pipeline, slogger)

	queue := async.NewAnalysisQueue(orch, slogger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithJobTimeout(cfg.Pipeline.JobTimeout),
	)

	controller := ingest.NewController(repo, engine, store, queue, sink, slogger)

	files, watchErrs, err := ingest.Watch(ctx, ingest.WatchConfig{
		Root:        cfg.Intake.WatchRoot,
		InitialScan: cfg.Intake.InitialScan,
		Debounce:    cfg.Intake.WatchDebounce,
	}, slogger)
	if err != nil {
		log.Fatalf("starting intake watcher: %v", err)
	}
	log.Infof("watching %s", cfg.Intake.WatchRoot)

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down...")
			queue.Shutdown(context.Background())
			sink.Close()
			if redisSink != nil {
				_ = redisSink.Close()
			}
			fmt.Println("stopped.")
			return
		case path, ok := <-files:
			if !ok {
				continue
			}
			drawings, err := controller.IngestFile(ctx, path, cfg.Intake.CreatedBy, true)
			if err != nil {
				log.Errorw("intake failed", "path", path, "error", err)
				continue
			}
			log.Infow("intake ok", "path", path, "drawings", len(drawings))
		case err, ok := <-watchErrs:
			if ok && err != nil {
				log.Errorw("watch error", "error", err)
			}
		}
	}
}
