package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/takuya-okamoto/zumenkan/constants"
	"github.com/takuya-okamoto/zumenkan/internal/ai"
	"github.com/takuya-okamoto/zumenkan/internal/ai/anthropic"
	"github.com/takuya-okamoto/zumenkan/internal/analysis"
	"github.com/takuya-okamoto/zumenkan/internal/async"
	"github.com/takuya-okamoto/zumenkan/internal/common"
	"github.com/takuya-okamoto/zumenkan/internal/export"
	"github.com/takuya-okamoto/zumenkan/internal/ingest"
	"github.com/takuya-okamoto/zumenkan/internal/pdfops"
	"github.com/takuya-okamoto/zumenkan/internal/progress"
	"github.com/takuya-okamoto/zumenkan/internal/repository"
	"github.com/takuya-okamoto/zumenkan/internal/rotation"
	"github.com/takuya-okamoto/zumenkan/internal/storage"
	"github.com/takuya-okamoto/zumenkan/internal/utils"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory to ingest drawings from")
		file      = flag.String("file", "", "single drawing file to ingest")
		createdBy = flag.String("by", "batch", "recorded author of the upload")
		noAnalyze = flag.Bool("no-analyze", false, "register pages without running the pipeline")
		out       = flag.String("out", "", "output XLSX register path (optional, defaults to parent directory)")
		fromStr   = flag.String("from", "", "from upload date YYYY-MM-DD")
		toStr     = flag.String("to", "", "to upload date YYYY-MM-DD")
		statusStr = flag.String("status", "", "status filter for -list/-export")
		list      = flag.Bool("list", false, "list registered drawings and exit")
		reanalyze = flag.String("reanalyze", "", "drawing ID to queue for re-analysis")
		approve   = flag.String("approve", "", "drawing ID to mark approved")
		revert    = flag.String("revert", "", "drawing ID to send back to unapproved")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = "sqlite::memory:"
	}
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL is required (or pass -inmem)\n")
		os.Exit(1)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	repo := repository.NewDrawingRepository(entc, logger)

	filter, err := buildFilter(*statusStr, *fromStr, *toStr)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	// Single-row status operations exit early.
	switch {
	case *approve != "":
		changeStatus(ctx, repo, logger, *approve, constants.StatusApproved)
		return
	case *revert != "":
		changeStatus(ctx, repo, logger, *revert, constants.StatusUnapproved)
		return
	case *list:
		listDrawings(ctx, repo, logger, filter)
		return
	}

	if *dir == "" && *file == "" && *reanalyze == "" {
		printError("Error: one of -dir, -file, -reanalyze, -list, -approve, -revert is required\n")
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open storage root", "error", err)
		os.Exit(1)
	}
	engine := pdfops.NewEngine(pdfops.Config{
		Pdftoppm: cfg.Render.Pdftoppm,
		Pdfinfo:  cfg.Render.Pdfinfo,
		DPI:      cfg.Render.DPI,
	}, logger)
	aiClient := anthropic.NewClient(anthropic.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
		Retry:       ai.DefaultRetryConfig(),
	}, logger)

	sink := progress.NewLogSink(logger)
	normalizer := rotation.NewNormalizer(engine, aiClient, store, cfg.AI.RotationConfidenceThreshold, logger)
	orch := analysis.NewOrchestrator(repo, aiClient, engine, store, normalizer, sink, cfg.Pipeline, logger)
	queue := async.NewAnalysisQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithJobTimeout(cfg.Pipeline.JobTimeout),
	)
	controller := ingest.NewController(repo, engine, store, queue, sink, logger)

	if *reanalyze != "" {
		id, err := uuid.Parse(*reanalyze)
		if err != nil {
			printError("Error: invalid drawing ID %q: %v\n", *reanalyze, err)
			os.Exit(1)
		}
		d, err := repo.GetByID(ctx, id)
		if err != nil {
			logger.Error("drawing not found", "drawing_id", id, "error", err)
			os.Exit(1)
		}
		if err := controller.Reanalyze(ctx, d); err != nil {
			logger.Error("failed to queue re-analysis", "drawing_id", id, "error", err)
			os.Exit(1)
		}
	}

	ingested := 0
	failures := 0
	switch {
	case *file != "":
		drawings, err := controller.IngestFile(ctx, *file, *createdBy, !*noAnalyze)
		if err != nil {
			logger.Error("failed to ingest file", "path", *file, "error", err)
			os.Exit(1)
		}
		ingested = len(drawings)
	case *dir != "":
		results, stats, err := controller.IngestDirectory(ctx, *dir, *createdBy, !*noAnalyze, true)
		if err != nil {
			logger.Error("failed to ingest directory", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				logger.Error("file failed", "path", r.Path, "error", r.Err)
				failures++
				continue
			}
			ingested += r.Drawings
		}
		logger.Info("ingestion complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed)
	}

	// Shutdown drains the queue: every queued page finishes its pipeline
	// before the export below sees the table.
	queue.Shutdown(ctx)

	if *out == "" && *dir != "" {
		*out = filepath.Join(filepath.Dir(*dir), "drawings.xlsx")
	}
	if *out != "" {
		exporter := export.NewService(repo, logger)
		data, err := exporter.ExportRegisterXLSX(ctx, filter, cfg.Pipeline.DrawingNumberField, cfg.Pipeline.AuthorField)
		if err != nil {
			logger.Error("failed to export register", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("register written", "path", *out)
	}

	logger.Info("batch complete", "pages_ingested", ingested, "failures", failures)
}

func buildFilter(statusStr, fromStr, toStr string) (repository.ListFilter, error) {
	var filter repository.ListFilter
	if statusStr != "" {
		st := constants.DrawingStatus(statusStr)
		if !st.Valid() {
			return filter, fmt.Errorf("unknown status %q", statusStr)
		}
		filter.Status = &st
	}
	if fromStr != "" {
		t, err := utils.ParseYMD(fromStr)
		if err != nil {
			return filter, fmt.Errorf("invalid -from date, use YYYY-MM-DD: %w", err)
		}
		filter.FromDate = &t
	}
	if toStr != "" {
		t, err := utils.ParseYMD(toStr)
		if err != nil {
			return filter, fmt.Errorf("invalid -to date, use YYYY-MM-DD: %w", err)
		}
		filter.ToDate = &t
	}
	return filter, nil
}

func changeStatus(ctx context.Context, repo repository.DrawingRepository, logger *slog.Logger, idStr string, next constants.DrawingStatus) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		printError("Error: invalid drawing ID %q: %v\n", idStr, err)
		os.Exit(1)
	}
	d, err := repo.UpdateStatus(ctx, id, next)
	if err != nil {
		logger.Error("status change failed", "drawing_id", id, "to", next, "error", err)
		os.Exit(1)
	}
	fmt.Printf("%s -> %s (%s page %d)\n", d.ID, d.Status, d.PDFFilename, d.PageNumber+1)
}

func listDrawings(ctx context.Context, repo repository.DrawingRepository, logger *slog.Logger, filter repository.ListFilter) {
	drawings, err := repo.List(ctx, filter)
	if err != nil {
		logger.Error("failed to list drawings", "error", err)
		os.Exit(1)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUPLOADED\tFILE\tPAGE\tSTATUS\tCLASSIFICATION\tBY\tERROR")
	for _, d := range drawings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			d.ID,
			d.UploadedAt.Format("2006-01-02 15:04"),
			d.PDFFilename,
			d.PageNumber+1,
			d.Status,
			classificationLabel(d.Classification),
			d.CreatedBy,
			utils.StrOrEmpty(d.ErrorMessage),
		)
	}
	w.Flush()
}

func classificationLabel(c *constants.Classification) string {
	if c == nil {
		return "-"
	}
	return string(*c)
}
