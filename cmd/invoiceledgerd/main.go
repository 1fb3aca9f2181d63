package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
	"github.com/akshat-khanna/invoice-ledger/internal/ingest"
	"github.com/akshat-khanna/invoice-ledger/internal/ledger"
	"github.com/akshat-khanna/invoice-ledger/internal/pipeline"
	"github.com/akshat-khanna/invoice-ledger/internal/textextract"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	for _, dir := range []string{cfg.Paths.InputDir, cfg.Paths.ProcessedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("failed to create directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := ledger.NewStore(cfg.Paths.LedgerPath, cfg.Store, logger)
	conv := textextract.NewDocumentConverter(cfg.OCR.TesseractLang, logger)
	proc := pipeline.NewProcessor(conv, store, cfg.Paths.ProcessedDir, cfg.Watch, logger)

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:        cfg.Paths.InputDir,
		InitialScan: true,
		Debounce:    cfg.Watch.Debounce,
	})
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	logger.Info("invoiceledgerd.started",
		"input", cfg.Paths.InputDir,
		"processed", cfg.Paths.ProcessedDir,
		"ledger", cfg.Paths.LedgerPath,
	)

	// Documents are processed strictly one at a time; the in-flight document
	// finishes before shutdown.
	for {
		select {
		case <-ctx.Done():
			logger.Info("invoiceledgerd.stopped")
			return
		case werr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Error("watcher.error", "error", werr)
		case path, ok := <-events:
			if !ok {
				logger.Info("invoiceledgerd.stopped")
				return
			}
			// A shutdown signal stops event intake only; the dispatched
			// document runs to completion on a detached context.
			outcome, perr := proc.ProcessFile(context.WithoutCancel(ctx), path)
			if perr != nil {
				logger.Error("processor.failed", "file", path, "error", perr)
				continue
			}
			_ = outcome // terminal states are logged by the processor
		}
	}
}
