package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
	"github.com/akshat-khanna/invoice-ledger/internal/extract"
	"github.com/akshat-khanna/invoice-ledger/internal/textextract"
)

// extractfields runs the extraction stages over a single document and prints
// the assembled record, without touching the ledger. Debug tool.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extractfields <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := common.LoadConfig()
	conv := textextract.NewDocumentConverter(cfg.OCR.TesseractLang, logger)

	start := time.Now()
	raw, err := conv.ExtractText(ctx, path)
	if err != nil {
		logger.Warn("conversion degraded to empty text", "error", err)
		raw = ""
	}
	text := textextract.Normalize(raw)

	rec, err := extract.Assemble(text)
	if err != nil {
		logger.Error("document rejected", "error", err, "text_bytes", len(text))
		os.Exit(1)
	}

	fmt.Printf("Invoice Date: %s\n", rec.InvoiceDate)
	fmt.Printf("Invoice No:   %s\n", rec.InvoiceNo)
	fmt.Printf("Ref No:       %s\n", rec.RefNo)
	fmt.Printf("Particular:   %s\n", rec.Particular)
	fmt.Printf("Amount:       %s\n", rec.Amount.StringFixed(2))
	fmt.Printf("TDS (10%%):    %s\n", rec.TDS.StringFixed(2))
	fmt.Printf("Clear Amount: %s\n", rec.ClearAmount.StringFixed(2))

	logger.Info("extraction OK",
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
