package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
	"github.com/akshat-khanna/invoice-ledger/internal/extract"
	"github.com/akshat-khanna/invoice-ledger/internal/ledger"
	"github.com/akshat-khanna/invoice-ledger/internal/textextract"
)

// Outcome is the terminal state of one document.
type Outcome string

const (
	OutcomeAppended  Outcome = "APPENDED"
	OutcomeDuplicate Outcome = "DUPLICATE_SKIPPED"
	OutcomeRejected  Outcome = "REJECTED"
)

// Processor runs one document at a time through conversion, field assembly,
// ledger synchronization, and relocation. Appended and duplicate documents
// move to the processed directory; rejected documents stay in the input
// directory for manual inspection.
type Processor struct {
	converter    textextract.Converter
	store        *ledger.Store
	processedDir string
	watch        common.WatchConfig
	logger       *slog.Logger
}

func NewProcessor(conv textextract.Converter, store *ledger.Store, processedDir string, watch common.WatchConfig, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if watch.StableInterval <= 0 {
		watch.StableInterval = 250 * time.Millisecond
	}
	return &Processor{
		converter:    conv,
		store:        store,
		processedDir: processedDir,
		watch:        watch,
		logger:       logger,
	}
}

// ProcessFile drives one document to a terminal outcome. A nil error with
// OutcomeRejected means the document was reported and left in place; any
// non-nil error leaves the document in the input directory for a later
// retry.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Outcome, error) {
	docID := uuid.New()
	log := p.logger.With("doc_id", docID.String(), "file", filepath.Base(path))

	if err := p.waitStable(ctx, path, log); err != nil {
		return "", err
	}

	raw, err := p.converter.ExtractText(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		// Unusable text cascades to empty fields; rejection below catches
		// the degenerate case.
		log.Warn("processor.convert.degraded", "error", err)
		raw = ""
	}
	text := textextract.Normalize(raw)

	candidate, err := extract.Assemble(text)
	if err != nil {
		if errors.Is(err, common.ErrNoInvoiceNumber) {
			log.Warn("processor.rejected", "reason", "no invoice number", "text_bytes", len(text))
			return OutcomeRejected, nil
		}
		return "", err
	}
	log = log.With("invoice_no", candidate.InvoiceNo)

	records, err := p.store.Load(ctx)
	if err != nil {
		return "", err
	}

	records, res := ledger.Synchronize(records, candidate)
	if res == ledger.Appended {
		if err := p.store.Save(ctx, records); err != nil {
			return "", err
		}
	}

	if err := p.relocate(path); err != nil {
		return "", fmt.Errorf("relocate: %w", err)
	}

	switch res {
	case ledger.Appended:
		log.Info("processor.appended",
			"serial", len(records),
			"amount", candidate.Amount.StringFixed(2),
			"particular", candidate.Particular,
		)
		return OutcomeAppended, nil
	default:
		log.Info("processor.duplicate_skipped")
		return OutcomeDuplicate, nil
	}
}

// waitStable polls the file size until two consecutive polls agree, so a
// document still being written by its producer is not read mid-copy. A file
// that never settles before StableTimeout is processed anyway with a
// warning; the wait is a debounce, not a correctness guarantee.
func (p *Processor) waitStable(ctx context.Context, path string, log *slog.Logger) error {
	deadline := time.Now().Add(p.watch.StableTimeout)
	var lastSize int64 = -1
	for {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat: %w", err)
		}
		if info.Size() == lastSize {
			return nil
		}
		lastSize = info.Size()
		if p.watch.StableTimeout > 0 && time.Now().After(deadline) {
			log.Warn("processor.stable_timeout", "size", lastSize)
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.watch.StableInterval):
		}
	}
}

// relocate moves a handled document to the processed directory, keeping its
// basename. Falls back to copy+remove when rename crosses filesystems.
func (p *Processor) relocate(path string) error {
	if err := os.MkdirAll(p.processedDir, 0o755); err != nil {
		return err
	}
	dest := filepath.Join(p.processedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err == nil {
		return nil
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}
