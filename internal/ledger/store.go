package ledger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/akshat-khanna/invoice-ledger/constants"
	"github.com/akshat-khanna/invoice-ledger/internal/common"
)

// Store persists the ledger to a single .xlsx file that the operator may
// have open in a spreadsheet viewer at any time. There is exactly one
// internal writer; contention only comes from such an external viewer and is
// treated as transient.
type Store struct {
	path        string
	retryDelay  time.Duration
	maxAttempts int
	logger      *slog.Logger
}

func NewStore(path string, cfg common.StoreConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Store{
		path:        path,
		retryDelay:  cfg.RetryDelay,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
	}
}

// Load reads all non-aggregate records from the store. A missing file is
// created as an empty ledger with the canonical header. An unreadable file
// or a mismatched header row resets the store the same way — prior rows are
// lost, and the reset is logged rather than hidden.
func (s *Store) Load(ctx context.Context) ([]Record, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("store.create", "path", s.path)
		if err := s.Save(ctx, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return s.reset(ctx, fmt.Errorf("%w: open: %v", common.ErrStoreCorrupt, err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("store.close", "path", s.path, "error", cerr)
		}
	}()

	rows, err := f.GetRows(constants.SheetName)
	if err != nil {
		return s.reset(ctx, fmt.Errorf("%w: read sheet: %v", common.ErrStoreCorrupt, err))
	}
	if len(rows) == 0 || !headerMatches(rows[0]) {
		return s.reset(ctx, fmt.Errorf("%w: header mismatch", common.ErrStoreCorrupt))
	}

	var records []Record
	for _, row := range rows[1:] {
		if rec, ok := parseRow(row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// reset recovers from a corrupt store by persisting an empty canonical
// ledger. Documented data-loss-on-corruption policy.
func (s *Store) reset(ctx context.Context, cause error) ([]Record, error) {
	s.logger.Warn("store.reset", "path", s.path, "error", cause)
	if err := s.Save(ctx, nil); err != nil {
		return nil, err
	}
	return nil, nil
}

// Save rewrites the whole store: header, records with renumbered serials,
// and a freshly computed TOTAL row. The workbook is written to a temp file
// in the same directory and renamed over the target, so a partial write
// never replaces a good ledger. When an external process holds the target
// open for writing, Save retries on a fixed delay up to MaxAttempts and then
// surfaces common.ErrStoreBusy. Only that lock contention is retried; write
// failures are permanent and return immediately.
func (s *Store) Save(ctx context.Context, records []Record) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("store.close", "path", s.path, "error", cerr)
		}
	}()
	if err := f.SetSheetName("Sheet1", constants.SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFF200"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(constants.SheetName, cell, v)
	}

	for i, h := range constants.LedgerHeaders {
		write(i+1, 1, h)
	}
	_ = f.SetCellStyle(constants.SheetName, "A1", "I1", headerStyle)

	for i, rec := range records {
		row := i + 2
		write(1, row, i+1) // serials renumbered on every save
		write(2, row, rec.InvoiceDate)
		write(3, row, rec.InvoiceNo)
		write(4, row, rec.RefNo)
		write(5, row, rec.Particular)
		write(6, row, rec.Amount.InexactFloat64())
		write(7, row, rec.TDS.InexactFloat64())
		write(8, row, rec.ClearAmount.InexactFloat64())
		write(9, row, rec.Comment)
	}

	total := ComputeTotal(records)
	totalRow := len(records) + 2
	write(5, totalRow, constants.TotalMarker)
	write(6, totalRow, total.Amount.InexactFloat64())
	write(7, totalRow, total.TDS.InexactFloat64())
	start, _ := excelize.CoordinatesToCellName(1, totalRow)
	end, _ := excelize.CoordinatesToCellName(9, totalRow)
	_ = f.SetCellStyle(constants.SheetName, start, end, headerStyle)

	_ = f.SetColWidth(constants.SheetName, "A", "A", 8)
	_ = f.SetColWidth(constants.SheetName, "B", "B", 14)
	_ = f.SetColWidth(constants.SheetName, "C", "D", 18)
	_ = f.SetColWidth(constants.SheetName, "E", "E", 60)
	_ = f.SetColWidth(constants.SheetName, "F", "H", 14)
	_ = f.SetColWidth(constants.SheetName, "I", "I", 24)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}
		if err := probeWritable(s.path); err != nil {
			lastErr = err
			s.logger.Warn("store.busy", "path", s.path, "attempt", attempt, "error", err)
			continue
		}
		if err := s.replace(f); err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w after %d attempts: %v", common.ErrStoreBusy, s.maxAttempts, lastErr)
}

// replace writes the workbook next to the target and renames it into place.
func (s *Store) replace(f *excelize.File) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := f.SaveAs(tmpName); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// probeWritable detects an external viewer holding a write lock on the
// target. A missing target is fine; Save will create it.
func probeWritable(path string) error {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return fh.Close()
}

func headerMatches(row []string) bool {
	if len(row) != len(constants.LedgerHeaders) {
		return false
	}
	for i, h := range constants.LedgerHeaders {
		if row[i] != h {
			return false
		}
	}
	return true
}

// parseRow turns one sheet row into a Record. The TOTAL row and fully blank
// rows report ok=false; they are not records.
func parseRow(row []string) (Record, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	blank := true
	for i := range constants.LedgerHeaders {
		if cell(i) != "" {
			blank = false
			break
		}
	}
	if blank {
		return Record{}, false
	}
	if strings.EqualFold(cell(4), constants.TotalMarker) {
		return Record{}, false
	}

	rec := Record{
		InvoiceDate: cell(1),
		InvoiceNo:   cell(2),
		RefNo:       cell(3),
		Particular:  cell(4),
		Amount:      parseAmount(cell(5)),
		TDS:         parseAmount(cell(6)),
		ClearAmount: parseAmount(cell(7)),
		Comment:     cell(8),
	}
	if sr, err := strconv.Atoi(cell(0)); err == nil {
		rec.Serial = sr
	}
	return rec, true
}

func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
