package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/akshat-khanna/invoice-ledger/constants"
	"github.com/akshat-khanna/invoice-ledger/internal/common"
)

// Converter turns a document file into raw text. Implementations are thin
// and replaceable; the pipeline downgrades any conversion error to empty
// text rather than aborting the document.
type Converter interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// DocumentConverter extracts the PDF text layer directly and falls back to
// OCR for images.
type DocumentConverter struct {
	lang   string
	logger *slog.Logger
}

func NewDocumentConverter(lang string, logger *slog.Logger) *DocumentConverter {
	if logger == nil {
		logger = slog.Default()
	}
	if lang == "" {
		lang = "eng"
	}
	return &DocumentConverter{lang: lang, logger: logger}
}

// ExtractText picks a strategy based on file extension.
func (c *DocumentConverter) ExtractText(ctx context.Context, path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		c.logger.Debug("convert.pdf", "path", path)
		return c.pdfText(ctx, path)
	case constants.IMAGE:
		c.logger.Debug("convert.image", "path", path, "lang", c.lang)
		return c.imageText(ctx, path)
	default:
		return "", fmt.Errorf("%w: unsupported extension %q", common.ErrConversionFailed, ext)
	}
}
