package textextract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
)

// imageText runs tesseract over a scanned image.
func (c *DocumentConverter) imageText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer func() {
		if cerr := client.Close(); cerr != nil {
			c.logger.Warn("convert.image.close", "path", path, "error", cerr)
		}
	}()

	if err := client.SetLanguage(c.lang); err != nil {
		return "", fmt.Errorf("%w: set language: %v", common.ErrConversionFailed, err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("%w: set image: %v", common.ErrConversionFailed, err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: ocr: %v", common.ErrConversionFailed, err)
	}
	return text, nil
}
