package textextract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/akshat-khanna/invoice-ledger/internal/common"
)

// pdfText pulls the embedded text layer page by page. Pages without a text
// layer contribute nothing; a wholly scanned PDF therefore yields "".
func (c *DocumentConverter) pdfText(ctx context.Context, path string) (string, error) {
	fh, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrConversionFailed, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil {
			c.logger.Warn("convert.pdf.close", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			c.logger.Warn("convert.pdf.page", "path", path, "page", i, "error", err)
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
		}
	}
	return b.String(), nil
}
