package common

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDerivesPathsFromBase(t *testing.T) {
	t.Setenv("INVOICE_BASE_DIR", filepath.Join("/srv", "invoices"))

	cfg := LoadConfig()

	assert.Equal(t, filepath.Join("/srv", "invoices", "Input"), cfg.Paths.InputDir)
	assert.Equal(t, filepath.Join("/srv", "invoices", "Processed"), cfg.Paths.ProcessedDir)
	assert.Equal(t, filepath.Join("/srv", "invoices", "Invoice_Data.xlsx"), cfg.Paths.LedgerPath)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("LEDGER_PATH", "/data/ledger.xlsx")
	t.Setenv("STORE_RETRY_DELAY", "250ms")
	t.Setenv("STORE_MAX_ATTEMPTS", "3")

	cfg := LoadConfig()

	assert.Equal(t, "/data/ledger.xlsx", cfg.Paths.LedgerPath)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.RetryDelay)
	assert.Equal(t, 3, cfg.Store.MaxAttempts)
}

func TestValidateRejectsNonPositiveAttempts(t *testing.T) {
	t.Setenv("STORE_MAX_ATTEMPTS", "0")

	cfg := LoadConfig()

	assert.Error(t, cfg.Validate())
}
