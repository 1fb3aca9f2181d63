package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Paths Paths
	Store StoreConfig
	Watch WatchConfig
	OCR   OCRConfig
}

// Paths holds the three filesystem interfaces of the daemon.
type Paths struct {
	BaseDir      string // parent of the defaults below
	InputDir     string
	ProcessedDir string
	LedgerPath   string
}

// StoreConfig holds ledger persistence configuration
type StoreConfig struct {
	RetryDelay  time.Duration // wait between attempts while the store is busy
	MaxAttempts int           // attempts before surfacing ErrStoreBusy
}

// WatchConfig holds watch-loop configuration
type WatchConfig struct {
	Debounce       time.Duration // coalesce rapid event bursts
	StableTimeout  time.Duration // give up waiting for a file to stop growing
	StableInterval time.Duration // size poll interval
}

// OCRConfig holds text-conversion configuration
type OCRConfig struct {
	TesseractLang string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	base := getEnv("INVOICE_BASE_DIR", defaultBaseDir())
	return &Config{
		Paths: Paths{
			BaseDir:      base,
			InputDir:     getEnv("INVOICE_INPUT_DIR", filepath.Join(base, "Input")),
			ProcessedDir: getEnv("INVOICE_PROCESSED_DIR", filepath.Join(base, "Processed")),
			LedgerPath:   getEnv("LEDGER_PATH", filepath.Join(base, "Invoice_Data.xlsx")),
		},
		Store: StoreConfig{
			RetryDelay:  getEnvAsDuration("STORE_RETRY_DELAY", 1*time.Second),
			MaxAttempts: getEnvAsInt("STORE_MAX_ATTEMPTS", 10),
		},
		Watch: WatchConfig{
			Debounce:       getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			StableTimeout:  getEnvAsDuration("FILE_STABLE_TIMEOUT", 15*time.Second),
			StableInterval: getEnvAsDuration("FILE_STABLE_INTERVAL", 250*time.Millisecond),
		},
		OCR: OCRConfig{
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
		},
	}
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Invoices"
	}
	return filepath.Join(home, "Invoices")
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Paths.InputDir == "" {
		return NewAppError("CONFIG_ERROR", "INVOICE_INPUT_DIR is required", ErrInvalidInput)
	}
	if c.Paths.ProcessedDir == "" {
		return NewAppError("CONFIG_ERROR", "INVOICE_PROCESSED_DIR is required", ErrInvalidInput)
	}
	if c.Paths.LedgerPath == "" {
		return NewAppError("CONFIG_ERROR", "LEDGER_PATH is required", ErrInvalidInput)
	}
	if c.Store.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "STORE_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
