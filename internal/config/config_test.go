package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arjunveda/studentspend/internal/logger"
)

func TestParseMissingFileUsesDefaults(t *testing.T) {
	conf, err := Parse(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Parse with missing file: %v", err)
	}

	if conf.Storage.Backend != BackendJSONFile {
		t.Errorf("Backend = %q, want jsonfile", conf.Storage.Backend)
	}
	if conf.DefaultLimitCents() != 1500000 {
		t.Errorf("DefaultLimitCents = %d, want 1500000", conf.DefaultLimitCents())
	}
	if conf.Insight.Model == "" {
		t.Error("Insight.Model default is empty")
	}
	if conf.Insight.TimeoutSeconds <= 0 {
		t.Errorf("Insight.TimeoutSeconds = %d", conf.Insight.TimeoutSeconds)
	}
	if conf.Currency != "₹" {
		t.Errorf("Currency = %q", conf.Currency)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studentspend.toml")
	content := `
currency = "€"
default_limit = 900.50

[storage]
backend = "sqlite"
state_dir = "/tmp/spend"

[insight]
model = "gemini-2.0-flash"
timeout_seconds = 30

[logger]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	conf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if conf.Currency != "€" {
		t.Errorf("Currency = %q", conf.Currency)
	}
	if conf.DefaultLimitCents() != 90050 {
		t.Errorf("DefaultLimitCents = %d, want 90050", conf.DefaultLimitCents())
	}
	if conf.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q", conf.Storage.Backend)
	}
	if conf.Storage.StateDir != "/tmp/spend" {
		t.Errorf("StateDir = %q", conf.Storage.StateDir)
	}
	if conf.Insight.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", conf.Insight.Model)
	}
	if conf.Logger.Level != logger.LevelDebug {
		t.Errorf("Logger.Level = %q", conf.Logger.Level)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("STUDENTSPEND_STATE_DIR", "/var/lib/spend")
	t.Setenv("STUDENTSPEND_STORAGE", "sqlite")
	t.Setenv("STUDENTSPEND_LOG_LEVEL", "error")
	t.Setenv("GEMINI_API_KEY", "test-key")

	conf, err := Parse(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if conf.Storage.StateDir != "/var/lib/spend" {
		t.Errorf("StateDir = %q", conf.Storage.StateDir)
	}
	if conf.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %q", conf.Storage.Backend)
	}
	if conf.Logger.Level != logger.LevelError {
		t.Errorf("Logger.Level = %q", conf.Logger.Level)
	}
	if conf.Insight.APIKey != "test-key" {
		t.Errorf("APIKey = %q", conf.Insight.APIKey)
	}
}

func TestParseRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STUDENTSPEND_STORAGE", "redis")

	if _, err := Parse(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("Parse expected error for unknown backend")
	}
}

func TestParseMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("currency = ["), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Parse(path); err == nil {
		t.Fatal("Parse expected error for malformed TOML")
	}
}
