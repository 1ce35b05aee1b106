package config

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arjunveda/studentspend/internal/logger"
)

type Backend string

const (
	BackendJSONFile Backend = "jsonfile"
	BackendSQLite   Backend = "sqlite"
)

const (
	defaultStateDir     = "."
	defaultSQLiteFile   = "studentspend.db"
	defaultCurrency     = "₹"
	defaultLimitUnits   = 15000
	defaultModel        = "gemini-3-flash-preview"
	defaultTimeoutSecs  = 15
	centsPerUnit        = 100
	apiKeyEnv           = "GEMINI_API_KEY"
)

type StorageConfig struct {
	Backend    Backend `toml:"backend"`
	StateDir   string  `toml:"state_dir"`
	SQLiteFile string  `toml:"sqlite_file"`
}

type InsightConfig struct {
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`

	// APIKey comes from the environment only, never from the config file.
	APIKey string `toml:"-"`
}

type Config struct {
	// Currency is the display symbol. No conversion happens anywhere.
	Currency string `toml:"currency"`

	// DefaultLimit is the monthly budget, in currency units, applied when
	// no budget has been stored yet.
	DefaultLimit float64 `toml:"default_limit"`

	Storage StorageConfig `toml:"storage"`
	Insight InsightConfig `toml:"insight"`
	Logger  logger.Config `toml:"logger"`
}

// Parse loads the TOML configuration file, then applies environment
// overrides. A missing config file is not an error: defaults apply.
func Parse(path string) (*Config, error) {
	conf := &Config{
		Currency:     defaultCurrency,
		DefaultLimit: defaultLimitUnits,
		Storage: StorageConfig{
			Backend:    BackendJSONFile,
			StateDir:   defaultStateDir,
			SQLiteFile: defaultSQLiteFile,
		},
		Insight: InsightConfig{
			Model:          defaultModel,
			TimeoutSeconds: defaultTimeoutSecs,
		},
		Logger: logger.Config{
			Level:  logger.LevelInfo,
			Format: logger.FormatText,
			Output: "stdout",
		},
	}

	bytes, err := os.ReadFile(path)
	if err == nil {
		if err = toml.Unmarshal(bytes, conf); err != nil {
			return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.parseEnv()

	switch conf.Storage.Backend {
	case BackendJSONFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}

	if conf.DefaultLimit < 0 {
		return nil, fmt.Errorf("default_limit cannot be negative")
	}

	return conf, nil
}

func (c *Config) parseEnv() {
	if dir := os.Getenv("STUDENTSPEND_STATE_DIR"); dir != "" {
		c.Storage.StateDir = dir
	}

	if backend := os.Getenv("STUDENTSPEND_STORAGE"); backend != "" {
		c.Storage.Backend = Backend(backend)
	}

	if level := os.Getenv("STUDENTSPEND_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("STUDENTSPEND_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("STUDENTSPEND_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	c.Insight.APIKey = os.Getenv(apiKeyEnv)
}

// DefaultLimitCents returns the default monthly limit in cents.
func (c *Config) DefaultLimitCents() int64 {
	return int64(math.Round(c.DefaultLimit * centsPerUnit))
}
