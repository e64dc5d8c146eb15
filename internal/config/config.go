package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for a plagcheck run
type Config struct {
	Log       LogConfig
	Tokenizer TokenizerConfig
	Loader    LoaderConfig
	Batch     BatchConfig
}

// LogConfig controls the logrus logger built by the CLI
type LogConfig struct {
	Level  string
	Format string
}

// TokenizerConfig holds normalizer/segmenter settings
type TokenizerConfig struct {
	MinTokenLen int
	DictFiles   []string
}

// LoaderConfig holds text loader settings
type LoaderConfig struct {
	ExtractHTML bool
}

// BatchConfig holds batch driver settings
type BatchConfig struct {
	// SkipUnreadable zero-scores candidates that cannot be read instead of
	// aborting the whole run.
	SkipUnreadable bool
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Log: LogConfig{
			Level:  GetStringEnv("PLAGCHECK_LOG_LEVEL", "info"),
			Format: GetStringEnv("PLAGCHECK_LOG_FORMAT", "text"),
		},
		Tokenizer: TokenizerConfig{
			MinTokenLen: GetIntEnv("PLAGCHECK_MIN_TOKEN_LEN", 2),
			DictFiles:   GetListEnv("PLAGCHECK_DICT", nil),
		},
		Loader: LoaderConfig{
			ExtractHTML: GetBoolEnv("PLAGCHECK_EXTRACT_HTML", false),
		},
		Batch: BatchConfig{
			SkipUnreadable: GetBoolEnv("PLAGCHECK_SKIP_UNREADABLE", false),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetListEnv splits a comma-separated variable, dropping empty entries
func GetListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
