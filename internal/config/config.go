package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Supported storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Store  string
	Path   string
	Debug  bool
	LogDir string
	Theme  string
}

// Load reads .env from the working directory when present, then the
// TADA_* environment variables.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Store:  strings.ToLower(getEnv("TADA_STORE", BackendJSON)),
		Path:   os.Getenv("TADA_PATH"),
		Debug:  parseBool(os.Getenv("TADA_DEBUG")),
		LogDir: getEnv("TADA_LOG_DIR", defaultLogDir()),
		Theme:  getEnv("TADA_THEME", "classic"),
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath(cfg.Store)
	}
	return cfg
}

// DefaultPath is the data file used for backend when none is configured.
// Like the original CLI it lives in the working directory.
func DefaultPath(backend string) string {
	name := "todos.json"
	if backend == BackendSQLite {
		name = "todos.db"
	}
	wd, err := os.Getwd()
	if err != nil {
		return name
	}
	return filepath.Join(wd, name)
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tada"
	}
	return filepath.Join(home, ".tada")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
