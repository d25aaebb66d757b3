package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/EdwardCranko/PDF-Squeeze/internal/common"
)

// Config holds application configuration
type Config struct {
	WorkingDir   string
	DatabasePath string
	ListenAddr   string
	Logger       *slog.Logger
}

// New creates a new configuration instance. A .env file in the working
// directory is honored when present; process environment wins over it.
func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr: getEnv("PDFSQUEEZE_LISTEN_ADDR", ":8087"),
	}

	cfg.setupLogger()
	cfg.setupDirectories()

	return cfg
}

func (c *Config) setupLogger() {
	level := slog.LevelInfo
	switch getEnv("PDFSQUEEZE_LOG_LEVEL", "info") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (c *Config) setupDirectories() {
	// Working directory holds uploads and other transient files.
	c.WorkingDir = getEnv("PDFSQUEEZE_WORKING_DIR", filepath.Join(os.TempDir(), "pdf-squeeze"))
	if err := os.MkdirAll(c.WorkingDir, common.DefaultFilePermissions); err != nil {
		c.Logger.Warn("creating working directory", "dir", c.WorkingDir, "error", err)
	}

	// App data directory holds the preferences database.
	appDataDir := getEnv("PDFSQUEEZE_DATA_DIR", "")
	if appDataDir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			appDataDir = filepath.Join(base, "pdf-squeeze")
		} else {
			appDataDir = c.WorkingDir
		}
	}
	if err := os.MkdirAll(appDataDir, common.DefaultFilePermissions); err != nil {
		c.Logger.Warn("creating data directory", "dir", appDataDir, "error", err)
	}

	c.DatabasePath = filepath.Join(appDataDir, "preferences.sqlite3")
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
