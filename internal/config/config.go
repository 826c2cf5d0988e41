// Package config reads configuration from environment variables with
// sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"reelcut/internal/domain"
)

const (
	DefaultDataDir    = "~/.reelcut"
	DefaultCatalogURL = "http://localhost:8080/api"
	DefaultRenderURL  = "http://localhost:8080/api"
	DefaultLogLevel   = "info"

	EnvDataDir         = "REELCUT_DATA_DIR"
	EnvCatalogURL      = "REELCUT_CATALOG_URL"
	EnvMediaDir        = "REELCUT_MEDIA_DIR"
	EnvRenderURL       = "REELCUT_RENDER_URL"
	EnvLogLevel        = "REELCUT_LOG_LEVEL"
	EnvPixelsPerSecond = "REELCUT_PIXELS_PER_SECOND"

	// DBFilename is the SQLite file under the data directory
	DBFilename = "reelcut.db"
)

// DataDir returns the data directory, honoring REELCUT_DATA_DIR
func DataDir() string {
	if env := os.Getenv(EnvDataDir); env != "" {
		return env
	}
	return DefaultDataDir
}

// DBPath returns the full path to the SQLite database file
func DBPath() string {
	return filepath.Join(ExpandHome(DataDir()), DBFilename)
}

// CatalogURL returns the source catalogue base URL
func CatalogURL() string {
	if env := os.Getenv(EnvCatalogURL); env != "" {
		return env
	}
	return DefaultCatalogURL
}

// MediaDir returns a local directory to scan for source videos instead of
// fetching the catalogue over HTTP. Empty when unset.
func MediaDir() string {
	return ExpandHome(os.Getenv(EnvMediaDir))
}

// RenderURL returns the render pipeline base URL
func RenderURL() string {
	if env := os.Getenv(EnvRenderURL); env != "" {
		return env
	}
	return DefaultRenderURL
}

// LogLevel returns the log level (debug, info, warn, error)
func LogLevel() string {
	if env := os.Getenv(EnvLogLevel); env != "" {
		return env
	}
	return DefaultLogLevel
}

// PixelsPerSecond returns the timeline scale. Unparsable or non-positive
// values fall back to the domain default.
func PixelsPerSecond() float64 {
	if env := os.Getenv(EnvPixelsPerSecond); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil && v > 0 {
			return v
		}
	}
	return domain.DefaultPixelsPerSecond
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
