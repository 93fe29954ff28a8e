package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/skeletor/internal/config"
	"github.com/danieljhkim/skeletor/internal/engine"
	"github.com/danieljhkim/skeletor/internal/fsops"
	"github.com/danieljhkim/skeletor/internal/render"
)

// loadConfig loads the config file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get config paths: %w", err)
		}
		path = paths.Config
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates the process logger. Informational records are only
// emitted when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(logger *slog.Logger) *engine.Engine {
	return engine.New(fsops.NewRealFS(), render.NewPongo2Renderer(), logger)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}
