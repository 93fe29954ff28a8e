// Package engine provides the core scaffolding logic for skeletor.
//
// The engine package acts as the orchestration layer between the CLI and
// lower-level operations. It validates the project name, resolves the
// template and target directories, builds a plan and executes it, never
// overwriting an existing file.
//
// Key components:
//   - Engine: Main orchestrator, created once per process
//   - Scaffold: Copies and renders a template tree into a target directory
package engine

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/skeletor/internal/fsops"
	"github.com/danieljhkim/skeletor/internal/naming"
	"github.com/danieljhkim/skeletor/internal/planner"
	"github.com/danieljhkim/skeletor/internal/render"
)

// Engine orchestrates all skeletor operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	renderer render.Renderer
	logger   *slog.Logger
}

// New creates a new Engine with the given dependencies.
// A nil logger discards all records.
func New(fs fsops.FS, renderer render.Renderer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		fs:       fs,
		renderer: renderer,
		logger:   logger,
	}
}

// executeOperation executes a single operation.
func (e *Engine) executeOperation(op planner.Operation, name naming.ProjectName) error {
	switch op.Type {
	case planner.OpMkdir:
		return e.executeMkdir(op)
	case planner.OpCopy, planner.OpRender:
		return e.executeWrite(op, name)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

// executeMkdir creates a directory unless it already exists.
func (e *Engine) executeMkdir(op planner.Operation) error {
	if err := e.fs.EnsureDir(op.DestPath, op.Mode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// executeWrite writes one file of the template into the target tree.
func (e *Engine) executeWrite(op planner.Operation, name naming.ProjectName) error {
	exists, err := e.fs.Exists(op.DestPath)
	if err != nil {
		return fmt.Errorf("failed to check if path exists: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrOutputAlreadyExists, op.DestPath)
	}

	e.logger.Info("Creating", "path", op.DestPath)

	content, err := e.fs.ReadFile(op.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	if op.Type == planner.OpRender {
		newline := bytes.HasSuffix(content, []byte("\n"))

		rendered, err := e.renderer.Render(string(content), render.Context{
			"project_name": name.String(),
		})
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", op.SourcePath, err)
		}
		if newline {
			rendered += "\n"
		}
		content = []byte(rendered)
	}

	if err := e.fs.CreateFile(op.DestPath, content, op.Mode); err != nil {
		if fsops.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrOutputAlreadyExists, op.DestPath)
		}
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
