package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/skeletor/internal/fsops"
	"github.com/danieljhkim/skeletor/internal/naming"
	"github.com/danieljhkim/skeletor/internal/planner"
)

// Algorithm steps:
// 1. Validate the project name
// 2. Resolve the template directory (must exist)
// 3. Resolve the target directory (create it, or require it to exist)
// 4. Build the plan
// 5. Report conflicts and stop (if DryRun)
// 6. Execute operations in order, stopping at the first error
// 7. Return result
//
// Everything before step 3 is read-only. A failure during step 6 leaves the
// files written so far in place.
func (e *Engine) Scaffold(req *ScaffoldRequest) (*ScaffoldResult, error) {
	name, err := naming.Validate(req.Name)
	if err != nil {
		return nil, err
	}

	templateRoot, err := e.resolveTemplate(req.TemplateDir)
	if err != nil {
		return nil, err
	}

	targetRoot, created, err := e.resolveTarget(req, name)
	if err != nil {
		return nil, err
	}

	plan, err := planner.BuildScaffoldPlan(e.fs, templateRoot, targetRoot, name, planner.Options{
		ExcludeSuffixes: req.ExcludeSuffixes,
		ShouldRender:    req.Rule.ShouldRender,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build scaffold plan: %w", err)
	}

	result := &ScaffoldResult{
		ProjectName:   name.String(),
		TemplateRoot:  templateRoot,
		TargetRoot:    targetRoot,
		CreatedTarget: created,
		Plan:          plan,
		Operations:    []planner.Operation{},
		DryRun:        req.DryRun,
	}

	if req.DryRun {
		planner.NewConflictChecker(e.fs).CheckPlan(plan)
		result.Operations = plan.Operations
		result.Conflicts = plan.Conflicts
		if plan.HasConflicts() {
			return result, fmt.Errorf("%w: %d conflicting paths", ErrOutputAlreadyExists, len(plan.Conflicts))
		}
		return result, nil
	}

	for _, op := range plan.Operations {
		if err := e.executeOperation(op, name); err != nil {
			return nil, err
		}
		result.Operations = append(result.Operations, op)
	}

	e.logger.Info("Scaffolded project",
		"name", name.String(),
		"target", targetRoot,
		"files", result.FileCount(),
	)

	return result, nil
}

// resolveTemplate returns the absolute template directory.
func (e *Engine) resolveTemplate(dir string) (string, error) {
	templateRoot, err := fsops.ExpandPath(dir)
	if err != nil {
		return "", err
	}

	info, err := e.fs.Stat(templateRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w '%s'", ErrTemplateNotFound, templateRoot)
		}
		return "", fmt.Errorf("failed to stat template directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w '%s': not a directory", ErrTemplateNotFound, templateRoot)
	}

	return templateRoot, nil
}

// resolveTarget returns the absolute target directory and whether it was
// created. Without an explicit directory, CWD/<name> is created and must not
// exist yet; an explicit directory must already exist.
func (e *Engine) resolveTarget(req *ScaffoldRequest, name naming.ProjectName) (string, bool, error) {
	if req.TargetDir != "" {
		targetRoot, err := fsops.ExpandPath(req.TargetDir)
		if err != nil {
			return "", false, err
		}

		info, err := e.fs.Stat(targetRoot)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("%w: '%s'. Please create it first", ErrTargetDirectoryMissing, targetRoot)
			}
			return "", false, fmt.Errorf("failed to stat target directory: %w", err)
		}
		if !info.IsDir() {
			return "", false, fmt.Errorf("%w: '%s' is not a directory", ErrTargetDirectoryMissing, targetRoot)
		}
		return targetRoot, false, nil
	}

	cwd := req.CWD
	if cwd == "" {
		var err error
		if cwd, err = os.Getwd(); err != nil {
			return "", false, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	targetRoot, err := fsops.ExpandPath(filepath.Join(cwd, name.String()))
	if err != nil {
		return "", false, err
	}

	if req.DryRun {
		exists, err := e.fs.Exists(targetRoot)
		if err != nil {
			return "", false, fmt.Errorf("failed to check target directory: %w", err)
		}
		if exists {
			return "", false, fmt.Errorf("%w: '%s'", ErrTargetAlreadyExists, targetRoot)
		}
		return targetRoot, false, nil
	}

	if err := e.fs.Mkdir(targetRoot, 0755); err != nil {
		if fsops.IsExist(err) {
			return "", false, fmt.Errorf("%w: '%s'", ErrTargetAlreadyExists, targetRoot)
		}
		return "", false, fmt.Errorf("failed to create target directory: %w", err)
	}
	return targetRoot, true, nil
}
