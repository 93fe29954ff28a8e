package planner

import (
	"fmt"

	"github.com/danieljhkim/skeletor/internal/fsops"
)

// ConflictChecker checks whether a plan would collide with existing paths.
type ConflictChecker struct {
	fs fsops.FS
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{fs: fs}
}

// CheckOperation checks for conflicts at the operation's destination path.
// Returns a Conflict if one is detected, or nil if the operation is safe.
// An existing directory is fine for a mkdir; anything existing at a file
// destination is a conflict.
func (c *ConflictChecker) CheckOperation(op Operation) *Conflict {
	exists, err := c.fs.Exists(op.DestPath)
	if err != nil {
		return &Conflict{
			Path:   op.DestPath,
			Reason: fmt.Sprintf("Failed to check path: %v", err),
		}
	}
	if !exists {
		return nil
	}

	if op.Type != OpMkdir {
		return &Conflict{
			Path:   op.DestPath,
			Reason: "Output already exists",
		}
	}

	info, err := c.fs.Stat(op.DestPath)
	if err != nil {
		return &Conflict{
			Path:   op.DestPath,
			Reason: fmt.Sprintf("Failed to stat existing path: %v", err),
		}
	}
	if !info.IsDir() {
		return &Conflict{
			Path:   op.DestPath,
			Reason: "Type mismatch: existing is file, incoming is directory",
		}
	}

	return nil
}

// CheckPlan records a conflict on the plan for every colliding operation.
func (c *ConflictChecker) CheckPlan(plan *ScaffoldPlan) {
	for _, op := range plan.Operations {
		if conflict := c.CheckOperation(op); conflict != nil {
			plan.AddConflict(*conflict)
		}
	}
}
