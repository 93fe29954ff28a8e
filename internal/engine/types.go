package engine

import (
	"github.com/danieljhkim/skeletor/internal/planner"
	"github.com/danieljhkim/skeletor/internal/render"
)

// ScaffoldRequest represents a request to scaffold a project from a template.
type ScaffoldRequest struct {
	// Name is the project name as given by the user (validated by Scaffold)
	Name string

	// TemplateDir is the template directory ("~" is expanded)
	TemplateDir string

	// TargetDir is the directory to populate. If empty, a new directory
	// named after the project is created in CWD.
	TargetDir string

	// CWD is the current working directory
	CWD string

	// Rule selects the files rendered through the template engine
	Rule render.Rule

	// ExcludeSuffixes are file suffixes left out of the scaffold
	// (nil means planner.DefaultExcludeSuffixes)
	ExcludeSuffixes []string

	// DryRun performs planning only without making changes
	DryRun bool
}

// ScaffoldResult represents the result of scaffolding a project.
type ScaffoldResult struct {
	// ProjectName is the validated project name
	ProjectName string `json:"project_name"`

	// TemplateRoot is the absolute template directory
	TemplateRoot string `json:"template_root"`

	// TargetRoot is the absolute target directory
	TargetRoot string `json:"target_root"`

	// CreatedTarget is true if the target directory was created by this run
	CreatedTarget bool `json:"created_target"`

	// Plan is the generated plan
	Plan *planner.ScaffoldPlan `json:"-"`

	// Operations is the list of operations that were executed (planned ones if DryRun)
	Operations []planner.Operation `json:"operations"`

	// Conflicts lists colliding outputs found during a dry run
	Conflicts []planner.Conflict `json:"conflicts,omitempty"`

	// DryRun is true if nothing was written
	DryRun bool `json:"dry_run"`
}

// FileCount returns the number of file operations in the result.
func (r *ScaffoldResult) FileCount() int {
	n := 0
	for _, op := range r.Operations {
		if op.IsFile() {
			n++
		}
	}
	return n
}
