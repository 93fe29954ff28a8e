package planner

import "os"

// ScaffoldPlan represents a plan to scaffold a template tree into a target directory.
type ScaffoldPlan struct {
	// TemplateRoot is the absolute path of the template tree
	TemplateRoot string

	// TargetRoot is the absolute path of the directory being populated
	TargetRoot string

	// Operations is the ordered list of operations to execute
	Operations []Operation

	// Conflicts is a list of detected conflicts (only filled for dry runs)
	Conflicts []Conflict
}

// Operation represents a single filesystem operation to execute.
type Operation struct {
	// Type is the operation type: "mkdir", "copy", "render"
	Type string `json:"type"`

	// SourcePath is the path in the template tree (absolute)
	SourcePath string `json:"source"`

	// DestPath is the path in the target tree (absolute)
	DestPath string `json:"dest"`

	// RelPath is the substituted path relative to the target root
	RelPath string `json:"rel_path"`

	// Mode is the permission bits to create the entry with
	Mode os.FileMode `json:"-"`
}

// Conflict represents a conflict detected during planning.
type Conflict struct {
	// Path is the target path where the conflict was detected
	Path string `json:"path"`

	// Reason is a human-readable explanation of the conflict
	Reason string `json:"reason"`
}

// Operation type constants
const (
	OpMkdir  = "mkdir"
	OpCopy   = "copy"
	OpRender = "render"
)

// NewScaffoldPlan creates a new empty ScaffoldPlan.
func NewScaffoldPlan(templateRoot, targetRoot string) *ScaffoldPlan {
	return &ScaffoldPlan{
		TemplateRoot: templateRoot,
		TargetRoot:   targetRoot,
		Operations:   []Operation{},
		Conflicts:    []Conflict{},
	}
}

// IsFile returns true if the operation writes a file.
func (op Operation) IsFile() bool {
	return op.Type == OpCopy || op.Type == OpRender
}

// HasConflicts returns true if the plan has any conflicts.
func (p *ScaffoldPlan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// AddOperation adds an operation to the plan.
func (p *ScaffoldPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// AddConflict adds a conflict to the plan.
func (p *ScaffoldPlan) AddConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}

// FileCount returns the number of files the plan writes.
func (p *ScaffoldPlan) FileCount() int {
	n := 0
	for _, op := range p.Operations {
		if op.IsFile() {
			n++
		}
	}
	return n
}
