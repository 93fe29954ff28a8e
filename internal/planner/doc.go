// Package planner handles the planning phase of scaffolding.
//
// The planner walks a template tree and produces a deterministic, ordered
// list of operations that recreate it under a target directory. It applies
// project name substitution to every path segment and decides which files
// are rendered and which are copied verbatim.
//
// Key responsibilities:
//   - Generate ScaffoldPlan with ordered operations (top-down, depth-first)
//   - Prune hidden directories before descending into them
//   - Skip compiled artifacts such as .pyc files
//   - Detect pre-existing outputs for dry runs
package planner
