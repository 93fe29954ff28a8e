// Package render decides which template files are rendered and renders them.
//
// Files selected by a Rule are passed through a Renderer with a Context that
// exposes the project name. All other files are copied verbatim.
package render

import "strings"

// Rule selects files for rendering by suffix or by exact file name.
// Matching is case-sensitive.
type Rule struct {
	// Extensions are file name suffixes, e.g. ".rst" or ".cfg".
	Extensions []string

	// Filenames are exact file names, e.g. "Makefile".
	Filenames []string
}

// NewRule creates a Rule, dropping empty entries.
func NewRule(extensions, filenames []string) Rule {
	return Rule{
		Extensions: nonEmpty(extensions),
		Filenames:  nonEmpty(filenames),
	}
}

// ShouldRender reports whether fileName ends with one of the rule's
// extensions or equals one of its file names.
func (r Rule) ShouldRender(fileName string) bool {
	for _, ext := range r.Extensions {
		if strings.HasSuffix(fileName, ext) {
			return true
		}
	}
	for _, name := range r.Filenames {
		if fileName == name {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the rule selects no files.
func (r Rule) IsEmpty() bool {
	return len(r.Extensions) == 0 && len(r.Filenames) == 0
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
