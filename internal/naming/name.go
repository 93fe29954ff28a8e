// Package naming validates project names and applies them to template paths.
//
// A project name must look like an identifier: a letter or underscore
// followed by letters, digits or underscores. The validated name replaces
// every occurrence of the "project_name" placeholder in file and directory
// names of a template tree.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is the literal text replaced by the project name in path segments.
const Placeholder = "project_name"

// ErrInvalidProjectName indicates the project name is not identifier-like.
var ErrInvalidProjectName = errors.New("invalid project name")

var (
	validName  = regexp.MustCompile(`^[_A-Za-z][_A-Za-z0-9]*$`)
	validStart = regexp.MustCompile(`^[_A-Za-z]`)
)

// ProjectName is a validated project name.
type ProjectName string

// Validate checks name and returns it as a ProjectName.
// When the name is rejected, the error explains which rule was broken; a bad
// first character is reported before bad characters elsewhere.
func Validate(name string) (ProjectName, error) {
	if validName.MatchString(name) {
		return ProjectName(name), nil
	}

	hint := "use only letters, numbers and underscores"
	if !validStart.MatchString(name) {
		hint = "make sure that the name starts with a letter or an underscore"
	}
	return "", &InvalidNameError{Name: name, Hint: hint}
}

// String returns the name as a plain string.
func (n ProjectName) String() string {
	return string(n)
}

// Substitute replaces every occurrence of the placeholder in s with the name.
// Partial matches inside longer names are replaced too.
func (n ProjectName) Substitute(s string) string {
	return strings.ReplaceAll(s, Placeholder, string(n))
}

// InvalidNameError describes a rejected project name.
type InvalidNameError struct {
	Name string
	Hint string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%q is not a valid project name. Please %s.", e.Name, e.Hint)
}

// Unwrap lets callers match the error with errors.Is(err, ErrInvalidProjectName).
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidProjectName
}
