package engine

import "errors"

var (
	// ErrTemplateNotFound indicates the template directory does not exist.
	ErrTemplateNotFound = errors.New("could not find template directory")

	// ErrTargetAlreadyExists indicates the auto-derived target directory exists.
	ErrTargetAlreadyExists = errors.New("target already exists")

	// ErrTargetDirectoryMissing indicates an explicit target directory does not exist.
	ErrTargetDirectoryMissing = errors.New("target directory does not exist")

	// ErrOutputAlreadyExists indicates a destination file already exists.
	ErrOutputAlreadyExists = errors.New("output already exists")
)
