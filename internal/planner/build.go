package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/skeletor/internal/fsops"
	"github.com/danieljhkim/skeletor/internal/naming"
)

// DefaultExcludeSuffixes lists file suffixes of compiled artifacts that are
// never copied out of a template.
var DefaultExcludeSuffixes = []string{".pyc"}

const dirPerm os.FileMode = 0755

// Options controls how a template tree is planned.
type Options struct {
	// ExcludeSuffixes are file name suffixes to leave out of the plan.
	// Nil means DefaultExcludeSuffixes.
	ExcludeSuffixes []string

	// ShouldRender selects files for rendering by their template file name.
	// Nil means every file is copied verbatim.
	ShouldRender func(fileName string) bool
}

// BuildScaffoldPlan walks the template tree top-down and returns the
// operations that recreate it under targetRoot.
//
// For each directory, its mkdir operation comes first, then its files, then
// its subdirectories, all in name order. The template root itself gets no
// mkdir operation. Every occurrence of the "project_name" placeholder in a
// directory or file name is replaced by name.
func BuildScaffoldPlan(fs fsops.FS, templateRoot, targetRoot string, name naming.ProjectName, opts Options) (*ScaffoldPlan, error) {
	if opts.ExcludeSuffixes == nil {
		opts.ExcludeSuffixes = DefaultExcludeSuffixes
	}

	b := &builder{
		fs:   fs,
		name: name,
		opts: opts,
		plan: NewScaffoldPlan(templateRoot, targetRoot),
	}
	if err := b.walkDir(templateRoot, ""); err != nil {
		return nil, err
	}
	return b.plan, nil
}

type builder struct {
	fs   fsops.FS
	name naming.ProjectName
	opts Options
	plan *ScaffoldPlan
}

func (b *builder) walkDir(srcDir, relDir string) error {
	if relDir != "" {
		b.plan.AddOperation(Operation{
			Type:       OpMkdir,
			SourcePath: srcDir,
			DestPath:   filepath.Join(b.plan.TargetRoot, relDir),
			RelPath:    relDir,
			Mode:       dirPerm,
		})
	}

	entries, err := b.fs.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	var subdirs []string
	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())

		// Symlinks are resolved so they can be classified; linked
		// directories are not descended into.
		info, err := b.fs.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if info.IsDir() {
			// A target created inside the template tree is not part of it.
			if srcPath == b.plan.TargetRoot {
				continue
			}
			if entry.Type()&os.ModeSymlink == 0 && !SkipDir(entry.Name()) {
				subdirs = append(subdirs, entry.Name())
			}
			continue
		}

		if b.skipFile(entry.Name()) {
			continue
		}

		opType := OpCopy
		if b.opts.ShouldRender != nil && b.opts.ShouldRender(entry.Name()) {
			opType = OpRender
		}

		relPath := filepath.Join(relDir, b.name.Substitute(entry.Name()))
		b.plan.AddOperation(Operation{
			Type:       opType,
			SourcePath: srcPath,
			DestPath:   filepath.Join(b.plan.TargetRoot, relPath),
			RelPath:    relPath,
			Mode:       info.Mode().Perm(),
		})
	}

	for _, dir := range subdirs {
		if err := b.walkDir(filepath.Join(srcDir, dir), filepath.Join(relDir, b.name.Substitute(dir))); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) skipFile(fileName string) bool {
	for _, suffix := range b.opts.ExcludeSuffixes {
		if suffix != "" && strings.HasSuffix(fileName, suffix) {
			return true
		}
	}
	return false
}

// SkipDir reports whether a template directory is left out together with
// everything below it. Hidden directories (".git", ".venv", ...) are skipped.
func SkipDir(dirName string) bool {
	return strings.HasPrefix(dirName, ".")
}
