// Package integration exercises the scaffolding engine end to end against
// real template trees on disk.
package integration

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/danieljhkim/skeletor/internal/engine"
	"github.com/danieljhkim/skeletor/internal/fsops"
	"github.com/danieljhkim/skeletor/internal/render"
)

// newTestEngine creates an engine backed by the real filesystem.
func newTestEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), render.NewPongo2Renderer(), nil)
}

// writeTree creates files under root. Keys ending in "/" create empty
// directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("failed to create dir %s: %v", rel, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// listTree returns the sorted slash-separated paths below root. Directories
// carry a trailing "/".
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}

// expectedTree computes the scaffold output for a template listing: hidden
// directories are pruned with their contents, .pyc files are dropped and the
// placeholder is replaced in every segment.
func expectedTree(paths []string, name string) []string {
	var out []string
	for _, p := range paths {
		isDir := strings.HasSuffix(p, "/")
		segments := strings.Split(strings.TrimSuffix(p, "/"), "/")

		skip := false
		for i, seg := range segments {
			last := i == len(segments)-1
			if strings.HasPrefix(seg, ".") && (!last || isDir) {
				skip = true
				break
			}
			if last && !isDir && strings.HasSuffix(seg, ".pyc") {
				skip = true
			}
			segments[i] = strings.ReplaceAll(seg, "project_name", name)
		}
		if skip {
			continue
		}

		rel := strings.Join(segments, "/")
		if isDir {
			rel += "/"
		}
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}
