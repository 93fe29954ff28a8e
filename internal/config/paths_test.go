package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv("SKELETOR_ROOT", "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
		if filepath.Base(paths.Root) != ".skeletor" {
			t.Errorf("Root should end with .skeletor, got: %s", paths.Root)
		}

		home, err := os.UserHomeDir()
		if err == nil && paths.Root != filepath.Join(home, ".skeletor") {
			t.Errorf("Root = %s, want under %s", paths.Root, home)
		}
	})

	t.Run("respects SKELETOR_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/skeletor/path"
		t.Setenv("SKELETOR_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Root = %s, want %s", paths.Root, customRoot)
		}
		if paths.Config != filepath.Join(customRoot, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})
}
