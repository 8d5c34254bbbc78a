package review

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectContext_Defaults(t *testing.T) {
	root := t.TempDir()
	pctx := LoadProjectContext(root, "A demo app")

	if pctx.Description != "A demo app" {
		t.Errorf("Description = %q", pctx.Description)
	}
	if pctx.Readme != ReadmeNotFound {
		t.Errorf("Readme = %q, want sentinel", pctx.Readme)
	}
	if pctx.Root != root {
		t.Errorf("Root = %q", pctx.Root)
	}
}

func TestLoadProjectContext_ReadmePresent(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("Demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pctx := LoadProjectContext(root, "cli desc")
	if pctx.Readme != "Demo" {
		t.Errorf("Readme = %q, want %q", pctx.Readme, "Demo")
	}
}

func TestLoadProjectContext_DescriptionFileOverrides(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "description.txt"), []byte("from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pctx := LoadProjectContext(root, "from cli")
	if pctx.Description != "from file" {
		t.Errorf("Description = %q, want description.txt to win", pctx.Description)
	}
}

func TestLoadProjectContext_EmptyDescriptionFileIgnored(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "description.txt"), []byte("   \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pctx := LoadProjectContext(root, "from cli")
	if pctx.Description != "from cli" {
		t.Errorf("Description = %q, blank file must not override", pctx.Description)
	}
}
