package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidProjectPath indicates the project root does not exist or is not a
// directory. It is fatal: the pipeline aborts before any chat interaction.
var ErrInvalidProjectPath = errors.New("invalid project path")

// FileCandidate is a file eligible for review based on extension filtering.
type FileCandidate struct {
	Path    string // absolute
	RelPath string // relative to the project root
	Ext     string // lowercase, with leading dot
}

// Options configures traversal. Zero values fall back to the defaults.
type Options struct {
	Extensions   []string // allow-list, lowercase with leading dot
	ExcludedDirs []string // directory names pruned from tree and candidates
}

// DefaultExtensions is the built-in extension allow-list.
var DefaultExtensions = []string{
	".py", ".cpp", ".h", ".hpp", ".c", ".java", ".js", ".ts", ".cs", ".go",
}

// DefaultExcludedDirs is the built-in directory exclusion set: version
// control metadata, IDE config, caches, virtual environments, build output.
var DefaultExcludedDirs = []string{
	".git", ".idea", ".vscode", "__pycache__", ".venv", "build", "node_modules",
}

// Catalog is the result of one read-only traversal of a project root.
type Catalog struct {
	Root  string // absolute project root
	Tree  string // line-rendered directory tree
	Files []FileCandidate
}

// Build walks root and returns its rendered tree plus every candidate file,
// in lexical order at every level. Excluded directories are pruned entirely:
// nothing beneath them appears in the tree or the candidate list.
func Build(root string, opts Options) (*Catalog, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProjectPath, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	w := &walker{
		extensions: toSet(opts.Extensions, DefaultExtensions),
		excluded:   toSet(opts.ExcludedDirs, DefaultExcludedDirs),
		root:       abs,
	}
	if err := w.walk(abs, ""); err != nil {
		return nil, err
	}

	return &Catalog{
		Root:  abs,
		Tree:  strings.Join(w.lines, "\n"),
		Files: w.files,
	}, nil
}

type walker struct {
	extensions map[string]bool
	excluded   map[string]bool
	root       string
	lines      []string
	files      []FileCandidate
}

// walk renders one tree level and collects candidates. os.ReadDir returns
// entries sorted by name, which gives the lexical order the tree needs.
func (w *walker) walk(dir, indent string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directory: annotate its existing tree line (appended by
		// the parent just before recursing) and keep going. The root has no
		// line of its own yet.
		if n := len(w.lines); n > 0 {
			w.lines[n-1] += " [unreadable]"
		} else {
			w.lines = append(w.lines, "[unreadable]")
		}
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		// Exclusion matches case-insensitively, same as the extension set
		if entry.IsDir() && w.excluded[strings.ToLower(name)] {
			continue
		}

		w.lines = append(w.lines, indent+"├── "+name)

		path := filepath.Join(dir, name)
		if entry.IsDir() {
			if err := w.walk(path, indent+"│   "); err != nil {
				return err
			}
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !w.extensions[ext] {
			continue
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		w.files = append(w.files, FileCandidate{
			Path:    path,
			RelPath: rel,
			Ext:     ext,
		})
	}
	return nil
}

func toSet(values, fallback []string) map[string]bool {
	if len(values) == 0 {
		values = fallback
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}
