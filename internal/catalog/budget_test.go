package catalog

import (
	"reflect"
	"testing"
)

func candidates(names ...string) []FileCandidate {
	files := make([]FileCandidate, 0, len(names))
	for _, n := range names {
		files = append(files, FileCandidate{RelPath: n})
	}
	return files
}

func relPaths(files []FileCandidate) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestBudget_NoLimit(t *testing.T) {
	files := candidates("util.py", "main.py", "helpers.py")
	got := Budget(files, 0, nil)
	if !reflect.DeepEqual(got, files) {
		t.Errorf("Budget with no limit changed the list: %v", relPaths(got))
	}
}

func TestBudget_LimitEqualsLength(t *testing.T) {
	files := candidates("util.py", "main.py")
	got := Budget(files, len(files), nil)
	if !reflect.DeepEqual(got, files) {
		t.Errorf("Budget with limit == len changed the list: %v", relPaths(got))
	}
}

func TestBudget_PriorityFirst(t *testing.T) {
	files := candidates("zeta.py", "util.py", "main.py", "app.py", "misc.py")
	got := Budget(files, 3, nil)

	want := []string{"main.py", "app.py", "zeta.py"}
	if !reflect.DeepEqual(relPaths(got), want) {
		t.Errorf("Budget = %v, want %v", relPaths(got), want)
	}
}

func TestBudget_PartitionsPreserveOrder(t *testing.T) {
	files := candidates("core_b.py", "x.py", "core_a.py", "y.py", "index.js")
	got := Budget(files, 4, nil)

	// Priority partition keeps input order: core_b, core_a, index
	want := []string{"core_b.py", "core_a.py", "index.js", "x.py"}
	if !reflect.DeepEqual(relPaths(got), want) {
		t.Errorf("Budget = %v, want %v", relPaths(got), want)
	}
}

func TestBudget_Deterministic(t *testing.T) {
	files := candidates("a.py", "main.py", "b.py", "app.py", "c.py")
	first := relPaths(Budget(files, 3, nil))
	for i := 0; i < 5; i++ {
		if got := relPaths(Budget(files, 3, nil)); !reflect.DeepEqual(got, first) {
			t.Fatalf("Budget not deterministic: %v vs %v", got, first)
		}
	}
}

func TestIsPriority(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{"main.py", true},
		{"MainWindow.cpp", true},
		{"src/app_server.go", true},
		{"core.js", true},
		{"index.ts", true},
		{"util.py", false},
		{"domain.go", false},
		// marker in the extension does not count
		{"notes.mainx", false},
	}
	for _, tt := range tests {
		f := FileCandidate{RelPath: tt.rel}
		if got := IsPriority(f, DefaultMarkers); got != tt.want {
			t.Errorf("IsPriority(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}
