package cli

import (
	"path/filepath"
	"testing"

	"github.com/dshills/scout/internal/config"
)

func TestExitCodesDistinct(t *testing.T) {
	codes := []int{ExitSuccess, ExitUsageError, ExitInvalidPath, ExitAuthError, ExitRuntimeError}
	seen := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			t.Fatalf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 {
		t.Error("success must be zero")
	}
}

func TestBuildOverrides(t *testing.T) {
	defer func() {
		flagProvider, flagModel, flagFormat, flagLimit = "", "", "", 0
	}()

	flagProvider = "openai"
	flagModel = "gpt-4.1-mini"
	flagFormat = "json"
	flagLimit = 5

	m := buildOverrides()
	if m["provider"] != "openai" || m["model"] != "gpt-4.1-mini" || m["format"] != "json" || m["limit"] != "5" {
		t.Errorf("overrides = %v", m)
	}
}

func TestBuildOverrides_Empty(t *testing.T) {
	flagProvider, flagModel, flagFormat, flagLimit = "", "", "", 0
	if m := buildOverrides(); len(m) != 0 {
		t.Errorf("overrides = %v, want empty", m)
	}
}

func TestRunAnalyze_InvalidPath(t *testing.T) {
	defer func() { exitCode = ExitSuccess }()
	exitCode = ExitSuccess

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	runAnalyze(missing, config.Default())

	if exitCode != ExitInvalidPath {
		t.Errorf("exitCode = %d, want ExitInvalidPath (%d)", exitCode, ExitInvalidPath)
	}
}
