package review

import (
	"strings"
	"testing"
)

func TestBuildDescriptionPrompt(t *testing.T) {
	p := BuildDescriptionPrompt("A demo app", "Demo")
	if !strings.Contains(p, "A demo app") {
		t.Error("prompt missing description")
	}
	if !strings.Contains(p, "Demo") {
		t.Error("prompt missing README content")
	}
}

func TestBuildDescriptionPrompt_Sentinel(t *testing.T) {
	p := BuildDescriptionPrompt("x", ReadmeNotFound)
	if !strings.Contains(p, ReadmeNotFound) {
		t.Error("prompt missing README sentinel")
	}
}

func TestBuildStructurePrompt(t *testing.T) {
	tree := "├── main.py\n├── util.py"
	p := BuildStructurePrompt(tree)
	if !strings.Contains(p, tree) {
		t.Error("prompt missing tree")
	}
	if !strings.Contains(p, "architecture") {
		t.Error("prompt missing architecture ask")
	}
}

func TestBuildFilePrompt(t *testing.T) {
	p := BuildFilePrompt("src/main.py", ".py", "print(1)")
	if !strings.Contains(p, "src/main.py") {
		t.Error("prompt missing relative path")
	}
	if !strings.Contains(p, "```py\nprint(1)\n```") {
		t.Errorf("prompt missing fenced code:\n%s", p)
	}
	for _, topic := range []string{"Bugs", "Security", "Logic", "Style", "Maintainability"} {
		if !strings.Contains(p, topic) {
			t.Errorf("prompt missing topic %q", topic)
		}
	}
}

func TestSummaryPrompt(t *testing.T) {
	p := SummaryPrompt()
	for _, topic := range []string{"critical bugs", "security", "architectural", "flow", "Best practice"} {
		if !strings.Contains(p, topic) {
			t.Errorf("summary prompt missing %q", topic)
		}
	}
	if !strings.Contains(p, "Avoid repeating raw code") {
		t.Error("summary prompt must forbid raw code")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("z", 5000)

	got := Truncate(long, 3000)
	if len([]rune(got)) != 3000 {
		t.Errorf("truncated length = %d, want exactly 3000", len([]rune(got)))
	}

	short := "short content"
	if Truncate(short, 3000) != short {
		t.Error("content within the cap must be unmodified")
	}

	if Truncate(long, 0) != long {
		t.Error("cap <= 0 disables truncation")
	}
}

func TestTruncate_Multibyte(t *testing.T) {
	text := strings.Repeat("é", 10)
	got := Truncate(text, 4)
	if got != "éééé" {
		t.Errorf("Truncate = %q, want 4 runes", got)
	}
}
