package review

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	descriptionFile = "description.txt"
	readmeFile      = "README.md"
)

// LoadProjectContext assembles the intake material for a project root.
// A description.txt at the root overrides the CLI-supplied description;
// README.md is read if present, otherwise the sentinel stands in. Read
// failures on either optional file degrade to the fallback rather than
// failing the run.
func LoadProjectContext(root, cliDescription string) ProjectContext {
	pctx := ProjectContext{
		Root:        root,
		Description: cliDescription,
		Readme:      ReadmeNotFound,
	}

	if data, err := os.ReadFile(filepath.Join(root, descriptionFile)); err == nil {
		if desc := strings.TrimSpace(string(data)); desc != "" {
			pctx.Description = desc
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, readmeFile)); err == nil {
		pctx.Readme = strings.TrimSpace(string(data))
	}

	return pctx
}
