package output

import (
	"io"
	"strings"

	"github.com/dshills/scout/internal/review"
)

// MarkdownWriter outputs the run report as a markdown document, one heading
// per stage in stage order.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *review.RunReport) error {
	ew := &errWriter{w: w}

	ew.printf("# Scout Project Review\n\n")
	ew.printf("- **Project:** `%s`\n", report.Root)
	ew.printf("- **Run:** `%s`\n", report.RunID)
	ew.printf("- **Provider:** %s (%s)\n\n", report.Provider, report.Model)

	ew.printf("## %s\n\n%s\n\n", headerCase(review.StageDescription), report.Description)
	ew.printf("## %s\n\n%s\n\n", headerCase(review.StageStructure), report.Structure)

	ew.printf("## %s\n\n", headerCase(review.StageFiles))
	for _, o := range report.Outcomes {
		if o.Failed() {
			ew.printf("### `%s`\n\n**Error:** %s\n\n", o.RelPath, o.Err)
			continue
		}
		ew.printf("### `%s`\n\n%s\n\n", o.RelPath, o.Reply)
	}

	ew.printf("## %s\n\n%s\n", headerCase(review.StageSummary), report.Summary)

	return ew.err
}

func headerCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
