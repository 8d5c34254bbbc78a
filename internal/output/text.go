package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dshills/scout/internal/review"
)

const (
	rule     = 60
	timeUnit = time.Millisecond
)

// TextWriter outputs a human-readable report, one section per stage in
// stage order.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.RunReport) error {
	ew := &errWriter{w: w}

	ew.printf("Scout Project Review — %s\n", report.Root)
	ew.printf("Run %s | %s/%s\n", report.RunID, report.Provider, report.Model)
	ew.println(strings.Repeat("─", rule))

	ew.printf("\n[%s]\n", review.StageDescription)
	ew.println(report.Description)

	ew.printf("\n[%s]\n", review.StageStructure)
	ew.println(report.Structure)

	for _, o := range report.Outcomes {
		if o.Failed() {
			ew.printf("\n[%s: %s] ERROR\n", review.StageFiles, o.RelPath)
			ew.println(o.Err)
			continue
		}
		ew.printf("\n[%s: %s]\n", review.StageFiles, o.RelPath)
		ew.println(o.Reply)
	}

	ew.printf("\n[%s]\n", review.StageSummary)
	ew.println(report.Summary)

	ew.printf("\n%s\n", strings.Repeat("─", rule))
	ew.printf("Reviewed %d files (%d failed) in %s\n",
		len(report.Outcomes), report.FailedFiles(), report.Elapsed.Round(timeUnit))

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
