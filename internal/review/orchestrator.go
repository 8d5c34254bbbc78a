package review

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/scout/internal/catalog"
	"github.com/dshills/scout/internal/conversation"
	"github.com/dshills/scout/internal/progress"
	"github.com/dshills/scout/internal/redact"
)

// Stage names as reported to the progress reporter and tagged in output.
const (
	StageDescription = "project description"
	StageStructure   = "structure analysis"
	StageFiles       = "file review"
	StageSummary     = "project summary"
)

// readFailurePlaceholder is submitted in place of a file body that could not
// be read, so the conversation still covers the file.
const readFailurePlaceholder = "// error reading file content"

// Options configures a review run.
type Options struct {
	Provider      string
	Model         string
	MaxFileChars  int  // per-file content cap; <= 0 disables truncation
	RedactSecrets bool // scrub file content before prompting
	RedactPaths   []string
}

// Orchestrator drives the four review stages over one conversation session.
// It is the session's only caller for the duration of a run.
type Orchestrator struct {
	session  *conversation.Session
	reporter progress.Reporter
	opts     Options
}

// NewOrchestrator creates an Orchestrator. A nil reporter falls back to Nop.
func NewOrchestrator(session *conversation.Session, reporter progress.Reporter, opts Options) *Orchestrator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Orchestrator{session: session, reporter: reporter, opts: opts}
}

// Run executes the four stages in order: description intake, structure
// analysis, per-file review, and summary. No stage is skipped when an earlier
// one produced an error reply; error placeholders flow through the transcript
// as ordinary content so later stages can react to them. Failures inside a
// stage are recoverable and recorded, never raised. The session is reset
// unconditionally when Run returns, so no transcript leaks into another run.
func (o *Orchestrator) Run(ctx context.Context, pctx ProjectContext, cat *catalog.Catalog, files []catalog.FileCandidate) *RunReport {
	defer o.session.Reset()

	started := time.Now()
	report := &RunReport{
		RunID:    uuid.NewString(),
		Root:     pctx.Root,
		Provider: o.opts.Provider,
		Model:    o.opts.Model,
		Started:  started,
	}

	// Stage 1: description intake
	o.reporter.StageStart(StageDescription, 0)
	reply, _ := o.session.Submit(ctx, BuildDescriptionPrompt(pctx.Description, pctx.Readme))
	report.Description = reply
	o.reporter.StageEnd(StageDescription)

	// Stage 2: structure analysis
	o.reporter.StageStart(StageStructure, 0)
	reply, _ = o.session.Submit(ctx, BuildStructurePrompt(cat.Tree))
	report.Structure = reply
	o.reporter.StageEnd(StageStructure)

	// Stage 3: per-file review, one submission per file
	o.reporter.StageStart(StageFiles, len(files))
	report.Outcomes = make([]FileOutcome, 0, len(files))
	for _, f := range files {
		report.Outcomes = append(report.Outcomes, o.reviewFile(ctx, f))
		o.reporter.Advance(f.RelPath)
	}
	o.reporter.StageEnd(StageFiles)

	// Stage 4: project-wide summary
	o.reporter.StageStart(StageSummary, 0)
	reply, _ = o.session.Submit(ctx, SummaryPrompt())
	report.Summary = reply
	o.reporter.StageEnd(StageSummary)

	report.Elapsed = time.Since(started)
	return report
}

// reviewFile isolates one file's review: a read failure degrades to a
// placeholder body (the file is still discussed), and any failure is
// recorded as an error-tagged outcome without stopping the loop.
func (o *Orchestrator) reviewFile(ctx context.Context, f catalog.FileCandidate) FileOutcome {
	var readErr error
	content := readFailurePlaceholder
	if data, err := os.ReadFile(f.Path); err != nil {
		readErr = err
	} else {
		content = string(data)
	}

	if o.opts.RedactSecrets {
		content = redact.FileContent(content, f.RelPath, o.opts.RedactPaths)
	}
	content = Truncate(content, o.opts.MaxFileChars)

	reply, submitErr := o.session.Submit(ctx, BuildFilePrompt(f.RelPath, f.Ext, content))

	switch {
	case readErr != nil:
		return FileOutcome{RelPath: f.RelPath, Err: fmt.Sprintf("reading file: %v", readErr)}
	case submitErr != nil:
		return FileOutcome{RelPath: f.RelPath, Err: fmt.Sprintf("submitting review: %v", submitErr)}
	default:
		return FileOutcome{RelPath: f.RelPath, Reply: reply}
	}
}
