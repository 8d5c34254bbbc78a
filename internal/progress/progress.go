package progress

import (
	"fmt"
	"io"
)

// Reporter consumes discrete progress events from the orchestrator. The
// orchestrator never branches on the concrete implementation.
type Reporter interface {
	// StageStart announces a stage; total is the number of Advance calls
	// expected (0 when a stage is a single submission).
	StageStart(name string, total int)
	// Advance records one unit of work, labeled with the item just handled.
	Advance(label string)
	// StageEnd announces stage completion.
	StageEnd(name string)
}

// Nop is a Reporter that discards all events.
type Nop struct{}

func (Nop) StageStart(string, int) {}
func (Nop) Advance(string)         {}
func (Nop) StageEnd(string)        {}

// LineReporter prints one plain status line per event. It is the default
// reporter and the fallback for non-terminal output.
type LineReporter struct {
	w     io.Writer
	done  int
	total int
}

// NewLineReporter creates a LineReporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w}
}

func (r *LineReporter) StageStart(name string, total int) {
	r.done = 0
	r.total = total
	if total > 0 {
		fmt.Fprintf(r.w, "==> %s (%d items)\n", name, total)
		return
	}
	fmt.Fprintf(r.w, "==> %s\n", name)
}

func (r *LineReporter) Advance(label string) {
	r.done++
	if r.total > 0 {
		fmt.Fprintf(r.w, "    [%d/%d] %s\n", r.done, r.total, label)
		return
	}
	fmt.Fprintf(r.w, "    %s\n", label)
}

func (r *LineReporter) StageEnd(name string) {
	fmt.Fprintf(r.w, "<== %s done\n", name)
}
