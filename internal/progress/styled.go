package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// StyledReporter renders colored progress lines. Lipgloss downgrades styling
// automatically when the writer is not a color terminal.
type StyledReporter struct {
	w     io.Writer
	done  int
	total int
}

// NewStyledReporter creates a StyledReporter writing to w.
func NewStyledReporter(w io.Writer) *StyledReporter {
	return &StyledReporter{w: w}
}

func (r *StyledReporter) StageStart(name string, total int) {
	r.done = 0
	r.total = total
	if total > 0 {
		fmt.Fprintf(r.w, "%s %s\n", stageStyle.Render("▸ "+name), countStyle.Render(fmt.Sprintf("(%d items)", total)))
		return
	}
	fmt.Fprintln(r.w, stageStyle.Render("▸ "+name))
}

func (r *StyledReporter) Advance(label string) {
	r.done++
	if r.total > 0 {
		fmt.Fprintf(r.w, "  %s %s\n", countStyle.Render(fmt.Sprintf("[%d/%d]", r.done, r.total)), itemStyle.Render(label))
		return
	}
	fmt.Fprintf(r.w, "  %s\n", itemStyle.Render(label))
}

func (r *StyledReporter) StageEnd(name string) {
	fmt.Fprintln(r.w, doneStyle.Render("✓ "+name))
}
