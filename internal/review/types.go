package review

import "time"

// ProjectContext is the read-only input describing the project under review.
type ProjectContext struct {
	Root        string
	Description string
	Readme      string // file content, or the ReadmeNotFound sentinel
}

// ReadmeNotFound is embedded in the intake prompt when the project has no
// README.md.
const ReadmeNotFound = "README.md not found."

// FileOutcome records the result of reviewing one file: either the assistant
// reply or an error description, never both. A non-empty Err wins.
type FileOutcome struct {
	RelPath string `json:"relPath"`
	Reply   string `json:"reply,omitempty"`
	Err     string `json:"error,omitempty"`
}

// Failed reports whether the outcome carries an error tag.
func (o FileOutcome) Failed() bool { return o.Err != "" }

// RunReport aggregates every stage reply from one review run, in stage order.
type RunReport struct {
	RunID       string        `json:"runId"`
	Root        string        `json:"root"`
	Provider    string        `json:"provider"`
	Model       string        `json:"model"`
	Started     time.Time     `json:"started"`
	Elapsed     time.Duration `json:"elapsed"`
	Description string        `json:"description"` // stage 1 reply
	Structure   string        `json:"structure"`   // stage 2 reply
	Outcomes    []FileOutcome `json:"files"`       // stage 3, budgeted order
	Summary     string        `json:"summary"`     // stage 4 reply
}

// FailedFiles counts error-tagged outcomes.
func (r *RunReport) FailedFiles() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}
