package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/scout/internal/review"
)

// JSONWriter outputs the run report as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *review.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
