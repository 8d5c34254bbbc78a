// Package progress reports review progress as discrete events.
//
// The Reporter interface decouples the orchestrator from presentation:
// LineReporter prints plain status lines, StyledReporter renders the same
// events with lipgloss colors, and Nop discards them.
package progress
