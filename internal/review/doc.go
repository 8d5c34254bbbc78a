// Package review orchestrates the four-stage conversational project review.
//
// One Orchestrator owns one conversation.Session for one run. Stages run
// strictly in order — description intake, structure analysis, per-file
// review, summary — because each submission depends on the full transcript
// accumulated by the previous ones. Failures are handled at the smallest
// enclosing unit: an unreadable file or a failed submission becomes an
// error-tagged FileOutcome and the loop continues; only an invalid project
// root (caught before any session exists) aborts a run.
//
// Per-file payloads are redacted and truncated to a fixed character cap
// before submission, since the transcript already carries every prior turn.
package review
