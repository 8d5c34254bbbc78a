// Package conversation holds the stateful chat session for one review run.
//
// A Session wraps an append-only transcript of user and assistant turns and a
// providers.Chatter. Submit grows the transcript by exactly two turns on
// success and one (the dangling user turn) on provider failure; Reset empties
// it and retires the session. The transcript never reorders or drops turns
// mid-session.
package conversation
