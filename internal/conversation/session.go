package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/scout/internal/providers"
)

// Role tags a turn as belonging to the user or the assistant.
type Role string

// Transcript roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a transcript. Immutable once appended.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ErrSessionCleared is returned by Submit after Reset has been called.
var ErrSessionCleared = errors.New("session has been cleared")

// Session owns one append-only transcript and the provider used to extend it.
// It is the single writer of the transcript: turns are added only by Submit
// and removed only by Reset. Sessions are not safe for concurrent use; every
// submission depends on the full transcript built by the previous one.
type Session struct {
	chatter providers.Chatter
	turns   []Turn
	cleared bool
}

// NewSession creates an Active session with an empty transcript.
func NewSession(chatter providers.Chatter) *Session {
	return &Session{chatter: chatter}
}

// Submit appends a user turn, sends the entire transcript to the provider,
// and appends and returns the assistant reply. Sending the full transcript is
// what lets later submissions reference everything said before.
//
// If the provider fails, no assistant turn is appended: the user turn stays
// in the transcript, the session remains Active, and the returned string is a
// placeholder error message alongside the error itself. A single failed call
// must not end the run.
func (s *Session) Submit(ctx context.Context, content string) (string, error) {
	if s.cleared {
		return "", ErrSessionCleared
	}

	s.turns = append(s.turns, Turn{Role: RoleUser, Content: content})

	msgs := make([]providers.Message, len(s.turns))
	for i, t := range s.turns {
		msgs[i] = providers.Message{Role: string(t.Role), Content: t.Content}
	}

	reply, err := s.chatter.Chat(ctx, msgs)
	if err != nil {
		return fmt.Sprintf("[error communicating with %s: %v]", s.chatter.Name(), err), err
	}

	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// Reset clears the transcript and makes the session terminal. Idempotent;
// a new run needs a new Session.
func (s *Session) Reset() {
	s.turns = nil
	s.cleared = true
}

// Len returns the number of turns in the transcript.
func (s *Session) Len() int {
	return len(s.turns)
}

// Transcript returns a copy of the transcript in submission order.
func (s *Session) Transcript() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}
