// Package assistant holds the mentor chat session: an open/closed panel, a
// message transcript, a draft, and a send path grounded in the latest
// analysis results.
package assistant

import (
	"context"
	"strings"
	"sync"

	"resumeai/reviewer/internal/models"
)

// Sender distinguishes the two sides of the transcript.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one transcript entry. IDs increase monotonically within a
// session.
type Message struct {
	ID     int64  `json:"id"`
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Mentor is the remote chat service.
type Mentor interface {
	MentorReply(ctx context.Context, message, userContext string) (string, error)
}

// ContextSource supplies the grounding context derived from the latest
// analysis. A zero context means no analysis has completed yet.
type ContextSource interface {
	MentorContext() models.MentorContext
}

// Greeting seeds every new session's transcript.
const Greeting = "Hi! I'm your AI career mentor. Ask me anything about your resume, skill gaps, or how to land your target role."

const fallbackReply = "Sorry, I'm having trouble connecting right now. Please try again in a moment."

// Snapshot is an immutable view of the session. The transcript slice is a
// copy and safe to retain.
type Snapshot struct {
	Open          bool
	Transcript    []Message
	Draft         string
	AwaitingReply bool
}

// Session owns the mentor chat state. All methods are safe for concurrent
// use; Send runs synchronously on the calling goroutine while an
// awaiting-reply gate rejects overlapping sends.
type Session struct {
	mu            sync.Mutex
	mentor        Mentor
	contextSource ContextSource
	open          bool
	transcript    []Message
	draft         string
	awaitingReply bool
	nextID        int64
	listeners     []func(Snapshot)
}

// NewSession creates a closed session seeded with the assistant greeting.
// contextSource may be nil when no analysis flow is attached.
func NewSession(mentor Mentor, contextSource ContextSource) *Session {
	s := &Session{
		mentor:        mentor,
		contextSource: contextSource,
	}
	s.appendLocked(SenderAssistant, Greeting)
	return s
}

// OnChange registers a listener invoked with a fresh snapshot after every
// state change.
func (s *Session) OnChange(listener func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	transcript := make([]Message, len(s.transcript))
	copy(transcript, s.transcript)
	return Snapshot{
		Open:          s.open,
		Transcript:    transcript,
		Draft:         s.draft,
		AwaitingReply: s.awaitingReply,
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

// Toggle opens or closes the chat panel. Transcript and draft survive either
// way.
func (s *Session) Toggle() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()
	s.notify()
}

// UpdateDraft replaces the draft text.
func (s *Session) UpdateDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
	s.notify()
}

// Send submits the current draft to the mentor. A draft that trims to empty
// is a no-op, as is calling while a previous send is still awaiting its
// reply. The user message is appended and the draft cleared before the
// remote call; the reply, or a fixed fallback when the call fails, is
// appended after.
func (s *Session) Send(ctx context.Context) {
	s.mu.Lock()
	text := strings.TrimSpace(s.draft)
	if text == "" || s.awaitingReply {
		s.mu.Unlock()
		return
	}
	s.awaitingReply = true
	s.draft = ""
	s.appendLocked(SenderUser, text)
	s.mu.Unlock()
	s.notify()

	userContext := ""
	if s.contextSource != nil {
		userContext = s.contextSource.MentorContext().Render()
	}

	reply, err := s.mentor.MentorReply(ctx, text, userContext)
	if err != nil || strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}

	s.mu.Lock()
	s.appendLocked(SenderAssistant, reply)
	s.awaitingReply = false
	s.mu.Unlock()
	s.notify()
}

func (s *Session) appendLocked(sender Sender, text string) {
	s.nextID++
	s.transcript = append(s.transcript, Message{
		ID:     s.nextID,
		Sender: sender,
		Text:   text,
	})
}
