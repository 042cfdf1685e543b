package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/reviewer/internal/models"
)

type fakeMentor struct {
	mu          sync.Mutex
	calls       int
	lastMessage string
	lastContext string
	reply       string
	err         error
	block       chan struct{}
}

func (f *fakeMentor) MentorReply(ctx context.Context, message, userContext string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastMessage = message
	f.lastContext = userContext
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.reply, f.err
}

type fakeContextSource struct {
	ctx models.MentorContext
}

func (f *fakeContextSource) MentorContext() models.MentorContext {
	return f.ctx
}

func TestSession_InitialState(t *testing.T) {
	s := NewSession(&fakeMentor{}, nil)

	snapshot := s.Snapshot()
	assert.False(t, snapshot.Open)
	require.Len(t, snapshot.Transcript, 1)
	assert.Equal(t, SenderAssistant, snapshot.Transcript[0].Sender)
	assert.Equal(t, Greeting, snapshot.Transcript[0].Text)
	assert.Empty(t, snapshot.Draft)
	assert.False(t, snapshot.AwaitingReply)
}

func TestSession_Toggle(t *testing.T) {
	s := NewSession(&fakeMentor{}, nil)

	s.Toggle()
	assert.True(t, s.Snapshot().Open)

	s.Toggle()
	snapshot := s.Snapshot()
	assert.False(t, snapshot.Open)
	assert.Len(t, snapshot.Transcript, 1, "transcript survives closing the panel")
}

func TestSession_Send(t *testing.T) {
	t.Run("appends question and reply", func(t *testing.T) {
		mentor := &fakeMentor{reply: "Focus on Flask and Redis first."}
		s := NewSession(mentor, nil)

		s.UpdateDraft("What should I learn next?")
		s.Send(context.Background())

		snapshot := s.Snapshot()
		require.Len(t, snapshot.Transcript, 3)
		assert.Equal(t, SenderUser, snapshot.Transcript[1].Sender)
		assert.Equal(t, "What should I learn next?", snapshot.Transcript[1].Text)
		assert.Equal(t, SenderAssistant, snapshot.Transcript[2].Sender)
		assert.Equal(t, "Focus on Flask and Redis first.", snapshot.Transcript[2].Text)
		assert.Empty(t, snapshot.Draft)
		assert.False(t, snapshot.AwaitingReply)
	})

	t.Run("trims the draft before sending", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		s := NewSession(mentor, nil)

		s.UpdateDraft("  hello  ")
		s.Send(context.Background())

		assert.Equal(t, "hello", mentor.lastMessage)
	})

	t.Run("whitespace-only draft is a no-op", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		s := NewSession(mentor, nil)

		s.UpdateDraft("   \n\t ")
		s.Send(context.Background())

		assert.Equal(t, 0, mentor.calls)
		assert.Len(t, s.Snapshot().Transcript, 1)
	})

	t.Run("failure appends the fallback reply", func(t *testing.T) {
		mentor := &fakeMentor{err: errors.New("upstream unavailable")}
		s := NewSession(mentor, nil)

		s.UpdateDraft("anyone there?")
		s.Send(context.Background())

		snapshot := s.Snapshot()
		require.Len(t, snapshot.Transcript, 3)
		assert.Equal(t, fallbackReply, snapshot.Transcript[2].Text)
		assert.False(t, snapshot.AwaitingReply)
	})

	t.Run("empty reply falls back too", func(t *testing.T) {
		mentor := &fakeMentor{reply: "  "}
		s := NewSession(mentor, nil)

		s.UpdateDraft("hm")
		s.Send(context.Background())

		snapshot := s.Snapshot()
		assert.Equal(t, fallbackReply, snapshot.Transcript[2].Text)
	})

	t.Run("overlapping send is rejected", func(t *testing.T) {
		mentor := &fakeMentor{reply: "first", block: make(chan struct{})}
		s := NewSession(mentor, nil)

		s.UpdateDraft("first question")
		done := make(chan struct{})
		go func() {
			s.Send(context.Background())
			close(done)
		}()

		require.Eventually(t, func() bool {
			return s.Snapshot().AwaitingReply
		}, time.Second, time.Millisecond)

		s.UpdateDraft("second question")
		s.Send(context.Background())

		close(mentor.block)
		<-done

		assert.Equal(t, 1, mentor.calls)
		snapshot := s.Snapshot()
		// Greeting, first question, first reply. The second draft survives.
		assert.Len(t, snapshot.Transcript, 3)
		assert.Equal(t, "second question", snapshot.Draft)
	})

	t.Run("message IDs increase monotonically", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		s := NewSession(mentor, nil)

		s.UpdateDraft("one")
		s.Send(context.Background())
		s.UpdateDraft("two")
		s.Send(context.Background())

		transcript := s.Snapshot().Transcript
		require.Len(t, transcript, 5)
		for i := 1; i < len(transcript); i++ {
			assert.Greater(t, transcript[i].ID, transcript[i-1].ID)
		}
	})
}

func TestSession_Context(t *testing.T) {
	t.Run("empty without a context source", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		s := NewSession(mentor, nil)

		s.UpdateDraft("hi")
		s.Send(context.Background())

		assert.Empty(t, mentor.lastContext)
	})

	t.Run("empty while the context is zero", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		s := NewSession(mentor, &fakeContextSource{})

		s.UpdateDraft("hi")
		s.Send(context.Background())

		assert.Empty(t, mentor.lastContext)
	})

	t.Run("renders the analysis context", func(t *testing.T) {
		mentor := &fakeMentor{reply: "ok"}
		source := &fakeContextSource{ctx: models.MentorContext{
			TargetRole:    "Backend Developer",
			OverallScore:  72,
			StrongMatches: []string{"SQL"},
			MissingSkills: []string{"Flask", "Redis"},
		}}
		s := NewSession(mentor, source)

		s.UpdateDraft("what now?")
		s.Send(context.Background())

		assert.Contains(t, mentor.lastContext, "Target role: Backend Developer")
		assert.Contains(t, mentor.lastContext, "Overall resume score: 72/100")
		assert.Contains(t, mentor.lastContext, "Missing skills: Flask, Redis")
	})
}

func TestSession_UpdateDraft(t *testing.T) {
	s := NewSession(&fakeMentor{}, nil)

	s.UpdateDraft("draft one")
	assert.Equal(t, "draft one", s.Snapshot().Draft)

	s.UpdateDraft("draft two")
	assert.Equal(t, "draft two", s.Snapshot().Draft)
}
