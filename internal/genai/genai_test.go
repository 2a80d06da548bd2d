package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records calls and plays back a canned reply or error.
type stubGenerator struct {
	reply   string
	err     error
	calls   int
	prompt  string
	history []Turn
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, history []Turn) (string, error) {
	s.calls++
	s.prompt = prompt
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", "claude-haiku-4-5-20251001", nil)
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = NewClient("   ", "claude-haiku-4-5-20251001", nil)
	assert.ErrorIs(t, err, ErrNoCredential)

	c, err := NewClient("sk-ant-test", "claude-haiku-4-5-20251001", nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestAffirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("nil generator falls back", func(t *testing.T) {
		assert.Equal(t, FallbackAffirmation, Affirmation(ctx, nil, "Happy", nil))
	})

	t.Run("generation failure falls back", func(t *testing.T) {
		g := &stubGenerator{err: errors.New("boom")}
		assert.Equal(t, FallbackAffirmation, Affirmation(ctx, g, "Happy", nil))
	})

	t.Run("success passes through", func(t *testing.T) {
		g := &stubGenerator{reply: "You are doing great."}
		got := Affirmation(ctx, g, "Excited", nil)
		assert.Equal(t, "You are doing great.", got)
		assert.Contains(t, g.prompt, "excited", "mood is lowercased into the prompt")
	})
}

func TestSummaryCacheFillsOncePerDay(t *testing.T) {
	ctx := context.Background()
	g := &stubGenerator{reply: "A bright, busy day."}
	c := NewSummaryCache(g, nil)

	_, ok := c.Get("2026-05-10")
	assert.False(t, ok)

	got := c.Fill(ctx, "2026-05-10", []string{"Happy", "Sad"}, 4)
	assert.Equal(t, "A bright, busy day.", got)
	assert.Equal(t, 1, g.calls)

	// second fill for the same day returns the cached value, no new call,
	// even if the day's entries have since changed
	got = c.Fill(ctx, "2026-05-10", []string{"Happy", "Sad", "Calm"}, 9)
	assert.Equal(t, "A bright, busy day.", got)
	assert.Equal(t, 1, g.calls)

	cached, ok := c.Get("2026-05-10")
	require.True(t, ok)
	assert.Equal(t, "A bright, busy day.", cached)
}

func TestSummaryCacheCachesFallbackOnFailure(t *testing.T) {
	ctx := context.Background()
	g := &stubGenerator{err: errors.New("unavailable")}
	c := NewSummaryCache(g, nil)

	got := c.Fill(ctx, "2026-05-10", []string{"Happy"}, 5)
	assert.Equal(t, FallbackMixture, got)
	assert.Equal(t, 1, g.calls)

	// the failure is cached too; a day is only ever requested once
	_ = c.Fill(ctx, "2026-05-10", []string{"Happy"}, 5)
	assert.Equal(t, 1, g.calls)
}

func TestSummaryCacheNilGenerator(t *testing.T) {
	c := NewSummaryCache(nil, nil)
	assert.Equal(t, FallbackMixture, c.Fill(context.Background(), "2026-05-10", nil, 4))
}

func TestChatSessionNoCredential(t *testing.T) {
	s := NewChatSession(nil)

	_, err := s.Reply(context.Background(), "hello?")
	assert.ErrorIs(t, err, ErrNoCredential)

	// the user's message stays in the transcript
	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "hello?", msgs[0].Text)
}

func TestChatSessionConversation(t *testing.T) {
	ctx := context.Background()
	g := &stubGenerator{reply: "Sounds like a good day."}
	s := NewChatSession(g)

	reply, err := s.Reply(ctx, "I went hiking today.")
	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "Sounds like a good day.", reply.Text)
	assert.NotEmpty(t, reply.ID)
	assert.Empty(t, g.history, "first turn has no history")

	g.reply = "Lakes are the best."
	_, err = s.Reply(ctx, "There was a lake.")
	require.NoError(t, err)

	// history carries the prior user and assistant turns, not the new prompt
	require.Len(t, g.history, 2)
	assert.Equal(t, Turn{Role: "user", Text: "I went hiking today."}, g.history[0])
	assert.Equal(t, Turn{Role: "assistant", Text: "Sounds like a good day."}, g.history[1])
	assert.Equal(t, "There was a lake.", g.prompt)

	msgs := s.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "Lakes are the best.", msgs[3].Text)
}

func TestChatSessionGenerationFailure(t *testing.T) {
	g := &stubGenerator{err: errors.New("timeout")}
	s := NewChatSession(g)

	_, err := s.Reply(context.Background(), "hi")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCredential)

	// failed turns keep the user message so the transcript reads naturally
	require.Len(t, s.Messages(), 1)
}
