// Package genai wraps the Claude API behind the small surface the journal
// needs: turn a prompt (plus optional conversation history) into a short
// piece of text. Affirmation and mixture-summary callers swap in static
// fallbacks on any failure; only the chat surface reports errors inline.
package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// replyMaxTokens caps response length; everything this app asks for is
	// a sentence or two.
	replyMaxTokens = 512
)

// ErrNoCredential means no API key is available. Chat shows this to the
// user without attempting a request; other callers fall back silently.
var ErrNoCredential = errors.New("no API key available")

// Turn is one prior conversation turn.
type Turn struct {
	Role string // "user" or "assistant"
	Text string
}

// Generator turns a prompt into generated text. Implemented by Client;
// tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []Turn) (string, error)
}

// Client is the Claude-backed Generator.
type Client struct {
	client *anthropic.Client
	model  string
	logger *slog.Logger
}

// NewClient creates a Client. Returns ErrNoCredential when apiKey is empty
// so callers can distinguish "no key" from transport failures up front.
func NewClient(apiKey, model string, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoCredential
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{client: &c, model: model, logger: logger}, nil
}

// Generate sends history plus the prompt and returns the first text block of
// the reply. An empty reply is an error; callers treat every error the same
// as "service unavailable".
func (c *Client) Generate(ctx context.Context, prompt string, history []Turn) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, t := range history {
		block := anthropic.NewTextBlock(t.Text)
		if t.Role == "assistant" {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}
	msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: replyMaxTokens,
		Messages:  msgs,
	})
	if err != nil {
		return "", fmt.Errorf("generating text: %w", err)
	}

	var text string
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			text = strings.TrimSpace(resp.Content[i].Text)
			break
		}
	}
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}
