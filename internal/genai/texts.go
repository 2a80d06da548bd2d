package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Static fallbacks shown whenever generation is unavailable. These are part
// of the product surface, not placeholders.
const (
	FallbackAffirmation = "Every feeling you write down is one you understand a little better."
	FallbackMixture     = "A full day with many shades of feeling."
)

// Affirmation returns a short affirmation for the given mood. Never fails:
// any generation problem (including g == nil or a missing credential) is
// logged and the static fallback is returned.
func Affirmation(ctx context.Context, g Generator, mood string, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}
	if g == nil {
		return FallbackAffirmation
	}

	prompt := fmt.Sprintf(
		"Write a single short affirmation (max 20 words) for someone who is feeling %s today. Output ONLY the affirmation.",
		strings.ToLower(mood),
	)
	text, err := g.Generate(ctx, prompt, nil)
	if err != nil {
		logger.Warn("affirmation generation failed, using fallback", "error", err)
		return FallbackAffirmation
	}
	return text
}

// mixturePrompt builds the prompt for a multi-mood day summary.
func mixturePrompt(moods []string, entryCount int) string {
	return fmt.Sprintf(
		"In one short phrase (max 8 words), characterize a day on which someone logged %d journal entries with these moods: %s. Output ONLY the phrase.",
		entryCount,
		strings.Join(moods, ", "),
	)
}
