package genai

import (
	"context"
	"log/slog"
	"sync"
)

// SummaryCache holds generated mixture summaries keyed by calendar-day
// string. Population is lazy and only requested for days that meet the
// entry-count threshold. Entries are never invalidated for the lifetime of
// the process: if the day's entries change after a summary is cached, the
// stale summary stays. Same-key completions apply last-write-wins.
type SummaryCache struct {
	mu     sync.Mutex
	byDay  map[string]string
	g      Generator
	logger *slog.Logger
}

// NewSummaryCache creates a cache over g. A nil g still works; every fill
// then resolves to the static fallback.
func NewSummaryCache(g Generator, logger *slog.Logger) *SummaryCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryCache{
		byDay:  make(map[string]string),
		g:      g,
		logger: logger,
	}
}

// Get returns the cached summary for day, if one has been filled.
func (c *SummaryCache) Get(day string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.byDay[day]
	return s, ok
}

// Fill generates and caches the summary for day. Already-cached days return
// the cached value without a new call. Generation failure caches the static
// fallback, so a day is only ever requested once per session. Safe for
// concurrent fills of different days; each writes its own key.
func (c *SummaryCache) Fill(ctx context.Context, day string, moods []string, entryCount int) string {
	c.mu.Lock()
	if s, ok := c.byDay[day]; ok {
		c.mu.Unlock()
		return s
	}
	c.mu.Unlock()

	text := FallbackMixture
	if c.g != nil {
		generated, err := c.g.Generate(ctx, mixturePrompt(moods, entryCount), nil)
		if err != nil {
			c.logger.Warn("mixture summary generation failed, using fallback", "day", day, "error", err)
		} else {
			text = generated
		}
	}

	c.mu.Lock()
	c.byDay[day] = text
	c.mu.Unlock()
	return text
}
