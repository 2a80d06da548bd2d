package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/moodlog/internal/journal"
)

var utc = time.UTC

func entryAt(mood, text string, t time.Time) journal.Entry {
	return journal.Entry{Mood: mood, Text: text, Timestamp: t.UnixMilli()}
}

func TestMoodCounts(t *testing.T) {
	moods := journal.BuiltIns()
	day := time.Date(2026, 5, 10, 9, 0, 0, 0, utc)
	entries := []journal.Entry{
		entryAt("Happy", "a", day),
		entryAt("Happy", "b", day.Add(time.Hour)),
		entryAt("Calm", "c", day.Add(2*time.Hour)),
		entryAt("Nostalgic", "d", day.Add(3*time.Hour)), // not in registry
	}

	counts := MoodCounts(entries, moods)
	require.Len(t, counts, len(moods))

	// registry order, zero-filled
	byName := map[string]int{}
	total := 0
	for i, c := range counts {
		assert.Equal(t, moods[i].Name, c.Mood.Name)
		byName[c.Mood.Name] = c.Count
		total += c.Count
	}
	assert.Equal(t, 2, byName["Happy"])
	assert.Equal(t, 1, byName["Calm"])
	assert.Equal(t, 0, byName["Sad"])
	assert.Equal(t, 3, total, "entries with unregistered moods are excluded")
}

func TestCalendarMonth(t *testing.T) {
	d10 := time.Date(2026, 5, 10, 8, 0, 0, 0, utc)
	entries := []journal.Entry{
		entryAt("Happy", "a", d10),
		entryAt("Happy", "b", d10.Add(time.Hour)),
		entryAt("Sad", "c", d10.Add(2*time.Hour)),
		entryAt("Calm", "d", d10.Add(3*time.Hour)),
		entryAt("Excited", "e", time.Date(2026, 5, 3, 12, 0, 0, 0, utc)),
		entryAt("Angry", "out of month", time.Date(2026, 4, 30, 12, 0, 0, 0, utc)),
	}

	days := CalendarMonth(entries, time.Date(2026, 5, 1, 0, 0, 0, 0, utc), utc)
	require.Len(t, days, 31)

	day10 := days[9]
	assert.Equal(t, 10, day10.Day)
	assert.Equal(t, "2026-05-10", day10.Date)
	assert.Equal(t, 4, day10.EntryCount)
	// unique moods in first-seen order, capped at MaxDots
	assert.Equal(t, []string{"Happy", "Sad", "Calm"}, day10.Moods)
	assert.True(t, day10.Mixture(), "4 entries meet the mixture threshold")

	day3 := days[2]
	assert.Equal(t, 1, day3.EntryCount)
	assert.False(t, day3.Mixture())

	assert.Equal(t, 0, days[29].EntryCount)
	assert.Empty(t, days[29].Moods)
}

func TestMixtureThresholdIsOnEntryCountAlone(t *testing.T) {
	d := time.Date(2026, 5, 20, 8, 0, 0, 0, utc)
	entries := []journal.Entry{
		entryAt("Happy", "a", d),
		entryAt("Happy", "b", d.Add(time.Hour)),
		entryAt("Happy", "c", d.Add(2*time.Hour)),
		entryAt("Happy", "d", d.Add(3*time.Hour)),
	}
	days := CalendarMonth(entries, d, utc)
	day := days[19]
	assert.True(t, day.Mixture(), "a single-mood day still qualifies")
	assert.Equal(t, []string{"Happy"}, day.Moods)
	assert.Equal(t, 1, UniqueMoodCount(entries, "2026-05-20", utc))
}

func TestTimeline(t *testing.T) {
	base := time.Date(2026, 5, 10, 8, 0, 0, 0, utc)
	entries := []journal.Entry{
		entryAt("Happy", "oldest", base),
		entryAt("Sad", "middle", base.Add(time.Hour)),
		entryAt("Happy", "newest", base.Add(48*time.Hour)),
	}

	t.Run("unfiltered newest first", func(t *testing.T) {
		out := Timeline(entries, Filter{}, utc)
		require.Len(t, out, 3)
		assert.Equal(t, "newest", out[0].Text)
		assert.Equal(t, "oldest", out[2].Text)
	})

	t.Run("mood filter", func(t *testing.T) {
		out := Timeline(entries, Filter{Mood: "Happy"}, utc)
		require.Len(t, out, 2)
		assert.Equal(t, "newest", out[0].Text)
	})

	t.Run("date filter", func(t *testing.T) {
		out := Timeline(entries, Filter{Date: "2026-05-10"}, utc)
		require.Len(t, out, 2)
		assert.Equal(t, "middle", out[0].Text)
	})

	t.Run("both filters", func(t *testing.T) {
		out := Timeline(entries, Filter{Mood: "Happy", Date: "2026-05-10"}, utc)
		require.Len(t, out, 1)
		assert.Equal(t, "oldest", out[0].Text)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		_ = Timeline(entries, Filter{}, utc)
		assert.Equal(t, "oldest", entries[0].Text)
	})
}

func TestFilterToggle(t *testing.T) {
	var f Filter
	assert.False(t, f.Active())

	f.ToggleMood("Happy")
	assert.Equal(t, "Happy", f.Mood)
	assert.True(t, f.Active())

	// selecting a different mood replaces the selection
	f.ToggleMood("Sad")
	assert.Equal(t, "Sad", f.Mood)

	// selecting the same mood again clears it
	f.ToggleMood("Sad")
	assert.Equal(t, "", f.Mood)

	f.ToggleDate("2026-05-10")
	f.ToggleDate("2026-05-10")
	assert.False(t, f.Active())
}

func TestDominantMood(t *testing.T) {
	moods := journal.BuiltIns()
	now := time.Now().In(utc)

	_, ok := DominantMood(nil, moods, utc)
	assert.False(t, ok)

	entries := []journal.Entry{
		entryAt("Calm", "a", now),
		entryAt("Calm", "b", now),
		entryAt("Happy", "c", now),
		entryAt("Sad", "yesterday", now.AddDate(0, 0, -1)),
	}
	got, ok := DominantMood(entries, moods, utc)
	require.True(t, ok)
	assert.Equal(t, "Calm", got)
}
