// Package views projects the entry collection and mood registry into the
// data each surface renders: mood-frequency counts for the chart, per-day
// mood groupings for the calendar, word-frequency tables for the trending
// panels, and the filtered timeline. Every projection is a pure function
// recomputed from scratch; nothing here mutates or caches.
package views

import (
	"sort"
	"time"

	"github.com/ramanasai/moodlog/internal/journal"
)

// MoodCount is one chart bar: a registry mood and how many entries carry it.
type MoodCount struct {
	Mood  journal.Mood
	Count int
}

// MoodCounts counts entries per registry mood, in registry order. Moods with
// no entries appear with count 0. Entries whose mood is not in the registry
// are excluded entirely.
func MoodCounts(entries []journal.Entry, moods []journal.Mood) []MoodCount {
	byName := make(map[string]int, len(moods))
	for _, m := range moods {
		byName[m.Name] = 0
	}
	for _, e := range entries {
		if _, ok := byName[e.Mood]; ok {
			byName[e.Mood]++
		}
	}

	counts := make([]MoodCount, 0, len(moods))
	for _, m := range moods {
		counts = append(counts, MoodCount{Mood: m, Count: byName[m.Name]})
	}
	return counts
}

// MaxDots caps how many mood dots a calendar day shows.
const MaxDots = 3

// MixtureThreshold is the minimum entry count for a day to get a generated
// mixture summary.
const MixtureThreshold = 4

// CalendarDay is the projection for one day cell of the month grid.
type CalendarDay struct {
	Day        int      // day of month, 1-based
	Date       string   // "2006-01-02"
	Moods      []string // unique mood names in first-seen order, capped at MaxDots
	EntryCount int      // full count, not capped
}

// Mixture reports whether the day qualifies for a mixture summary. The
// threshold is on entry count alone, regardless of how many distinct moods.
func (d CalendarDay) Mixture() bool {
	return d.EntryCount >= MixtureThreshold
}

// CalendarMonth groups entries for the month containing ref into per-day
// cells, one per day of the month, in day order. Matching is by calendar day
// in loc, not by exact timestamp.
func CalendarMonth(entries []journal.Entry, ref time.Time, loc *time.Location) []CalendarDay {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, daysInMonth)
	index := make(map[string]int, daysInMonth)
	for i := range days {
		date := first.AddDate(0, 0, i).Format("2006-01-02")
		days[i] = CalendarDay{Day: i + 1, Date: date}
		index[date] = i
	}

	for _, e := range entries {
		i, ok := index[e.Day(loc)]
		if !ok {
			continue
		}
		days[i].EntryCount++
		if len(days[i].Moods) < MaxDots && !contains(days[i].Moods, e.Mood) {
			days[i].Moods = append(days[i].Moods, e.Mood)
		}
	}
	return days
}

// UniqueMoodCount returns how many distinct moods appear among the day's
// entries, uncapped.
func UniqueMoodCount(entries []journal.Entry, day string, loc *time.Location) int {
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Day(loc) == day {
			seen[e.Mood] = true
		}
	}
	return len(seen)
}

// Timeline returns the entries newest-first, gated by the filter. An entry
// must pass both active selectors; absent selectors pass everything.
func Timeline(entries []journal.Entry, f Filter, loc *time.Location) []journal.Entry {
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Mood != "" && e.Mood != f.Mood {
			continue
		}
		if f.Date != "" && e.Day(loc) != f.Date {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// DominantMood returns the registry mood with the most entries today, for
// the affirmation prompt. Falls back to ("", false) when today is empty.
func DominantMood(entries []journal.Entry, moods []journal.Mood, loc *time.Location) (string, bool) {
	today := time.Now().In(loc).Format("2006-01-02")
	counts := map[string]int{}
	for _, e := range entries {
		if e.Day(loc) == today {
			counts[e.Mood]++
		}
	}

	best, bestN := "", 0
	for _, m := range moods {
		if n := counts[m.Name]; n > bestN {
			best, bestN = m.Name, n
		}
	}
	return best, best != ""
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
