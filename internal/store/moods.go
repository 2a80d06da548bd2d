package store

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/ramanasai/moodlog/internal/journal"
)

// MoodRegistry holds the selectable moods backed by the moods slot.
// Registry order is significant: the chart renders bars in this order.
type MoodRegistry struct {
	db     *DB
	moods  []journal.Mood
	logger *slog.Logger
}

// NewMoodRegistry creates a registry over db. Call Load before reading.
func NewMoodRegistry(db *DB, logger *slog.Logger) *MoodRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &MoodRegistry{db: db, logger: logger}
}

// Load reads the moods slot. Seeding with the 5 built-ins happens only when
// the slot does not exist at all; a saved registry missing a built-in stays
// missing it. Every load strips empty names, reserved placeholder names, and
// later duplicates, comparing names case-insensitively (first occurrence
// wins, stable order).
func (r *MoodRegistry) Load() error {
	r.moods = nil

	raw, ok, err := r.db.getSlot(slotMoods)
	if err != nil {
		return err
	}
	if !ok {
		r.moods = journal.BuiltIns()
		return nil
	}

	var decoded []journal.Mood
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		r.logger.Warn("moods slot unparsable, reseeding built-ins", "error", err)
		r.moods = journal.BuiltIns()
		return nil
	}

	seen := make(map[string]bool, len(decoded))
	for _, m := range decoded {
		name := strings.TrimSpace(m.Name)
		if name == "" || journal.IsReservedName(name) {
			continue
		}
		// duplication is case-insensitive, same as the Add upsert
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		m.Name = name
		r.moods = append(r.moods, m)
	}
	return nil
}

// Add upserts a mood. A case-insensitive name match updates that mood's
// color in place; otherwise a new custom mood is appended with the fixed
// custom icon. Add does not save.
func (r *MoodRegistry) Add(name, color string) {
	name = strings.TrimSpace(name)
	if name == "" || journal.IsReservedName(name) {
		return
	}
	color = journal.NormalizeColor(color)

	for i := range r.moods {
		if strings.EqualFold(r.moods[i].Name, name) {
			r.moods[i].Color = color
			return
		}
	}
	r.moods = append(r.moods, journal.Mood{
		Name:  name,
		Icon:  journal.CustomIcon,
		Color: color,
	})
}

// Remove deletes a custom mood by exact name. Built-ins are protected:
// Remove is a no-op for them, and for names not present.
func (r *MoodRegistry) Remove(name string) {
	if journal.IsBuiltIn(name) {
		return
	}
	for i, m := range r.moods {
		if m.Name == name {
			r.moods = append(r.moods[:i], r.moods[i+1:]...)
			return
		}
	}
}

// Save persists the full registry into the moods slot.
func (r *MoodRegistry) Save() error {
	b, err := json.Marshal(r.moodsOrEmpty())
	if err != nil {
		return err
	}
	return r.db.setSlot(slotMoods, string(b))
}

// All returns the moods in registry order. The slice is shared; callers
// must not mutate it.
func (r *MoodRegistry) All() []journal.Mood {
	return r.moods
}

// Get returns the mood with the exact name, if present.
func (r *MoodRegistry) Get(name string) (journal.Mood, bool) {
	for _, m := range r.moods {
		if m.Name == name {
			return m, true
		}
	}
	return journal.Mood{}, false
}

// Len returns the registry size.
func (r *MoodRegistry) Len() int { return len(r.moods) }

func (r *MoodRegistry) moodsOrEmpty() []journal.Mood {
	if r.moods == nil {
		return []journal.Mood{}
	}
	return r.moods
}
