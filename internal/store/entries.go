package store

import (
	"encoding/json"
	"log/slog"

	"github.com/ramanasai/moodlog/internal/journal"
)

// EntryStore holds the in-memory entry collection backed by the entries
// slot. Storage order is insertion order; consumers that want newest-first
// sort at read time.
type EntryStore struct {
	db      *DB
	entries []journal.Entry
	logger  *slog.Logger
}

// NewEntryStore creates a store over db. Call Load before reading.
func NewEntryStore(db *DB, logger *slog.Logger) *EntryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryStore{db: db, logger: logger}
}

// Load reads the entries slot. An absent or unparsable slot degrades to an
// empty collection; the failure is logged, never returned. Records missing a
// mood, text, or timestamp are dropped at the boundary so the rest of the
// system can assume well-formed entries.
func (s *EntryStore) Load() error {
	s.entries = nil

	raw, ok, err := s.db.getSlot(slotEntries)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var decoded []journal.Entry
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Warn("entries slot unparsable, starting empty", "error", err)
		return nil
	}
	for _, e := range decoded {
		if !e.Valid() || e.Timestamp == 0 {
			s.logger.Warn("dropping malformed entry", "timestamp", e.Timestamp)
			continue
		}
		s.entries = append(s.entries, e)
	}
	return nil
}

// Add appends an entry. The caller guarantees validity; Add does not save.
func (s *EntryStore) Add(e journal.Entry) {
	s.entries = append(s.entries, e)
}

// Remove deletes the first entry whose timestamp matches ts. No-op when
// absent.
func (s *EntryStore) Remove(ts int64) {
	for i, e := range s.entries {
		if e.Timestamp == ts {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Save serializes the full collection into the entries slot.
func (s *EntryStore) Save() error {
	b, err := json.Marshal(s.entriesOrEmpty())
	if err != nil {
		return err
	}
	return s.db.setSlot(slotEntries, string(b))
}

// All returns the entries in storage (insertion) order. The slice is shared;
// callers must not mutate it.
func (s *EntryStore) All() []journal.Entry {
	return s.entries
}

// Len returns the number of entries.
func (s *EntryStore) Len() int { return len(s.entries) }

func (s *EntryStore) entriesOrEmpty() []journal.Entry {
	if s.entries == nil {
		return []journal.Entry{}
	}
	return s.entries
}
