package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/moodlog/internal/journal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEntriesRoundtrip(t *testing.T) {
	db := openTestDB(t)

	s := NewEntryStore(db, nil)
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())

	s.Add(journal.Entry{Mood: "Happy", Text: "good start", Timestamp: 1000})
	s.Add(journal.Entry{Mood: "Calm", Text: "quiet evening", Timestamp: 2000})
	require.NoError(t, s.Save())

	reloaded := NewEntryStore(db, nil)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.All(), reloaded.All())
}

func TestEntriesRemove(t *testing.T) {
	db := openTestDB(t)

	s := NewEntryStore(db, nil)
	require.NoError(t, s.Load())
	s.Add(journal.Entry{Mood: "Happy", Text: "one", Timestamp: 1})
	s.Add(journal.Entry{Mood: "Sad", Text: "two", Timestamp: 2})

	s.Remove(1)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, int64(2), s.All()[0].Timestamp)

	// absent timestamp is a no-op
	s.Remove(99)
	assert.Equal(t, 1, s.Len())
}

func TestEntriesLoadDegradesToEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.setSlot(slotEntries, "not json at all"))

	s := NewEntryStore(db, nil)
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestEntriesLoadDropsMalformedRecords(t *testing.T) {
	db := openTestDB(t)
	raw := `[
		{"mood":"Happy","text":"kept","timestamp":1},
		{"mood":"","text":"no mood","timestamp":2},
		{"mood":"Sad","text":"","timestamp":3},
		{"mood":"Calm","text":"no timestamp","timestamp":0}
	]`
	require.NoError(t, db.setSlot(slotEntries, raw))

	s := NewEntryStore(db, nil)
	require.NoError(t, s.Load())
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "kept", s.All()[0].Text)
}

func TestMoodsSeedOnlyWhenSlotAbsent(t *testing.T) {
	db := openTestDB(t)

	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())
	assert.Equal(t, journal.BuiltIns(), r.All())

	// a saved registry missing a built-in stays missing it
	r.moods = r.moods[1:] // drop Happy
	require.NoError(t, r.Save())

	reloaded := NewMoodRegistry(db, nil)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 4, reloaded.Len())
	_, ok := reloaded.Get("Happy")
	assert.False(t, ok, "removed built-in must not come back on load")
}

func TestMoodsLoadStripsReservedAndDuplicates(t *testing.T) {
	db := openTestDB(t)
	raw := `[
		{"name":"Happy","icon":"smile","color":"f9e2af"},
		{"name":"gg","icon":"star","color":"000000"},
		{"name":"gg gg","icon":"star","color":"000000"},
		{"name":"  ","icon":"star","color":"000000"},
		{"name":"Joy","icon":"star","color":"111111"},
		{"name":"Joy","icon":"star","color":"222222"}
	]`
	require.NoError(t, db.setSlot(slotMoods, raw))

	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "Happy", r.All()[0].Name)
	joy := r.All()[1]
	assert.Equal(t, "Joy", joy.Name)
	assert.Equal(t, "111111", joy.Color, "first occurrence wins")
}

func TestMoodsLoadDeduplicatesCaseVariants(t *testing.T) {
	db := openTestDB(t)
	raw := `[
		{"name":"Joy","icon":"star","color":"111111"},
		{"name":"joy","icon":"star","color":"222222"},
		{"name":"JOY","icon":"star","color":"333333"}
	]`
	require.NoError(t, db.setSlot(slotMoods, raw))

	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())

	require.Equal(t, 1, r.Len())
	joy := r.All()[0]
	assert.Equal(t, "Joy", joy.Name, "first-listed casing wins")
	assert.Equal(t, "111111", joy.Color)
}

func TestMoodsLoadReseedsOnUnparsableSlot(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.setSlot(slotMoods, "{broken"))

	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())
	assert.Equal(t, journal.BuiltIns(), r.All())
}

func TestMoodsAddUpsertsCaseInsensitively(t *testing.T) {
	db := openTestDB(t)
	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())

	r.Add("Grateful", "#CBA6F7")
	require.Equal(t, 6, r.Len())
	m, ok := r.Get("Grateful")
	require.True(t, ok)
	assert.Equal(t, "cba6f7", m.Color)
	assert.Equal(t, journal.CustomIcon, m.Icon)

	// same name in a different case updates in place, no new row
	r.Add("grateful", "ffffff")
	assert.Equal(t, 6, r.Len())
	m, _ = r.Get("Grateful")
	assert.Equal(t, "ffffff", m.Color)

	// reserved names never enter the registry
	r.Add("gg", "000000")
	assert.Equal(t, 6, r.Len())
}

func TestMoodsRemoveProtectsBuiltIns(t *testing.T) {
	db := openTestDB(t)
	r := NewMoodRegistry(db, nil)
	require.NoError(t, r.Load())
	r.Add("Grateful", "cba6f7")

	r.Remove("Happy")
	assert.Equal(t, 6, r.Len(), "built-ins are protected")

	// protection is by exact name; "happy" is not a built-in, and is also
	// not present, so nothing changes
	r.Remove("happy")
	assert.Equal(t, 6, r.Len())

	r.Remove("Grateful")
	assert.Equal(t, 5, r.Len())
	_, ok := r.Get("Grateful")
	assert.False(t, ok)
}

func TestPrefSlots(t *testing.T) {
	db := openTestDB(t)

	v, err := db.Theme()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, db.SetTheme("light"))
	require.NoError(t, db.SetColorTheme("latte"))

	v, err = db.Theme()
	require.NoError(t, err)
	assert.Equal(t, "light", v)
	v, err = db.ColorTheme()
	require.NoError(t, err)
	assert.Equal(t, "latte", v)
}

func TestAPIKeySealRoundtrip(t *testing.T) {
	db := openTestDB(t)

	key, err := db.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "", key)

	require.NoError(t, db.SetAPIKey("sk-ant-test-123"))

	// the stored slot is sealed, not the plaintext
	raw, ok, err := db.getSlot(slotAPIKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "sk-ant-test-123")

	key, err = db.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-test-123", key)

	require.NoError(t, db.ClearAPIKey())
	key, err = db.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "", key)
}

func TestAPIKeyUnreadableSealedValueMeansNoKey(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.setSlot(slotAPIKey, "bm90IGEgdmFsaWQgc2VhbA=="))

	key, err := db.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "", key)
}
