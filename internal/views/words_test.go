package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/moodlog/internal/journal"
)

func textEntries(texts ...string) []journal.Entry {
	out := make([]journal.Entry, len(texts))
	for i, s := range texts {
		out[i] = journal.Entry{Mood: "Happy", Text: s, Timestamp: int64(i + 1)}
	}
	return out
}

func TestWordFrequency(t *testing.T) {
	entries := textEntries(
		"Sunny morning, went for a long walk",
		"Another sunny day with the dog",
		"sunny again! walk walk walk",
	)

	freq := WordFrequency(entries)
	require.NotEmpty(t, freq)

	assert.Equal(t, WordCount{Word: "walk", Count: 4}, freq[0])
	assert.Equal(t, WordCount{Word: "sunny", Count: 3}, freq[1])

	for _, wc := range freq {
		assert.NotEqual(t, "the", wc.Word, "stopwords are excluded")
		assert.NotEqual(t, "for", wc.Word)
		assert.NotEqual(t, "with", wc.Word)
		assert.GreaterOrEqual(t, len(wc.Word), 3, "short tokens are excluded")
	}
}

func TestWordFrequencyTiesKeepFirstAppearanceOrder(t *testing.T) {
	freq := WordFrequency(textEntries("zebra apple", "zebra apple"))
	require.Len(t, freq, 2)
	assert.Equal(t, "zebra", freq[0].Word)
	assert.Equal(t, "apple", freq[1].Word)
}

func TestTrendingLimit(t *testing.T) {
	entries := textEntries("alpha beta gamma delta epsilon zeta eta theta")
	top := Trending(entries)
	assert.Len(t, top, TrendingLimit)
}

func TestCloud(t *testing.T) {
	// "walk" x4, "sunny" x2, "dog" x1
	entries := textEntries("walk walk walk walk sunny sunny dog")

	cloud := Cloud(entries)
	require.Len(t, cloud, 3)

	assert.Equal(t, "walk", cloud[0].Word)
	assert.Equal(t, CloudMaxSize, cloud[0].Size, "top word gets the max size")

	assert.Equal(t, "dog", cloud[2].Word)
	assert.Equal(t, 2, cloud[2].Size) // 1 + round(0.25*4)

	assert.Nil(t, Cloud(nil))
}

func TestCloudLimit(t *testing.T) {
	words := []string{
		"able", "bold", "cold", "dark", "easy", "fast", "glad", "huge",
		"idle", "jolt", "keen", "lush", "mild", "neat", "open", "pure",
		"rare", "soft", "tall", "ugly", "vast", "warm", "zany",
	}
	var text string
	for _, w := range words {
		text += w + " "
	}
	cloud := Cloud(textEntries(text))
	assert.Len(t, cloud, CloudLimit)
}
