package views

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ramanasai/moodlog/internal/journal"
)

const (
	// TrendingLimit is how many words the trending panel shows.
	TrendingLimit = 5

	// CloudLimit is how many words the word cloud shows.
	CloudLimit = 20

	// CloudMinSize and CloudMaxSize bound the cloud's linear size scale.
	CloudMinSize = 1
	CloudMaxSize = 5
)

var tokenRe = regexp.MustCompile(`[a-z]{3,}`)

// stopwords are excluded from word-frequency counting. Fixed set; mood
// labels themselves are not excluded.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "was": true, "with": true,
	"this": true, "that": true, "have": true, "had": true, "her": true,
	"his": true, "she": true, "him": true, "has": true,
	"its": true, "out": true, "got": true, "get": true, "were": true,
	"they": true, "them": true, "then": true, "than": true, "when": true,
	"what": true, "just": true, "like": true, "from": true, "some": true,
	"very": true, "been": true, "being": true, "into": true, "about": true,
	"today": true, "here": true, "there": true, "really": true,
	"feel": true, "feeling": true, "felt": true,
}

// WordCount is one ranked token.
type WordCount struct {
	Word  string
	Count int
}

// CloudWord is a word-cloud item with its scaled display size.
type CloudWord struct {
	Word  string
	Count int
	Size  int // CloudMinSize..CloudMaxSize
}

// WordFrequency tokenizes all entry text (unfiltered by mood or date),
// lowercased, keeps alphabetic tokens of length >= 3, drops stopwords, and
// ranks descending by count. Ties keep first-appearance order.
func WordFrequency(entries []journal.Entry) []WordCount {
	counts := map[string]int{}
	var order []string

	for _, e := range entries {
		for _, tok := range tokenRe.FindAllString(strings.ToLower(e.Text), -1) {
			if stopwords[tok] {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Trending returns the top TrendingLimit words.
func Trending(entries []journal.Entry) []WordCount {
	freq := WordFrequency(entries)
	if len(freq) > TrendingLimit {
		freq = freq[:TrendingLimit]
	}
	return freq
}

// Cloud returns the top CloudLimit words with sizes scaled linearly between
// CloudMinSize and CloudMaxSize by ratio to the top count.
func Cloud(entries []journal.Entry) []CloudWord {
	freq := WordFrequency(entries)
	if len(freq) > CloudLimit {
		freq = freq[:CloudLimit]
	}
	if len(freq) == 0 {
		return nil
	}

	top := freq[0].Count
	out := make([]CloudWord, 0, len(freq))
	for _, wc := range freq {
		ratio := float64(wc.Count) / float64(top)
		size := CloudMinSize + int(ratio*float64(CloudMaxSize-CloudMinSize)+0.5)
		out = append(out, CloudWord{Word: wc.Word, Count: wc.Count, Size: size})
	}
	return out
}
