package textstats

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/katalabs/katakit/internal/model"
)

// Analyze tokenizes text on whitespace runs (empty tokens discarded,
// punctuation kept) and reports the counts described by model.TextStats.
// Character counts are in runes. The longest word is the first occurrence on
// ties; the average word length is rounded to 2 decimal places and is 0 when
// there are no words.
func Analyze(text string) model.TextStats {
	words := strings.Fields(text)

	stats := model.TextStats{
		WordCount:                len(words),
		CharacterCountWithSpaces: utf8.RuneCountInString(text),
	}

	for _, w := range words {
		n := utf8.RuneCountInString(w)
		stats.CharacterCount += n
		if n > utf8.RuneCountInString(stats.LongestWord) {
			stats.LongestWord = w
		}
	}

	if stats.WordCount > 0 {
		avg := float64(stats.CharacterCount) / float64(stats.WordCount)
		stats.AverageWordLength = math.Round(avg*100) / 100
	}

	return stats
}
