package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalabs/katakit/internal/model"
)

func TestAnalyzeHelloWorld(t *testing.T) {
	stats := Analyze("Hello world")

	assert.Equal(t, model.TextStats{
		WordCount:                2,
		CharacterCount:           10,
		CharacterCountWithSpaces: 11,
		LongestWord:              "world",
		AverageWordLength:        5.00,
	}, stats)
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze("")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.CharacterCount)
	assert.Zero(t, stats.CharacterCountWithSpaces)
	assert.Zero(t, stats.AverageWordLength)
	assert.Equal(t, "", stats.LongestWord)
}

func TestAnalyzeWhitespaceOnly(t *testing.T) {
	stats := Analyze("   \t\n  ")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.CharacterCount)
	assert.Equal(t, 7, stats.CharacterCountWithSpaces)
	assert.Equal(t, "", stats.LongestWord)
}

func TestAnalyzeLongestWordFirstOccurrenceWins(t *testing.T) {
	stats := Analyze("apple grape melon")
	assert.Equal(t, "apple", stats.LongestWord)
}

func TestAnalyzeKeepsPunctuation(t *testing.T) {
	stats := Analyze("hi, there!")

	assert.Equal(t, 2, stats.WordCount)
	assert.Equal(t, "there!", stats.LongestWord)
	assert.Equal(t, 9, stats.CharacterCount)
}

func TestAnalyzeAverageRounding(t *testing.T) {
	// 3+4+3 = 10 chars over 3 words = 3.3333... -> 3.33
	stats := Analyze("one four two")
	assert.Equal(t, 3.33, stats.AverageWordLength)
}

func TestAnalyzeWhitespaceRuns(t *testing.T) {
	stats := Analyze("  spaced   out  ")

	assert.Equal(t, 2, stats.WordCount)
	assert.Equal(t, 9, stats.CharacterCount)
	assert.Equal(t, 16, stats.CharacterCountWithSpaces)
	assert.Equal(t, "spaced", stats.LongestWord)
}
