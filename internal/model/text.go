package model

// TextStats is the result of analyzing a piece of text.
type TextStats struct {
	WordCount                int     `json:"word_count"`
	CharacterCount           int     `json:"character_count"`
	CharacterCountWithSpaces int     `json:"character_count_with_spaces"`
	LongestWord              string  `json:"longest_word"`
	AverageWordLength        float64 `json:"average_word_length"`
}
