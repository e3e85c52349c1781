package palindrome

import (
	"strings"
	"unicode"
)

// Normalize reduces s to lowercase alphanumeric characters only. Lower-casing
// is ASCII-safe per rune; no locale-specific folding is applied.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// IsPalindrome reports whether s reads the same forwards and backwards after
// normalization. The empty string and single characters are palindromes.
func IsPalindrome(s string) bool {
	runes := []rune(Normalize(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
