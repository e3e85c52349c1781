package numwords

import (
	"strings"

	"github.com/katalabs/katakit/pkg/errors"
)

// MaxNumber is the largest value ToWords accepts.
const MaxNumber = 999

var ones = [20]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = map[int]string{
	20: "twenty",
	30: "thirty",
	40: "forty",
	50: "fifty",
	60: "sixty",
	70: "seventy",
	80: "eighty",
	90: "ninety",
}

// ToWords spells out n in English words for 0 <= n <= 999. Segments are
// joined with single spaces and zero alone spells "zero".
func ToWords(n int) (string, error) {
	if n < 0 || n > MaxNumber {
		return "", errors.DomainRangef("number must be between 0 and %d, got %d", MaxNumber, n)
	}
	if n == 0 {
		return ones[0], nil
	}

	var parts []string

	if h := n / 100; h > 0 {
		parts = append(parts, ones[h], "hundred")
	}

	switch r := n % 100; {
	case r == 0:
	case r < 20:
		parts = append(parts, ones[r])
	default:
		parts = append(parts, tens[r/10*10])
		if r%10 != 0 {
			parts = append(parts, ones[r%10])
		}
	}

	return strings.Join(parts, " "), nil
}
