package roman

import (
	"strings"

	"github.com/katalabs/katakit/pkg/errors"
)

// Bounds for the Roman numeral system as commonly taught.
const (
	MinNumber = 1
	MaxNumber = 3999
)

// numerals is the descending conversion table. It already encodes the four
// legal subtractive pairs so greedy subtraction produces canonical numerals.
var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var symbolValues = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// Converter converts between integers and Roman numerals.
type Converter struct {
	strict bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithStrictParsing makes FromRoman reject any numeral that is not the
// canonical spelling of its value (illegal repetitions, non-standard
// subtractive forms).
func WithStrictParsing() Option {
	return func(c *Converter) { c.strict = true }
}

// NewConverter builds a Converter. The default parser accepts any
// left-to-right decodable string over the legal symbol set.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToRoman encodes n for MinNumber <= n <= MaxNumber by greedy subtraction
// against the descending table.
func (c *Converter) ToRoman(n int) (string, error) {
	if n < MinNumber || n > MaxNumber {
		return "", errors.DomainRangef("roman numerals cover %d to %d, got %d", MinNumber, MaxNumber, n)
	}

	var b strings.Builder
	for _, entry := range numerals {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}

// FromRoman decodes s by scanning left to right, subtracting a symbol's value
// whenever the following symbol is larger. Unknown symbols and the empty
// string are malformed input. In strict mode the numeral must also be the
// canonical spelling of its value.
func (c *Converter) FromRoman(s string) (int, error) {
	if s == "" {
		return 0, errors.NewMalformedInput("empty roman numeral", nil)
	}

	total := 0
	for i := 0; i < len(s); i++ {
		value, ok := symbolValues[s[i]]
		if !ok {
			return 0, errors.MalformedInputf("invalid roman symbol %q in %q", s[i], s)
		}
		if i+1 < len(s) {
			if next, ok := symbolValues[s[i+1]]; ok && value < next {
				total -= value
				continue
			}
		}
		total += value
	}

	if total < MinNumber || total > MaxNumber {
		return 0, errors.MalformedInputf("roman numeral %q decodes outside %d..%d", s, MinNumber, MaxNumber)
	}

	if c.strict {
		canonical, err := c.ToRoman(total)
		if err != nil {
			return 0, err
		}
		if canonical != s {
			return 0, errors.MalformedInputf("non-canonical roman numeral %q, expected %q", s, canonical)
		}
	}

	return total, nil
}

// ToRoman encodes n using a default Converter.
func ToRoman(n int) (string, error) {
	return NewConverter().ToRoman(n)
}

// FromRoman decodes s using a default (non-strict) Converter.
func FromRoman(s string) (int, error) {
	return NewConverter().FromRoman(s)
}
