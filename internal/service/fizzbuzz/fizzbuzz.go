package fizzbuzz

import (
	"strconv"

	"github.com/katalabs/katakit/pkg/errors"
)

// Sequence returns the FizzBuzz sequence for 1..n: "Fizz" when divisible by
// 3 only, "Buzz" when divisible by 5 only, "FizzBuzz" when divisible by both,
// otherwise the decimal string. n=0 yields an empty sequence; negative n is a
// domain-range error.
func Sequence(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.DomainRangef("fizzbuzz count must be non-negative, got %d", n)
	}

	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Term(i))
	}
	return out, nil
}

// Term returns the FizzBuzz term for a single 1-based index.
func Term(i int) string {
	switch {
	case i%15 == 0:
		return "FizzBuzz"
	case i%3 == 0:
		return "Fizz"
	case i%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(i)
	}
}
