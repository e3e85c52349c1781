// Package calculator implements the four basic binary operations.
//
// Division by zero is signaled as an explicit error return, never a sentinel
// value such as Inf or NaN.
package calculator

import (
	"github.com/katalabs/katakit/pkg/errors"
)

func Add(a, b float64) (float64, error) {
	return a + b, nil
}

func Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

func Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.NewArithmetic("division by zero", nil)
	}
	return a / b, nil
}
