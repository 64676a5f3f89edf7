// Package calculator provides basic arithmetic operations over integers.
//
// A Calculator holds no state; the zero value is ready to use and may be
// shared freely between goroutines.
package calculator

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Calculator performs the four elementary binary operations.
type Calculator struct{}

// New returns a ready-to-use Calculator.
func New() Calculator {
	return Calculator{}
}

// Add returns the sum of two integers.
func (Calculator) Add(a, b int) int {
	return a + b
}

// Subtract returns the difference a - b.
func (Calculator) Subtract(a, b int) int {
	return a - b
}

// Multiply returns the product of two integers.
func (Calculator) Multiply(a, b int) int {
	return a * b
}

// Divide returns the floating-point quotient a / b.
// It fails with ErrDivisionByZero whenever b is zero, including 0 / 0.
func (Calculator) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide %d: %w", a, ErrDivisionByZero)
	}
	return float64(a) / float64(b), nil
}
