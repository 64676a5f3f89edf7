package calculator

import (
	"errors"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	calc := New()

	cases := []struct {
		a, b, want int
	}{
		{1, 2, 3},
		{2, 3, 5},
		{3, 4, 7},
		{0, 0, 0},
		{-1, 1, 0},
		{-5, -7, -12},
	}

	for _, tc := range cases {
		got := calc.Add(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Add(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSubtract(t *testing.T) {
	calc := New()

	cases := []struct {
		a, b, want int
	}{
		{1, 2, -1},
		{10, 3, 7},
		{5, 8, -3},
		{0, 0, 0},
	}

	for _, tc := range cases {
		got := calc.Subtract(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Subtract(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMultiply(t *testing.T) {
	calc := New()

	cases := []struct {
		a, b, want int
	}{
		{1, 2, 2},
		{6, 7, 42},
		{-3, 4, -12},
		{0, 5, 0},
	}

	for _, tc := range cases {
		got := calc.Multiply(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Multiply(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDivide(t *testing.T) {
	calc := New()

	cases := []struct {
		a, b int
		want float64
	}{
		{1, 2, 0.5},
		{10, 2, 5.0},
		{7, 2, 3.5},
		{15, 3, 5.0},
		{-9, 4, -2.25},
		{0, 3, 0},
	}

	for _, tc := range cases {
		got, err := calc.Divide(tc.a, tc.b)
		if err != nil {
			t.Errorf("Divide(%d, %d) returned unexpected error: %v", tc.a, tc.b, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Divide(%d, %d) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	calc := New()

	for _, a := range []int{1, 0, -1, 42} {
		got, err := calc.Divide(a, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(%d, 0) error = %v; want ErrDivisionByZero", a, err)
		}
		if err != nil && !strings.Contains(err.Error(), "division by zero") {
			t.Errorf("Divide(%d, 0) error message %q does not mention division by zero", a, err)
		}
		if got != 0 {
			t.Errorf("Divide(%d, 0) = %v; want 0 alongside the error", a, got)
		}
	}
}

func TestZeroValueCalculator(t *testing.T) {
	var calc Calculator

	if got := calc.Add(1, 2); got != 3 {
		t.Errorf("zero value Add(1, 2) = %d; want 3", got)
	}
	if _, err := calc.Divide(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("zero value Divide(1, 0) error = %v; want ErrDivisionByZero", err)
	}
}
