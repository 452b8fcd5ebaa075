// Package vec provides the element-wise primitives behind the slice forms of
// every formula in this module.
//
// Scalars and slices share one rule set, the same one array libraries use
// for broadcasting: two operands are compatible when they have the same
// length or when either one has exactly one element, in which case that
// element is reused for every position of the other operand.
//
// All helpers allocate a new result slice and never modify their inputs.
package vec

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch is returned when two operands cannot be broadcast together.
var ErrShapeMismatch = errors.New("vec: operand lengths cannot be broadcast")

// Map applies f to every element of xs.
func Map(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// BroadcastLen reports the result length for operands of length n and m.
func BroadcastLen(n, m int) (int, error) {
	switch {
	case n == m:
		return n, nil
	case n == 1:
		return m, nil
	case m == 1:
		return n, nil
	}
	return 0, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, m)
}

// Map2 applies f pairwise to a and b, broadcasting a length-1 operand.
func Map2(a, b []float64, f func(x, y float64) float64) ([]float64, error) {
	n, err := BroadcastLen(len(a), len(b))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = f(at(a, i), at(b, i))
	}
	return out, nil
}

// Span returns n evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func at(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}
