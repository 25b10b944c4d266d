// Package cpu implements pure-Go float32 kernels used by the autodiff ops
// layer. Kernels operate on flat row-major buffers; shape handling and graph
// bookkeeping stay in the callers. Length mismatches are programmer errors
// and panic.
package cpu

import "fmt"

// Add returns the element-wise sum a + b.
func Add(a, b []float32) []float32 {
	checkLen("Add", a, b)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the element-wise difference a - b.
func Sub(a, b []float32) []float32 {
	checkLen("Sub", a, b)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// Mul returns the element-wise product a * b.
func Mul(a, b []float32) []float32 {
	checkLen("Mul", a, b)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div returns the element-wise quotient a / b.
func Div(a, b []float32) []float32 {
	checkLen("Div", a, b)
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out
}

// Neg returns the element-wise negation of a.
func Neg(a []float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = -a[i]
	}
	return out
}

// Scale returns a scaled by s.
func Scale(a []float32, s float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = a[i] * s
	}
	return out
}

// Map returns f applied to every element of a.
func Map(a []float32, f func(float32) float32) []float32 {
	out := make([]float32, len(a))
	for i := range a {
		out[i] = f(a[i])
	}
	return out
}

// Sum returns the sum of all elements of a.
func Sum(a []float32) float32 {
	var s float32
	for _, v := range a {
		s += v
	}
	return s
}

func checkLen(op string, a, b []float32) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cpu.%s: length mismatch: %d vs %d", op, len(a), len(b)))
	}
}
