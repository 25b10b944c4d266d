// Copyright 2026 Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for flint tensors.
//
// A Tensor is an N-dimensional float32 array with flat, contiguous row-major
// storage and optional gradient tracking. Every tensor doubles as a node of
// the computation graph: tensors built by the autodiff ops layer record their
// parents and a backward rule, and Backward on a root tensor propagates
// gradients to every reachable tensor that requires them.
//
// Example:
//
//	import (
//	    "github.com/born-ml/flint/autodiff"
//	    "github.com/born-ml/flint/tensor"
//	)
//
//	func main() {
//	    x := tensor.Ones(tensor.Shape{2, 3}).RequireGrad()
//	    y := autodiff.Sum(x)
//	    _ = y.Backward()
//	    fmt.Println(x.Grad()) // ones, shape [2, 3]
//	}
package tensor

import (
	"github.com/born-ml/flint/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is an N-dimensional float32 array with optional gradient tracking.
type Tensor = tensor.Tensor

// Function is the backward rule attached to a tensor produced by a
// differentiable operation. Implement it to define custom operations.
type Function = tensor.Function

// Error types.

// ShapeError reports inconsistent nested-array lengths, invalid dimensions,
// or a product mismatch on reshape or explicit-shape construction.
type ShapeError = tensor.ShapeError

// TypeError reports an unsupported construction input.
type TypeError = tensor.TypeError

// ValueError reports an invalid numeric parameter.
type ValueError = tensor.ValueError

// GraphError reports an invalid computation graph state, such as a cycle.
type GraphError = tensor.GraphError

// Creation functions

// FromNested creates a tensor from nested literal data of any depth,
// inferring the shape from the nesting structure.
//
// Example:
//
//	t, err := tensor.FromNested([][]float32{{1, 2, 3}, {4, 5, 6}}) // shape [2, 3]
func FromNested(v any) (*Tensor, error) {
	return tensor.FromNested(v)
}

// From2D creates a 2-D tensor from nested row slices.
func From2D(rows [][]float32) (*Tensor, error) {
	return tensor.From2D(rows)
}

// From3D creates a 3-D tensor from nested slices.
func From3D(v [][][]float32) (*Tensor, error) {
	return tensor.From3D(v)
}

// FromScalar creates a rank-0 tensor holding a single value.
func FromScalar(v float32) *Tensor {
	return tensor.FromScalar(v)
}

// FromSlice creates a tensor from a flat buffer and an explicit shape.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return tensor.ZerosLike(t)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// OnesLike creates a tensor of ones with the same shape as t.
func OnesLike(t *Tensor) *Tensor {
	return tensor.OnesLike(t)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Arange creates a 1-D tensor with evenly spaced values.
//
// Example:
//
//	x, err := tensor.Arange(0, 10, 2) // [0, 2, 4, 6, 8]
func Arange(args ...float32) (*Tensor, error) {
	return tensor.Arange(args...)
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand(shape Shape) *Tensor {
	return tensor.Rand(shape)
}

// Randn creates a tensor with random values from a standard normal
// distribution N(0, 1).
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{100, 100})
func Randn(shape Shape) *Tensor {
	return tensor.Randn(shape)
}

// New creates a tensor that takes ownership of data with the given shape.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// FromOp creates the result tensor of a differentiable operation, recording
// parents and the backward rule when any parent requires gradients.
//
// This is the hook for defining custom differentiable operations outside the
// autodiff package.
func FromOp(data []float32, shape Shape, parents []*Tensor, fn Function) *Tensor {
	return tensor.FromOp(data, shape, parents, fn)
}
