// Copyright 2026 Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the differentiable operations over flint tensors.
//
// Each operation computes its result eagerly and, when any input requires
// gradients, wires the result into the computation graph. Calling Backward
// on a downstream tensor (typically a scalar loss) then propagates gradients
// to every tensor that influenced it.
//
// Example:
//
//	import (
//	    "github.com/born-ml/flint/autodiff"
//	    "github.com/born-ml/flint/tensor"
//	)
//
//	func main() {
//	    x := tensor.Randn(tensor.Shape{4, 4}).RequireGrad()
//	    y := tensor.Randn(tensor.Shape{4, 4}).RequireGrad()
//
//	    z, _ := autodiff.MatMul(x, y)
//	    loss := autodiff.Sum(z)
//
//	    _ = loss.Backward()
//	    fmt.Println(x.Grad(), y.Grad())
//	}
package autodiff

import (
	"github.com/born-ml/flint/internal/autodiff/ops"
	"github.com/born-ml/flint/internal/tensor"
)

// Add performs element-wise addition: a + b.
// Shapes must match exactly; there is no broadcasting.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Add(a, b)
}

// Sub performs element-wise subtraction: a - b.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Sub(a, b)
}

// Mul performs element-wise multiplication: a * b.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Mul(a, b)
}

// Div performs element-wise division: a / b.
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Div(a, b)
}

// Neg performs element-wise negation: -a.
func Neg(a *tensor.Tensor) *tensor.Tensor {
	return ops.Neg(a)
}

// MatMul performs 2-D matrix multiplication: a @ b.
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.MatMul(a, b)
}

// Sum reduces all elements to a rank-0 scalar.
func Sum(a *tensor.Tensor) *tensor.Tensor {
	return ops.Sum(a)
}

// Mean reduces all elements to their arithmetic mean as a rank-0 scalar.
func Mean(a *tensor.Tensor) *tensor.Tensor {
	return ops.Mean(a)
}

// ReLU applies the rectified linear unit: max(0, a).
func ReLU(a *tensor.Tensor) *tensor.Tensor {
	return ops.ReLU(a)
}

// Sigmoid applies the logistic function: 1 / (1 + exp(-a)).
func Sigmoid(a *tensor.Tensor) *tensor.Tensor {
	return ops.Sigmoid(a)
}

// Tanh applies the hyperbolic tangent.
func Tanh(a *tensor.Tensor) *tensor.Tensor {
	return ops.Tanh(a)
}

// Exp computes the element-wise natural exponential.
func Exp(a *tensor.Tensor) *tensor.Tensor {
	return ops.Exp(a)
}

// Log computes the element-wise natural logarithm.
func Log(a *tensor.Tensor) *tensor.Tensor {
	return ops.Log(a)
}

// Reshape changes the shape descriptor while sharing the same flat buffer,
// recording a graph edge so gradients flow back to the input.
func Reshape(a *tensor.Tensor, newShape tensor.Shape) (*tensor.Tensor, error) {
	return ops.Reshape(a, newShape)
}
