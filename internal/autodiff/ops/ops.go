// Package ops implements the differentiable operation layer over the tensor
// core.
//
// Each operation validates its input shapes eagerly, computes the forward
// result with the cpu kernels, and, when any input requires gradients, wires
// the result into the computation graph by recording its parents and a
// backward rule. The backward rule implements tensor.Function: given the
// output gradient it returns exactly one gradient per parent, in parent
// order.
//
// Supported operations:
//   - Add, Sub, Mul, Div, Neg: element-wise arithmetic (exact shape equality,
//     no broadcasting)
//   - MatMul: 2-D matrix multiplication
//   - Sum, Mean: full reductions to a scalar
//   - ReLU, Sigmoid, Tanh, Exp, Log: element-wise nonlinearities
package ops

import (
	"fmt"

	"github.com/born-ml/flint/internal/tensor"
)

// newGrad wraps a freshly computed gradient buffer. Backward rules only pair
// buffers with the shapes they were computed for, so a failure here is a bug.
func newGrad(data []float32, shape tensor.Shape) *tensor.Tensor {
	t, err := tensor.New(data, shape)
	if err != nil {
		panic(fmt.Sprintf("ops: bad gradient buffer: %v", err))
	}
	return t
}

// checkSameShape verifies exact element-wise shape equality.
func checkSameShape(op string, a, b *tensor.Tensor) error {
	if !a.Shape().Equal(b.Shape()) {
		return &tensor.ShapeError{
			Op:      op,
			Shape:   a.Shape().Clone(),
			Details: fmt.Sprintf("shapes %v and %v do not match", a.Shape(), b.Shape()),
		}
	}
	return nil
}
