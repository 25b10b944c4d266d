package ops

import (
	"fmt"

	"github.com/born-ml/flint/internal/tensor"
)

// Reshape changes the shape descriptor while sharing the same flat buffer.
//
// Unlike (*tensor.Tensor).Reshape, this is a graph operation: the gradient
// flows back to the input, reshaped to the input's shape. Without the graph
// edge, gradients computed for the reshaped view would never reach the
// original parameter.
//
// Backward pass: grad_a = outputGrad viewed under a's shape.
func Reshape(a *tensor.Tensor, newShape tensor.Shape) (*tensor.Tensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != a.NumElements() {
		return nil, &tensor.ShapeError{
			Op:      "reshape",
			Shape:   newShape.Clone(),
			Details: fmt.Sprintf("cannot view %d elements as shape %v (%d elements)", a.NumElements(), newShape, newShape.NumElements()),
		}
	}
	return tensor.FromOp(a.Data(), newShape, []*tensor.Tensor{a}, &reshapeFn{shape: a.Shape().Clone()}), nil
}

type reshapeFn struct {
	shape tensor.Shape // Input shape
}

func (*reshapeFn) Name() string { return "reshape" }

func (f *reshapeFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{newGrad(grad.Data(), f.shape)}
}
