package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Sum reduces all elements to a rank-0 scalar: output = Σ a_i.
//
// Backward pass: every element contributed with weight 1, so the scalar
// output gradient is broadcast to the input shape.
func Sum(a *tensor.Tensor) *tensor.Tensor {
	out := []float32{cpu.Sum(a.Data())}
	return tensor.FromOp(out, tensor.Shape{}, []*tensor.Tensor{a}, &sumFn{shape: a.Shape().Clone()})
}

type sumFn struct {
	shape tensor.Shape
}

func (*sumFn) Name() string { return "sum" }

func (f *sumFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{tensor.Full(f.shape, grad.Item())}
}
