package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Add performs element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkSameShape("add", a, b); err != nil {
		return nil, err
	}
	out := cpu.Add(a.Data(), b.Data())
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a, b}, addFn{}), nil
}

type addFn struct{}

func (addFn) Name() string { return "add" }

// Backward routes the output gradient unchanged to both inputs.
func (addFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{grad, grad}
}
