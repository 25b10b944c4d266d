package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Sub performs element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkSameShape("sub", a, b); err != nil {
		return nil, err
	}
	out := cpu.Sub(a.Data(), b.Data())
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a, b}, subFn{}), nil
}

type subFn struct{}

func (subFn) Name() string { return "sub" }

func (subFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	negGrad := newGrad(cpu.Neg(grad.Data()), grad.Shape())
	return []*tensor.Tensor{grad, negGrad}
}
