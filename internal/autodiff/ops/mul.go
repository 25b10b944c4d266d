package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Mul performs element-wise multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkSameShape("mul", a, b); err != nil {
		return nil, err
	}
	out := cpu.Mul(a.Data(), b.Data())
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a, b}, &mulFn{a: a, b: b}), nil
}

type mulFn struct {
	a, b *tensor.Tensor
}

func (*mulFn) Name() string { return "mul" }

func (f *mulFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	gradA := newGrad(cpu.Mul(grad.Data(), f.b.Data()), grad.Shape())
	gradB := newGrad(cpu.Mul(grad.Data(), f.a.Data()), grad.Shape())
	return []*tensor.Tensor{gradA, gradB}
}
