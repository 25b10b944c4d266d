package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Div performs element-wise division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / (b * b)
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkSameShape("div", a, b); err != nil {
		return nil, err
	}
	out := cpu.Div(a.Data(), b.Data())
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a, b}, &divFn{a: a, b: b}), nil
}

type divFn struct {
	a, b *tensor.Tensor
}

func (*divFn) Name() string { return "div" }

func (f *divFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	gradA := newGrad(cpu.Div(grad.Data(), f.b.Data()), grad.Shape())

	// grad_b = -grad * a / b²
	bSq := cpu.Mul(f.b.Data(), f.b.Data())
	gradB := newGrad(cpu.Neg(cpu.Div(cpu.Mul(grad.Data(), f.a.Data()), bSq)), grad.Shape())

	return []*tensor.Tensor{gradA, gradB}
}
