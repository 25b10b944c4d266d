package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Neg performs element-wise negation: output = -a.
//
// Backward pass: d(-a)/da = -1, so grad_a = -outputGrad.
func Neg(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Neg(a.Data())
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, negFn{})
}

type negFn struct{}

func (negFn) Name() string { return "neg" }

func (negFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{newGrad(cpu.Neg(grad.Data()), grad.Shape())}
}
