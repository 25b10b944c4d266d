package ops

import (
	"math"

	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Exp computes the element-wise natural exponential: output = exp(a).
//
// Backward pass: d(exp(a))/da = exp(a), the saved forward output.
func Exp(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Map(a.Data(), func(v float32) float32 {
		return float32(math.Exp(float64(v)))
	})
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, &expFn{y: out})
}

type expFn struct {
	y []float32 // Forward output
}

func (*expFn) Name() string { return "exp" }

func (f *expFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{newGrad(cpu.Mul(grad.Data(), f.y), grad.Shape())}
}
