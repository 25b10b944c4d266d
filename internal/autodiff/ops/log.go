package ops

import (
	"math"

	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Log computes the element-wise natural logarithm: output = log(a).
//
// Backward pass: d(log(a))/da = 1/a, so grad_a = outputGrad / a.
//
// Note: Input values must be positive for finite results.
func Log(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Map(a.Data(), func(v float32) float32 {
		return float32(math.Log(float64(v)))
	})
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, &logFn{a: a})
}

type logFn struct {
	a *tensor.Tensor
}

func (*logFn) Name() string { return "log" }

func (f *logFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	return []*tensor.Tensor{newGrad(cpu.Div(grad.Data(), f.a.Data()), grad.Shape())}
}
