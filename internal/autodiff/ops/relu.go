package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// ReLU applies the rectified linear unit: output = max(0, a).
//
// Backward pass: d(ReLU(a))/da = 1 where a > 0, else 0, so the output
// gradient is masked by the sign of the input.
func ReLU(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Map(a.Data(), func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, &reluFn{a: a})
}

type reluFn struct {
	a *tensor.Tensor
}

func (*reluFn) Name() string { return "relu" }

func (f *reluFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	in := f.a.Data()
	out := make([]float32, len(in))
	for i, g := range grad.Data() {
		if in[i] > 0 {
			out[i] = g
		}
	}
	return []*tensor.Tensor{newGrad(out, grad.Shape())}
}
