package ops

import (
	"math"

	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Tanh applies the hyperbolic tangent: output = tanh(a).
//
// Backward pass: d(tanh(a))/da = 1 - tanh²(a), computed from the saved
// forward output.
func Tanh(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Map(a.Data(), func(v float32) float32 {
		return float32(math.Tanh(float64(v)))
	})
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, &tanhFn{y: out})
}

type tanhFn struct {
	y []float32 // Forward output
}

func (*tanhFn) Name() string { return "tanh" }

func (f *tanhFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	out := make([]float32, len(f.y))
	for i, g := range grad.Data() {
		out[i] = g * (1 - f.y[i]*f.y[i])
	}
	return []*tensor.Tensor{newGrad(out, grad.Shape())}
}
