package ops

import (
	"math"

	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Sigmoid applies the logistic function: output = 1 / (1 + exp(-a)).
//
// Backward pass: dσ(a)/da = σ(a) * (1 - σ(a)), computed from the saved
// forward output.
func Sigmoid(a *tensor.Tensor) *tensor.Tensor {
	out := cpu.Map(a.Data(), func(v float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(float64(-v))))
	})
	return tensor.FromOp(out, a.Shape(), []*tensor.Tensor{a}, &sigmoidFn{y: out})
}

type sigmoidFn struct {
	y []float32 // Forward output
}

func (*sigmoidFn) Name() string { return "sigmoid" }

func (f *sigmoidFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	out := make([]float32, len(f.y))
	for i, g := range grad.Data() {
		out[i] = g * f.y[i] * (1 - f.y[i])
	}
	return []*tensor.Tensor{newGrad(out, grad.Shape())}
}
