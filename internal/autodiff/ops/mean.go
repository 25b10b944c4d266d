package ops

import (
	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// Mean reduces all elements to their arithmetic mean as a rank-0 scalar.
//
// Backward pass: grad_a = outputGrad / numElements, broadcast to the input
// shape.
func Mean(a *tensor.Tensor) *tensor.Tensor {
	n := a.NumElements()
	var mean float32
	if n > 0 {
		mean = cpu.Sum(a.Data()) / float32(n)
	}
	return tensor.FromOp([]float32{mean}, tensor.Shape{}, []*tensor.Tensor{a}, &meanFn{shape: a.Shape().Clone(), n: n})
}

type meanFn struct {
	shape tensor.Shape
	n     int
}

func (*meanFn) Name() string { return "mean" }

func (f *meanFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	if f.n == 0 {
		return []*tensor.Tensor{tensor.Zeros(f.shape)}
	}
	return []*tensor.Tensor{tensor.Full(f.shape, grad.Item()/float32(f.n))}
}
