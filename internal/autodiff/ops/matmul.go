package ops

import (
	"fmt"

	"github.com/born-ml/flint/internal/backend/cpu"
	"github.com/born-ml/flint/internal/tensor"
)

// MatMul performs 2-D matrix multiplication: output = a @ b.
//
// a must have shape [m, k] and b shape [k, n]; the result has shape [m, n].
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if len(a.Shape()) != 2 || len(b.Shape()) != 2 {
		return nil, &tensor.ShapeError{
			Op:      "matmul",
			Shape:   a.Shape().Clone(),
			Details: fmt.Sprintf("requires 2-D tensors, got %v and %v", a.Shape(), b.Shape()),
		}
	}
	m, k := a.Size(0), a.Size(1)
	k2, n := b.Size(0), b.Size(1)
	if k != k2 {
		return nil, &tensor.ShapeError{
			Op:      "matmul",
			Shape:   b.Shape().Clone(),
			Details: fmt.Sprintf("inner dimensions must match: %d vs %d", k, k2),
		}
	}

	out := cpu.MatMul(a.Data(), b.Data(), m, k, n)
	return tensor.FromOp(out, tensor.Shape{m, n}, []*tensor.Tensor{a, b}, &matMulFn{a: a, b: b}), nil
}

type matMulFn struct {
	a, b *tensor.Tensor
}

func (*matMulFn) Name() string { return "matmul" }

func (f *matMulFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	m, k := f.a.Size(0), f.a.Size(1)
	n := f.b.Size(1)

	// grad_a = outputGrad @ b^T
	bT := cpu.Transpose2D(f.b.Data(), k, n)
	gradA := newGrad(cpu.MatMul(grad.Data(), bT, m, n, k), tensor.Shape{m, k})

	// grad_b = a^T @ outputGrad
	aT := cpu.Transpose2D(f.a.Data(), m, k)
	gradB := newGrad(cpu.MatMul(aT, grad.Data(), k, m, n), tensor.Shape{k, n})

	return []*tensor.Tensor{gradA, gradB}
}
