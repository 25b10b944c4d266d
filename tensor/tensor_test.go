// Copyright 2026 Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/flint/autodiff"
	"github.com/born-ml/flint/optim"
	"github.com/born-ml/flint/tensor"
)

// The public packages are thin facades; these tests exercise the whole
// surface together the way a user would.

func TestEndToEndTraining(t *testing.T) {
	w, err := tensor.FromSlice([]float32{4}, tensor.Shape{1})
	require.NoError(t, err)
	w.RequireGrad()
	target := tensor.Full(tensor.Shape{1}, 1)

	sgd := optim.NewSGD([]*tensor.Tensor{w}, optim.SGDConfig{LR: 0.3})

	for i := 0; i < 50; i++ {
		diff, err := autodiff.Sub(w, target)
		require.NoError(t, err)
		sq, err := autodiff.Mul(diff, diff)
		require.NoError(t, err)
		loss := autodiff.Sum(sq)

		require.NoError(t, loss.Backward())
		sgd.Step()
		sgd.ZeroGrad()
	}

	assert.InDelta(t, 1, float64(w.Data()[0]), 1e-3)
}

func TestFacadeConstructionAndFormat(t *testing.T) {
	x, err := tensor.FromNested([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, x.Size(0))
	assert.Equal(t, 3, x.Size(-1))
	assert.Equal(t, "tensor([\n  [1, 2, 3],\n  [4, 5, 6]\n], dtype=float32)", x.String())
}

func TestFacadeErrorTypes(t *testing.T) {
	_, err := tensor.FromNested([][]float32{{1, 2}, {3}})
	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)

	_, err = tensor.Arange(0, 5, 0)
	var valueErr *tensor.ValueError
	assert.ErrorAs(t, err, &valueErr)
}

func TestCustomFunctionViaFromOp(t *testing.T) {
	// Users can define their own differentiable ops through FromOp.
	x := tensor.Ones(tensor.Shape{3}).RequireGrad()

	double := tensor.FromOp(
		[]float32{2, 2, 2},
		tensor.Shape{3},
		[]*tensor.Tensor{x},
		doubleFn{},
	)

	loss := autodiff.Sum(double)
	require.NoError(t, loss.Backward())
	assert.Equal(t, []float32{2, 2, 2}, x.Grad().Data())
}

type doubleFn struct{}

func (doubleFn) Name() string { return "double" }

func (doubleFn) Backward(grad *tensor.Tensor) []*tensor.Tensor {
	out := make([]float32, grad.NumElements())
	for i, g := range grad.Data() {
		out[i] = 2 * g
	}
	result, _ := tensor.New(out, grad.Shape())
	return []*tensor.Tensor{result}
}
