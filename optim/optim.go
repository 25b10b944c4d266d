// Copyright 2026 Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers over flint tensors.
package optim

import (
	"github.com/born-ml/flint/internal/optim"
	"github.com/born-ml/flint/internal/tensor"
)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameter tensors.
//
// Example:
//
//	w := tensor.Randn(tensor.Shape{784, 10}).RequireGrad()
//	optimizer := optim.NewSGD([]*tensor.Tensor{w}, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
