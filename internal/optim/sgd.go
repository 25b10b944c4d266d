// Package optim implements optimization algorithms over flint tensors.
//
// Optimizers update leaf tensors in place from the gradients accumulated by
// Backward, and reset those gradients between iterations.
//
// Example usage:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//
//	for epoch := range epochs {
//	    loss := forward(params, batch)
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import "github.com/born-ml/flint/internal/tensor"

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*tensor.Tensor
	lr         float32
	momentum   float32
	velocities map[*tensor.Tensor][]float32
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter tensors.
// Parameters without gradients are skipped by Step.
func NewSGD(params []*tensor.Tensor, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.Tensor][]float32),
	}
}

// Step applies one gradient update to every parameter that has an
// accumulated gradient.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}

		update := grad.Data()
		if s.momentum > 0 {
			v, ok := s.velocities[p]
			if !ok {
				v = make([]float32, p.NumElements())
				s.velocities[p] = v
			}
			for i := range v {
				v[i] = s.momentum*v[i] + update[i]
			}
			update = v
		}

		data := p.Data()
		for i := range data {
			data[i] -= s.lr * update[i]
		}
	}
}

// ZeroGrad resets every parameter's gradient buffer to zeros.
// Call before the next backward pass to prevent gradient accumulation across
// iterations.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 {
	return s.lr
}
