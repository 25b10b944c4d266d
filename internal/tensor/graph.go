package tensor

import "fmt"

// Node colors for the depth-first traversal in Backward.
// A gray node is discovered but not finished; meeting one again means the
// parents links form a cycle.
type visitColor uint8

const (
	white visitColor = iota
	gray
	black
)

// Backward propagates gradients from this tensor to every tensor reachable
// through parents links that requires gradients.
//
// Seeding: if the tensor has no gradient yet, it is seeded with ones matching
// its shape (the derivative of the tensor with respect to itself). An
// existing gradient is reused as the seed, which supports accumulating over
// multiple disjoint backward calls.
//
// The reachable subgraph is walked in reverse topological order, so a
// tensor's backward rule fires only after every consumer in the traversal has
// contributed its portion of the tensor's gradient. Contributions are summed,
// never overwritten. The graph must be a DAG; a cycle fails with a GraphError
// since it can only come from a bug in the operation layer.
//
// Example:
//
//	x := tensor.Ones(tensor.Shape{2, 3}).RequireGrad()
//	loss := ops.Sum(x)
//	if err := loss.Backward(); err != nil {
//	    return err
//	}
//	fmt.Println(x.Grad()) // ones, shape [2, 3]
func (t *Tensor) Backward() error {
	if !t.requiresGrad {
		return &GraphError{
			Op:      "backward",
			Details: "called on a tensor that does not require gradients",
		}
	}

	if t.grad == nil {
		t.grad = OnesLike(t)
	}

	order, err := topoSort(t)
	if err != nil {
		return err
	}

	// order is depth-first finish order: leaves first, root last. Walking it
	// back to front processes every consumer before its producers.
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.fn == nil || n.grad == nil {
			continue
		}
		contribs := n.fn.Backward(n.grad)
		if len(contribs) != len(n.parents) {
			return &GraphError{
				Op:      "backward",
				Details: fmt.Sprintf("op %s returned %d gradients for %d parents", n.fn.Name(), len(contribs), len(n.parents)),
			}
		}
		for j, parent := range n.parents {
			contrib := contribs[j]
			if contrib == nil || !parent.requiresGrad {
				continue
			}
			if !contrib.shape.Equal(parent.shape) {
				return &ShapeError{
					Op:      "backward",
					Shape:   contrib.shape.Clone(),
					Details: fmt.Sprintf("op %s produced gradient of shape %v for parent of shape %v", n.fn.Name(), contrib.shape, parent.shape),
				}
			}
			parent.accumulateGrad(contrib)
		}
	}

	return nil
}

// topoSort returns the subgraph reachable from root in depth-first finish
// order, failing fast on cycles via white/gray/black coloring.
func topoSort(root *Tensor) ([]*Tensor, error) {
	color := make(map[*Tensor]visitColor)
	order := make([]*Tensor, 0, 16)
	stack := []*Tensor{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		switch color[n] {
		case white:
			color[n] = gray
			for _, p := range n.parents {
				switch color[p] {
				case gray:
					return nil, &GraphError{
						Op:      "backward",
						Details: "cycle detected in computation graph",
					}
				case white:
					stack = append(stack, p)
				}
			}
		case gray:
			color[n] = black
			order = append(order, n)
			stack = stack[:len(stack)-1]
		default: // black: stale duplicate entry
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}

// accumulateGrad adds a contribution into the tensor's gradient, allocating
// it as zeros on first touch.
func (t *Tensor) accumulateGrad(contrib *Tensor) {
	if t.grad == nil {
		t.grad = ZerosLike(t)
	}
	grad := t.grad.data
	for i, v := range contrib.data {
		grad[i] += v
	}
}

// ZeroGrad resets the gradient buffer to zeros without discarding the
// allocation, so it can be reused across training iterations. A tensor with
// no gradient yet is left untouched.
func (t *Tensor) ZeroGrad() {
	if t.grad == nil {
		return
	}
	clear(t.grad.data)
}
