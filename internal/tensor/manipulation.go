package tensor

import "fmt"

// Reshape returns a tensor viewing the same buffer under a new shape.
//
// The product of the new shape must equal the number of elements; a mismatch
// fails with a ShapeError. No data is copied or reallocated; only the shape
// descriptor changes. The result is a plain view with no graph edge; the
// differentiable reshape lives in the ops layer.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{2, 6})
//	v, _ := t.Reshape(tensor.Shape{3, 4}) // Same buffer, shape [3, 4]
func (t *Tensor) Reshape(newShape Shape) (*Tensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != len(t.data) {
		return nil, &ShapeError{
			Op:      "reshape",
			Shape:   newShape.Clone(),
			Details: fmt.Sprintf("cannot view %d elements as shape %v (%d elements)", len(t.data), newShape, newShape.NumElements()),
		}
	}
	return &Tensor{data: t.data, shape: newShape.Clone()}, nil
}

// Flatten returns a 1-D view over the same buffer.
func (t *Tensor) Flatten() *Tensor {
	return &Tensor{data: t.data, shape: Shape{len(t.data)}}
}
