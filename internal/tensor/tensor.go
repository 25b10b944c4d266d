// Package tensor provides the core tensor type for the Flint autodiff library.
//
// A Tensor owns a flat, contiguous float32 buffer in row-major order together
// with a shape descriptor. Every tensor is also a node of the implicit
// computation graph: a tensor produced by a differentiable operation records
// the tensors it was derived from and the rule that propagates gradients back
// to them. There is no separate node type.
package tensor

import "fmt"

// Function is the backward rule attached to a tensor produced by a
// differentiable operation. Given the tensor's own (accumulated) gradient it
// returns one gradient contribution per parent, in parent order.
//
// Implementations live in the autodiff ops layer; the tensor core only
// invokes them during Backward.
type Function interface {
	// Backward computes gradients for the operation's inputs given the
	// output gradient. The returned slice must have exactly one entry per
	// parent, in the same order as the parents list. A nil entry means no
	// gradient flows to that parent.
	Backward(grad *Tensor) []*Tensor

	// Name returns a short operation name for error messages.
	Name() string
}

// Tensor is an N-dimensional array of float32 values with optional gradient
// tracking. The data buffer is flat and contiguous, laid out row-major;
// its length always equals the product of the shape (the empty shape is a
// scalar with one element).
//
// Example:
//
//	x := tensor.Ones(tensor.Shape{2, 3}).RequireGrad()
//	y := ops.Sum(x)
//	_ = y.Backward()
//	fmt.Println(x.Grad()) // all ones, shape [2, 3]
type Tensor struct {
	data         []float32
	shape        Shape
	requiresGrad bool
	grad         *Tensor   // Accumulated gradient; nil until first contribution
	parents      []*Tensor // Tensors this one was derived from (graph edges)
	fn           Function  // Backward rule; nil for leaves
}

// New creates a tensor that takes ownership of data with the given shape.
// It is the low-level constructor used by the creation factories and the
// ops layer; len(data) must equal shape.NumElements().
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, &ShapeError{
			Op:      "new",
			Shape:   shape.Clone(),
			Details: fmt.Sprintf("shape requires %d elements, but got %d", shape.NumElements(), len(data)),
		}
	}
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// FromOp creates the result tensor of a differentiable operation.
//
// If any parent requires gradients, the result is marked as requiring
// gradients and records parents and fn; otherwise the graph bookkeeping is
// skipped entirely and the result is an ordinary leaf. This keeps the
// invariant that a tensor with RequiresGrad() == false never carries graph
// edges feeding gradient accumulation into itself.
func FromOp(data []float32, shape Shape, parents []*Tensor, fn Function) *Tensor {
	t, err := New(data, shape)
	if err != nil {
		panic(fmt.Sprintf("FromOp: %v", err)) // Op produced an inconsistent result
	}
	for _, p := range parents {
		if p.requiresGrad {
			t.requiresGrad = true
			t.parents = append([]*Tensor(nil), parents...)
			t.fn = fn
			break
		}
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Size returns the size of the given dimension.
// Negative indexing is supported (-1 = last dimension).
// Panics if dim is out of range.
func (t *Tensor) Size(dim int) int {
	if dim < 0 {
		dim += len(t.shape)
	}
	if dim < 0 || dim >= len(t.shape) {
		panic(fmt.Sprintf("Size: dimension %d out of range for shape %v", dim, t.shape))
	}
	return t.shape[dim]
}

// Data returns the tensor's flat buffer.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float32 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float32 {
	return t.data[t.offsetOf(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float32, indices ...int) {
	t.data[t.offsetOf(indices)] = value
}

func (t *Tensor) offsetOf(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor's data and shape.
// Gradient state and graph edges are not cloned.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// Detach returns a new tensor that shares the same data but doesn't track
// gradients. Operations on the detached tensor won't extend the graph, which
// stops gradient flow at this point.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{data: t.data, shape: t.shape.Clone()}
}

// RequireGrad marks this tensor for gradient computation.
// Returns the tensor itself for method chaining.
//
// Example:
//
//	w := tensor.Randn(tensor.Shape{4, 4}).RequireGrad()
func (t *Tensor) RequireGrad() *Tensor {
	t.requiresGrad = true
	return t
}

// RequiresGrad returns true if this tensor requires gradient computation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the accumulated gradient tensor, or nil if no gradient has
// been contributed yet. When present, its shape always equals the owner's.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// SetGrad replaces the gradient tensor. A non-nil gradient must match the
// owner's shape. Setting the gradient before Backward seeds the traversal
// with that value instead of ones.
func (t *Tensor) SetGrad(grad *Tensor) {
	if grad != nil && !grad.shape.Equal(t.shape) {
		panic(fmt.Sprintf("SetGrad: gradient shape %v does not match tensor shape %v", grad.shape, t.shape))
	}
	t.grad = grad
}

// Parents returns the tensors this one was derived from.
// Empty for leaves and for tensors not requiring gradients.
func (t *Tensor) Parents() []*Tensor {
	return t.parents
}
