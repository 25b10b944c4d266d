package tensor

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
)

// FromScalar creates a rank-0 tensor holding a single value.
func FromScalar(v float32) *Tensor {
	return &Tensor{data: []float32{v}, shape: Shape{}}
}

// FromSlice creates a tensor from a flat buffer and an explicit shape.
// The slice is copied into the tensor's memory.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, &ShapeError{
			Op:      "from_slice",
			Shape:   shape.Clone(),
			Details: fmt.Sprintf("shape requires %d elements, but got %d", shape.NumElements(), len(data)),
		}
	}
	buf := make([]float32, len(data))
	copy(buf, data)
	return &Tensor{data: buf, shape: shape.Clone()}, nil
}

// From2D creates a 2-D tensor from nested row slices.
// All rows must have the same length.
func From2D(rows [][]float32) (*Tensor, error) {
	return FromNested(rows)
}

// From3D creates a 3-D tensor from nested slices.
// All slices at the same depth must have the same length.
func From3D(v [][][]float32) (*Tensor, error) {
	return FromNested(v)
}

// FromNested creates a tensor from nested literal data of any depth.
//
// The shape is inferred from the nesting structure: each level of slicing
// adds a dimension whose size is the slice length at that level. Every slice
// at a given depth must have the same length as its siblings; a mismatch
// fails with a ShapeError before any buffer is allocated. Leaves may be any
// Go numeric type and are converted to float32.
//
// Example:
//
//	t, _ := tensor.FromNested([][]float32{{1, 2, 3}, {4, 5, 6}}) // shape [2, 3]
func FromNested(v any) (*Tensor, error) {
	rv := reflect.ValueOf(v)
	shape, err := inferShape(rv)
	if err != nil {
		return nil, err
	}
	// Validate the full structure first: no partial state on failure.
	if err := validateNested(rv, shape); err != nil {
		return nil, err
	}

	data := make([]float32, 0, shape.NumElements())
	data = flattenNested(rv, len(shape), data)
	return &Tensor{data: data, shape: shape}, nil
}

// inferShape walks the first element at every nesting depth to propose a
// shape. The proposal is checked against the whole structure afterwards.
func inferShape(rv reflect.Value) (Shape, error) {
	shape := Shape{}
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			return shape, nil
		}
		rv = rv.Index(0)
		for rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
	}
	if _, err := leafValue(rv); err != nil {
		return nil, err
	}
	return shape, nil
}

// validateNested confirms every slice at depth d has length shape[d] and
// every leaf is numeric.
func validateNested(rv reflect.Value, shape Shape) error {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if len(shape) == 0 {
		_, err := leafValue(rv)
		return err
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return &TypeError{
			Op:      "from_nested",
			Value:   rv.Interface(),
			Details: fmt.Sprintf("expected a slice of depth %d, got a leaf", len(shape)),
		}
	}
	if rv.Len() != shape[0] {
		return &ShapeError{
			Op:      "from_nested",
			Shape:   shape.Clone(),
			Details: fmt.Sprintf("inconsistent nested lengths: expected %d, got %d", shape[0], rv.Len()),
		}
	}
	for i := 0; i < rv.Len(); i++ {
		if err := validateNested(rv.Index(i), shape[1:]); err != nil {
			return err
		}
	}
	return nil
}

// flattenNested linearizes the validated structure into row-major order.
func flattenNested(rv reflect.Value, depth int, out []float32) []float32 {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if depth == 0 {
		v, _ := leafValue(rv) // Already validated
		return append(out, v)
	}
	for i := 0; i < rv.Len(); i++ {
		out = flattenNested(rv.Index(i), depth-1, out)
	}
	return out
}

// leafValue converts a numeric leaf to float32.
func leafValue(rv reflect.Value) (float32, error) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return float32(rv.Float()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float32(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float32(rv.Uint()), nil
	default:
		var v any
		if rv.IsValid() {
			v = rv.Interface()
		}
		return 0, &TypeError{
			Op:      "from_nested",
			Value:   v,
			Details: "unsupported element type (want a numeric value or a slice)",
		}
	}
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err) // Negative dimensions are a programmer error
	}
	return &Tensor{
		data:  make([]float32, shape.NumElements()),
		shape: shape.Clone(),
	}
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// OnesLike creates a tensor of ones with the same shape as t.
func OnesLike(t *Tensor) *Tensor {
	return Ones(t.shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14)
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Arange creates a 1-D tensor with evenly spaced values.
//
// Forms:
//
//	Arange(end)              // [0, 1, ..., end-1]
//	Arange(start, end)       // [start, start+1, ..., end-1]
//	Arange(start, end, step) // [start, start+step, ...) up to but excluding end
//
// A zero step fails with a ValueError. An empty range (e.g. start >= end with
// a positive step) yields a tensor of zero elements.
func Arange(args ...float32) (*Tensor, error) {
	var start, end, step float32
	switch len(args) {
	case 1:
		start, end, step = 0, args[0], 1
	case 2:
		start, end, step = args[0], args[1], 1
	case 3:
		start, end, step = args[0], args[1], args[2]
	default:
		return nil, &ValueError{
			Op:      "arange",
			Details: fmt.Sprintf("expected 1 to 3 arguments, got %d", len(args)),
		}
	}
	if step == 0 {
		return nil, &ValueError{Op: "arange", Details: "step must be non-zero"}
	}

	n := int(math.Ceil(float64((end - start) / step)))
	if n < 0 {
		n = 0
	}
	data := make([]float32, n)
	for i := range data {
		data[i] = start + float32(i)*step
	}
	return &Tensor{data: data, shape: Shape{n}}, nil
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for ML purposes.
func Rand(shape Shape) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = float32(rand.Float64()) //nolint:gosec // G404: ML uses math/rand intentionally
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1), using the Box-Muller transform. Two deviates are generated
// per pair of consecutive output slots; for odd lengths the second deviate of
// the final pair is discarded.
//
// Example:
//
//	t := tensor.Randn(tensor.Shape{100, 100})
func Randn(shape Shape) *Tensor {
	t := Zeros(shape)
	data := t.data
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		u2 := rand.Float64() //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = float32(z0)
		if i+1 < len(data) {
			data[i+1] = float32(z1)
		}
	}
	return t
}
