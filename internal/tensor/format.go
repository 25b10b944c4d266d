package tensor

import (
	"fmt"
	"strings"
)

// String returns a human-readable representation of the tensor in the form
// tensor(<nested-literal>, dtype=float32). 1-D tensors render as a flat
// bracketed list; higher ranks render as nested, newline-separated brackets
// with two spaces of indent per nesting level.
//
// Example:
//
//	tensor([
//	  [1, 2, 3],
//	  [4, 5, 6]
//	], dtype=float32)
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString("tensor(")
	formatData(&sb, t.data, t.shape, 1)
	sb.WriteString(", dtype=float32)")
	return sb.String()
}

// formatData recursively renders a row-major chunk of data with the given
// shape. level is the current nesting depth, used for indentation.
func formatData(sb *strings.Builder, data []float32, shape Shape, level int) {
	switch len(shape) {
	case 0:
		fmt.Fprintf(sb, "%g", data[0])

	case 1:
		sb.WriteString("[")
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%g", data[i])
		}
		sb.WriteString("]")

	default:
		chunk := shape[1:].NumElements()
		sb.WriteString("[\n")
		for i := 0; i < shape[0]; i++ {
			sb.WriteString(strings.Repeat("  ", level))
			formatData(sb, data[i*chunk:(i+1)*chunk], shape[1:], level+1)
			if i < shape[0]-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", level-1))
		sb.WriteString("]")
	}
}

// Unflatten returns the tensor's contents as a nested structure mirroring its
// shape: a bare float32 for rank 0, a []float32 for rank 1, and nested []any
// otherwise. Leaf slices are views into the flat buffer, not copies.
func (t *Tensor) Unflatten() any {
	return unflatten(t.data, t.shape)
}

// unflatten partitions a flat row-major buffer into shape[0] contiguous
// chunks of size product(shape[1:]), recursing until the leaf case.
func unflatten(data []float32, shape Shape) any {
	switch len(shape) {
	case 0:
		return data[0]
	case 1:
		return data[:shape[0]:shape[0]]
	default:
		chunk := shape[1:].NumElements()
		out := make([]any, shape[0])
		for i := range out {
			out[i] = unflatten(data[i*chunk:(i+1)*chunk], shape[1:])
		}
		return out
	}
}
