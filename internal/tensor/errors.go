package tensor

import "fmt"

// ShapeError reports inconsistent nested-array lengths, invalid dimensions,
// or a product mismatch on reshape/explicit-shape construction.
type ShapeError struct {
	Op      string // Operation that failed (e.g., "reshape", "from_nested")
	Shape   Shape  // Shape involved, if known
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Shape != nil {
		return fmt.Sprintf("shape error in %s: shape %v: %s", e.Op, e.Shape, e.Details)
	}
	return fmt.Sprintf("shape error in %s: %s", e.Op, e.Details)
}

// TypeError reports an unsupported construction input.
type TypeError struct {
	Op      string // Operation that failed
	Value   any    // Offending value
	Details string // Additional details
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error in %s: %T: %s", e.Op, e.Value, e.Details)
}

// ValueError reports an invalid numeric parameter, such as a zero step in
// range generation.
type ValueError struct {
	Op      string // Operation that failed
	Details string // Additional details
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("value error in %s: %s", e.Op, e.Details)
}

// GraphError reports an invalid computation graph state. A cycle among
// parents indicates a bug in the operation layer that built the graph, not a
// valid runtime state, so backward fails fast instead of tolerating it.
type GraphError struct {
	Op      string // Operation that failed (e.g., "backward")
	Details string // Additional details
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("graph error in %s: %s", e.Op, e.Details)
}
