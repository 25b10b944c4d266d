package tensor

import (
	"math"
	"testing"
)

// FromNested Tests

func TestFromNested2D(t *testing.T) {
	tensor, err := FromNested([][]float32{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, tensor.Shape(), "FromNested shape")
	expected := []float32{1, 2, 3, 4, 5, 6}
	for i, v := range expected {
		assertEqualFloat32(t, v, tensor.Data()[i], "row-major layout")
	}
}

func TestFromNested3D(t *testing.T) {
	tensor, err := From3D([][][]float32{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	if err != nil {
		t.Fatalf("From3D failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 2, 2}, tensor.Shape(), "From3D shape")
	assertEqualFloat32(t, 7, tensor.At(1, 1, 0), "element (1,1,0)")
}

func TestFromNestedMixedNumericTypes(t *testing.T) {
	tensor, err := FromNested([]any{1, 2.5, float32(3)})
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}

	assertEqualShape(t, Shape{3}, tensor.Shape(), "mixed numeric shape")
	assertEqualFloat32(t, 2.5, tensor.Data()[1], "float64 leaf converted")
}

func TestFromNestedScalarLeaf(t *testing.T) {
	tensor, err := FromNested(7)
	if err != nil {
		t.Fatalf("FromNested failed: %v", err)
	}
	assertEqualShape(t, Shape{}, tensor.Shape(), "scalar leaf shape")
	assertEqualFloat32(t, 7, tensor.Item(), "scalar leaf value")
}

func TestFromNestedRaggedFails(t *testing.T) {
	inputs := []any{
		[][]float32{{1, 2}, {3}},
		[]any{[]any{1, 2}, []any{3}},
		[][][]float32{{{1}, {2}}, {{3, 4}, {5}}},
	}

	for _, input := range inputs {
		_, err := FromNested(input)
		if err == nil {
			t.Errorf("FromNested(%v) should fail for ragged input", input)
			continue
		}
		if _, ok := err.(*ShapeError); !ok {
			t.Errorf("FromNested(%v) returned %T, want *ShapeError", input, err)
		}
	}
}

func TestFromNestedUnsupportedTypeFails(t *testing.T) {
	inputs := []any{
		"hello",
		[]string{"a", "b"},
		[]any{1, "two"},
		[]any{[]any{1}, "two"},
	}

	for _, input := range inputs {
		_, err := FromNested(input)
		if err == nil {
			t.Errorf("FromNested(%v) should fail for unsupported input", input)
			continue
		}
		if _, ok := err.(*TypeError); !ok {
			t.Errorf("FromNested(%v) returned %T, want *TypeError", input, err)
		}
	}
}

func TestFromNestedRoundTrip(t *testing.T) {
	orig := [][]float32{{1, 2, 3}, {4, 5, 6}}
	tensor, err := FromNested(orig)
	if err != nil {
		t.Fatal(err)
	}

	nested, ok := tensor.Unflatten().([]any)
	if !ok {
		t.Fatalf("Unflatten returned %T, want []any", tensor.Unflatten())
	}
	for i, row := range orig {
		got, ok := nested[i].([]float32)
		if !ok {
			t.Fatalf("Unflatten row %d is %T, want []float32", i, nested[i])
		}
		for j, v := range row {
			assertEqualFloat32(t, v, got[j], "round-trip element")
		}
	}
}

// Fill Tests

func TestZeros(t *testing.T) {
	shapes := []Shape{{}, {5}, {3, 4}, {2, 3, 4}}
	for _, shape := range shapes {
		tensor := Zeros(shape)
		if tensor.NumElements() != shape.NumElements() {
			t.Errorf("Zeros(%v).NumElements() = %d, want %d", shape, tensor.NumElements(), shape.NumElements())
		}
		for i, v := range tensor.Data() {
			if v != 0 {
				t.Errorf("Zeros(%v).Data()[%d] = %v, want 0", shape, i, v)
				break
			}
		}
	}
}

func TestZerosDegenerateDim(t *testing.T) {
	tensor := Zeros(Shape{3, 0, 4})
	if tensor.NumElements() != 0 {
		t.Errorf("zero-sized dimension should collapse buffer, got %d elements", tensor.NumElements())
	}
}

func TestOnesAndFull(t *testing.T) {
	ones := Ones(Shape{2, 3})
	for _, v := range ones.Data() {
		assertEqualFloat32(t, 1, v, "Ones element")
	}

	full := Full(Shape{2, 2}, 3.14)
	for _, v := range full.Data() {
		assertEqualFloat32(t, 3.14, v, "Full element")
	}
}

func TestFromSliceCopies(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	tensor, err := FromSlice(data, Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	data[0] = 99
	assertEqualFloat32(t, 1, tensor.Data()[0], "FromSlice should copy input")
}

// Arange Tests

func TestArange(t *testing.T) {
	tests := []struct {
		args     []float32
		expected []float32
	}{
		{[]float32{5}, []float32{0, 1, 2, 3, 4}},
		{[]float32{2, 6}, []float32{2, 3, 4, 5}},
		{[]float32{0, 10, 2}, []float32{0, 2, 4, 6, 8}},
		{[]float32{0, 1, 0.25}, []float32{0, 0.25, 0.5, 0.75}},
		{[]float32{5, 0, -1}, []float32{5, 4, 3, 2, 1}},
		{[]float32{3, 3}, []float32{}},
		{[]float32{5, 0}, []float32{}}, // Inverted range with positive step
	}

	for _, tt := range tests {
		tensor, err := Arange(tt.args...)
		if err != nil {
			t.Errorf("Arange(%v) failed: %v", tt.args, err)
			continue
		}
		if tensor.NumElements() != len(tt.expected) {
			t.Errorf("Arange(%v) yielded %d elements, want %d", tt.args, tensor.NumElements(), len(tt.expected))
			continue
		}
		for i, v := range tt.expected {
			assertEqualFloat32(t, v, tensor.Data()[i], "Arange element")
		}
	}
}

func TestArangeZeroStepFails(t *testing.T) {
	_, err := Arange(0, 5, 0)
	if err == nil {
		t.Fatal("Arange with zero step should fail")
	}
	if _, ok := err.(*ValueError); !ok {
		t.Errorf("Arange returned %T, want *ValueError", err)
	}
}

// Random Tests

func TestRandRange(t *testing.T) {
	tensor := Rand(Shape{1000})
	for _, v := range tensor.Data() {
		if v < 0 || v >= 1 {
			t.Errorf("Rand value %v outside [0, 1)", v)
			break
		}
	}
}

func TestRandn(t *testing.T) {
	tensor := Randn(Shape{100, 50})
	data := tensor.Data()

	// Check that values are not all zeros (with high probability)
	nonZero := 0
	for _, v := range data {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero < len(data)/2 {
		t.Errorf("Randn should produce mostly non-zero values, got %d non-zero out of %d", nonZero, len(data))
	}

	// Check that values are roughly normally distributed (mean ~0, std ~1)
	sum := float32(0)
	for _, v := range data {
		sum += v
	}
	mean := sum / float32(len(data))
	if math.Abs(float64(mean)) > 0.2 {
		t.Logf("Warning: Randn mean = %v, expected close to 0 (but this can happen randomly)", mean)
	}

	sumSq := float32(0)
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	std := float32(math.Sqrt(float64(sumSq / float32(len(data)))))
	if math.Abs(float64(std-1)) > 0.3 {
		t.Logf("Warning: Randn std = %v, expected close to 1 (but this can happen randomly)", std)
	}
}

func TestRandnOddLength(t *testing.T) {
	// The final Box-Muller pair has its second deviate discarded.
	tensor := Randn(Shape{7})
	if tensor.NumElements() != 7 {
		t.Errorf("Randn odd length: got %d elements, want 7", tensor.NumElements())
	}
}
