package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// MatMul computes the [m, n] product of a row-major [m, k] matrix a and a
// row-major [k, n] matrix b using single-precision GEMM.
func MatMul(a, b []float32, m, k, n int) []float32 {
	if len(a) != m*k || len(b) != k*n {
		panic(fmt.Sprintf("cpu.MatMul: buffer sizes %d, %d do not match dims (%d, %d) x (%d, %d)", len(a), len(b), m, k, k, n))
	}

	out := make([]float32, m*n)
	if m == 0 || k == 0 || n == 0 {
		return out // Degenerate dims: result is all zeros
	}

	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: out},
	)
	return out
}

// Transpose2D returns the transpose of a row-major [rows, cols] matrix.
func Transpose2D(a []float32, rows, cols int) []float32 {
	if len(a) != rows*cols {
		panic(fmt.Sprintf("cpu.Transpose2D: buffer size %d does not match dims (%d, %d)", len(a), rows, cols))
	}
	out := make([]float32, len(a))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = a[i*cols+j]
		}
	}
	return out
}
