// Package sparse provides a small square sparse matrix and the linear
// solvers used for assembled finite element systems.
package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// eps is the threshold below which stored entries are dropped as zero.
const eps = 1e-12

// Matrix is a square sparse matrix indexed by nonzero maps in both row and
// column directions.  The dual indexing keeps row sweeps (elimination) and
// column sweeps (pivot selection) cheap.  It implements mat.Matrix so it can
// be passed directly to gonum operations and formatted printing.
type Matrix struct {
	// map[col]map[row]val
	nonzeroRow []map[int]float64
	// map[row]map[col]val
	nonzeroCol []map[int]float64
	size       int
}

// New creates a new size x size sparse matrix with all entries zero.
func New(size int) *Matrix {
	return &Matrix{
		nonzeroRow: make([]map[int]float64, size),
		nonzeroCol: make([]map[int]float64, size),
		size:       size,
	}
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	clone := New(m.size)
	for i, cols := range m.nonzeroCol {
		for j, v := range cols {
			clone.Set(i, j, v)
		}
	}
	return clone
}

// NonzeroRows returns a map of all rows with nonzero entries in the given
// column to the corresponding values.
func (m *Matrix) NonzeroRows(col int) (rows map[int]float64) { return m.nonzeroRow[col] }

// NonzeroCols returns a map of all columns with nonzero entries in the given
// row to the corresponding values.
func (m *Matrix) NonzeroCols(row int) (cols map[int]float64) { return m.nonzeroCol[row] }

func (m *Matrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }
func (m *Matrix) Dims() (int, int)    { return m.size, m.size }
func (m *Matrix) At(i, j int) float64 { return m.nonzeroCol[i][j] }

// Set stores v at entry (i, j), dropping the entry entirely if v is
// (numerically) zero.
func (m *Matrix) Set(i, j int, v float64) {
	if math.Abs(v) < eps {
		delete(m.nonzeroCol[i], j)
		delete(m.nonzeroRow[j], i)
		return
	}
	if m.nonzeroCol[i] == nil {
		m.nonzeroCol[i] = make(map[int]float64)
	}
	if m.nonzeroRow[j] == nil {
		m.nonzeroRow[j] = make(map[int]float64)
	}

	m.nonzeroCol[i][j] = v
	m.nonzeroRow[j][i] = v
}

// Add accumulates v into entry (i, j).  This is the scatter operation used
// when assembling elemental matrices into the global system.
func (m *Matrix) Add(i, j int, v float64) {
	m.Set(i, j, m.At(i, j)+v)
}

// ZeroRow removes every entry in the given row.
func (m *Matrix) ZeroRow(i int) {
	for j := range m.nonzeroCol[i] {
		delete(m.nonzeroRow[j], i)
	}
	m.nonzeroCol[i] = nil
}

// Mul computes the matrix-vector product m*b.
func (m *Matrix) Mul(b []float64) []float64 {
	result := make([]float64, len(b))
	for i := 0; i < m.size; i++ {
		tot := 0.0
		for j, val := range m.NonzeroCols(i) {
			tot += b[j] * val
		}
		result[i] = tot
	}
	return result
}

// RowCombination adds mult times the pivot row to the destination row of m.
func RowCombination(m *Matrix, pivrow, dstrow int, mult float64) {
	for col, aij := range m.NonzeroCols(pivrow) {
		m.Set(dstrow, col, m.At(dstrow, col)+aij*mult)
	}
}

// RowMult scales every entry of the given row of m by mult.
func RowMult(m *Matrix, row int, mult float64) {
	cols := m.NonzeroCols(row)
	for col, val := range cols {
		m.Set(row, col, val*mult)
	}
}

func vecAdd(result, a, b []float64) {
	if len(a) != len(b) {
		panic("inconsistent lengths for vector addition")
	}
	for i := range a {
		result[i] = a[i] + b[i]
	}
}

func vecSub(result, a, b []float64) {
	if len(a) != len(b) {
		panic("inconsistent lengths for vector subtraction")
	}
	for i := range a {
		result[i] = a[i] - b[i]
	}
}

// dot performs a vector*vector dot product.
func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("inconsistent lengths for dot product")
	}
	v := 0.0
	for i := range a {
		v += a[i] * b[i]
	}
	return v
}

func vecMult(v []float64, mult float64) []float64 {
	result := make([]float64, len(v))
	for i := range v {
		result[i] = mult * v[i]
	}
	return result
}
