package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solver solves the linear system A*x = b for x.  Solvers are free to modify
// A and b in place; callers that need them afterwards should pass clones.
type Solver interface {
	Solve(A *Matrix, b []float64) (soln []float64, err error)
	Status() string
}

// CG implements a linear conjugate gradient solver (see
// http://wikipedia.org/wiki/Conjugate_gradient_method).  It requires A to be
// symmetric positive definite and so only applies to the unconstrained
// operator; row-overwritten Dirichlet systems need one of the direct solvers.
type CG struct {
	MaxIter int
	Tol     float64
	Niter   int
}

func (cg *CG) Status() string { return fmt.Sprintf("converged in %v iterations", cg.Niter) }

func (cg *CG) Solve(A *Matrix, b []float64) (x []float64, err error) {
	size := len(b)
	maxiter := cg.MaxIter
	if maxiter == 0 {
		maxiter = 2 * size
	}
	tol := cg.Tol
	if tol == 0 {
		tol = 1e-10
	}

	x = make([]float64, size)
	r := make([]float64, size)
	p := make([]float64, size)
	rnext := make([]float64, size)

	vecSub(r, b, A.Mul(x))
	copy(p, r)

	for cg.Niter = 0; cg.Niter < maxiter; cg.Niter++ {
		alpha := dot(r, r) / dot(p, A.Mul(p))
		vecAdd(x, x, vecMult(p, alpha))            // xnext = x+alpha*p
		vecSub(rnext, r, vecMult(A.Mul(p), alpha)) // rnext = r-alpha*A*p
		if math.Sqrt(dot(rnext, rnext)) < tol {
			break
		}
		beta := dot(rnext, rnext) / dot(r, r)
		vecAdd(p, rnext, vecMult(p, beta)) // pnext = rnext + beta*p
		r, rnext = rnext, r
	}

	return x, nil
}

// DenseLU solves the system by copying it into a dense gonum matrix and
// delegating to gonum's LU-backed solve.  Singular systems surface gonum's
// error.
type DenseLU struct{}

func (DenseLU) Status() string { return "" }

func (DenseLU) Solve(A *Matrix, b []float64) ([]float64, error) {
	size, _ := A.Dims()
	dense := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j, v := range A.NonzeroCols(i) {
			dense.Set(i, j, v)
		}
	}

	var u mat.VecDense
	if err := u.SolveVec(dense, mat.NewVecDense(len(b), b)); err != nil {
		return nil, fmt.Errorf("dense solve failed: %w", err)
	}
	return u.RawVector().Data, nil
}

// GaussJordan is a sparsity-aware Gauss-Jordan elimination solver.  It is the
// default direct solver for assembled systems.
type GaussJordan struct{}

func (GaussJordan) Status() string { return "" }

func (GaussJordan) Solve(A *Matrix, b []float64) ([]float64, error) {
	size, _ := A.Dims()

	// Using pivot rows (usually along the diagonal), eliminate all entries
	// below the pivot - doing this choosing a pivot row to eliminate nonzeros
	// in each column.  We only eliminate below the diagonal on the first pass
	// to reduce fill-in.  The second pass walks the pivot rows in reverse
	// eliminating nonzeros above the pivots (i.e. above the diagonal).

	donerows := make(map[int]bool, size)
	pivots := make([]int, size)

	// first pass
	for j := 0; j < size; j++ {
		// find the first row with a nonzero entry in column j that has not
		// already served as a pivot.
		piv := -1
		for i := 0; i < size; i++ {
			if A.At(i, j) != 0 && !donerows[i] {
				piv = i
				break
			}
		}
		if piv < 0 {
			return nil, fmt.Errorf("matrix is singular: no pivot available for column %v", j)
		}
		pivots[j] = piv
		donerows[piv] = true

		applyPivot(A, b, j, pivots[j], -1)
	}

	// second pass
	for j := size - 1; j >= 0; j-- {
		applyPivot(A, b, j, pivots[j], 1)
	}

	// renormalize each row so that leading nonzeros are ones (row echelon to
	// reduced row echelon)
	for j, i := range pivots {
		mult := 1 / A.At(i, j)
		RowMult(A, i, mult)
		b[i] *= mult
	}

	// re-sequence solution based on pivot row indices/order
	x := make([]float64, size)
	for i := range pivots {
		x[i] = b[pivots[i]]
	}

	return x, nil
}

// applyPivot uses the given pivot row to multiply and add to all other rows
// in A either above or below the pivot (dir = -1 for below pivot and 1 for
// above pivot) in order to zero out the given column.  The appropriate
// operations are also performed on b to keep it in sync.
func applyPivot(A *Matrix, b []float64, col int, piv int, dir int) {
	pval := A.At(piv, col)
	bval := b[piv]
	for i, aij := range A.NonzeroRows(col) {
		cond := ((dir == -1) && i > piv) || ((dir == 1) && i < piv)
		if i != piv && cond {
			mult := -aij / pval
			RowCombination(A, piv, i, mult)
			b[i] += bval * mult
		}
	}
}
