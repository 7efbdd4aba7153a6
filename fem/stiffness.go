package fem

import (
	"github.com/martinsw01/numdiff-p2/sparse"
)

// Coefficients holds the constant coefficients of the operator
// -alpha*u'' + b*u' + c*u.
type Coefficients struct {
	Alpha float64
	B     float64
	C     float64
}

// Laplace returns the coefficients of the pure diffusion operator -u''.
func Laplace() Coefficients { return Coefficients{Alpha: 1} }

// ElemStiffness returns the 2x2 elemental stiffness matrix for an element of
// length h.  For the pure Laplacian (alpha=1, b=c=0) this is the familiar
// (1/h)*[[1,-1],[-1,1]].
func (c Coefficients) ElemStiffness(h float64) [2][2]float64 {
	return [2][2]float64{
		{c.Alpha/h + c.B/2 + c.C*h/3, -c.Alpha/h + c.B/2 + c.C*h/6},
		{-c.Alpha/h - c.B/2 + c.C*h/6, c.Alpha/h - c.B/2 + c.C*h/3},
	}
}

// AssembleStiffness scatters the elemental stiffness matrices into the
// global system matrix.  Element k's local nodes 0 and 1 map to global nodes
// k and k+1, so the result is tridiagonal.
func AssembleStiffness(m *Mesh, c Coefficients) *sparse.Matrix {
	A := sparse.New(m.NumNodes())
	for k := 0; k < m.NumElems(); k++ {
		Ak := c.ElemStiffness(m.ElemLen(k))
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				A.Add(k+i, k+j, Ak[i][j])
			}
		}
	}
	return A
}
