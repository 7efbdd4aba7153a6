package fem

import (
	"fmt"

	"github.com/martinsw01/numdiff-p2/sparse"
)

// DirichletBC holds the prescribed solution values at the two ends of the
// mesh.  The zero value is the homogeneous condition u=0 at both ends.
type DirichletBC struct {
	Left  float64
	Right float64
}

// ApplyDirichlet enforces the boundary conditions on the assembled system by
// overwriting the first and last rows of A with identity rows and placing
// the prescribed values in F.
func ApplyDirichlet(A *sparse.Matrix, F []float64, bc DirichletBC) {
	n := len(F)
	A.ZeroRow(0)
	A.Set(0, 0, 1)
	F[0] = bc.Left
	A.ZeroRow(n - 1)
	A.Set(n-1, n-1, 1)
	F[n-1] = bc.Right
}

// Problem is a complete boundary value problem on a mesh: the operator
// coefficients, the source term, and the Dirichlet values at the ends.
type Problem struct {
	Mesh   *Mesh
	Coeffs Coefficients
	Source Source
	BC     DirichletBC
	// Solver solves the constrained linear system.  Defaults to
	// sparse.GaussJordan.
	Solver sparse.Solver
}

// Assemble builds the global stiffness matrix and load vector with the
// boundary conditions applied.
func (p *Problem) Assemble() (*sparse.Matrix, []float64) {
	A := AssembleStiffness(p.Mesh, p.Coeffs)
	F := AssembleLoad(p.Mesh, p.Source)
	ApplyDirichlet(A, F, p.BC)
	return A, F
}

// Solve assembles and solves the constrained system A*U = F for the nodal
// values U.  A singular system (which a valid mesh and operator should not
// produce) propagates the solver's error.
func (p *Problem) Solve() (*Solution, error) {
	A, F := p.Assemble()
	return solveSystem(p.Mesh, A, F, p.Solver)
}

// SolveManufactured solves for the prescribed exact solution u on the mesh,
// building the load vector by integration by parts (see ManufacturedLoad).
// The Dirichlet values are taken from u at the mesh endpoints.
func SolveManufactured(m *Mesh, c Coefficients, u func(float64) float64, solver sparse.Solver) (*Solution, error) {
	A := AssembleStiffness(m, c)
	F := ManufacturedLoad(m, c, u)
	ApplyDirichlet(A, F, DirichletBC{Left: u(m.Left()), Right: u(m.Right())})
	return solveSystem(m, A, F, solver)
}

func solveSystem(m *Mesh, A *sparse.Matrix, F []float64, solver sparse.Solver) (*Solution, error) {
	if solver == nil {
		solver = sparse.GaussJordan{}
	}
	U, err := solver.Solve(A, F)
	if err != nil {
		return nil, fmt.Errorf("solving %v-node system: %w", m.NumNodes(), err)
	}
	return &Solution{Mesh: m, U: U}, nil
}

// Solution is the finite element approximation: one value per mesh node.
type Solution struct {
	Mesh *Mesh
	U    []float64
}

// At evaluates the P1 interpolant of the solution at x.
func (s *Solution) At(x float64) (float64, error) {
	return s.Mesh.Interpolate(s.U, x)
}

// MaxNodalError returns the largest absolute difference between the nodal
// values and the exact solution sampled at the nodes.
func (s *Solution) MaxNodalError(exact func(float64) float64) float64 {
	maxerr := 0.0
	for i, u := range s.U {
		err := u - exact(s.Mesh.Node(i))
		if err < 0 {
			err = -err
		}
		if err > maxerr {
			maxerr = err
		}
	}
	return maxerr
}

// ConvergenceStep records the mesh resolution and nodal error of one level
// of a refinement study.
type ConvergenceStep struct {
	H      float64
	MaxErr float64
}

// ConvergenceStudy solves the problem on successively bisected meshes and
// reports the L-infinity nodal error against the exact solution at each
// level.  For a smooth exact solution the error shrinks with the mesh.
func ConvergenceStudy(p Problem, exact func(float64) float64, levels int) ([]ConvergenceStep, error) {
	if levels < 1 {
		return nil, fmt.Errorf("convergence study needs at least 1 level, got %v", levels)
	}
	steps := make([]ConvergenceStep, 0, levels)
	mesh := p.Mesh
	for l := 0; l < levels; l++ {
		lp := p
		lp.Mesh = mesh
		soln, err := lp.Solve()
		if err != nil {
			return nil, fmt.Errorf("level %v: %w", l, err)
		}
		steps = append(steps, ConvergenceStep{H: mesh.MaxElemLen(), MaxErr: soln.MaxNodalError(exact)})
		mesh = mesh.Refine()
	}
	return steps, nil
}
