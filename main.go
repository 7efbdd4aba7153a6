package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/martinsw01/numdiff-p2/ana"
	"github.com/martinsw01/numdiff-p2/fem"
	"github.com/martinsw01/numdiff-p2/out"
)

// studyNodes is the non-uniform 9-node mesh of the original study.
var studyNodes = []float64{0, 0.15, 0.25, 0.4, 0.5, 0.65, 0.75, 0.9, 1}

func main() {
	var (
		n        = flag.Int("n", 0, "number of uniform mesh nodes (0 uses the built-in non-uniform 9-node mesh)")
		plotPath = flag.String("plot", "solution.png", "output path for the solution plot (empty disables plotting)")
		levels   = flag.Int("converge", 0, "refinement levels for a convergence study of -u''=pi^2*sin(pi*x) (0 disables)")
		convPath = flag.String("convplot", "convergence.png", "output path for the convergence plot")
		verbose  = flag.Bool("v", false, "print the assembled system")
	)
	flag.Parse()

	mesh, err := buildMesh(*n)
	if err != nil {
		log.Fatal(err)
	}

	// The model problem: -u'' = 1 on (0,1) with u(0) = u(1) = 0.
	prob := fem.Problem{
		Mesh:   mesh,
		Coeffs: fem.Laplace(),
		Source: fem.ConstSource(1),
	}

	if *verbose {
		A, F := prob.Assemble()
		fmt.Printf("A = %.4v\n\n", mat.Formatted(A, mat.Prefix("    ")))
		fmt.Printf("F = %.4v\n\n", mat.Formatted(mat.NewVecDense(len(F), F), mat.Prefix("    ")))
	}

	soln, err := prob.Solve()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-10v %-14v %-14v\n", "x", "fem", "exact")
	for i, x := range mesh.Nodes() {
		fmt.Printf("%-10.4g %-14.8g %-14.8g\n", x, soln.U[i], ana.PoissonUnit(x))
	}
	fmt.Printf("max nodal error: %.3g\n", soln.MaxNodalError(ana.PoissonUnit))

	if *plotPath != "" {
		err := out.Compare(*plotPath, "-u'' = 1,  u(0)=u(1)=0", mesh.Nodes(), soln.U, ana.PoissonUnit)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %v\n", *plotPath)
	}

	if *levels > 0 {
		if err := runConvergence(mesh, *levels, *convPath); err != nil {
			log.Fatal(err)
		}
	}
}

func buildMesh(n int) (*fem.Mesh, error) {
	if n == 0 {
		return fem.NewMesh(studyNodes)
	}
	return fem.Uniform(0, 1, n)
}

// runConvergence refines the mesh and reports the L-infinity nodal error for
// a problem with a non-trivial source.  The model problem is unsuitable
// here: its constant source is integrated exactly by the trapezoid rule, so
// its nodal values are exact on every mesh and there is no error to shrink.
func runConvergence(mesh *fem.Mesh, levels int, path string) error {
	prob := fem.Problem{
		Mesh:   mesh,
		Coeffs: fem.Laplace(),
		Source: ana.SineSource,
	}
	steps, err := fem.ConvergenceStudy(prob, ana.Sine, levels)
	if err != nil {
		return err
	}

	fmt.Printf("\n%-12v %-12v\n", "h", "max error")
	hs := make([]float64, len(steps))
	errs := make([]float64, len(steps))
	for i, s := range steps {
		fmt.Printf("%-12.4g %-12.4g\n", s.H, s.MaxErr)
		hs[i] = s.H
		errs[i] = s.MaxErr
	}

	if path != "" {
		if err := out.Convergence(path, hs, errs); err != nil {
			return err
		}
		fmt.Printf("wrote %v\n", path)
	}
	return nil
}
