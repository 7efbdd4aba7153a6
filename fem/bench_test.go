package fem

import (
	"math/rand"
	"testing"
)

func BenchmarkAssemble(b *testing.B) {
	b.Run("nodes=10", benchAssembleN(10))
	b.Run("nodes=100", benchAssembleN(100))
	b.Run("nodes=1000", benchAssembleN(1000))
}

func BenchmarkSolve(b *testing.B) {
	b.Run("nodes=10", benchSolveN(10))
	b.Run("nodes=100", benchSolveN(100))
	b.Run("nodes=1000", benchSolveN(1000))
}

func BenchmarkInterpolate(b *testing.B) {
	b.Run("nodes=10", benchInterpolateN(10))
	b.Run("nodes=100", benchInterpolateN(100))
	b.Run("nodes=1000", benchInterpolateN(1000))
}

func benchAssembleN(n int) func(b *testing.B) {
	return func(b *testing.B) {
		mesh, err := Uniform(0, 1, n)
		if err != nil {
			b.Fatal(err)
		}
		f := ConstSource(1)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			A := AssembleStiffness(mesh, Laplace())
			F := AssembleLoad(mesh, f)
			ApplyDirichlet(A, F, DirichletBC{})
		}
	}
}

func benchSolveN(n int) func(b *testing.B) {
	return func(b *testing.B) {
		mesh, err := Uniform(0, 1, n)
		if err != nil {
			b.Fatal(err)
		}
		p := Problem{Mesh: mesh, Coeffs: Laplace(), Source: ConstSource(1)}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := p.Solve(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func benchInterpolateN(n int) func(b *testing.B) {
	return func(b *testing.B) {
		mesh, err := Uniform(0, 1, n)
		if err != nil {
			b.Fatal(err)
		}
		p := Problem{Mesh: mesh, Coeffs: Laplace(), Source: ConstSource(1)}
		soln, err := p.Solve()
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := soln.At(rand.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
}
