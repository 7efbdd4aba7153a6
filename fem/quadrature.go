package fem

import "gonum.org/v1/gonum/integrate/quad"

// Source is the right hand side f of the differential equation.
type Source func(x float64) float64

// ConstSource returns the constant source f(x) = v.  The model Poisson
// problem uses ConstSource(1).
func ConstSource(v float64) Source { return func(float64) float64 { return v } }

// hatUp is the rising half of the hat basis function on [x0, x1]: zero at x0
// and one at x1.
func hatUp(x, x0, x1 float64) float64 { return (x - x0) / (x1 - x0) }

// hatDown is the falling half of the hat basis function on [x0, x1]: one at
// x0 and zero at x1.
func hatDown(x, x0, x1 float64) float64 { return (x1 - x) / (x1 - x0) }

// TrapezoidHatDown approximates the integral of f weighted by the falling
// hat over [x0, x1] with the trapezoid rule.  The hat vanishes at x1, so the
// rule reduces to f(x0)*(x1-x0)/2.
func TrapezoidHatDown(f Source, x0, x1 float64) float64 {
	return 0.5 * f(x0) * (x1 - x0)
}

// TrapezoidHatUp approximates the integral of f weighted by the rising hat
// over [x0, x1] with the trapezoid rule.  The hat vanishes at x0, so the
// rule reduces to f(x1)*(x1-x0)/2.
func TrapezoidHatUp(f Source, x0, x1 float64) float64 {
	return 0.5 * f(x1) * (x1 - x0)
}

// gaussPoints is the number of Gauss-Legendre abscissas used for elemental
// integrals that have no closed form.  Three points integrate quintics
// exactly, far beyond what P1 accuracy can use.
const gaussPoints = 3

// GaussLegendre integrates f over [x0, x1] with an n-point Gauss-Legendre
// rule.
func GaussLegendre(f func(float64) float64, x0, x1 float64, n int) float64 {
	return quad.Fixed(f, x0, x1, n, quad.Legendre{}, 0)
}
