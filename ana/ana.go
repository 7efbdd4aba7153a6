// Package ana holds closed-form reference solutions used to verify the
// finite element results.
package ana

import "math"

// PoissonUnit is the exact solution of the model problem -u'' = 1 on (0,1)
// with u(0) = u(1) = 0:
//
//	u(x) = x*(1-x)/2
func PoissonUnit(x float64) float64 { return 0.5 * x * (1 - x) }

// Sine is the exact solution u(x) = sin(pi*x) of -u'' = pi^2*sin(pi*x) on
// (0,1) with u(0) = u(1) = 0.  Unlike the model problem its source is not
// integrated exactly by the trapezoid rule, so it exhibits a genuine
// discretization error under refinement.
func Sine(x float64) float64 { return math.Sin(math.Pi * x) }

// SineSource is the source term matching Sine.
func SineSource(x float64) float64 { return math.Pi * math.Pi * math.Sin(math.Pi*x) }

// Hat is the piecewise linear function u(x) = min(x, 1-x) on [0,1].  It is
// the weak solution of -u'' = 2*delta(x-1/2), with a kink at x = 1/2 where
// the classical second derivative does not exist.  A P1 mesh with a node at
// 1/2 represents it exactly, which makes it a sharp test for the
// manufactured (integration by parts) load vector.
func Hat(x float64) float64 { return math.Min(x, 1-x) }
