package fem

// ElemLoad returns the 2-entry elemental load vector for the element
// [x0, x1], integrating f against each of the element's hat functions with
// the trapezoid rule.  For constant f this is exact and equals
// [f*h/2, f*h/2].
func ElemLoad(f Source, x0, x1 float64) [2]float64 {
	return [2]float64{
		TrapezoidHatDown(f, x0, x1),
		TrapezoidHatUp(f, x0, x1),
	}
}

// AssembleLoad scatters the elemental load vectors into the global load
// vector, one entry per node.
func AssembleLoad(m *Mesh, f Source) []float64 {
	F := make([]float64, m.NumNodes())
	for k := 0; k < m.NumElems(); k++ {
		Fk := ElemLoad(f, m.Node(k), m.Node(k+1))
		F[k] += Fk[0]
		F[k+1] += Fk[1]
	}
	return F
}

// ManufacturedLoad builds the load vector whose solution is the prescribed
// function u, without requiring f = -alpha*u'' + b*u' + c*u in closed form.
// The diffusion term is integrated by parts per element, which needs only
// values of u itself:
//
//	int alpha*u'*psi' dx = alpha*(u(x1)-u(x0))/h
//
// exactly, since psi' is constant on the element.  The convection term is
// likewise moved onto the (constant-slope) test function.  This remains
// valid when u has kinks at mesh nodes, where u'' only exists in the
// distributional sense.
func ManufacturedLoad(m *Mesh, c Coefficients, u func(float64) float64) []float64 {
	F := make([]float64, m.NumNodes())
	for k := 0; k < m.NumElems(); k++ {
		x0, x1 := m.Node(k), m.Node(k+1)
		h := x1 - x0
		diff := c.Alpha * (u(x1) - u(x0)) / h

		F[k] += GaussLegendre(func(x float64) float64 {
			return c.B*u(x)/h + c.C*u(x)*hatDown(x, x0, x1)
		}, x0, x1, gaussPoints) - diff
		F[k+1] += GaussLegendre(func(x float64) float64 {
			return -c.B*u(x)/h + c.C*u(x)*hatUp(x, x0, x1)
		}, x0, x1, gaussPoints) + diff
	}
	return F
}
