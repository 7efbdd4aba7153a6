// Package fem implements a one-dimensional Galerkin finite element method
// with piecewise linear (P1) elements for the operator
//
//	-alpha*u'' + b*u' + c*u = f
//
// on an interval with Dirichlet conditions at both ends.  The model problem
// is -u'' = 1 on (0,1) with u(0) = u(1) = 0.
package fem

import (
	"fmt"
	"sort"
)

// Mesh is an ordered set of node coordinates on an interval.  Element k
// spans nodes k and k+1, so a mesh of n nodes has n-1 elements.
type Mesh struct {
	nodes []float64
}

// NewMesh creates a mesh from the given node coordinates.  The coordinates
// must be strictly increasing and there must be at least two of them; a
// degenerate sequence (zero or negative element length) is rejected.
func NewMesh(nodes []float64) (*Mesh, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("mesh needs at least 2 nodes, got %v", len(nodes))
	}
	for k := 0; k+1 < len(nodes); k++ {
		if nodes[k+1] <= nodes[k] {
			return nil, fmt.Errorf("node coordinates must be strictly increasing: x[%v]=%v, x[%v]=%v",
				k, nodes[k], k+1, nodes[k+1])
		}
	}
	m := &Mesh{nodes: make([]float64, len(nodes))}
	copy(m.nodes, nodes)
	return m, nil
}

// Uniform creates a mesh of n equally spaced nodes spanning [a, b].
func Uniform(a, b float64, n int) (*Mesh, error) {
	if n < 2 {
		return nil, fmt.Errorf("mesh needs at least 2 nodes, got %v", n)
	}
	if b <= a {
		return nil, fmt.Errorf("invalid interval [%v, %v]", a, b)
	}
	nodes := make([]float64, n)
	for i := range nodes {
		nodes[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	nodes[n-1] = b
	return NewMesh(nodes)
}

// NumNodes returns the number of nodes in the mesh.
func (m *Mesh) NumNodes() int { return len(m.nodes) }

// NumElems returns the number of elements in the mesh.
func (m *Mesh) NumElems() int { return len(m.nodes) - 1 }

// Node returns the coordinate of node i.
func (m *Mesh) Node(i int) float64 { return m.nodes[i] }

// Nodes returns a copy of all node coordinates.
func (m *Mesh) Nodes() []float64 {
	nodes := make([]float64, len(m.nodes))
	copy(nodes, m.nodes)
	return nodes
}

// Left and Right return the endpoints of the meshed interval.
func (m *Mesh) Left() float64  { return m.nodes[0] }
func (m *Mesh) Right() float64 { return m.nodes[len(m.nodes)-1] }

// ElemLen returns the length h of element k.  It is always positive on a
// successfully constructed mesh.
func (m *Mesh) ElemLen(k int) float64 { return m.nodes[k+1] - m.nodes[k] }

// MaxElemLen returns the largest element length in the mesh.
func (m *Mesh) MaxElemLen() float64 {
	h := 0.0
	for k := 0; k < m.NumElems(); k++ {
		if hk := m.ElemLen(k); hk > h {
			h = hk
		}
	}
	return h
}

// Refine returns a new mesh with every element bisected.  The original nodes
// are kept, so the maximum element length halves with each refinement.
func (m *Mesh) Refine() *Mesh {
	nodes := make([]float64, 0, 2*len(m.nodes)-1)
	for k := 0; k < m.NumElems(); k++ {
		nodes = append(nodes, m.nodes[k], (m.nodes[k]+m.nodes[k+1])/2)
	}
	nodes = append(nodes, m.nodes[len(m.nodes)-1])
	return &Mesh{nodes: nodes}
}

// locate returns the index of the element containing x.
func (m *Mesh) locate(x float64) (int, error) {
	if x < m.Left() || x > m.Right() {
		return 0, fmt.Errorf("point %v is outside the mesh [%v, %v]", x, m.Left(), m.Right())
	}
	// SearchFloat64s returns the first index with nodes[i] >= x.
	i := sort.SearchFloat64s(m.nodes, x)
	if i >= len(m.nodes)-1 {
		i = len(m.nodes) - 1
	}
	if i > 0 {
		i--
	}
	return i, nil
}

// Interpolate evaluates the P1 interpolant of the nodal values u at x.  The
// hat basis makes this the linear interpolation between the two nodes of the
// element containing x.
func (m *Mesh) Interpolate(u []float64, x float64) (float64, error) {
	if len(u) != len(m.nodes) {
		return 0, fmt.Errorf("got %v nodal values for a %v-node mesh", len(u), len(m.nodes))
	}
	k, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	x0, x1 := m.nodes[k], m.nodes[k+1]
	t := (x - x0) / (x1 - x0)
	return u[k]*(1-t) + u[k+1]*t, nil
}
