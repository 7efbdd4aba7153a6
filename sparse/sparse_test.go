package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAt(t *testing.T) {
	m := New(3)
	assert.Zero(t, m.At(1, 2))

	m.Set(1, 2, 4.5)
	assert.Equal(t, 4.5, m.At(1, 2))
	assert.Equal(t, map[int]float64{2: 4.5}, m.NonzeroCols(1))
	assert.Equal(t, map[int]float64{1: 4.5}, m.NonzeroRows(2))

	// overwriting with zero drops the entry from both indices
	m.Set(1, 2, 0)
	assert.Zero(t, m.At(1, 2))
	assert.Empty(t, m.NonzeroCols(1))
	assert.Empty(t, m.NonzeroRows(2))
}

func TestAdd(t *testing.T) {
	m := New(2)
	m.Add(0, 0, 2)
	m.Add(0, 0, 3)
	assert.Equal(t, 5.0, m.At(0, 0))

	// accumulation back to zero removes the entry
	m.Add(0, 0, -5)
	assert.Empty(t, m.NonzeroCols(0))
}

func TestClone(t *testing.T) {
	m := New(2)
	m.Set(0, 1, 7)
	clone := m.Clone()
	clone.Set(0, 1, 9)

	assert.Equal(t, 7.0, m.At(0, 1))
	assert.Equal(t, 9.0, clone.At(0, 1))
}

func TestZeroRow(t *testing.T) {
	m := New(3)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)

	m.ZeroRow(0)
	assert.Zero(t, m.At(0, 0))
	assert.Zero(t, m.At(0, 1))
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Empty(t, m.NonzeroCols(0))
	// column index must not retain the removed row
	_, ok := m.NonzeroRows(0)[0]
	assert.False(t, ok)
}

func TestMul(t *testing.T) {
	m := New(3)
	// [[2,-1,0],[-1,2,-1],[0,-1,2]]
	m.Set(0, 0, 2)
	m.Set(0, 1, -1)
	m.Set(1, 0, -1)
	m.Set(1, 1, 2)
	m.Set(1, 2, -1)
	m.Set(2, 1, -1)
	m.Set(2, 2, 2)

	got := m.Mul([]float64{1, 2, 3})
	want := []float64{0, 0, 4}
	require.Len(t, got, 3)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "entry %v", i)
	}
}

func TestDims(t *testing.T) {
	m := New(4)
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)
	rt, ct := m.T().Dims()
	assert.Equal(t, 4, rt)
	assert.Equal(t, 4, ct)
}
