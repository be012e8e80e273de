package roadmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplanner/roadmap"
)

// buildTriangle returns a 3-4-5 right triangle with two-way roads on every side.
func buildTriangle(t *testing.T) *roadmap.Map {
	t.Helper()
	m, err := roadmap.NewBuilder().
		AddNode(0, 0, 0).
		AddNode(1, 3, 0).
		AddNode(2, 3, 4).
		Connect(0, 1).
		Connect(1, 2).
		Connect(2, 0).
		Build()
	require.NoError(t, err)

	return m
}

func TestNew_Empty(t *testing.T) {
	m, err := roadmap.New(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, roadmap.ErrEmptyMap)
}

func TestNew_DanglingRoad(t *testing.T) {
	_, err := roadmap.New(map[roadmap.NodeID]roadmap.Node{
		1: {Pos: roadmap.Point{X: 0, Y: 0}, Neighbors: []roadmap.NodeID{2}},
	})
	require.ErrorIs(t, err, roadmap.ErrUnknownNode)
	assert.Contains(t, err.Error(), "1→2")
}

func TestNew_NonFinitePosition(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := roadmap.New(map[roadmap.NodeID]roadmap.Node{
			1: {Pos: roadmap.Point{X: bad, Y: 0}},
		})
		assert.ErrorIs(t, err, roadmap.ErrBadPosition)
	}
}

func TestNew_DistanceOverflow(t *testing.T) {
	_, err := roadmap.New(map[roadmap.NodeID]roadmap.Node{
		0: {Pos: roadmap.Point{X: -1e308, Y: 0}},
		1: {Pos: roadmap.Point{X: 1e308, Y: 0}},
	})
	assert.ErrorIs(t, err, roadmap.ErrBadPosition)

	// Huge but close together is fine.
	m, err := roadmap.New(map[roadmap.NodeID]roadmap.Node{
		0: {Pos: roadmap.Point{X: 1e308, Y: 1e308}},
		1: {Pos: roadmap.Point{X: 1.5e308, Y: 1e308}},
	})
	require.NoError(t, err)
	d, err := m.Distance(0, 1)
	require.NoError(t, err)
	assert.False(t, math.IsInf(d, 0))
}

func TestNew_CopiesInput(t *testing.T) {
	nb := []roadmap.NodeID{2}
	in := map[roadmap.NodeID]roadmap.Node{
		1: {Pos: roadmap.Point{X: 0, Y: 0}, Neighbors: nb},
		2: {Pos: roadmap.Point{X: 1, Y: 0}},
	}
	m, err := roadmap.New(in)
	require.NoError(t, err)

	nb[0] = 99
	delete(in, 2)

	got, err := m.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []roadmap.NodeID{2}, got)
	assert.True(t, m.Has(2))
}

func TestAccessors(t *testing.T) {
	m := buildTriangle(t)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 6, m.Roads())
	assert.Equal(t, []roadmap.NodeID{0, 1, 2}, m.NodeIDs())

	nb, err := m.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []roadmap.NodeID{1, 0}, nb, "declaration order is preserved")

	p, err := m.Position(2)
	require.NoError(t, err)
	assert.Equal(t, roadmap.Point{X: 3, Y: 4}, p)

	d, err := m.Distance(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	m := buildTriangle(t)
	nb, err := m.Neighbors(0)
	require.NoError(t, err)
	nb[0] = 42

	again, err := m.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []roadmap.NodeID{1, 2}, again)
}

func TestDistance_SymmetricAndNonNegative(t *testing.T) {
	m := roadmap.Map40()
	ids := m.NodeIDs()
	for _, a := range ids {
		for _, b := range ids {
			ab, err := m.Distance(a, b)
			require.NoError(t, err)
			ba, err := m.Distance(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestAccessors_UnknownNode(t *testing.T) {
	m := buildTriangle(t)

	_, err := m.Neighbors(7)
	assert.ErrorIs(t, err, roadmap.ErrUnknownNode)
	_, err = m.Position(7)
	assert.ErrorIs(t, err, roadmap.ErrUnknownNode)
	_, err = m.Distance(0, 7)
	assert.ErrorIs(t, err, roadmap.ErrUnknownNode)
	_, err = m.Distance(7, 0)
	assert.ErrorIs(t, err, roadmap.ErrUnknownNode)
	assert.False(t, m.Has(7))
}

func TestNilMap(t *testing.T) {
	var m *roadmap.Map
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Roads())
	assert.Nil(t, m.NodeIDs())
	assert.False(t, m.Has(0))
	_, err := m.Neighbors(0)
	assert.ErrorIs(t, err, roadmap.ErrUnknownNode)
}
