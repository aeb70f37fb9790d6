package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphNodesAndEdges(t *testing.T) {
	g := NewGraph()
	g.AddNode("N1", 1, 1)
	g.AddNode("N2", 4, 1)
	g.AddNode("N3", 4, 5)

	require.NoError(t, g.AddEdge("N1", "N2", 3))
	require.NoError(t, g.AddEdge("N2", "N3", 4))

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "N1", nodes[0].ID)
	assert.Equal(t, "N3", nodes[2].ID)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "N1", edges[0].From)
	assert.Equal(t, 4.0, edges[1].Weight)
}

func TestGraphWeight(t *testing.T) {
	g := NewGraph()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 3, 0)
	require.NoError(t, g.AddEdge("A", "B", 2.5))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	// undirected
	w, ok = g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, 2.5, w)

	_, ok = g.Weight("A", "missing")
	assert.False(t, ok)
}

func TestGraphAddEdgeErrors(t *testing.T) {
	g := NewGraph()
	g.AddNode("A", 0, 0)

	assert.Error(t, g.AddEdge("A", "nope", 1))
	assert.Error(t, g.AddEdge("nope", "A", 1))
	assert.Error(t, g.AddEdge("A", "A", 1))
	assert.Empty(t, g.Edges())
}

func TestGraphReAddMovesNode(t *testing.T) {
	g := NewGraph()
	g.AddNode("A", 0, 0)
	g.AddNode("A", 7, 8)

	require.Len(t, g.Nodes(), 1)
	pos, ok := g.NodePos("A")
	require.True(t, ok)
	assert.Equal(t, 7.0, pos.X)
	assert.Equal(t, 8.0, pos.Y)
}

func TestNilGraphAccessors(t *testing.T) {
	var g *Graph
	assert.Nil(t, g.Nodes())
	assert.Nil(t, g.Edges())
	_, ok := g.Weight("A", "B")
	assert.False(t, ok)
	_, ok = g.NodePos("A")
	assert.False(t, ok)
}
